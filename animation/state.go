package animation

import "fmt"

// StateKind is the discriminant of a character's animation state. Transition
// logic triggers on discriminant changes only; payload changes within the
// same kind (e.g. the speed of a running character) do not.
type StateKind uint8

const (
	StateIdle StateKind = iota
	StateWalking
	StateRunning
	StateJumping
)

// String ...
func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// State is the discrete animation state of a character for one tick. Exactly
// one state is active per character per frame. Speed carries the horizontal
// speed payload for running states and is zero otherwise.
type State struct {
	Kind  StateKind
	Speed float32
}

// Idle returns the idle state.
func Idle() State {
	return State{Kind: StateIdle}
}

// Walking returns the walking state.
func Walking() State {
	return State{Kind: StateWalking}
}

// Running returns a running state carrying the given horizontal speed.
func Running(speed float32) State {
	return State{Kind: StateRunning, Speed: speed}
}

// Jumping returns the jumping state.
func Jumping() State {
	return State{Kind: StateJumping}
}

// SameKind reports whether two states share a discriminant, regardless of
// payload.
func (s State) SameKind(o State) bool {
	return s.Kind == o.Kind
}

// Moving reports whether the state implies horizontal motion.
func (s State) Moving() bool {
	return s.Kind == StateWalking || s.Kind == StateRunning
}

func (s State) String() string {
	if s.Kind == StateRunning {
		return fmt.Sprintf("running(%.2f)", s.Speed)
	}
	return s.Kind.String()
}
