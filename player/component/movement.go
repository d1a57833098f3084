package component

import "github.com/stride-anim/stride/player"

// MovementComponent buffers the current and previous kinematic snapshots fed
// by the host's character controller.
type MovementComponent struct {
	current  player.KinematicState
	previous player.KinematicState
	ready    bool
}

func NewMovementComponent() *MovementComponent {
	return &MovementComponent{}
}

func (c *MovementComponent) Update(state player.KinematicState) {
	c.previous = c.current
	c.current = state
	if state.Ready {
		c.ready = true
	}
}

func (c *MovementComponent) State() player.KinematicState {
	return c.current
}

func (c *MovementComponent) LastState() player.KinematicState {
	return c.previous
}

func (c *MovementComponent) Ready() bool {
	return c.ready
}
