package player

import "github.com/go-gl/mathgl/mgl32"

// KinematicState is the per-tick snapshot of a character's motion, fed by the
// host's character controller before each tick.
type KinematicState struct {
	// Position is the character's world-space origin.
	Position mgl32.Vec3
	// Facing is the character's forward direction.
	Facing mgl32.Vec3
	// Velocity is the character's velocity.
	Velocity mgl32.Vec3
	// Action is the character controller's active action tag, empty when no
	// action is running.
	Action string
	// OnGround reports whether the character is standing on geometry.
	OnGround bool
	// Ready is false until the controller has produced its first full basis;
	// systems skip cleanly while it is.
	Ready bool
}

// MovementComponent holds the current and previous kinematic snapshots.
type MovementComponent interface {
	// Update stores a new snapshot, shifting the previous one.
	Update(state KinematicState)
	// State returns the current snapshot.
	State() KinematicState
	// LastState returns the previous snapshot.
	LastState() KinematicState
	// Ready reports whether at least one ready snapshot has been received.
	Ready() bool
}
