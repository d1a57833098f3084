package player

import (
	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/world"
)

// BoneMapComponent indexes the character's bones by target bone. The map is
// built once by name lookup over the scene hierarchy and retried while empty,
// since the skeletal scene may still be streaming in. It holds weak
// references only: the bones stay owned by the scene.
type BoneMapComponent interface {
	// Tick attempts to (re)build the map while it is empty.
	Tick()
	// Bone returns the scene bone for a target bone.
	Bone(bone animation.TargetBone) (*entity.Bone, bool)
	// Populated reports whether any bones have been resolved yet.
	Populated() bool
}

// PlacementComponent probes world geometry near a set of bones and emits
// target match requests for resolved contacts.
type PlacementComponent interface {
	// Tick advances the placement timer and, when it fires, runs the probes.
	Tick(dt float32)
}

// ObstacleComponent classifies geometry ahead of the character into parkour
// opportunities.
type ObstacleComponent interface {
	// Tick re-runs the forward probes.
	Tick()
	// Obstacle returns the most recent classification.
	Obstacle() world.Obstacle
	// CanVault reports whether a vaultable obstacle is in range and the
	// character is moving fast enough to vault automatically.
	CanVault() bool
	// CanClimb reports whether a climbable wall or ledge is in range.
	CanClimb() bool
	// CanSlide reports whether a low obstacle ahead can be slid under.
	CanSlide() bool
}
