package event

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/world"
)

// Handler receives notifications from a character's animation systems. All
// methods are called synchronously from the character's tick; implementations
// must not block.
type Handler interface {
	// HandleStateChange is called when the discrete animation state changes
	// discriminant.
	HandleStateChange(old, current animation.State)
	// HandleTargetMatchStart is called when a bone begins matching toward a
	// world-space target.
	HandleTargetMatchStart(bone animation.TargetBone, target mgl32.Vec3)
	// HandleTargetMatchComplete is called when a bone finishes its match
	// window.
	HandleTargetMatchComplete(bone animation.TargetBone)
	// HandlePlacement is called when a placement probe resolves a contact
	// point for a bone.
	HandlePlacement(bone animation.TargetBone, position mgl32.Vec3)
	// HandleObstacle is called when the forward probes classify an obstacle
	// ahead of the character.
	HandleObstacle(obstacle world.Obstacle)
}

// NopHandler implements Handler with no-op methods. Embed it to handle only
// the events of interest.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) HandleStateChange(old, current animation.State)                     {}
func (NopHandler) HandleTargetMatchStart(bone animation.TargetBone, target mgl32.Vec3) {}
func (NopHandler) HandleTargetMatchComplete(bone animation.TargetBone)                {}
func (NopHandler) HandlePlacement(bone animation.TargetBone, position mgl32.Vec3)     {}
func (NopHandler) HandleObstacle(obstacle world.Obstacle)                             {}
