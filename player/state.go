package player

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/stride-anim/stride/animation"
)

// ContactState describes the character's relationship to the ground.
type ContactState uint8

const (
	ContactGrounded ContactState = iota
	ContactAirborne
	ContactLanding
)

func (c ContactState) String() string {
	switch c {
	case ContactAirborne:
		return "airborne"
	case ContactLanding:
		return "landing"
	}
	return "grounded"
}

// PoseBlendState is the per-character blending state, mutated every tick by
// the blending system and read by the applier and debug consumers. It lives
// with the character and persists until despawn.
type PoseBlendState struct {
	// ActivePoses maps each active pose to its blend weight, in application
	// order. Weights sum to 1.0 within tolerance.
	ActivePoses *orderedmap.OrderedMap[animation.PoseID, float32]
	// Velocity is the current horizontal speed in m/s.
	Velocity float32
	// Contact is the ground contact state.
	Contact ContactState
	// FootPhase is the cyclic stride phase in [0, 1).
	FootPhase float32
	// StrideLength is the current stride length in meters.
	StrideLength float32
}

// NewPoseBlendState returns a blend state with a single idle pose at full
// weight.
func NewPoseBlendState() *PoseBlendState {
	s := &PoseBlendState{ActivePoses: orderedmap.NewOrderedMap[animation.PoseID, float32]()}
	s.ActivePoses.Set(animation.PoseIdle, 1.0)
	return s
}

// WeightSum returns the sum of all active pose weights.
func (s *PoseBlendState) WeightSum() float32 {
	var sum float32
	for el := s.ActivePoses.Front(); el != nil; el = el.Next() {
		sum += el.Value
	}
	return sum
}

// AnimationComponent classifies motion and maintains the pose blend.
type AnimationComponent interface {
	// Tick re-evaluates the animation state and blend weights for this
	// simulation step.
	Tick(dt float32)
	// State returns the current discrete animation state.
	State() animation.State
	// BlendState returns the character's blend state.
	BlendState() *PoseBlendState
}
