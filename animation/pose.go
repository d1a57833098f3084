package animation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/game"
)

// PoseID identifies one of the 13 canonical keyframe poses. The set is fixed
// and known at compile time.
type PoseID uint8

const (
	PoseIdle PoseID = iota
	PoseWalkLeftFootForward
	PoseWalkRightFootForward
	PoseRunLeftFootForward
	PoseRunRightFootForward
	PoseJumpTakeoff
	PoseJumpAirborne
	PoseJumpLanding
	PoseRollLeft
	PoseRollRight
	PoseAttackPunch
	PoseAttackKick
	PoseCrouch

	poseCount = 13
)

// AllPoses returns every pose ID in canonical order.
func AllPoses() [poseCount]PoseID {
	return [poseCount]PoseID{
		PoseIdle,
		PoseWalkLeftFootForward,
		PoseWalkRightFootForward,
		PoseRunLeftFootForward,
		PoseRunRightFootForward,
		PoseJumpTakeoff,
		PoseJumpAirborne,
		PoseJumpLanding,
		PoseRollLeft,
		PoseRollRight,
		PoseAttackPunch,
		PoseAttackKick,
		PoseCrouch,
	}
}

// String returns a human-readable name for the pose.
func (id PoseID) String() string {
	switch id {
	case PoseIdle:
		return "Idle"
	case PoseWalkLeftFootForward:
		return "Walk Left"
	case PoseWalkRightFootForward:
		return "Walk Right"
	case PoseRunLeftFootForward:
		return "Run Left"
	case PoseRunRightFootForward:
		return "Run Right"
	case PoseJumpTakeoff:
		return "Jump Takeoff"
	case PoseJumpAirborne:
		return "Jump Airborne"
	case PoseJumpLanding:
		return "Jump Landing"
	case PoseRollLeft:
		return "Roll Left"
	case PoseRollRight:
		return "Roll Right"
	case PoseAttackPunch:
		return "Attack Punch"
	case PoseAttackKick:
		return "Attack Kick"
	case PoseCrouch:
		return "Crouch"
	}
	return fmt.Sprintf("unknown(%d)", uint8(id))
}

// FileName returns the base name of the pose's asset file.
func (id PoseID) FileName() string {
	switch id {
	case PoseIdle:
		return "idle"
	case PoseWalkLeftFootForward:
		return "walk_left"
	case PoseWalkRightFootForward:
		return "walk_right"
	case PoseRunLeftFootForward:
		return "run_left"
	case PoseRunRightFootForward:
		return "run_right"
	case PoseJumpTakeoff:
		return "jump_takeoff"
	case PoseJumpAirborne:
		return "jump_airborne"
	case PoseJumpLanding:
		return "jump_landing"
	case PoseRollLeft:
		return "roll_left"
	case PoseRollRight:
		return "roll_right"
	case PoseAttackPunch:
		return "attack_punch"
	case PoseAttackKick:
		return "attack_kick"
	case PoseCrouch:
		return "crouch"
	}
	return "unknown"
}

// BoneTransform holds the local transform of a single bone within a pose.
type BoneTransform struct {
	Translation mgl32.Vec3 `json:"translation"`
	Rotation    mgl32.Quat `json:"rotation"`
	Scale       mgl32.Vec3 `json:"scale"`
}

// Lerp blends two bone transforms: linear interpolation for translation and
// scale, shortest-arc spherical interpolation for rotation.
func (t BoneTransform) Lerp(o BoneTransform, weight float32) BoneTransform {
	return BoneTransform{
		Translation: game.LerpVec3(t.Translation, o.Translation, weight),
		Rotation:    game.Slerp(t.Rotation, o.Rotation, weight),
		Scale:       game.LerpVec3(t.Scale, o.Scale, weight),
	}
}

// Pose is a single keyframe pose: a named set of local bone transforms.
type Pose struct {
	Name  string                   `json:"name"`
	Bones map[string]BoneTransform `json:"bones"`
}

// NewPose creates an empty pose with the given name.
func NewPose(name string) *Pose {
	return &Pose{Name: name, Bones: make(map[string]BoneTransform)}
}

// WithBone adds a bone transform to the pose and returns it for chaining.
func (p *Pose) WithBone(bone string, transform BoneTransform) *Pose {
	p.Bones[bone] = transform
	return p
}

// Blend mixes this pose with another at the given weight (0 keeps the
// receiver, 1 yields the other pose). Bones present in only one pose are
// carried over unchanged.
func (p *Pose) Blend(other *Pose, weight float32) *Pose {
	result := NewPose(p.Name + "_" + other.Name + "_blend")

	for bone, a := range p.Bones {
		if b, ok := other.Bones[bone]; ok {
			result.Bones[bone] = a.Lerp(b, weight)
		} else {
			result.Bones[bone] = a
		}
	}
	for bone, b := range other.Bones {
		if _, ok := p.Bones[bone]; !ok {
			result.Bones[bone] = b
		}
	}
	return result
}

// WeightedPose pairs a pose with its blend weight.
type WeightedPose struct {
	Pose   *Pose
	Weight float32
}

// BlendWeighted folds a weighted set of poses into a single pose. The weights
// are expected to sum to one; each pose is mixed in proportionally to its
// share of the accumulated weight.
func BlendWeighted(poses []WeightedPose) (*Pose, bool) {
	if len(poses) == 0 {
		return nil, false
	}
	if len(poses) == 1 {
		return poses[0].Pose, true
	}

	result := poses[0].Pose
	total := poses[0].Weight
	for _, wp := range poses[1:] {
		result = result.Blend(wp.Pose, wp.Weight/(total+wp.Weight))
		total += wp.Weight
	}
	return result, true
}
