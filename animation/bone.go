package animation

import "strings"

// TargetBone identifies a bone that can be driven toward a world-space target
// by the matching system. Each target bone maps to a fixed bone chain (root
// to effector) and a mask group. The set is static.
type TargetBone uint8

const (
	BoneLeftFoot TargetBone = iota
	BoneRightFoot
	BoneLeftHand
	BoneRightHand
	BoneHead
	BoneHips
)

// AllTargetBones returns every target bone.
func AllTargetBones() []TargetBone {
	return []TargetBone{BoneLeftFoot, BoneRightFoot, BoneLeftHand, BoneRightHand, BoneHead, BoneHips}
}

// BoneName returns the canonical rig name of the bone, without any skeleton
// prefix.
func (b TargetBone) BoneName() string {
	switch b {
	case BoneLeftFoot:
		return "LeftFoot"
	case BoneRightFoot:
		return "RightFoot"
	case BoneLeftHand:
		return "LeftHand"
	case BoneRightHand:
		return "RightHand"
	case BoneHead:
		return "Head"
	case BoneHips:
		return "Hips"
	}
	return "Unknown"
}

// Chain returns the bone chain from root to end effector, without prefixes.
func (b TargetBone) Chain() []string {
	switch b {
	case BoneLeftFoot:
		return []string{"LeftUpLeg", "LeftLeg", "LeftFoot"}
	case BoneRightFoot:
		return []string{"RightUpLeg", "RightLeg", "RightFoot"}
	case BoneLeftHand:
		return []string{"LeftArm", "LeftForeArm", "LeftHand"}
	case BoneRightHand:
		return []string{"RightArm", "RightForeArm", "RightHand"}
	case BoneHead:
		return []string{"Neck", "Head"}
	case BoneHips:
		return []string{"Hips"}
	}
	return nil
}

// MaskGroup returns the mask group ID for the bone. Group 0 is the body.
func (b TargetBone) MaskGroup() uint32 {
	switch b {
	case BoneLeftFoot:
		return 1
	case BoneRightFoot:
		return 2
	case BoneLeftHand:
		return 3
	case BoneRightHand:
		return 4
	case BoneHead:
		return 5
	default:
		return 0
	}
}

// Foot reports whether the bone is one of the feet.
func (b TargetBone) Foot() bool {
	return b == BoneLeftFoot || b == BoneRightFoot
}

func (b TargetBone) String() string {
	return b.BoneName()
}

// ParseBoneName maps a scene bone name to a target bone. Skeleton prefixes
// separated by a colon (e.g. "mixamorig12:LeftFoot") are stripped before
// matching.
func ParseBoneName(name string) (TargetBone, bool) {
	if _, suffix, ok := strings.Cut(name, ":"); ok {
		name = suffix
	}
	switch name {
	case "LeftFoot":
		return BoneLeftFoot, true
	case "RightFoot":
		return BoneRightFoot, true
	case "LeftHand":
		return BoneLeftHand, true
	case "RightHand":
		return BoneRightHand, true
	case "Head":
		return BoneHead, true
	case "Hips":
		return BoneHips, true
	}
	return 0, false
}
