package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// StrideCalculator derives stride length and per-foot placement targets from
// the character's velocity and the terrain beneath it.
type StrideCalculator struct {
	// BaseWalkStride is the stride length at normal walking speed, in meters.
	BaseWalkStride float32
	// BaseRunStride is the stride length at normal running speed, in meters.
	BaseRunStride float32
	// VelocityScale scales the computed stride length.
	VelocityScale float32
}

// DefaultStrideCalculator returns a calculator tuned for an average human gait.
func DefaultStrideCalculator() StrideCalculator {
	return StrideCalculator{
		BaseWalkStride: DefaultBaseWalkStride,
		BaseRunStride:  DefaultBaseRunStride,
		VelocityScale:  1.0,
	}
}

// StrideLength returns the stride length in meters for the given horizontal
// speed and the normal of the terrain under the character.
func (c StrideCalculator) StrideLength(speed float32, terrainNormal mgl32.Vec3) float32 {
	var base float32
	if speed < 3.0 {
		base = c.BaseWalkStride * math32.Min(speed/3.0, 1.0)
	} else {
		runFactor := math32.Min((speed-3.0)/5.0, 1.0)
		base = c.BaseWalkStride + (c.BaseRunStride-c.BaseWalkStride)*runFactor
	}
	return base * c.VelocityScale * SlopeAdjustment(terrainNormal)
}

// FootTarget returns the expected planted position for one foot given the
// current stride. The left foot leads during the first half of the cycle.
func (c StrideCalculator) FootTarget(characterPos, velocity mgl32.Vec3, strideLength, footPhase float32, leftFoot bool) mgl32.Vec3 {
	forward := NormalizeOrZero(Horizontal(velocity))
	right := NormalizeOrZero(mgl32.Vec3{0, 1, 0}.Cross(forward))

	var strideOffset float32
	var lateralOffset float32
	if leftFoot {
		strideOffset = (footPhase - 0.5) * strideLength
		lateralOffset = 0.15
	} else {
		strideOffset = (math32.Mod(footPhase+0.5, 1.0) - 0.5) * strideLength
		lateralOffset = -0.15
	}

	return characterPos.
		Add(forward.Mul(strideOffset)).
		Add(right.Mul(lateralOffset))
}

// SlopeAdjustment returns a stride length multiplier for the given terrain
// normal: 1.0 on flat ground, down to 0.7 on steep uphill slopes.
func SlopeAdjustment(terrainNormal mgl32.Vec3) float32 {
	slope := 1 - terrainNormal.Normalize().Dot(mgl32.Vec3{0, 1, 0})
	if slope < 0.01 {
		return 1.0
	}
	return math32.Max(1.0-slope*0.3, 0.7)
}
