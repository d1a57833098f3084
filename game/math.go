package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// HorizontalSpeed returns the length of the velocity projected onto the
// horizontal (XZ) plane.
func HorizontalSpeed(v mgl32.Vec3) float32 {
	return math32.Sqrt(v.X()*v.X() + v.Z()*v.Z())
}

// Horizontal returns the vector with its vertical component removed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// Clamp01 clamps a value into the [0, 1] range.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Ramp maps v linearly from [lo, hi] onto [0, 1], clamped at both ends.
func Ramp(v, lo, hi float32) float32 {
	if hi <= lo {
		return 0
	}
	return Clamp01((v - lo) / (hi - lo))
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// LerpVec3 linearly interpolates between two vectors by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(a.X(), b.X(), t),
		Lerp(a.Y(), b.Y(), t),
		Lerp(a.Z(), b.Z(), t),
	}
}

// Slerp spherically interpolates between two quaternions along the shortest
// arc. Falls back to normalized lerp when the quaternions are nearly parallel.
// The endpoints are returned exactly.
func Slerp(a, b mgl32.Quat, t float32) mgl32.Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	dot := a.Dot(b)
	if dot < 0 {
		b = b.Scale(-1)
		dot = -dot
	}

	if dot > 0.9995 {
		return a.Scale(1 - t).Add(b.Scale(t)).Normalize()
	}

	theta := math32.Acos(dot)
	sinTheta := math32.Sin(theta)
	wa := math32.Sin((1-t)*theta) / sinTheta
	wb := math32.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb)).Normalize()
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// SlopeAngle returns the angle in degrees between a surface normal and
// world-up.
func SlopeAngle(normal mgl32.Vec3) float32 {
	n := normal.Normalize()
	dot := Clamp01(n.Dot(mgl32.Vec3{0, 1, 0}))
	return mgl32.RadToDeg(math32.Acos(dot))
}

// NormalizeOrZero normalizes a vector, returning the zero vector when its
// length is too small to normalize safely.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < 1e-12 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}
