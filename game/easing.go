package game

import "github.com/chewxy/math32"

// Easing selects the curve applied to normalized target-matching progress.
type Easing uint8

const (
	EasingLinear Easing = iota
	EasingIn
	EasingOut
	EasingInOut
)

// Apply evaluates the easing curve at t, where t is expected to be in [0, 1].
// Every curve is monotonic non-decreasing with Apply(0) = 0 and Apply(1) = 1.
func (e Easing) Apply(t float32) float32 {
	t = Clamp01(t)
	switch e {
	case EasingIn:
		return t * t
	case EasingOut:
		inv := 1 - t
		return 1 - inv*inv
	case EasingInOut:
		// Cubic ease-in-out.
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math32.Pow(-2*t+2, 3)/2
	default:
		return t
	}
}

func (e Easing) String() string {
	switch e {
	case EasingIn:
		return "ease-in"
	case EasingOut:
		return "ease-out"
	case EasingInOut:
		return "ease-in-out"
	default:
		return "linear"
	}
}
