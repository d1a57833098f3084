package game

const (
	// WeightEpsilon is the tolerance used when checking that blend weights
	// sum to one.
	WeightEpsilon = float32(1e-3)

	DefaultIdleThreshold = float32(0.1)
	DefaultWalkThreshold = float32(2.0)
	DefaultRunThreshold  = float32(8.0)

	// Walk cycles run at 1.0-2.25 Hz, run cycles at 2.0-3.5 Hz across their
	// respective speed ranges.
	DefaultWalkCycleBase  = float32(1.0)
	DefaultWalkCycleSlope = float32(0.5)
	DefaultRunCycleBase   = float32(2.0)
	DefaultRunCycleSlope  = float32(0.3)

	DefaultBaseWalkStride = float32(0.6)
	DefaultBaseRunStride  = float32(1.2)
)
