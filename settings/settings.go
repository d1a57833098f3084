package settings

import (
	"os"

	"github.com/restartfu/gophig"

	"github.com/stride-anim/stride/serror"
)

// Settings contains every tunable of the animation systems. It is loaded once
// at startup and treated as read-only afterwards; hot reloading is owned by
// external tooling.
type Settings struct {
	// Thresholds partition horizontal speed into the discrete motion states.
	// They must be strictly increasing.
	Thresholds struct {
		// Idle is the speed below which the character is considered
		// standing still, in m/s.
		Idle float32
		// Walk is the speed up to which the character is walking, in m/s.
		Walk float32
		// Run is the speed at which the run animation is fully blended in,
		// in m/s.
		Run float32
	}
	// Cycle controls the foot cycle frequency as a function of speed:
	// frequency = Base + Slope * (speed - range start).
	Cycle struct {
		WalkBase  float32
		WalkSlope float32
		RunBase   float32
		RunSlope  float32
	}
	Stride struct {
		BaseWalk      float32
		BaseRun       float32
		VelocityScale float32
	}
	FootPlacement struct {
		Enabled bool
		// RayDistance is how far below each foot the ground is searched for,
		// in meters.
		RayDistance float32
		// Offset lifts the resolved contact point along the surface normal
		// to keep the foot from clipping, in meters.
		Offset float32
		// UpdateInterval is the time between placement updates, in seconds.
		UpdateInterval float32
		// MinSlopeAngle is the slope angle in degrees below which foot
		// placement stays inactive. Zero activates it on flat ground too.
		MinSlopeAngle float32
	}
	HandPlacement struct {
		Enabled        bool
		RayDistance    float32
		Offset         float32
		UpdateInterval float32
		// MatchDuration is the animation duration fed into hand match
		// requests, in seconds.
		MatchDuration float32
	}
	Obstacle struct {
		Enabled bool
		// Range is how far ahead obstacles are probed for, in meters.
		Range float32
		// CenterHeight, UpperHeight and LowerHeight are the heights of the
		// three forward probe rays above the character origin, in meters.
		CenterHeight float32
		UpperHeight  float32
		LowerHeight  float32
		// AutoActionSpeed is the minimum speed for automatic parkour
		// actions, in m/s.
		AutoActionSpeed float32
	}
	Matching struct {
		// WindowStart and WindowEnd bound the normalized match window.
		WindowStart float32
		WindowEnd   float32
		// IKIterations is the solver iteration budget per constraint.
		IKIterations int
		// Crossfade is the playback crossfade duration in seconds.
		Crossfade float32
	}
	// JumpAction is the character-controller action tag that classifies as a
	// jump.
	JumpAction string
}

// DefaultSettings returns the settings the systems were tuned with.
func DefaultSettings() Settings {
	s := Settings{}

	s.Thresholds.Idle = 0.1
	s.Thresholds.Walk = 2.0
	s.Thresholds.Run = 8.0

	s.Cycle.WalkBase = 1.0
	s.Cycle.WalkSlope = 0.5
	s.Cycle.RunBase = 2.0
	s.Cycle.RunSlope = 0.3

	s.Stride.BaseWalk = 0.6
	s.Stride.BaseRun = 1.2
	s.Stride.VelocityScale = 1.0

	s.FootPlacement.Enabled = true
	s.FootPlacement.RayDistance = 2.0
	s.FootPlacement.Offset = 0.05
	s.FootPlacement.UpdateInterval = 0.1
	s.FootPlacement.MinSlopeAngle = 5.0

	s.HandPlacement.Enabled = true
	s.HandPlacement.RayDistance = 1.5
	s.HandPlacement.Offset = 0.1
	s.HandPlacement.UpdateInterval = 0.1
	s.HandPlacement.MatchDuration = 0.5

	s.Obstacle.Enabled = true
	s.Obstacle.Range = 2.0
	s.Obstacle.CenterHeight = 1.0
	s.Obstacle.UpperHeight = 1.8
	s.Obstacle.LowerHeight = 0.3
	s.Obstacle.AutoActionSpeed = 3.0

	s.Matching.WindowStart = 0.0
	s.Matching.WindowEnd = 0.8
	s.Matching.IKIterations = 20
	s.Matching.Crossfade = 0.2

	s.JumpAction = "jump"

	return s
}

// Validate rejects configurations that would produce undefined blend weights
// or negative durations.
func (s Settings) Validate() error {
	if s.Thresholds.Idle < 0 {
		return serror.New("settings: idle threshold must be >= 0, got %v", s.Thresholds.Idle)
	}
	if s.Thresholds.Walk <= s.Thresholds.Idle || s.Thresholds.Run <= s.Thresholds.Walk {
		return serror.New("settings: speed thresholds must be strictly increasing (idle=%v walk=%v run=%v)",
			s.Thresholds.Idle, s.Thresholds.Walk, s.Thresholds.Run)
	}
	if s.Matching.WindowStart < 0 || s.Matching.WindowEnd > 1 || s.Matching.WindowStart >= s.Matching.WindowEnd {
		return serror.New("settings: match window must satisfy 0 <= start < end <= 1, got (%v, %v)",
			s.Matching.WindowStart, s.Matching.WindowEnd)
	}
	if s.Matching.IKIterations <= 0 {
		return serror.New("settings: IK iteration budget must be positive, got %d", s.Matching.IKIterations)
	}
	if s.FootPlacement.UpdateInterval <= 0 || s.HandPlacement.UpdateInterval <= 0 {
		return serror.New("settings: placement update intervals must be positive")
	}
	if s.FootPlacement.RayDistance <= 0 || s.HandPlacement.RayDistance <= 0 {
		return serror.New("settings: placement ray distances must be positive")
	}
	if s.HandPlacement.MatchDuration <= 0 {
		return serror.New("settings: hand match duration must be positive, got %v", s.HandPlacement.MatchDuration)
	}
	if s.FootPlacement.MinSlopeAngle < 0 || s.FootPlacement.MinSlopeAngle > 90 {
		return serror.New("settings: minimum slope angle must be within [0, 90], got %v", s.FootPlacement.MinSlopeAngle)
	}
	return nil
}

// Read loads settings from the TOML file at the given path, creating it with
// defaults when it does not exist.
func Read(path string) (Settings, error) {
	g := gophig.NewGophig[Settings](path, gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if os.IsNotExist(err) {
		if err = g.SaveConf(DefaultSettings()); err != nil {
			return Settings{}, err
		}
	}
	s, err := g.LoadConf()
	if err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
