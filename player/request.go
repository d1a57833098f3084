package player

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/serror"
)

// TargetMatchRequest asks the matching system to drive a bone toward a
// world-space position during a window of the current animation. Requests are
// transient: a newer request for the same bone replaces the in-flight one,
// and completion consumes the request.
type TargetMatchRequest struct {
	// Bone is the bone to match.
	Bone animation.TargetBone
	// TargetPosition is the world-space position to reach.
	TargetPosition mgl32.Vec3
	// WindowStart and WindowEnd bound the match window, normalized over the
	// animation duration. Start must be less than End.
	WindowStart float32
	WindowEnd   float32
	// AnimationDuration is the duration of the animation the window is
	// normalized against, in seconds. Must be positive.
	AnimationDuration float32
}

// NewTargetMatchRequest creates a request with the default (0, 0.8) window.
func NewTargetMatchRequest(bone animation.TargetBone, target mgl32.Vec3, duration float32) TargetMatchRequest {
	return TargetMatchRequest{
		Bone:              bone,
		TargetPosition:    target,
		WindowStart:       0,
		WindowEnd:         0.8,
		AnimationDuration: duration,
	}
}

// WithWindow returns a copy of the request with a custom match window.
func (r TargetMatchRequest) WithWindow(start, end float32) TargetMatchRequest {
	r.WindowStart, r.WindowEnd = start, end
	return r
}

// Validate rejects requests that would produce negative or zero durations.
func (r TargetMatchRequest) Validate() error {
	if r.WindowStart < 0 || r.WindowEnd > 1 || r.WindowStart >= r.WindowEnd {
		return serror.New("target match: window must satisfy 0 <= start < end <= 1, got (%v, %v)", r.WindowStart, r.WindowEnd)
	}
	if r.AnimationDuration <= 0 {
		return serror.New("target match: animation duration must be positive, got %v", r.AnimationDuration)
	}
	return nil
}

// TimeRange returns the match window in seconds.
func (r TargetMatchRequest) TimeRange() (float32, float32) {
	return r.WindowStart * r.AnimationDuration, r.WindowEnd * r.AnimationDuration
}

// MatchDuration returns the length of the match window in seconds.
func (r TargetMatchRequest) MatchDuration() float32 {
	start, end := r.TimeRange()
	return end - start
}

// Fingerprint hashes the request's identifying fields. Identical requests
// produce identical fingerprints, which the matching system uses to stay
// idempotent under repeated submissions.
func (r TargetMatchRequest) Fingerprint() uint64 {
	var buf [25]byte
	buf[0] = byte(r.Bone)
	binary.LittleEndian.PutUint32(buf[1:], math.Float32bits(r.TargetPosition.X()))
	binary.LittleEndian.PutUint32(buf[5:], math.Float32bits(r.TargetPosition.Y()))
	binary.LittleEndian.PutUint32(buf[9:], math.Float32bits(r.TargetPosition.Z()))
	binary.LittleEndian.PutUint32(buf[13:], math.Float32bits(r.WindowStart))
	binary.LittleEndian.PutUint32(buf[17:], math.Float32bits(r.WindowEnd))
	binary.LittleEndian.PutUint32(buf[21:], math.Float32bits(r.AnimationDuration))
	return xxh3.Hash(buf[:])
}

// MatchPhase is the lifecycle phase of a bone's target matching.
type MatchPhase uint8

const (
	// MatchIdle means no matching is active for the bone.
	MatchIdle MatchPhase = iota
	// MatchActive means the bone is being driven toward a target.
	MatchActive
	// MatchComplete means the last request finished; the phase stays
	// terminal until a new request restarts the cycle.
	MatchComplete
)

func (p MatchPhase) String() string {
	switch p {
	case MatchActive:
		return "matching"
	case MatchComplete:
		return "complete"
	}
	return "idle"
}

// TargetMatchComponent runs the per-bone matching state machines and drives
// the IK sink.
type TargetMatchComponent interface {
	// Submit hands a request to the bone's state machine. Identical
	// in-flight requests are ignored; differing ones replace the in-flight
	// request.
	Submit(request TargetMatchRequest)
	// Tick advances all active matches.
	Tick(dt float32)
	// Phase returns the matching phase of the given bone.
	Phase(bone animation.TargetBone) MatchPhase
	// Proxy returns the IK proxy entity for the bone, when one exists.
	Proxy(bone animation.TargetBone) (entity.ID, bool)
}
