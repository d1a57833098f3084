package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/game"
)

func TestRequestFingerprint(t *testing.T) {
	a := NewTargetMatchRequest(animation.BoneLeftFoot, mgl32.Vec3{1, 2, 3}, 0.5)
	b := NewTargetMatchRequest(animation.BoneLeftFoot, mgl32.Vec3{1, 2, 3}, 0.5)
	if a.Fingerprint() != b.Fingerprint() {
		t.Fatal("identical requests should share a fingerprint")
	}

	c := NewTargetMatchRequest(animation.BoneLeftFoot, mgl32.Vec3{1, 2, 3.001}, 0.5)
	if a.Fingerprint() == c.Fingerprint() {
		t.Fatal("a different target should change the fingerprint")
	}

	d := NewTargetMatchRequest(animation.BoneRightFoot, mgl32.Vec3{1, 2, 3}, 0.5)
	if a.Fingerprint() == d.Fingerprint() {
		t.Fatal("a different bone should change the fingerprint")
	}

	e := a.WithWindow(0.1, 0.9)
	if a.Fingerprint() == e.Fingerprint() {
		t.Fatal("a different window should change the fingerprint")
	}
}

func TestRequestValidate(t *testing.T) {
	ok := NewTargetMatchRequest(animation.BoneLeftHand, mgl32.Vec3{}, 0.5)
	if err := ok.Validate(); err != nil {
		t.Fatalf("default request should validate, got %v", err)
	}

	if err := ok.WithWindow(0.8, 0.2).Validate(); err == nil {
		t.Fatal("inverted window should be rejected")
	}
	if err := ok.WithWindow(-0.1, 0.8).Validate(); err == nil {
		t.Fatal("negative window start should be rejected")
	}
	if err := ok.WithWindow(0, 1.2).Validate(); err == nil {
		t.Fatal("window end beyond 1 should be rejected")
	}

	bad := NewTargetMatchRequest(animation.BoneLeftHand, mgl32.Vec3{}, 0)
	if err := bad.Validate(); err == nil {
		t.Fatal("zero duration should be rejected")
	}
}

func TestRequestTimeRange(t *testing.T) {
	r := NewTargetMatchRequest(animation.BoneLeftFoot, mgl32.Vec3{}, 2.0).WithWindow(0.25, 0.75)
	start, end := r.TimeRange()
	if !game.Float32ApproxEq(start, 0.5) || !game.Float32ApproxEq(end, 1.5) {
		t.Fatalf("expected range (0.5, 1.5), got (%v, %v)", start, end)
	}
	if !game.Float32ApproxEq(r.MatchDuration(), 1.0) {
		t.Fatalf("expected match duration 1, got %v", r.MatchDuration())
	}
}

func TestPoseBlendStateDefaults(t *testing.T) {
	s := NewPoseBlendState()
	if w, ok := s.ActivePoses.Get(animation.PoseIdle); !ok || w != 1 {
		t.Fatalf("fresh blend state should idle at full weight, got %v", w)
	}
	if !game.Float32ApproxEq(s.WeightSum(), 1) {
		t.Fatalf("expected weight sum 1, got %v", s.WeightSum())
	}
}
