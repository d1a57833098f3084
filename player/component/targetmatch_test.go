package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/event"
	"github.com/stride-anim/stride/player"
)

type matchRecorder struct {
	event.NopHandler
	started   []animation.TargetBone
	completed []animation.TargetBone
}

func (r *matchRecorder) HandleTargetMatchStart(bone animation.TargetBone, target mgl32.Vec3) {
	r.started = append(r.started, bone)
}

func (r *matchRecorder) HandleTargetMatchComplete(bone animation.TargetBone) {
	r.completed = append(r.completed, bone)
}

func TestTargetMatchLifecycle(t *testing.T) {
	p, sinks := newTestPlayer(t, mockSpace{})
	rec := &matchRecorder{}
	p.SetHandler(rec)
	tm := p.TargetMatch()

	if got := tm.Phase(animation.BoneLeftFoot); got != player.MatchIdle {
		t.Fatalf("expected idle phase before any request, got %v", got)
	}

	target := mgl32.Vec3{0.5, 0.2, 0}
	req := player.NewTargetMatchRequest(animation.BoneLeftFoot, target, 0.5)
	tm.Submit(req)

	if got := tm.Phase(animation.BoneLeftFoot); got != player.MatchActive {
		t.Fatalf("expected active phase after submit, got %v", got)
	}
	if len(rec.started) != 1 {
		t.Fatalf("expected 1 start event, got %d", len(rec.started))
	}
	proxy, ok := tm.Proxy(animation.BoneLeftFoot)
	if !ok {
		t.Fatal("expected a proxy entity after submit")
	}

	// Default window is (0, 0.8) of a 0.5s animation: 0.4s of matching.
	for i := 0; i < 5; i++ {
		tm.Tick(0.1)
	}
	if got := tm.Phase(animation.BoneLeftFoot); got != player.MatchComplete {
		t.Fatalf("expected complete phase, got %v", got)
	}
	if len(rec.completed) != 1 {
		t.Fatalf("expected 1 complete event, got %d", len(rec.completed))
	}
	if got := sinks.ik.targets[proxy]; !got.ApproxEqual(target) {
		t.Fatalf("proxy should rest on the target, got %v", got)
	}
}

func TestTargetMatchReusesProxy(t *testing.T) {
	p, sinks := newTestPlayer(t, mockSpace{})
	tm := p.TargetMatch()

	tm.Submit(player.NewTargetMatchRequest(animation.BoneLeftFoot, mgl32.Vec3{0.5, 0, 0}, 0.5))
	// Feet spawn a proxy and a pole target.
	if sinks.ik.spawned != 2 {
		t.Fatalf("expected 2 spawned targets for a foot, got %d", sinks.ik.spawned)
	}
	first, _ := tm.Proxy(animation.BoneLeftFoot)

	for i := 0; i < 5; i++ {
		tm.Tick(0.1)
	}

	// A new request restarts the cycle on the same proxy and constraint.
	tm.Submit(player.NewTargetMatchRequest(animation.BoneLeftFoot, mgl32.Vec3{1.0, 0, 0}, 0.5))
	if sinks.ik.spawned != 2 {
		t.Fatalf("new request should reuse the proxy, got %d spawns", sinks.ik.spawned)
	}
	second, _ := tm.Proxy(animation.BoneLeftFoot)
	if first != second {
		t.Fatal("proxy entity changed across requests")
	}
	if got := tm.Phase(animation.BoneLeftFoot); got != player.MatchActive {
		t.Fatalf("expected matching to restart, got %v", got)
	}
}

func TestTargetMatchIdempotentSubmit(t *testing.T) {
	p, _ := newTestPlayer(t, mockSpace{})
	rec := &matchRecorder{}
	p.SetHandler(rec)
	tm := p.TargetMatch()

	req := player.NewTargetMatchRequest(animation.BoneRightHand, mgl32.Vec3{1, 1, 0}, 0.5)
	tm.Submit(req)
	tm.Tick(0.1)
	tm.Submit(req)

	if len(rec.started) != 1 {
		t.Fatalf("identical in-flight request should be ignored, got %d start events", len(rec.started))
	}
}

func TestTargetMatchRejectsInvalidRequest(t *testing.T) {
	p, _ := newTestPlayer(t, mockSpace{})
	tm := p.TargetMatch()

	tm.Submit(player.NewTargetMatchRequest(animation.BoneLeftHand, mgl32.Vec3{}, -1))
	if got := tm.Phase(animation.BoneLeftHand); got != player.MatchIdle {
		t.Fatalf("invalid request should be rejected, got phase %v", got)
	}

	tm.Submit(player.NewTargetMatchRequest(animation.BoneLeftHand, mgl32.Vec3{}, 0.5).WithWindow(0.9, 0.1))
	if got := tm.Phase(animation.BoneLeftHand); got != player.MatchIdle {
		t.Fatalf("inverted window should be rejected, got phase %v", got)
	}
}

func TestTargetMatchInterpolatesMonotonically(t *testing.T) {
	p, sinks := newTestPlayer(t, mockSpace{})
	tm := p.TargetMatch()

	tm.Submit(player.NewTargetMatchRequest(animation.BoneRightFoot, mgl32.Vec3{2, 0.05, 0}, 1.0))
	proxy, _ := tm.Proxy(animation.BoneRightFoot)

	prevX := sinks.ik.targets[proxy].X()
	for i := 0; i < 10; i++ {
		tm.Tick(0.08)
		x := sinks.ik.targets[proxy].X()
		if x < prevX {
			t.Fatalf("proxy moved backwards at step %d: %v < %v", i, x, prevX)
		}
		prevX = x
	}
}
