package component

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/player"
	"github.com/stride-anim/stride/world"
)

type submitRecorder struct {
	requests []player.TargetMatchRequest
}

func (r *submitRecorder) Submit(request player.TargetMatchRequest) {
	r.requests = append(r.requests, request)
}

func (r *submitRecorder) Tick(dt float32)                                      {}
func (r *submitRecorder) Phase(bone animation.TargetBone) player.MatchPhase    { return player.MatchIdle }
func (r *submitRecorder) Proxy(bone animation.TargetBone) (entity.ID, bool)    { return 0, false }

// groundSpace answers every downward ray with a surface of the given normal.
type groundSpace struct {
	normal   mgl32.Vec3
	excluded [][]entity.ID
}

func (g *groundSpace) CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude ...entity.ID) (world.RayHit, bool) {
	g.excluded = append(g.excluded, exclude)
	if direction.Y() >= 0 {
		return world.RayHit{}, false
	}
	return world.RayHit{
		Distance: origin.Y(),
		Position: mgl32.Vec3{origin.X(), 0, origin.Z()},
		Normal:   g.normal,
	}, true
}

func footTestPlayer(t *testing.T, normal mgl32.Vec3) (*player.Player, *groundSpace, *submitRecorder) {
	t.Helper()

	ground := &groundSpace{normal: normal}
	p, _ := newTestPlayer(t, mockSpace{cast: ground.CastRay})
	rec := &submitRecorder{}
	p.SetTargetMatch(rec)

	// Walk one full update interval so the placement timer fires.
	interval := p.Settings().FootPlacement.UpdateInterval
	feed(p, mgl32.Vec3{1.5, 0, 0}, "", true)
	p.Tick(interval)
	return p, ground, rec
}

func TestFootPlacementSuppressedOnFlatGround(t *testing.T) {
	_, _, rec := footTestPlayer(t, mgl32.Vec3{0, 1, 0})
	if len(rec.requests) != 0 {
		t.Fatalf("flat ground should not trigger placement, got %d requests", len(rec.requests))
	}
}

func TestFootPlacementActivatesOnSlope(t *testing.T) {
	// ~16.7 degrees, above the default 5 degree gate.
	_, _, rec := footTestPlayer(t, mgl32.Vec3{0.3, 1, 0})
	if len(rec.requests) != 2 {
		t.Fatalf("expected a request per foot, got %d", len(rec.requests))
	}

	targets := map[animation.TargetBone]mgl32.Vec3{}
	for _, req := range rec.requests {
		targets[req.Bone] = req.TargetPosition
		if req.TargetPosition.Y() <= 0 {
			t.Fatalf("target should be lifted along the surface normal, got %v", req.TargetPosition)
		}
	}
	left, okLeft := targets[animation.BoneLeftFoot]
	right, okRight := targets[animation.BoneRightFoot]
	if !okLeft || !okRight {
		t.Fatalf("expected both feet placed, got %v", targets)
	}
	// Stride prediction keeps the feet laterally apart.
	if left.Z() >= right.Z() {
		t.Fatalf("expected lateral foot separation, got left z=%v right z=%v", left.Z(), right.Z())
	}
}

func TestFootPlacementExcludesOwnCollider(t *testing.T) {
	p, ground, _ := footTestPlayer(t, mgl32.Vec3{0.3, 1, 0})

	if len(ground.excluded) == 0 {
		t.Fatal("expected rays to be cast")
	}
	for _, exclude := range ground.excluded {
		found := false
		for _, id := range exclude {
			if id == p.EntityID() {
				found = true
			}
		}
		if !found {
			t.Fatal("placement rays must exclude the character's own collider")
		}
	}
}

func TestFootPlacementWaitsForInterval(t *testing.T) {
	ground := &groundSpace{normal: mgl32.Vec3{0.3, 1, 0}}
	p, _ := newTestPlayer(t, mockSpace{cast: ground.CastRay})
	rec := &submitRecorder{}
	p.SetTargetMatch(rec)

	feed(p, mgl32.Vec3{1.5, 0, 0}, "", true)
	p.Tick(p.Settings().FootPlacement.UpdateInterval / 4)
	if len(rec.requests) != 0 {
		t.Fatalf("placement fired before the update interval elapsed, got %d requests", len(rec.requests))
	}
}

func TestFootPlacementIdleGate(t *testing.T) {
	ground := &groundSpace{normal: mgl32.Vec3{0.3, 1, 0}}
	p, _ := newTestPlayer(t, mockSpace{cast: ground.CastRay})
	rec := &submitRecorder{}
	p.SetTargetMatch(rec)

	// A standing character never places feet, even on a slope.
	feed(p, mgl32.Vec3{0, 0, 0}, "", true)
	p.Tick(p.Settings().FootPlacement.UpdateInterval)
	if len(rec.requests) != 0 {
		t.Fatalf("standing character should not place feet, got %d requests", len(rec.requests))
	}
}
