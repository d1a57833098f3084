package world

import (
	"log/slog"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sasha-s/go-deadlock"

	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/game"
)

// RayHit describes the nearest surface found by a ray cast.
type RayHit struct {
	// Entity is the collider that was hit.
	Entity entity.ID
	// Distance is the distance along the ray at which the surface was hit.
	Distance float32
	// Position is the world-space contact point.
	Position mgl32.Vec3
	// Normal is the surface normal at the contact point.
	Normal mgl32.Vec3
}

// World is a static registry of axis-aligned collider volumes that answers
// the spatial queries the animation systems need. It stands in for the host
// engine's physics broadphase in tests and example programs, and doubles as
// a reference implementation of the ray cast contract.
type World struct {
	colliders map[entity.ID]cube.BBox

	logger *slog.Logger

	deadlock.RWMutex
}

// New creates an empty collider world.
func New(logger *slog.Logger) *World {
	return &World{
		colliders: make(map[entity.ID]cube.BBox),
		logger:    logger,
	}
}

// AddCollider registers a collider volume for the given entity, replacing any
// previous volume.
func (w *World) AddCollider(id entity.ID, box cube.BBox) {
	w.Lock()
	w.colliders[id] = box
	w.Unlock()
	w.logger.Debug("collider registered", "entity", id)
}

// RemoveCollider removes the collider registered for the given entity.
func (w *World) RemoveCollider(id entity.ID) {
	w.Lock()
	delete(w.colliders, id)
	w.Unlock()
}

// Collider returns the collider volume registered for the given entity.
func (w *World) Collider(id entity.ID) (cube.BBox, bool) {
	w.RLock()
	box, ok := w.colliders[id]
	w.RUnlock()
	return box, ok
}

// CastRay casts a ray against every registered collider except the excluded
// entities and returns the nearest hit within maxDistance. The direction does
// not need to be normalized.
func (w *World) CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude ...entity.ID) (RayHit, bool) {
	dir := game.NormalizeOrZero(direction)
	if dir == (mgl32.Vec3{}) || maxDistance <= 0 {
		return RayHit{}, false
	}

	w.RLock()
	defer w.RUnlock()

	var (
		nearest RayHit
		found   bool
	)
outer:
	for id, box := range w.colliders {
		for _, ex := range exclude {
			if id == ex {
				continue outer
			}
		}

		dist, normal, ok := IntersectBBox(box, origin, dir)
		if !ok || dist > maxDistance {
			continue
		}
		if !found || dist < nearest.Distance {
			nearest = RayHit{
				Entity:   id,
				Distance: dist,
				Position: origin.Add(dir.Mul(dist)),
				Normal:   normal,
			}
			found = true
		}
	}
	return nearest, found
}
