package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// IntersectBBox intersects a ray with a bounding box using the slab method.
// The direction must be normalized. On hit it returns the distance along the
// ray and the outward surface normal of the face that was entered. A ray
// starting inside the box hits at distance zero with a normal opposing the
// ray.
func IntersectBBox(box cube.BBox, origin, dir mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	var (
		tMin      = float32(math32.Inf(-1))
		tMax      = float32(math32.Inf(1))
		entryAxis = -1
		entrySign = float32(0)
	)

	min, max := box.Min(), box.Max()
	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		lo, hi := min[axis], max[axis]

		if math32.Abs(d) < 1e-9 {
			// Ray is parallel to this slab; no hit unless the origin lies
			// within it.
			if o < lo || o > hi {
				return 0, mgl32.Vec3{}, false
			}
			continue
		}

		t0 := (lo - o) / d
		t1 := (hi - o) / d
		sign := float32(-1)
		if d < 0 {
			t0, t1 = t1, t0
			sign = 1
		}
		if t0 > tMin {
			tMin = t0
			entryAxis = axis
			entrySign = sign
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, mgl32.Vec3{}, false
		}
	}

	if tMax < 0 {
		return 0, mgl32.Vec3{}, false
	}
	if tMin < 0 {
		// Origin inside the box.
		return 0, dir.Mul(-1), true
	}

	var normal mgl32.Vec3
	if entryAxis >= 0 {
		normal[entryAxis] = entrySign
	}
	return tMin, normal, true
}
