package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/game"
	"github.com/stride-anim/stride/player"
	"github.com/stride-anim/stride/world"
)

// ObstacleComponent probes the geometry ahead of the character with three
// forward rays at knee, waist and head height, and classifies what they hit
// into parkour opportunities.
type ObstacleComponent struct {
	mPlayer *player.Player

	obstacle world.Obstacle
}

func NewObstacleComponent(p *player.Player) *ObstacleComponent {
	return &ObstacleComponent{mPlayer: p}
}

func (c *ObstacleComponent) Obstacle() world.Obstacle {
	return c.obstacle
}

func (c *ObstacleComponent) Tick() {
	conf := c.mPlayer.Settings().Obstacle
	if !conf.Enabled {
		return
	}
	space := c.mPlayer.Space()
	if space == nil {
		return
	}
	ks := c.mPlayer.Movement().State()
	forward := game.NormalizeOrZero(game.Horizontal(ks.Facing))
	if forward == (mgl32.Vec3{}) {
		c.update(world.Obstacle{})
		return
	}

	probe := func(height float32) (world.RayHit, bool) {
		origin := ks.Position.Add(mgl32.Vec3{0, height, 0})
		return space.CastRay(origin, forward, conf.Range, c.mPlayer.EntityID())
	}
	lower, lowerHit := probe(conf.LowerHeight)
	center, centerHit := probe(conf.CenterHeight)
	_, upperHit := probe(conf.UpperHeight)

	var next world.Obstacle
	switch {
	case !lowerHit && !centerHit:
		// Nothing below head height; a floating overhang alone is not a
		// parkour obstacle.
	case !centerHit:
		next = world.Obstacle{Kind: world.ObstacleLow, Distance: lower.Distance, HitPoint: lower.Position}
	case !upperHit:
		next = world.Obstacle{Kind: world.ObstacleVault, Distance: center.Distance, HitPoint: center.Position}
		if ledge, ok := c.ledgePoint(ks.Position, forward, center.Distance); ok {
			next.LedgePoint = ledge
		}
	default:
		next = world.Obstacle{Kind: world.ObstacleTallWall, Distance: center.Distance, HitPoint: center.Position}
		if ledge, ok := c.ledgePoint(ks.Position, forward, center.Distance); ok {
			next.Kind = world.ObstacleLedge
			next.LedgePoint = ledge
		}
	}
	c.update(next)
}

// ledgePoint drops a ray from above the wall face to find its top surface.
// A top edge within arm's reach above the head turns a wall into a ledge.
func (c *ObstacleComponent) ledgePoint(origin, forward mgl32.Vec3, distance float32) (mgl32.Vec3, bool) {
	conf := c.mPlayer.Settings().Obstacle
	reach := conf.UpperHeight + 0.7

	start := origin.
		Add(forward.Mul(distance + 0.2)).
		Add(mgl32.Vec3{0, reach, 0})
	hit, ok := c.mPlayer.Space().CastRay(start, down, reach, c.mPlayer.EntityID())
	if !ok || hit.Distance <= 0.05 {
		// A zero-distance hit means the probe started inside the wall: the
		// top is out of reach.
		return mgl32.Vec3{}, false
	}
	return hit.Position, true
}

func (c *ObstacleComponent) update(next world.Obstacle) {
	if next.Kind != c.obstacle.Kind {
		c.mPlayer.Handler().HandleObstacle(next)
	}
	c.obstacle = next
}

func (c *ObstacleComponent) fastEnough() bool {
	return c.mPlayer.Animation().BlendState().Velocity >= c.mPlayer.Settings().Obstacle.AutoActionSpeed
}

func (c *ObstacleComponent) CanVault() bool {
	return c.obstacle.Kind == world.ObstacleVault && c.fastEnough()
}

func (c *ObstacleComponent) CanClimb() bool {
	return c.obstacle.Kind == world.ObstacleLedge
}

func (c *ObstacleComponent) CanSlide() bool {
	return c.obstacle.Kind == world.ObstacleLow && c.fastEnough()
}
