package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/game"
	"github.com/stride-anim/stride/player"
)

// HandPlacementComponent probes walls ahead of each hand and submits target
// match requests that plant the palms on climbable surfaces during parkour
// actions.
type HandPlacementComponent struct {
	mPlayer *player.Player

	timer float32
}

func NewHandPlacementComponent(p *player.Player) *HandPlacementComponent {
	return &HandPlacementComponent{mPlayer: p}
}

func (c *HandPlacementComponent) Tick(dt float32) {
	conf := c.mPlayer.Settings().HandPlacement
	if !conf.Enabled {
		return
	}
	c.timer += dt
	if c.timer < conf.UpdateInterval {
		return
	}
	c.timer -= conf.UpdateInterval

	space := c.mPlayer.Space()
	if space == nil {
		return
	}
	forward := game.NormalizeOrZero(game.Horizontal(c.mPlayer.Movement().State().Facing))
	if forward == (mgl32.Vec3{}) {
		return
	}

	for _, bone := range []animation.TargetBone{animation.BoneLeftHand, animation.BoneRightHand} {
		b, ok := c.mPlayer.BoneMap().Bone(bone)
		if !ok {
			continue
		}
		hit, ok := space.CastRay(b.Position(), forward, conf.RayDistance, c.mPlayer.EntityID())
		if !ok {
			continue
		}

		target := hit.Position.Add(hit.Normal.Mul(conf.Offset))
		matching := c.mPlayer.Settings().Matching
		c.mPlayer.TargetMatch().Submit(
			player.NewTargetMatchRequest(bone, target, conf.MatchDuration).
				WithWindow(matching.WindowStart, matching.WindowEnd),
		)
		c.mPlayer.Handler().HandlePlacement(bone, target)
	}
}
