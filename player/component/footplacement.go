package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/game"
	"github.com/stride-anim/stride/player"
)

var down = mgl32.Vec3{0, -1, 0}

// FootPlacementComponent probes the ground beneath each foot's predicted
// plant position and submits target match requests that pin the feet to
// uneven terrain. On flat ground the keyframe animation already lands the
// feet correctly, so placement stays inactive below the configured slope
// angle.
type FootPlacementComponent struct {
	mPlayer *player.Player

	stride game.StrideCalculator
	timer  float32
}

func NewFootPlacementComponent(p *player.Player) *FootPlacementComponent {
	conf := p.Settings()
	return &FootPlacementComponent{
		mPlayer: p,
		stride: game.StrideCalculator{
			BaseWalkStride: conf.Stride.BaseWalk,
			BaseRunStride:  conf.Stride.BaseRun,
			VelocityScale:  conf.Stride.VelocityScale,
		},
	}
}

func (c *FootPlacementComponent) Tick(dt float32) {
	conf := c.mPlayer.Settings().FootPlacement
	if !conf.Enabled {
		return
	}
	c.timer += dt
	if c.timer < conf.UpdateInterval {
		return
	}
	c.timer -= conf.UpdateInterval

	ks := c.mPlayer.Movement().State()
	if !ks.OnGround || !c.mPlayer.Animation().State().Moving() {
		return
	}
	space := c.mPlayer.Space()
	if space == nil {
		return
	}

	// Slope gate: one ray under the character origin decides whether the
	// terrain warrants per-foot correction at all.
	if conf.MinSlopeAngle > 0 {
		hit, ok := space.CastRay(ks.Position, down, conf.RayDistance, c.mPlayer.EntityID())
		if !ok || game.SlopeAngle(hit.Normal) < conf.MinSlopeAngle {
			return
		}
	}

	for _, bone := range []animation.TargetBone{animation.BoneLeftFoot, animation.BoneRightFoot} {
		c.placeFoot(bone, conf.RayDistance, conf.Offset, conf.UpdateInterval)
	}
}

func (c *FootPlacementComponent) placeFoot(bone animation.TargetBone, rayDistance, offset, duration float32) {
	if _, ok := c.mPlayer.BoneMap().Bone(bone); !ok {
		return
	}

	// Probe where the stride is about to plant the foot rather than where
	// the foot currently is, so the correction leads the motion.
	ks := c.mPlayer.Movement().State()
	bs := c.mPlayer.Animation().BlendState()
	predicted := c.stride.FootTarget(ks.Position, ks.Velocity, bs.StrideLength, bs.FootPhase, bone == animation.BoneLeftFoot)

	origin := predicted.Add(mgl32.Vec3{0, 0.5, 0})
	hit, ok := c.mPlayer.Space().CastRay(origin, down, rayDistance, c.mPlayer.EntityID())
	if !ok {
		return
	}

	target := hit.Position.Add(hit.Normal.Mul(offset))
	matching := c.mPlayer.Settings().Matching
	c.mPlayer.TargetMatch().Submit(
		player.NewTargetMatchRequest(bone, target, duration).
			WithWindow(matching.WindowStart, matching.WindowEnd),
	)
	c.mPlayer.Handler().HandlePlacement(bone, target)
}
