package component

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chewxy/math32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/game"
	"github.com/stride-anim/stride/player"
)

// AnimationComponent classifies the character's motion into a discrete state
// and maintains the pose blend for it. It owns the character's blend state and
// is the only writer of it.
type AnimationComponent struct {
	mPlayer *player.Player

	state      animation.State
	blendState *player.PoseBlendState
	stride     game.StrideCalculator

	// jumpPose is the jump variant chosen when the jump started. A standing
	// jump plays the takeoff pose, a moving jump goes straight to airborne.
	jumpPose animation.PoseID

	// warnedActions holds action tags already warned about, so an unknown tag
	// logs once rather than every tick.
	warnedActions map[string]struct{}
}

func NewAnimationComponent(p *player.Player) *AnimationComponent {
	conf := p.Settings()
	return &AnimationComponent{
		mPlayer:    p,
		state:      animation.Idle(),
		blendState: player.NewPoseBlendState(),
		stride: game.StrideCalculator{
			BaseWalkStride: conf.Stride.BaseWalk,
			BaseRunStride:  conf.Stride.BaseRun,
			VelocityScale:  conf.Stride.VelocityScale,
		},
		jumpPose:      animation.PoseJumpTakeoff,
		warnedActions: make(map[string]struct{}),
	}
}

func (c *AnimationComponent) State() animation.State {
	return c.state
}

func (c *AnimationComponent) BlendState() *player.PoseBlendState {
	return c.blendState
}

func (c *AnimationComponent) Tick(dt float32) {
	ks := c.mPlayer.Movement().State()
	last := c.mPlayer.Movement().LastState()
	speed := game.HorizontalSpeed(ks.Velocity)

	bs := c.blendState
	switch {
	case !ks.OnGround:
		bs.Contact = player.ContactAirborne
	case last.Ready && !last.OnGround:
		// Landing requires a genuinely airborne previous frame; the zero
		// snapshot before the first update does not count.
		bs.Contact = player.ContactLanding
	default:
		bs.Contact = player.ContactGrounded
	}

	next := c.classify(ks, speed)
	if !next.SameKind(c.state) {
		c.transition(c.state, next)
	}
	c.state = next

	bs.Velocity = speed
	bs.StrideLength = c.stride.StrideLength(speed, mgl32.Vec3{0, 1, 0})

	c.advancePhase(speed, dt)
	c.apply(speed)
}

// classify maps the kinematic snapshot to a discrete state. Action tags take
// priority over speed; an unrecognized tag falls back to idle.
func (c *AnimationComponent) classify(ks player.KinematicState, speed float32) animation.State {
	conf := c.mPlayer.Settings()
	if ks.Action != "" {
		if ks.Action == conf.JumpAction {
			return animation.Jumping()
		}
		if _, ok := c.warnedActions[ks.Action]; !ok {
			c.warnedActions[ks.Action] = struct{}{}
			c.mPlayer.Log().Warn("unknown action tag, treating as idle", "action", ks.Action)
		}
		return animation.Idle()
	}

	switch {
	case speed < conf.Thresholds.Idle:
		return animation.Idle()
	case speed <= conf.Thresholds.Walk:
		return animation.Walking()
	default:
		return animation.Running(speed)
	}
}

// transition runs once per discriminant change. It picks the jump variant on
// jump entry and notifies the handler.
func (c *AnimationComponent) transition(old, next animation.State) {
	if next.Kind == animation.StateJumping {
		unchosen := animation.PoseJumpTakeoff
		c.jumpPose = animation.PoseJumpTakeoff
		if old.Moving() {
			c.jumpPose = animation.PoseJumpAirborne
		} else {
			unchosen = animation.PoseJumpAirborne
		}
		c.mPlayer.Playback().Stop(unchosen)
	}
	c.mPlayer.Handler().HandleStateChange(old, next)
}

// advancePhase accumulates the cyclic foot phase. The cycle frequency scales
// linearly with speed, on separate ramps for the walk and run ranges.
func (c *AnimationComponent) advancePhase(speed float32, dt float32) {
	if !c.state.Moving() {
		return
	}
	conf := c.mPlayer.Settings()

	var freq float32
	if speed <= conf.Thresholds.Walk {
		freq = conf.Cycle.WalkBase + conf.Cycle.WalkSlope*(speed-conf.Thresholds.Idle)
	} else {
		freq = conf.Cycle.RunBase + conf.Cycle.RunSlope*(speed-conf.Thresholds.Walk)
	}
	c.blendState.FootPhase = math32.Mod(c.blendState.FootPhase+freq*dt, 1.0)
}

// apply recomputes the active pose weights and pushes them to the playback
// sink. Poses that drop out of the active set are stopped; poses that enter it
// are started with the configured crossfade.
func (c *AnimationComponent) apply(speed float32) {
	conf := c.mPlayer.Settings()
	bs := c.blendState

	desired := orderedmap.NewOrderedMap[animation.PoseID, float32]()
	switch {
	case bs.Contact == player.ContactLanding:
		desired.Set(animation.PoseJumpLanding, 1.0)
	case c.state.Kind == animation.StateJumping:
		desired.Set(c.jumpPose, 1.0)
	case c.state.Moving():
		movementBlend := game.Ramp(speed, conf.Thresholds.Idle, conf.Thresholds.Walk)
		walkRun := game.Ramp(speed, conf.Thresholds.Walk, conf.Thresholds.Run)

		// The stride cycle is two half-cycles: the leading foot's pose fades
		// out linearly over the first half and back in over the second.
		p := bs.FootPhase
		var left, right float32
		if p < 0.5 {
			left, right = 1-2*p, 2*p
		} else {
			q := p - 0.5
			left, right = 2*q, 1-2*q
		}

		walkShare := movementBlend * (1 - walkRun)
		runShare := movementBlend * walkRun

		desired.Set(animation.PoseIdle, 1-movementBlend)
		desired.Set(animation.PoseWalkLeftFootForward, walkShare*left)
		desired.Set(animation.PoseWalkRightFootForward, walkShare*right)
		desired.Set(animation.PoseRunLeftFootForward, runShare*left)
		desired.Set(animation.PoseRunRightFootForward, runShare*right)
	default:
		desired.Set(animation.PoseIdle, 1.0)
	}

	// Renormalize over the poses that survive the activation cutoff so the
	// applied weights always sum to one.
	var sum float32
	for el := desired.Front(); el != nil; el = el.Next() {
		if el.Value >= game.WeightEpsilon {
			sum += el.Value
		}
	}
	if sum <= 0 {
		sum = 1
	}

	playback := c.mPlayer.Playback()
	active := orderedmap.NewOrderedMap[animation.PoseID, float32]()
	for el := desired.Front(); el != nil; el = el.Next() {
		if el.Value < game.WeightEpsilon {
			continue
		}
		weight := el.Value / sum
		if !playback.IsPlaying(el.Key) {
			playback.Play(el.Key, conf.Matching.Crossfade)
		}
		playback.SetWeight(el.Key, weight)
		active.Set(el.Key, weight)
	}
	for el := bs.ActivePoses.Front(); el != nil; el = el.Next() {
		if _, ok := active.Get(el.Key); !ok {
			playback.Stop(el.Key)
		}
	}
	bs.ActivePoses = active
}
