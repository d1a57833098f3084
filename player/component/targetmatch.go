package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/assert"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/game"
	"github.com/stride-anim/stride/player"
)

// matchEntry is the per-bone matching state. The proxy entity and its
// constraint are created once and reused across requests; only the proxy's
// position changes, so repeated placement updates never churn the solver.
type matchEntry struct {
	phase       player.MatchPhase
	request     player.TargetMatchRequest
	fingerprint uint64

	elapsed  float32
	startPos mgl32.Vec3

	proxy       entity.ID
	pole        entity.ID
	effector    *entity.Bone
	constrained bool
}

// TargetMatchComponent runs one matching state machine per target bone,
// driving the IK sink's proxy entities toward the requested world positions
// over each request's match window.
type TargetMatchComponent struct {
	mPlayer *player.Player

	entries map[animation.TargetBone]*matchEntry
}

func NewTargetMatchComponent(p *player.Player) *TargetMatchComponent {
	return &TargetMatchComponent{
		mPlayer: p,
		entries: make(map[animation.TargetBone]*matchEntry),
	}
}

func (c *TargetMatchComponent) Phase(bone animation.TargetBone) player.MatchPhase {
	if e, ok := c.entries[bone]; ok {
		return e.phase
	}
	return player.MatchIdle
}

func (c *TargetMatchComponent) Proxy(bone animation.TargetBone) (entity.ID, bool) {
	if e, ok := c.entries[bone]; ok && e.proxy != 0 {
		return e.proxy, true
	}
	return 0, false
}

func (c *TargetMatchComponent) Submit(request player.TargetMatchRequest) {
	if err := request.Validate(); err != nil {
		c.mPlayer.Log().Warn("rejected target match request", "bone", request.Bone, "error", err)
		return
	}

	fp := request.Fingerprint()
	e, ok := c.entries[request.Bone]
	if ok && e.phase == player.MatchActive && e.fingerprint == fp {
		return
	}

	effector, ok := c.mPlayer.BoneMap().Bone(request.Bone)
	if !ok {
		c.mPlayer.Log().Debug("target match dropped, bone not resolved", "bone", request.Bone)
		return
	}

	if e == nil {
		e = &matchEntry{}
		c.entries[request.Bone] = e
	}
	e.request = request
	e.fingerprint = fp
	e.elapsed = 0
	e.startPos = effector.Position()
	e.effector = effector
	e.phase = player.MatchActive

	ik := c.mPlayer.IK()
	if e.proxy == 0 {
		e.proxy = ik.SpawnTarget(request.Bone.BoneName()+"Target", e.startPos)
		if request.Bone.Foot() {
			// A pole target in front of the knee keeps the leg from solving
			// into a backwards bend.
			polePos := e.startPos.Add(mgl32.Vec3{0, 0.5, 0}).
				Add(game.NormalizeOrZero(game.Horizontal(c.mPlayer.Movement().State().Facing)).Mul(0.5))
			e.pole = ik.SpawnTarget(request.Bone.BoneName()+"Pole", polePos)
		}
	} else {
		ik.MoveTarget(e.proxy, e.startPos)
	}
	if !e.constrained {
		ik.Constrain(effector, player.IKConstraint{
			ChainLength: len(request.Bone.Chain()),
			Iterations:  c.mPlayer.Settings().Matching.IKIterations,
			Target:      e.proxy,
			PoleTarget:  e.pole,
			Enabled:     true,
		})
		e.constrained = true
	} else {
		ik.SetEnabled(effector, true)
	}

	c.mPlayer.Handler().HandleTargetMatchStart(request.Bone, request.TargetPosition)
}

func (c *TargetMatchComponent) Tick(dt float32) {
	for _, bone := range animation.AllTargetBones() {
		e, ok := c.entries[bone]
		if !ok || e.phase != player.MatchActive {
			continue
		}
		e.elapsed += dt
		assert.IsTrue(e.proxy != 0, "active match for %s has no proxy", bone)

		delay, _ := e.request.TimeRange()
		if e.elapsed < delay {
			continue
		}

		duration := e.request.MatchDuration()
		t := game.Clamp01((e.elapsed - delay) / duration)
		eased := game.EasingInOut.Apply(t)
		c.mPlayer.IK().MoveTarget(e.proxy, game.LerpVec3(e.startPos, e.request.TargetPosition, eased))

		if t >= 1 {
			// The constraint and proxy stay where they are; the next request
			// for this bone reuses them.
			e.phase = player.MatchComplete
			c.mPlayer.Handler().HandleTargetMatchComplete(bone)
		}
	}
}
