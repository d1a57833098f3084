package player

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ethaniccc/float32-cube/cube"

	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/event"
	"github.com/stride-anim/stride/settings"
)

// defaultCollider is the collider volume used when the host does not provide
// one.
var defaultCollider = cube.Box(
	-0.3, 0, -0.3,
	0.3, 1.8, 0.3,
)

// Config wires a player to its host engine.
type Config struct {
	// EntityID is the character's entity handle; it is excluded from all of
	// the character's own raycasts. Zero allocates a fresh handle.
	EntityID entity.ID
	// Collider is the character's collision volume.
	Collider cube.BBox
	// Settings are the animation tunables. Zero value loads defaults.
	Settings *settings.Settings
	// Space answers raycast queries. Required for placement and obstacle
	// probes.
	Space SpatialQuery
	// Playback receives play/stop/weight commands. Required.
	Playback PlaybackSink
	// IK receives inverse-kinematics constraints and proxy targets.
	IK IKSink
	// Scene exposes the character's bone hierarchy.
	Scene SceneSource
	// Handler receives animation lifecycle events. Defaults to NopHandler.
	Handler event.Handler
}

// Player holds the per-character animation state: its components, the sinks
// it drives, and its tick clock. Characters do not share state; no
// cross-character locking exists.
type Player struct {
	log *slog.Logger

	id       entity.ID
	collider cube.BBox
	settings settings.Settings

	space    SpatialQuery
	playback PlaybackSink
	ik       IKSink
	scene    SceneSource

	hMutex sync.RWMutex
	h      event.Handler

	movement  MovementComponent
	animation AnimationComponent
	boneMap   BoneMapComponent
	feet      PlacementComponent
	hands     PlacementComponent
	obstacles ObstacleComponent
	matching  TargetMatchComponent

	elapsed float32
	tick    uint64

	closed atomic.Bool
}

// New creates a player from the given config. The caller registers components
// afterwards, normally via component.Register.
func New(log *slog.Logger, conf Config) (*Player, error) {
	s := settings.DefaultSettings()
	if conf.Settings != nil {
		s = *conf.Settings
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	id := conf.EntityID
	if id == 0 {
		id = entity.NextID()
	}
	collider := conf.Collider
	if collider == (cube.BBox{}) {
		collider = defaultCollider
	}
	h := conf.Handler
	if h == nil {
		h = event.NopHandler{}
	}

	return &Player{
		log:      log,
		id:       id,
		collider: collider,
		settings: s,
		space:    conf.Space,
		playback: conf.Playback,
		ik:       conf.IK,
		scene:    conf.Scene,
		h:        h,
	}, nil
}

// Log returns the player's logger.
func (p *Player) Log() *slog.Logger {
	return p.log
}

// EntityID returns the character's entity handle.
func (p *Player) EntityID() entity.ID {
	return p.id
}

// Collider returns the character's collision volume.
func (p *Player) Collider() cube.BBox {
	return p.collider
}

// Settings returns the player's animation tunables.
func (p *Player) Settings() settings.Settings {
	return p.settings
}

// Space returns the spatial query sink.
func (p *Player) Space() SpatialQuery {
	return p.space
}

// Playback returns the animation playback sink.
func (p *Player) Playback() PlaybackSink {
	return p.playback
}

// IK returns the inverse-kinematics sink.
func (p *Player) IK() IKSink {
	return p.ik
}

// Scene returns the character's scene source.
func (p *Player) Scene() SceneSource {
	return p.scene
}

// Handler returns the player's event handler.
func (p *Player) Handler() event.Handler {
	p.hMutex.RLock()
	defer p.hMutex.RUnlock()
	return p.h
}

// SetHandler replaces the player's event handler. Passing nil resets it to a
// NopHandler.
func (p *Player) SetHandler(h event.Handler) {
	if h == nil {
		h = event.NopHandler{}
	}
	p.hMutex.Lock()
	p.h = h
	p.hMutex.Unlock()
}

// Movement returns the movement component.
func (p *Player) Movement() MovementComponent {
	return p.movement
}

// SetMovement sets the movement component.
func (p *Player) SetMovement(c MovementComponent) {
	p.movement = c
}

// Animation returns the animation component.
func (p *Player) Animation() AnimationComponent {
	return p.animation
}

// SetAnimation sets the animation component.
func (p *Player) SetAnimation(c AnimationComponent) {
	p.animation = c
}

// BoneMap returns the bone map component.
func (p *Player) BoneMap() BoneMapComponent {
	return p.boneMap
}

// SetBoneMap sets the bone map component.
func (p *Player) SetBoneMap(c BoneMapComponent) {
	p.boneMap = c
}

// FootPlacement returns the foot placement component.
func (p *Player) FootPlacement() PlacementComponent {
	return p.feet
}

// SetFootPlacement sets the foot placement component.
func (p *Player) SetFootPlacement(c PlacementComponent) {
	p.feet = c
}

// HandPlacement returns the hand placement component.
func (p *Player) HandPlacement() PlacementComponent {
	return p.hands
}

// SetHandPlacement sets the hand placement component.
func (p *Player) SetHandPlacement(c PlacementComponent) {
	p.hands = c
}

// Obstacles returns the obstacle detection component.
func (p *Player) Obstacles() ObstacleComponent {
	return p.obstacles
}

// SetObstacles sets the obstacle detection component.
func (p *Player) SetObstacles(c ObstacleComponent) {
	p.obstacles = c
}

// TargetMatch returns the target matching component.
func (p *Player) TargetMatch() TargetMatchComponent {
	return p.matching
}

// SetTargetMatch sets the target matching component.
func (p *Player) SetTargetMatch(c TargetMatchComponent) {
	p.matching = c
}

// SetKinematicState feeds the character controller's per-tick snapshot into
// the movement component.
func (p *Player) SetKinematicState(state KinematicState) {
	if p.movement != nil {
		p.movement.Update(state)
	}
}

// Elapsed returns the simulation time in seconds accumulated by Tick.
func (p *Player) Elapsed() float32 {
	return p.elapsed
}

// CurrentTick returns the number of completed ticks.
func (p *Player) CurrentTick() uint64 {
	return p.tick
}

// Closed reports whether the player has been closed.
func (p *Player) Closed() bool {
	return p.closed.Load()
}

// Close marks the player as closed; subsequent ticks are no-ops.
func (p *Player) Close() {
	p.closed.Store(true)
}
