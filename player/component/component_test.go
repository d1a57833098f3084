package component

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/player"
	"github.com/stride-anim/stride/world"
)

type mockSpace struct {
	cast func(origin, direction mgl32.Vec3, maxDistance float32, exclude ...entity.ID) (world.RayHit, bool)
}

func (m mockSpace) CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude ...entity.ID) (world.RayHit, bool) {
	if m.cast == nil {
		return world.RayHit{}, false
	}
	return m.cast(origin, direction, maxDistance, exclude...)
}

type mockPlayback struct {
	playing map[animation.PoseID]bool
	weights map[animation.PoseID]float32
	stopped []animation.PoseID
}

func newMockPlayback() *mockPlayback {
	return &mockPlayback{
		playing: make(map[animation.PoseID]bool),
		weights: make(map[animation.PoseID]float32),
	}
}

func (m *mockPlayback) Play(pose animation.PoseID, crossfade float32) {
	m.playing[pose] = true
}

func (m *mockPlayback) Stop(pose animation.PoseID) {
	delete(m.playing, pose)
	m.stopped = append(m.stopped, pose)
}

func (m *mockPlayback) SetWeight(pose animation.PoseID, weight float32) {
	m.weights[pose] = weight
}

func (m *mockPlayback) IsPlaying(pose animation.PoseID) bool {
	return m.playing[pose]
}

type mockIK struct {
	spawned     int
	targets     map[entity.ID]mgl32.Vec3
	constraints map[*entity.Bone]player.IKConstraint
}

func newMockIK() *mockIK {
	return &mockIK{
		targets:     make(map[entity.ID]mgl32.Vec3),
		constraints: make(map[*entity.Bone]player.IKConstraint),
	}
}

func (m *mockIK) SpawnTarget(name string, position mgl32.Vec3) entity.ID {
	m.spawned++
	id := entity.NextID()
	m.targets[id] = position
	return id
}

func (m *mockIK) MoveTarget(id entity.ID, position mgl32.Vec3) {
	m.targets[id] = position
}

func (m *mockIK) Constrain(effector *entity.Bone, constraint player.IKConstraint) {
	m.constraints[effector] = constraint
}

func (m *mockIK) SetEnabled(effector *entity.Bone, enabled bool) {
	if c, ok := m.constraints[effector]; ok {
		c.Enabled = enabled
		m.constraints[effector] = c
	}
}

type mockScene struct {
	root *entity.Bone
}

func (m mockScene) Root() *entity.Bone {
	return m.root
}

func testSkeleton() *entity.Bone {
	hips := entity.NewBone("rig:Hips", mgl32.Vec3{0, 1.0, 0})

	neck := hips.AddChild(entity.NewBone("rig:Neck", mgl32.Vec3{0, 1.5, 0}))
	neck.AddChild(entity.NewBone("rig:Head", mgl32.Vec3{0, 1.7, 0}))

	leftLeg := hips.AddChild(entity.NewBone("rig:LeftUpLeg", mgl32.Vec3{0.15, 0.9, 0})).
		AddChild(entity.NewBone("rig:LeftLeg", mgl32.Vec3{0.15, 0.5, 0}))
	leftLeg.AddChild(entity.NewBone("rig:LeftFoot", mgl32.Vec3{0.15, 0.05, 0}))

	rightLeg := hips.AddChild(entity.NewBone("rig:RightUpLeg", mgl32.Vec3{-0.15, 0.9, 0})).
		AddChild(entity.NewBone("rig:RightLeg", mgl32.Vec3{-0.15, 0.5, 0}))
	rightLeg.AddChild(entity.NewBone("rig:RightFoot", mgl32.Vec3{-0.15, 0.05, 0}))

	leftArm := hips.AddChild(entity.NewBone("rig:LeftArm", mgl32.Vec3{0.3, 1.4, 0})).
		AddChild(entity.NewBone("rig:LeftForeArm", mgl32.Vec3{0.45, 1.2, 0}))
	leftArm.AddChild(entity.NewBone("rig:LeftHand", mgl32.Vec3{0.55, 1.0, 0}))

	rightArm := hips.AddChild(entity.NewBone("rig:RightArm", mgl32.Vec3{-0.3, 1.4, 0})).
		AddChild(entity.NewBone("rig:RightForeArm", mgl32.Vec3{-0.45, 1.2, 0}))
	rightArm.AddChild(entity.NewBone("rig:RightHand", mgl32.Vec3{-0.55, 1.0, 0}))

	return hips
}

type testSinks struct {
	space    mockSpace
	playback *mockPlayback
	ik       *mockIK
}

// newTestPlayer builds a fully registered player against mock sinks and
// resolves its bone map.
func newTestPlayer(t *testing.T, space mockSpace) (*player.Player, *testSinks) {
	t.Helper()

	sinks := &testSinks{
		space:    space,
		playback: newMockPlayback(),
		ik:       newMockIK(),
	}
	p, err := player.New(slog.Default(), player.Config{
		Space:    sinks.space,
		Playback: sinks.playback,
		IK:       sinks.ik,
		Scene:    mockScene{root: testSkeleton()},
	})
	if err != nil {
		t.Fatalf("failed to create player: %v", err)
	}
	Register(p)
	p.BoneMap().Tick()
	if !p.BoneMap().Populated() {
		t.Fatal("bone map should resolve against the test skeleton")
	}
	return p, sinks
}

func feed(p *player.Player, velocity mgl32.Vec3, action string, onGround bool) {
	p.SetKinematicState(player.KinematicState{
		Position: mgl32.Vec3{0, 0, 0},
		Facing:   mgl32.Vec3{1, 0, 0},
		Velocity: velocity,
		Action:   action,
		OnGround: onGround,
		Ready:    true,
	})
}
