package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride"
	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/player"
	"github.com/stride-anim/stride/settings"
	"github.com/stride-anim/stride/world"
)

// The following program runs a scripted character through a small parkour
// course and prints its animation state, without a host engine attached.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			logger.Warn("sentry init failed", "error", err)
		}
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	conf, err := settings.Read("stride.toml")
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		return
	}

	library := animation.NewLibrary()
	for _, id := range animation.AllPoses() {
		library.Add(id, animation.NewPose(id.FileName()))
	}

	w := world.New(logger)
	// Ground slab, a waist-high box to vault and a wall with a reachable top.
	w.AddCollider(entity.NextID(), box(-50, -1, -50, 50, 0, 50))
	w.AddCollider(entity.NextID(), box(4, 0, -2, 5, 1.2, 2))
	w.AddCollider(entity.NextID(), box(10, 0, -3, 10.5, 2.2, 3))

	system := stride.New(logger, library)
	p, err := system.Spawn(player.Config{
		Settings: &conf,
		Space:    w,
		Playback: newPlayback(logger),
		IK:       newIKSolver(logger),
		Scene:    scene{root: buildSkeleton()},
	})
	if err != nil {
		logger.Error("failed to spawn player", "error", err)
		return
	}

	const dt = float32(1.0 / 50.0)
	pos := mgl32.Vec3{0, 0, 0}
	for tick := 0; tick < 500; tick++ {
		t := float32(tick) * dt

		// Accelerate from standstill to a run, hop at the 4 second mark.
		speed := math32.Min(t*1.5, 6.0)
		action := ""
		onGround := true
		if t > 4.0 && t < 4.4 {
			action = conf.JumpAction
			onGround = false
		}

		vel := mgl32.Vec3{speed, 0, 0}
		pos = pos.Add(vel.Mul(dt))
		p.SetKinematicState(player.KinematicState{
			Position: pos,
			Facing:   mgl32.Vec3{1, 0, 0},
			Velocity: vel,
			Action:   action,
			OnGround: onGround,
			Ready:    true,
		})
		system.Tick(dt)

		if tick%50 == 0 {
			snap := p.DebugSnapshot()
			for el := snap.Front(); el != nil; el = el.Next() {
				fmt.Printf("%s=%v ", el.Key, el.Value)
			}
			fmt.Println()
		}
	}
	system.Close()
}

func box(x0, y0, z0, x1, y1, z1 float32) cube.BBox {
	return cube.Box(x0, y0, z0, x1, y1, z1)
}

// buildSkeleton assembles a minimal humanoid rig with prefixed bone names, the
// way engine-exported skeletons usually arrive.
func buildSkeleton() *entity.Bone {
	hips := entity.NewBone("rig:Hips", mgl32.Vec3{0, 1.0, 0})

	neck := hips.AddChild(entity.NewBone("rig:Neck", mgl32.Vec3{0, 1.5, 0}))
	neck.AddChild(entity.NewBone("rig:Head", mgl32.Vec3{0, 1.7, 0}))

	leftUpLeg := hips.AddChild(entity.NewBone("rig:LeftUpLeg", mgl32.Vec3{0.15, 0.9, 0}))
	leftLeg := leftUpLeg.AddChild(entity.NewBone("rig:LeftLeg", mgl32.Vec3{0.15, 0.5, 0}))
	leftLeg.AddChild(entity.NewBone("rig:LeftFoot", mgl32.Vec3{0.15, 0.05, 0}))

	rightUpLeg := hips.AddChild(entity.NewBone("rig:RightUpLeg", mgl32.Vec3{-0.15, 0.9, 0}))
	rightLeg := rightUpLeg.AddChild(entity.NewBone("rig:RightLeg", mgl32.Vec3{-0.15, 0.5, 0}))
	rightLeg.AddChild(entity.NewBone("rig:RightFoot", mgl32.Vec3{-0.15, 0.05, 0}))

	leftArm := hips.AddChild(entity.NewBone("rig:LeftArm", mgl32.Vec3{0.3, 1.4, 0}))
	leftForeArm := leftArm.AddChild(entity.NewBone("rig:LeftForeArm", mgl32.Vec3{0.45, 1.2, 0}))
	leftForeArm.AddChild(entity.NewBone("rig:LeftHand", mgl32.Vec3{0.55, 1.0, 0}))

	rightArm := hips.AddChild(entity.NewBone("rig:RightArm", mgl32.Vec3{-0.3, 1.4, 0}))
	rightForeArm := rightArm.AddChild(entity.NewBone("rig:RightForeArm", mgl32.Vec3{-0.45, 1.2, 0}))
	rightForeArm.AddChild(entity.NewBone("rig:RightHand", mgl32.Vec3{-0.55, 1.0, 0}))

	return hips
}

type scene struct {
	root *entity.Bone
}

func (s scene) Root() *entity.Bone {
	return s.root
}

// playback logs clip commands instead of sampling real animation data.
type playback struct {
	log     *slog.Logger
	playing map[animation.PoseID]bool
}

func newPlayback(log *slog.Logger) *playback {
	return &playback{log: log, playing: make(map[animation.PoseID]bool)}
}

func (pb *playback) Play(pose animation.PoseID, crossfade float32) {
	pb.playing[pose] = true
	pb.log.Debug("play", "pose", pose, "crossfade", crossfade)
}

func (pb *playback) Stop(pose animation.PoseID) {
	delete(pb.playing, pose)
	pb.log.Debug("stop", "pose", pose)
}

func (pb *playback) SetWeight(pose animation.PoseID, weight float32) {}

func (pb *playback) IsPlaying(pose animation.PoseID) bool {
	return pb.playing[pose]
}

// ikSolver snaps effectors straight to their proxy targets; a real host would
// run a proper chain solver here.
type ikSolver struct {
	log     *slog.Logger
	nextID  entity.ID
	targets map[entity.ID]mgl32.Vec3

	constraints map[*entity.Bone]player.IKConstraint
}

func newIKSolver(log *slog.Logger) *ikSolver {
	return &ikSolver{
		log:         log,
		targets:     make(map[entity.ID]mgl32.Vec3),
		constraints: make(map[*entity.Bone]player.IKConstraint),
	}
}

func (ik *ikSolver) SpawnTarget(name string, position mgl32.Vec3) entity.ID {
	id := entity.NextID()
	ik.targets[id] = position
	ik.log.Debug("spawned ik target", "name", name, "id", id)
	return id
}

func (ik *ikSolver) MoveTarget(id entity.ID, position mgl32.Vec3) {
	ik.targets[id] = position
	for effector, c := range ik.constraints {
		if c.Enabled && c.Target == id {
			effector.SetPosition(position)
		}
	}
}

func (ik *ikSolver) Constrain(effector *entity.Bone, constraint player.IKConstraint) {
	ik.constraints[effector] = constraint
}

func (ik *ikSolver) SetEnabled(effector *entity.Bone, enabled bool) {
	if c, ok := ik.constraints[effector]; ok {
		c.Enabled = enabled
		ik.constraints[effector] = c
	}
}
