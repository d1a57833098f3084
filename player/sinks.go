package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/world"
)

// SpatialQuery is the raycast capability the placement systems consume. The
// host's physics engine provides it; world.World is a reference
// implementation.
type SpatialQuery interface {
	// CastRay casts a ray and returns the nearest hit within maxDistance,
	// ignoring the excluded entities.
	CastRay(origin, direction mgl32.Vec3, maxDistance float32, exclude ...entity.ID) (world.RayHit, bool)
}

// PlaybackSink receives the playback commands computed by the blending
// system. The host's animation player implements it.
type PlaybackSink interface {
	// Play starts a pose's clip, crossfading over the given duration. Playing
	// an already playing pose is a no-op.
	Play(pose animation.PoseID, crossfade float32)
	// Stop force-stops a pose's clip.
	Stop(pose animation.PoseID)
	// SetWeight sets the blend weight of a pose's clip.
	SetWeight(pose animation.PoseID, weight float32)
	// IsPlaying reports whether the pose's clip is currently playing.
	IsPlaying(pose animation.PoseID) bool
}

// IKConstraint configures an inverse-kinematics constraint on a bone chain.
type IKConstraint struct {
	// ChainLength is the number of bones from the effector toward the root
	// that the solver may move.
	ChainLength int
	// Iterations is the solver iteration budget.
	Iterations int
	// Target is the proxy entity the effector is pulled toward.
	Target entity.ID
	// PoleTarget orients the middle of the chain (e.g. knee direction). Zero
	// means no pole target.
	PoleTarget entity.ID
	// Enabled toggles the constraint without destroying it.
	Enabled bool
}

// IKSink is the inverse-kinematics solver the matching system drives. The
// host's IK plugin implements it.
type IKSink interface {
	// SpawnTarget creates a proxy entity at the given world position and
	// returns its handle.
	SpawnTarget(name string, position mgl32.Vec3) entity.ID
	// MoveTarget repositions a previously spawned proxy entity.
	MoveTarget(id entity.ID, position mgl32.Vec3)
	// Constrain attaches a constraint to the given effector bone, replacing
	// any previous constraint on it.
	Constrain(effector *entity.Bone, constraint IKConstraint)
	// SetEnabled toggles the constraint attached to the effector bone.
	SetEnabled(effector *entity.Bone, enabled bool)
}

// SceneSource exposes the character's skeletal hierarchy. The bone map is
// built by name lookup over it; while the scene is still streaming in, Root
// may return nil and the lookup is retried.
type SceneSource interface {
	Root() *entity.Bone
}
