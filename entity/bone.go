package entity

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Bone is a node in a character's skeletal hierarchy. Bones are created by
// the host's scene loader and indexed by name; the library only reads their
// world transforms and, for IK proxies, writes target positions.
type Bone struct {
	// mu protects the world transform, which may be written by the host's
	// animation sampling while the library reads it.
	mu sync.Mutex
	// id is the entity handle of the bone.
	id ID
	// name is the bone's name as it appears in the scene hierarchy, prefix
	// included (e.g. "mixamorig12:LeftFoot").
	name string
	// children are the bones directly parented to this one.
	children []*Bone
	// position is the bone's world-space position.
	position mgl32.Vec3
	// rotation is the bone's world-space rotation.
	rotation mgl32.Quat
}

// NewBone creates a bone with the given name at the given world position.
func NewBone(name string, position mgl32.Vec3) *Bone {
	return &Bone{
		id:       NextID(),
		name:     name,
		position: position,
		rotation: mgl32.QuatIdent(),
	}
}

// ID returns the entity handle of the bone.
func (b *Bone) ID() ID {
	return b.id
}

// Name returns the bone's scene name.
func (b *Bone) Name() string {
	return b.name
}

// AddChild parents the given bone to this one and returns the child for
// chaining.
func (b *Bone) AddChild(child *Bone) *Bone {
	b.mu.Lock()
	b.children = append(b.children, child)
	b.mu.Unlock()
	return child
}

// Children returns a copy of the bone's direct children.
func (b *Bone) Children() []*Bone {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Bone, len(b.children))
	copy(out, b.children)
	return out
}

// Position returns the bone's world-space position.
func (b *Bone) Position() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

// SetPosition sets the bone's world-space position.
func (b *Bone) SetPosition(pos mgl32.Vec3) {
	b.mu.Lock()
	b.position = pos
	b.mu.Unlock()
}

// Rotation returns the bone's world-space rotation.
func (b *Bone) Rotation() mgl32.Quat {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rotation
}

// SetRotation sets the bone's world-space rotation.
func (b *Bone) SetRotation(rot mgl32.Quat) {
	b.mu.Lock()
	b.rotation = rot
	b.mu.Unlock()
}

// Walk visits the bone and all its descendants depth-first, stopping early
// when the visitor returns false.
func (b *Bone) Walk(visit func(*Bone) bool) {
	stack := []*Bone{b}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		stack = append(stack, cur.Children()...)
	}
}
