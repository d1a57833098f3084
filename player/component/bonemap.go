package component

import (
	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/entity"
	"github.com/stride-anim/stride/player"
)

// BoneMapComponent resolves target bones against the scene hierarchy by name.
// The scene may still be streaming in when the character spawns, so the lookup
// is retried every tick until it finds bones.
type BoneMapComponent struct {
	mPlayer *player.Player

	bones map[animation.TargetBone]*entity.Bone
}

func NewBoneMapComponent(p *player.Player) *BoneMapComponent {
	return &BoneMapComponent{
		mPlayer: p,
		bones:   make(map[animation.TargetBone]*entity.Bone),
	}
}

func (c *BoneMapComponent) Tick() {
	if len(c.bones) > 0 {
		return
	}
	scene := c.mPlayer.Scene()
	if scene == nil {
		return
	}
	root := scene.Root()
	if root == nil {
		return
	}

	root.Walk(func(b *entity.Bone) bool {
		if target, ok := animation.ParseBoneName(b.Name()); ok {
			if _, seen := c.bones[target]; !seen {
				c.bones[target] = b
			}
		}
		return true
	})
	if len(c.bones) > 0 {
		c.mPlayer.Log().Debug("bone map resolved", "bones", len(c.bones))
	}
}

func (c *BoneMapComponent) Bone(bone animation.TargetBone) (*entity.Bone, bool) {
	b, ok := c.bones[bone]
	return b, ok
}

func (c *BoneMapComponent) Populated() bool {
	return len(c.bones) > 0
}
