package player

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/stride-anim/stride/game"
)

// DebugSnapshot captures the player's current animation state in insertion
// order for overlays and logs. Floats are rounded for display.
func (p *Player) DebugSnapshot() *orderedmap.OrderedMap[string, any] {
	snap := orderedmap.NewOrderedMap[string, any]()
	snap.Set("tick", p.tick)
	snap.Set("elapsed", game.Round32(p.elapsed, 2))

	if p.animation == nil {
		return snap
	}
	snap.Set("state", p.animation.State().String())

	bs := p.animation.BlendState()
	snap.Set("velocity", game.Round32(bs.Velocity, 3))
	snap.Set("contact", bs.Contact.String())
	snap.Set("foot_phase", game.Round32(bs.FootPhase, 3))
	snap.Set("stride_length", game.Round32(bs.StrideLength, 3))
	for el := bs.ActivePoses.Front(); el != nil; el = el.Next() {
		snap.Set(fmt.Sprintf("weight.%s", el.Key), game.Round32(el.Value, 3))
	}
	return snap
}
