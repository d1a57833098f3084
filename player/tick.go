package player

// Tick advances the player's animation simulation by dt seconds. Components
// run in a fixed order: the bone map before anything that resolves bones, the
// animation state before the probes that read it, and target matching last so
// that requests submitted this tick begin interpolating immediately.
func (p *Player) Tick(dt float32) {
	if p.closed.Load() || dt <= 0 {
		return
	}
	if p.movement == nil || !p.movement.Ready() {
		if p.log != nil {
			p.log.Debug("tick skipped: no kinematic state yet")
		}
		return
	}

	p.tick++
	p.elapsed += dt

	if p.boneMap != nil {
		p.boneMap.Tick()
	}
	if p.animation != nil {
		p.animation.Tick(dt)
	}
	if p.obstacles != nil {
		p.obstacles.Tick()
	}
	if p.feet != nil {
		p.feet.Tick(dt)
	}
	if p.hands != nil {
		p.hands.Tick(dt)
	}
	if p.matching != nil {
		p.matching.Tick(dt)
	}
}
