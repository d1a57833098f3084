package component

import "github.com/stride-anim/stride/player"

// Register registers the components for the given player.
func Register(p *player.Player) {
	p.SetMovement(NewMovementComponent())
	p.SetAnimation(NewAnimationComponent(p))
	p.SetBoneMap(NewBoneMapComponent(p))
	p.SetFootPlacement(NewFootPlacementComponent(p))
	p.SetHandPlacement(NewHandPlacementComponent(p))
	p.SetObstacles(NewObstacleComponent(p))
	p.SetTargetMatch(NewTargetMatchComponent(p))
}
