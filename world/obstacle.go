package world

import "github.com/go-gl/mathgl/mgl32"

// ObstacleKind classifies geometry detected in front of a character.
type ObstacleKind uint8

const (
	// ObstacleNone means the probes hit nothing in range.
	ObstacleNone ObstacleKind = iota
	// ObstacleLow is a knee-high obstacle that can be stepped over or slid
	// under.
	ObstacleLow
	// ObstacleVault is a waist-to-chest-high obstacle that can be vaulted.
	ObstacleVault
	// ObstacleTallWall is a wall taller than the character, suitable for
	// climbing or wall running.
	ObstacleTallWall
	// ObstacleLedge is a wall with a reachable top edge the character can
	// hang from or pull up onto.
	ObstacleLedge
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleLow:
		return "low"
	case ObstacleVault:
		return "vault"
	case ObstacleTallWall:
		return "tall-wall"
	case ObstacleLedge:
		return "ledge"
	}
	return "none"
}

// Obstacle is the result of a forward obstacle probe.
type Obstacle struct {
	Kind ObstacleKind
	// Distance is the distance to the nearest hit, in meters.
	Distance float32
	// HitPoint is where the center probe struck, when it did.
	HitPoint mgl32.Vec3
	// LedgePoint is where the upper probe struck, for ledge grabs.
	LedgePoint mgl32.Vec3
}
