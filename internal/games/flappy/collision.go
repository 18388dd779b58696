package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collision describes what ended a run.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionPipe
	CollisionCeiling
	CollisionGround
)

// String returns a human-readable name for the collision.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionPipe:
		return "pipe"
	case CollisionCeiling:
		return "ceiling"
	case CollisionGround:
		return "ground"
	default:
		return "unknown"
	}
}

// CollisionMonitor checks the bird against the pipes and the world edges.
type CollisionMonitor struct {
	worldH float64
}

// NewCollisionMonitor creates a monitor for a world of the given height.
func NewCollisionMonitor(worldH float64) CollisionMonitor {
	return CollisionMonitor{worldH: worldH}
}

// Check returns the first collision found, or CollisionNone.
// Any hitbox overlap with a pipe counts, as does the sprite touching
// the top (y <= 0) or bottom (bottom >= world height) edge.
func (m CollisionMonitor) Check(bird Bird, pipes []core.RectF) Collision {
	hitbox := bird.Hitbox()
	for _, p := range pipes {
		if hitbox.Intersects(p) {
			return CollisionPipe
		}
	}

	box := bird.Box()
	if box.Y <= 0 {
		return CollisionCeiling
	}
	if box.Bottom() >= m.worldH {
		return CollisionGround
	}
	return CollisionNone
}
