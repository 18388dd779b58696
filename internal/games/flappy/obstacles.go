package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeRole says which half of a pair a pipe slot currently plays.
// Slots are not tied to a role; each placement assigns one.
type PipeRole int

const (
	RoleUpper PipeRole = iota
	RoleLower
)

// Pipe is one obstacle half held in a pool slot.
type Pipe struct {
	X    float64  // Left edge
	Y    float64  // Bottom edge for an upper pipe, top edge for a lower pipe
	Role PipeRole // Geometry anchor for Y
}

// Bounds returns the pipe's collision box for the given pipe size.
func (p Pipe) Bounds(width, height float64) core.RectF {
	if p.Role == RoleUpper {
		return core.NewRectF(p.X, p.Y-height, width, height)
	}
	return core.NewRectF(p.X, p.Y, width, height)
}

// Placement records the random draws of one pair placement.
type Placement struct {
	X      float64 // Shared left edge of both halves
	UpperY float64 // Bottom edge of the upper half
	Gap    int     // Vertical gap between the halves
	Offset int     // Horizontal distance from the previous rightmost pipe
}

// LowerY returns the top edge of the lower half.
func (p Placement) LowerY() float64 {
	return p.UpperY + float64(p.Gap)
}

// between returns a uniformly distributed integer in [min, max].
func between(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Place computes where the next pair goes. It draws the gap, then the
// gap position, then the horizontal offset, so a seeded RNG reproduces
// the same layout.
func Place(rightmostX float64, ranges config.TierRanges, worldH float64, margin int, rng *rand.Rand) Placement {
	gap := between(rng, ranges.VerticalGap.Min, ranges.VerticalGap.Max)
	upperY := between(rng, margin, int(worldH)-margin-gap)
	offset := between(rng, ranges.HorizontalDistance.Min, ranges.HorizontalDistance.Max)

	return Placement{
		X:      rightmostX + float64(offset),
		UpperY: float64(upperY),
		Gap:    gap,
		Offset: offset,
	}
}

// ObstacleStream owns a fixed pool of pipe slots, two per pair, and keeps
// them flowing right to left. Slots are reused, never added or removed.
type ObstacleStream struct {
	pipes  []Pipe
	rng    *rand.Rand
	speed  float64
	worldH float64
	pipeW  float64
	pipeH  float64
	margin int
}

// NewObstacleStream creates a stream with cfg.Obstacles.PoolSize pairs.
// Call Layout before the first Advance.
func NewObstacleStream(cfg config.FlappyConfig, rng *rand.Rand) *ObstacleStream {
	return &ObstacleStream{
		pipes:  make([]Pipe, 2*cfg.Obstacles.PoolSize),
		rng:    rng,
		speed:  cfg.Physics.PipeSpeed,
		worldH: cfg.World.Height,
		pipeW:  cfg.Obstacles.PipeWidth,
		pipeH:  cfg.Obstacles.PipeHeight,
		margin: cfg.Obstacles.Margin,
	}
}

// Layout moves every slot back to the origin and places the pairs one after
// another, slot 2i as upper and 2i+1 as lower.
func (s *ObstacleStream) Layout(ranges config.TierRanges) {
	for i := range s.pipes {
		s.pipes[i] = Pipe{}
	}
	for i := 0; i+1 < len(s.pipes); i += 2 {
		s.PlacePair(i, i+1, ranges)
	}
}

// PlacePair positions slot upper as the upper half and slot lower as the
// lower half of a new pair to the right of the current rightmost pipe.
func (s *ObstacleStream) PlacePair(upper, lower int, ranges config.TierRanges) Placement {
	p := Place(s.RightmostX(), ranges, s.worldH, s.margin, s.rng)

	s.pipes[upper] = Pipe{X: p.X, Y: p.UpperY, Role: RoleUpper}
	s.pipes[lower] = Pipe{X: p.X, Y: p.LowerY(), Role: RoleLower}
	return p
}

// Advance moves every pipe left by the constant pipe speed over dt seconds.
func (s *ObstacleStream) Advance(dt float64) {
	dx := s.speed * dt
	for i := range s.pipes {
		s.pipes[i].X -= dx
	}
}

// Recycle scans the pool in slot order and replaces the first two pipes
// whose right edge is at or past the left boundary, whichever pair they
// came from. The first found becomes the upper half. At most one pair is
// recycled per call; it reports whether one was.
func (s *ObstacleStream) Recycle(ranges config.TierRanges) bool {
	first := -1
	for i, p := range s.pipes {
		if p.X+s.pipeW > 0 {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		s.PlacePair(first, i, ranges)
		return true
	}
	return false
}

// RightmostX returns the largest left edge over all slots, never below 0.
func (s *ObstacleStream) RightmostX() float64 {
	rightmost := 0.0
	for _, p := range s.pipes {
		rightmost = math.Max(rightmost, p.X)
	}
	return rightmost
}

// Pipes returns a copy of the pool in slot order.
func (s *ObstacleStream) Pipes() []Pipe {
	out := make([]Pipe, len(s.pipes))
	copy(out, s.pipes)
	return out
}

// Bounds returns the collision box of every slot in slot order.
func (s *ObstacleStream) Bounds() []core.RectF {
	out := make([]core.RectF, len(s.pipes))
	for i, p := range s.pipes {
		out[i] = p.Bounds(s.pipeW, s.pipeH)
	}
	return out
}

// PipeSize returns the width and height of a pipe half.
func (s *ObstacleStream) PipeSize() (float64, float64) {
	return s.pipeW, s.pipeH
}

