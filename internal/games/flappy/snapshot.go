package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Runs      int
	State     State
	Countdown int
	Score     int
	BestScore int
	Tier      config.Tier
	Bird      Bird
	Pipes     []Pipe
	Collision Collision
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Runs:      g.runs,
		State:     g.lifecycle.State(),
		Countdown: g.lifecycle.Countdown(),
		Score:     g.scores.Score(),
		BestScore: g.bestShown,
		Tier:      g.difficulty.Current(),
		Bird:      g.flight.Bird(),
		Pipes:     g.stream.Pipes(),
		Collision: g.collision,
	}
}
