package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot is a simple bot that flaps to stay above the bottom of the
// next gap. It is used by headless simulations.
type Autopilot struct {
	// Slack is how far above the gap's lower edge the bird's hitbox bottom
	// may drop before the bot flaps.
	Slack float64
}

// NewAutopilot creates a bot with a default safety slack.
func NewAutopilot() Autopilot {
	return Autopilot{Slack: 12}
}

// Input decides this tick's input for the game.
func (a Autopilot) Input(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.lifecycle.State() != StateRunning {
		return in
	}

	bird := g.flight.Bird()
	hitbox := bird.Hitbox()
	target := g.cfg.World.Height * 0.6
	if gapBottom, ok := g.nextGapBottom(hitbox.X); ok {
		target = gapBottom
	}

	if bird.VelY >= 0 && hitbox.Bottom() >= target-a.Slack {
		in.Set(core.ActionJump)
	}
	return in
}

// nextGapBottom returns the top edge of the nearest lower pipe that the
// bird has not yet passed.
func (g *Game) nextGapBottom(birdX float64) (float64, bool) {
	pipeW, _ := g.stream.PipeSize()
	best, found := 0.0, false
	bestX := 0.0
	for _, p := range g.stream.Pipes() {
		if p.Role != RoleLower || p.X+pipeW < birdX {
			continue
		}
		if !found || p.X < bestX {
			best, bestX, found = p.Y, p.X, true
		}
	}
	return best, found
}
