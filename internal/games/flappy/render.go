package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar   = '●'
	BirdBeak   = '▶'
	PipeChar   = '█'
	PipeCap    = '▓'
	GroundChar = '═'
)

// viewport maps world units onto screen cells. The bottom row is the ground.
type viewport struct {
	sx, sy float64
	playH  int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	playH := dst.Height() - 1
	return viewport{
		sx:    float64(dst.Width()) / worldW,
		sy:    float64(playH) / worldH,
		playH: playH,
	}
}

// cells converts a world box to the covering cell rectangle, at least one
// cell in each direction.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 2 || dst.Height() < 2 {
		return
	}
	v := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)

	pipeW, pipeH := g.stream.PipeSize()
	for _, p := range g.stream.Pipes() {
		g.drawPipe(dst, v, p, pipeW, pipeH)
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGray)
	g.drawBird(dst, v)

	state := g.State()
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", state.Score))
	dst.DrawTextColored(1, 1, fmt.Sprintf(" Best score: %d ", state.BestScore), core.ColorGray)

	switch {
	case state.Resuming:
		dst.DrawTextCentered(v.playH/2, fmt.Sprintf(" Resuming in %d... ", g.lifecycle.Countdown()))
	case state.GameOver:
		dst.DrawTextCentered(v.playH/2, " GAME OVER ")
	}
}

func (g *Game) drawPipe(dst *core.Screen, v viewport, p Pipe, pipeW, pipeH float64) {
	box := p.Bounds(pipeW, pipeH)
	// Clip to the playfield so the ground row stays intact.
	top := core.ClampF(box.Y, 0, g.cfg.World.Height)
	bottom := core.ClampF(box.Bottom(), 0, g.cfg.World.Height)
	if bottom <= top {
		return
	}
	r := v.cells(core.NewRectF(box.X, top, box.W, bottom-top))
	if r.Bottom() > v.playH {
		r.H = v.playH - r.Y
	}
	if r.H <= 0 {
		return
	}
	dst.DrawRect(r, PipeChar, core.ColorGreen)

	capY := r.Y
	if p.Role == RoleUpper {
		capY = r.Bottom() - 1
	}
	dst.DrawHLine(r.X, capY, r.W, PipeCap, core.ColorBrightGreen)
}

func (g *Game) drawBird(dst *core.Screen, v viewport) {
	bird := g.flight.Bird()
	color := core.ColorBrightYellow
	if bird.Struck {
		color = core.ColorStruck
	}

	r := v.cells(bird.Box())
	dst.DrawRect(r, BirdChar, color)
	dst.SetColored(r.Right()-1, r.Y, BirdBeak, core.ColorOrange)
}
