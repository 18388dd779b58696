package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the controlled entity.
type Bird struct {
	X, Y   float64 // Top-left corner of the sprite box
	VelY   float64 // Vertical velocity, positive is down
	W, H   float64 // Sprite box size
	InsetY float64 // Height trimmed from the hitbox, split between top and bottom
	Struck bool    // Tinted after a collision
}

// Box returns the full sprite box, used for world-bounds checks.
func (b Bird) Box() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Hitbox returns the box used against pipes. It is InsetY shorter than
// the sprite and centred on it.
func (b Bird) Hitbox() core.RectF {
	return core.NewRectF(b.X, b.Y+b.InsetY/2, b.W, b.H-b.InsetY)
}

// FlightController applies gravity and flaps to the bird.
type FlightController struct {
	bird         Bird
	start        Bird
	gravity      float64
	flapVelocity float64
}

// NewFlightController creates a controller with the bird at its start position.
func NewFlightController(cfg config.FlappyConfig) *FlightController {
	start := Bird{
		X:      cfg.World.Width * cfg.Bird.StartXRatio,
		Y:      cfg.World.Height * cfg.Bird.StartYRatio,
		W:      cfg.Bird.Width,
		H:      cfg.Bird.Height,
		InsetY: cfg.Bird.InsetY,
	}
	return &FlightController{
		bird:         start,
		start:        start,
		gravity:      cfg.Physics.Gravity,
		flapVelocity: cfg.Physics.FlapVelocity,
	}
}

// Reset puts the bird back at its start position with zero velocity.
func (f *FlightController) Reset() {
	f.bird = f.start
}

// Bird returns the current entity state.
func (f *FlightController) Bird() Bird {
	return f.bird
}

// ApplyGravity integrates the constant downward acceleration over dt seconds.
func (f *FlightController) ApplyGravity(dt float64) {
	f.bird.VelY += f.gravity * dt
}

// Flap sets the vertical velocity to the fixed upward value. The velocity
// is replaced, not added to. Flaps are ignored while paused or counting
// down; it reports whether the flap was applied.
func (f *FlightController) Flap(state State) bool {
	if state == StatePaused || state == StateResuming {
		return false
	}
	f.bird.VelY = -f.flapVelocity
	return true
}

// Strike marks the bird as hit.
func (f *FlightController) Strike() {
	f.bird.Struck = true
}

// Integrate moves the bird by its velocity over dt seconds and keeps the
// sprite inside [0, worldH]. A blocked bird loses its vertical velocity.
// This is the world-bounds clipping a physics engine would do for us; the
// collision monitor then sees the bird touching the edge.
func (f *FlightController) Integrate(dt, worldH float64) {
	b := &f.bird
	b.Y += b.VelY * dt

	switch {
	case b.Y < 0:
		b.Y = 0
		b.VelY = 0
	case b.Y+b.H > worldH:
		b.Y = worldH - b.H
		b.VelY = 0
	}
}

