package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestFlightStartPosition(t *testing.T) {
	f := NewFlightController(config.DefaultFlappyConfig())
	b := f.Bird()

	if b.X != 80 || b.Y != 300 {
		t.Errorf("start position = (%f, %f), expected (80, 300)", b.X, b.Y)
	}
	if b.VelY != 0 {
		t.Errorf("start velocity = %f, expected 0", b.VelY)
	}
	if b.W != 48 || b.H != 48 {
		t.Errorf("sprite = %fx%f, expected 48x48", b.W, b.H)
	}
}

func TestFlightGravity(t *testing.T) {
	f := NewFlightController(config.DefaultFlappyConfig())

	f.ApplyGravity(0.5)
	if f.Bird().VelY != 300 {
		t.Errorf("velocity after 0.5s = %f, expected 300", f.Bird().VelY)
	}
	f.ApplyGravity(0.25)
	if f.Bird().VelY != 450 {
		t.Errorf("velocity after 0.75s = %f, expected 450", f.Bird().VelY)
	}
}

func TestFlightFlapReplacesVelocity(t *testing.T) {
	tests := []struct {
		name string
		vel  float64
	}{
		{"at rest", 0},
		{"falling fast", 550},
		{"rising", -120},
		{"already flapped", -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlightController(config.DefaultFlappyConfig())
			f.bird.VelY = tt.vel

			if !f.Flap(StateRunning) {
				t.Fatal("flap should apply while running")
			}
			if f.Bird().VelY != -300 {
				t.Errorf("velocity = %f, expected -300", f.Bird().VelY)
			}
		})
	}
}

func TestFlightFlapIgnoredWhileFrozen(t *testing.T) {
	for _, state := range []State{StatePaused, StateResuming} {
		t.Run(state.String(), func(t *testing.T) {
			f := NewFlightController(config.DefaultFlappyConfig())
			f.bird.VelY = 123

			if f.Flap(state) {
				t.Error("flap should be rejected")
			}
			if f.Bird().VelY != 123 {
				t.Errorf("velocity changed to %f", f.Bird().VelY)
			}
		})
	}
}

func TestFlightFlapAllowedOnGameOver(t *testing.T) {
	f := NewFlightController(config.DefaultFlappyConfig())
	if !f.Flap(StateGameOver) {
		t.Error("flap should still be accepted after game over")
	}
}

func TestFlightIntegrate(t *testing.T) {
	f := NewFlightController(config.DefaultFlappyConfig())
	f.bird.VelY = 100

	f.Integrate(0.5, 600)
	if f.Bird().Y != 350 {
		t.Errorf("y = %f, expected 350", f.Bird().Y)
	}
}

func TestFlightIntegrateClipsAtEdges(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		vel   float64
		wantY float64
	}{
		{"ceiling", 5, -600, 0},
		{"ground", 540, 600, 552},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlightController(config.DefaultFlappyConfig())
			f.bird.Y = tt.y
			f.bird.VelY = tt.vel

			f.Integrate(0.5, 600)

			b := f.Bird()
			if b.Y != tt.wantY {
				t.Errorf("y = %f, expected %f", b.Y, tt.wantY)
			}
			if b.VelY != 0 {
				t.Errorf("blocked bird kept velocity %f", b.VelY)
			}
		})
	}
}

func TestFlightReset(t *testing.T) {
	f := NewFlightController(config.DefaultFlappyConfig())
	start := f.Bird()

	f.bird.Y = 10
	f.bird.VelY = 250
	f.Strike()
	f.Reset()

	if f.Bird() != start {
		t.Errorf("bird after reset = %+v, expected %+v", f.Bird(), start)
	}
}

func TestBirdHitbox(t *testing.T) {
	b := Bird{X: 80, Y: 300, W: 48, H: 48, InsetY: 8}
	hb := b.Hitbox()

	if hb.Y != 304 || hb.H != 40 {
		t.Errorf("hitbox = %+v, expected y=304 h=40", hb)
	}
	if hb.X != b.X || hb.W != b.W {
		t.Errorf("hitbox should keep the sprite's horizontal extent: %+v", hb)
	}
}
