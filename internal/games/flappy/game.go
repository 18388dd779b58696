// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that falls under gravity and must fly through
// the gaps of a stream of recycled pipe pairs.
package flappy

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Package-level settings applied by the CLI before games are created.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
)

var sharedStore KeyValueStore = storage.NewMemoryKV()

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = p
}

// SetStore sets where best scores are persisted. Games share the store.
func SetStore(store KeyValueStore) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	sharedStore = store
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

// BestScore reads the persisted best score from the shared store, under the
// key of the current configuration.
func BestScore() int {
	settingsMu.RLock()
	path, store, l := configPath, sharedStore, logger
	settingsMu.RUnlock()

	cfg, err := config.LoadFlappy(path)
	if err != nil {
		l.Warn("using default flappy config", "error", err)
	}
	return NewScoreTracker(store, cfg.Storage.BestScoreKey, l).BestScore()
}

// Game implements the Flappy Bird game logic.
//
// One Step is one fixed simulation tick. Within a running tick the order is:
// gravity and movement, then collision checks, then recycling and scoring,
// then the difficulty check. A collision therefore pre-empts any scoring
// from the same tick.
type Game struct {
	cfg        config.FlappyConfig
	runtime    core.RuntimeConfig
	store      KeyValueStore
	logger     *log.Logger
	rng        *rand.Rand
	timers     *Timers
	flight     *FlightController
	stream     *ObstacleStream
	difficulty *config.DifficultyController
	scores     *ScoreTracker
	collisions CollisionMonitor
	lifecycle  *Lifecycle

	dt        time.Duration // Tick length
	tick      uint64        // Ticks since Reset
	runs      int           // Runs started since Reset
	bestShown int           // Best score read when the run started
	collision Collision     // What ended the last run
	runEnded  bool          // Set on the tick a run ends
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads configuration and initializes every component. The placement
// RNG is seeded from runtime.Seed, so equal seeds give equal games.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	settingsMu.RLock()
	path, preset, store, l := configPath, difficultyPreset, sharedStore, logger
	settingsMu.RUnlock()

	cfg, err := config.LoadFlappy(path)
	if err != nil {
		l.Warn("using default flappy config", "error", err)
	}
	if preset != "" {
		config.ApplyFlappyPreset(&cfg, preset)
	}
	g.ResetWithConfig(runtime, cfg, store, l)
}

// ResetWithConfig initializes the game from an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.FlappyConfig, store KeyValueStore, l *log.Logger) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	if l == nil {
		l = log.New(io.Discard)
	}

	g.cfg = cfg
	g.runtime = runtime
	g.store = store
	g.logger = l.With("game", g.ID())
	g.dt = time.Second / time.Duration(runtime.TickRate)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.timers = NewTimers()
	g.flight = NewFlightController(cfg)
	g.stream = NewObstacleStream(cfg, g.rng)
	g.difficulty = config.NewDifficultyController(cfg.Difficulty, cfg.Tiers)
	g.scores = NewScoreTracker(store, cfg.Storage.BestScoreKey, g.logger)
	g.collisions = NewCollisionMonitor(cfg.World.Height)
	g.lifecycle = NewLifecycle(cfg.Lifecycle, g.timers, g.restart, g.logger)
	g.tick = 0
	g.runs = 0

	g.restart()
}

// restart re-initializes the bird, pool, score, difficulty and lifecycle.
// The RNG is not re-seeded, so each run gets a fresh layout.
func (g *Game) restart() {
	g.lifecycle.Reset()
	g.flight.Reset()
	g.difficulty.Reset()
	g.scores.Reset()
	g.stream.Layout(g.difficulty.Ranges())
	g.bestShown = g.scores.BestScore()
	g.collision = CollisionNone
	g.runs++
	g.logger.Debug("run started", "run", g.runs, "tier", g.difficulty.Current(), "best", g.bestShown)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.runEnded = false

	// Timers run on the scene clock, which stops while paused.
	g.lifecycle.Advance(g.dt)

	switch g.lifecycle.State() {
	case StatePaused:
		if in.Has(core.ActionResume) || in.Has(core.ActionPause) {
			g.lifecycle.Resume()
		}
	case StateResuming:
		if in.Has(core.ActionJump) {
			g.flight.Flap(StateResuming)
		}
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.lifecycle.RestartNow()
		} else if in.Has(core.ActionJump) {
			g.flight.Flap(StateGameOver)
		}
	case StateRunning:
		if in.Has(core.ActionPause) {
			g.lifecycle.Pause()
			break
		}
		if in.Has(core.ActionJump) {
			g.flight.Flap(StateRunning)
		}
		g.simulate()
	}

	result := core.StepResult{State: g.State()}
	if g.runEnded {
		result.RunEnded = true
		result.FinalScore = g.scores.Score()
	}
	return result
}

// simulate runs one physics tick while Running.
func (g *Game) simulate() {
	dt := g.dt.Seconds()

	g.flight.ApplyGravity(dt)
	g.flight.Integrate(dt, g.cfg.World.Height)
	g.stream.Advance(dt)

	if hit := g.collisions.Check(g.flight.Bird(), g.stream.Bounds()); hit != CollisionNone {
		g.endRun(hit)
		return
	}

	if g.stream.Recycle(g.difficulty.Ranges()) {
		score := g.scores.Increment()
		g.scores.CommitBestScore()
		if g.difficulty.Evaluate(score) {
			g.logger.Debug("difficulty changed", "score", score, "tier", g.difficulty.Current())
		}
	}
}

func (g *Game) endRun(hit Collision) {
	if !g.lifecycle.GameOver() {
		return
	}
	g.flight.Strike()
	g.scores.CommitBestScore()
	g.collision = hit
	g.runEnded = true
	g.logger.Debug("run ended", "run", g.runs, "score", g.scores.Score(), "collision", hit)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := g.lifecycle.State()
	return core.GameState{
		Score:     g.scores.Score(),
		BestScore: g.bestShown,
		GameOver:  state == StateGameOver,
		Paused:    state == StatePaused,
		Resuming:  state == StateResuming,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
