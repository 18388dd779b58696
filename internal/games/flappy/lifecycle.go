package flappy

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// State is the top-level game state.
type State int

const (
	StateRunning  State = iota
	StatePaused         // Scene frozen, pause menu shown
	StateResuming       // Counting down before the simulation resumes
	StateGameOver       // Frozen until the delayed restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateResuming:
		return "resuming"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Lifecycle sequences Running, Paused, ResumingCountdown and GameOver.
//
//	Running  --Pause-->     Paused
//	Paused   --Resume-->    Resuming(n) --every interval--> Resuming(n-1) ... Resuming(0) --> Running
//	Running  --GameOver-->  GameOver --after delay--> restart --> Running
//
// The countdown, once started, always runs to completion.
type Lifecycle struct {
	state     State
	countdown int
	cfg       config.LifecycleConfig
	timers    *Timers
	restart   func()
	logger    *log.Logger
}

// NewLifecycle creates a lifecycle in the Running state. restart is called
// when the delayed restart after a game over fires.
func NewLifecycle(cfg config.LifecycleConfig, timers *Timers, restart func(), logger *log.Logger) *Lifecycle {
	return &Lifecycle{
		state:   StateRunning,
		cfg:     cfg,
		timers:  timers,
		restart: restart,
		logger:  logger,
	}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Countdown returns the seconds left before resuming; 0 outside StateResuming.
func (l *Lifecycle) Countdown() int {
	if l.state != StateResuming {
		return 0
	}
	return l.countdown
}

// Reset returns to Running and drops every pending timer.
func (l *Lifecycle) Reset() {
	l.timers.Clear()
	l.state = StateRunning
	l.countdown = 0
}

// Pause freezes the scene. Only valid while Running.
func (l *Lifecycle) Pause() bool {
	if l.state != StateRunning {
		return false
	}
	l.transition(StatePaused)
	return true
}

// Resume starts the countdown back to Running. Only valid while Paused.
func (l *Lifecycle) Resume() bool {
	if l.state != StatePaused {
		return false
	}
	l.countdown = l.cfg.CountdownFrom
	if l.countdown <= 0 {
		l.transition(StateRunning)
		return true
	}
	l.transition(StateResuming)
	l.timers.Every(TimerCountdown, l.cfg.CountdownInterval, l.countDown)
	return true
}

func (l *Lifecycle) countDown() {
	l.countdown--
	if l.countdown > 0 {
		return
	}
	l.countdown = 0
	l.timers.Cancel(TimerCountdown)
	l.transition(StateRunning)
}

// GameOver ends the run and schedules the restart. Only valid while
// Running; collisions are not checked in the other states.
func (l *Lifecycle) GameOver() bool {
	if l.state != StateRunning {
		return false
	}
	l.transition(StateGameOver)
	l.timers.After(TimerRestart, l.cfg.RestartDelay, l.restart)
	return true
}

// RestartNow runs the restart immediately instead of waiting for the timer.
// Only valid during GameOver.
func (l *Lifecycle) RestartNow() bool {
	if l.state != StateGameOver {
		return false
	}
	l.timers.Cancel(TimerRestart)
	l.restart()
	return true
}

// Advance moves the scene clock. The clock is frozen while Paused.
func (l *Lifecycle) Advance(dt time.Duration) {
	if l.state == StatePaused {
		return
	}
	l.timers.Advance(dt)
}

func (l *Lifecycle) transition(to State) {
	l.logger.Debug("lifecycle", "from", l.state, "to", to)
	l.state = to
}
