package flappy

import "time"

// TimerKind identifies a deferred continuation. At most one timer of each
// kind is pending at a time; scheduling a kind again replaces it.
type TimerKind int

const (
	TimerRestart   TimerKind = iota // Delayed restart after game over
	TimerCountdown                  // Resume countdown ticks
)

// timerKinds fixes the firing order for timers due at the same instant.
var timerKinds = []TimerKind{TimerRestart, TimerCountdown}

type timer struct {
	due      time.Duration
	interval time.Duration
	repeat   bool
	fn       func()
}

// Timers is a scheduler driven by simulation time instead of the wall clock.
// Callbacks run synchronously inside Advance, on the caller's goroutine.
type Timers struct {
	now     time.Duration
	pending map[TimerKind]*timer
}

// NewTimers creates an empty scheduler at time zero.
func NewTimers() *Timers {
	return &Timers{pending: make(map[TimerKind]*timer)}
}

// Now returns the current simulation time.
func (t *Timers) Now() time.Duration {
	return t.now
}

// After schedules fn to run once, d from now.
func (t *Timers) After(kind TimerKind, d time.Duration, fn func()) {
	t.pending[kind] = &timer{due: t.now + d, interval: d, fn: fn}
}

// Every schedules fn to run every d until cancelled.
func (t *Timers) Every(kind TimerKind, d time.Duration, fn func()) {
	t.pending[kind] = &timer{due: t.now + d, interval: d, repeat: true, fn: fn}
}

// Cancel removes the pending timer of the given kind, if any.
func (t *Timers) Cancel(kind TimerKind) {
	delete(t.pending, kind)
}

// Pending reports whether a timer of the given kind is scheduled.
func (t *Timers) Pending(kind TimerKind) bool {
	_, ok := t.pending[kind]
	return ok
}

// Clear drops every pending timer. The clock keeps its value.
func (t *Timers) Clear() {
	for kind := range t.pending {
		delete(t.pending, kind)
	}
}

// Advance moves the clock forward by dt and runs every callback that
// became due, earliest first. A repeating timer whose interval is shorter
// than dt fires once per elapsed interval.
func (t *Timers) Advance(dt time.Duration) {
	t.now += dt
	for {
		kind, tm := t.nextDue()
		if tm == nil {
			return
		}
		tm.fn()

		// The callback may have cancelled or replaced this timer.
		if t.pending[kind] != tm {
			continue
		}
		if tm.repeat && tm.interval > 0 {
			tm.due += tm.interval
		} else {
			delete(t.pending, kind)
		}
	}
}

func (t *Timers) nextDue() (TimerKind, *timer) {
	var (
		bestKind TimerKind
		best     *timer
	)
	for _, kind := range timerKinds {
		tm, ok := t.pending[kind]
		if !ok || tm.due > t.now {
			continue
		}
		if best == nil || tm.due < best.due {
			bestKind, best = kind, tm
		}
	}
	return bestKind, best
}
