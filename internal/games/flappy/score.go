package flappy

import (
	"strconv"

	"github.com/charmbracelet/log"
)

// KeyValueStore is string-keyed, string-valued persistent storage.
// A missing key is reported with ok == false and no error.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MaxStore is implemented by stores that can raise an integer value
// atomically. ScoreTracker prefers it so concurrent sessions sharing a store
// never lower the best score.
type MaxStore interface {
	SetIfGreater(key string, value int) (bool, error)
}

// ScoreTracker counts cleared pairs in the current run and keeps the best
// score in a KeyValueStore under a single key.
type ScoreTracker struct {
	store  KeyValueStore
	key    string
	score  int
	logger *log.Logger
}

// NewScoreTracker creates a tracker persisting the best score under key.
func NewScoreTracker(store KeyValueStore, key string, logger *log.Logger) *ScoreTracker {
	return &ScoreTracker{store: store, key: key, logger: logger}
}

// Score returns the current run score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Increment adds one cleared pair to the run score and returns the new score.
func (s *ScoreTracker) Increment() int {
	s.score++
	return s.score
}

// Reset starts a new run at score 0. The best score is kept.
func (s *ScoreTracker) Reset() {
	s.score = 0
}

// BestScore reads the persisted best score. A missing key, an unreadable
// store or a value that is not a base-10 integer all read as 0.
func (s *ScoreTracker) BestScore() int {
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.logger.Warn("could not read best score", "key", s.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	best, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("ignoring malformed best score", "key", s.key, "value", raw)
		return 0
	}
	return best
}

// CommitBestScore persists the run score if it beats the stored best.
// It is safe to call any number of times; it reports whether it wrote.
func (s *ScoreTracker) CommitBestScore() bool {
	if s.score <= 0 {
		return false
	}
	if ms, ok := s.store.(MaxStore); ok {
		wrote, err := ms.SetIfGreater(s.key, s.score)
		if err != nil {
			s.logger.Warn("could not save best score", "key", s.key, "score", s.score, "error", err)
			return false
		}
		return wrote
	}
	if s.score <= s.BestScore() {
		return false
	}
	if err := s.store.Set(s.key, strconv.Itoa(s.score)); err != nil {
		s.logger.Warn("could not save best score", "key", s.key, "score", s.score, "error", err)
		return false
	}
	return true
}
