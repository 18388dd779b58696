package config

import "fmt"

// Tier is a named difficulty configuration bounding random placement ranges.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
)

// Tiers returns every known tier from easiest to hardest.
func Tiers() []Tier {
	return []Tier{TierEasy, TierNormal, TierHard}
}

// TransitionPolicy decides when a score change selects a new tier.
type TransitionPolicy string

const (
	// PolicyEquality switches tiers only when the score equals a threshold.
	// A score that jumps over a threshold never triggers it.
	PolicyEquality TransitionPolicy = "equality"
	// PolicyCrossing switches when a score change passes over a threshold.
	PolicyCrossing TransitionPolicy = "crossing"
	// PolicyNone keeps the initial tier for the whole run.
	PolicyNone TransitionPolicy = "none"
)

// Transition switches to Tier when the score reaches At.
type Transition struct {
	At   int  `yaml:"at"`
	Tier Tier `yaml:"tier"`
}

// DifficultyConfig defines the tier progression.
type DifficultyConfig struct {
	InitialTier Tier             `yaml:"initial_tier"`
	Policy      TransitionPolicy `yaml:"policy"`
	Transitions []Transition     `yaml:"transitions"`
}

func (d DifficultyConfig) validate() error {
	if !knownTier(d.InitialTier) {
		return fmt.Errorf("config: unknown initial tier %q", d.InitialTier)
	}
	switch d.Policy {
	case PolicyEquality, PolicyCrossing, PolicyNone:
	default:
		return fmt.Errorf("config: unknown difficulty policy %q", d.Policy)
	}
	prev := 0
	for i, t := range d.Transitions {
		if !knownTier(t.Tier) {
			return fmt.Errorf("config: transition %d has unknown tier %q", i, t.Tier)
		}
		if t.At <= prev {
			return fmt.Errorf("config: transition thresholds must be positive and increasing, got %d after %d", t.At, prev)
		}
		prev = t.At
	}
	return nil
}

func knownTier(t Tier) bool {
	for _, known := range Tiers() {
		if t == known {
			return true
		}
	}
	return false
}

// DifficultyPreset represents a difficulty override chosen on the command line.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means no override.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// DifficultyController tracks the active tier as the score changes.
type DifficultyController struct {
	cfg     DifficultyConfig
	tiers   map[Tier]TierRanges
	current Tier
	score   int
}

// NewDifficultyController creates a controller positioned at the initial tier.
func NewDifficultyController(cfg DifficultyConfig, tiers map[Tier]TierRanges) *DifficultyController {
	d := &DifficultyController{cfg: cfg, tiers: tiers}
	d.Reset()
	return d
}

// Reset returns to the initial tier at score 0.
func (d *DifficultyController) Reset() {
	d.current = d.cfg.InitialTier
	d.score = 0
}

// Current returns the active tier.
func (d *DifficultyController) Current() Tier {
	return d.current
}

// Ranges returns the placement ranges of the active tier.
func (d *DifficultyController) Ranges() TierRanges {
	return d.tiers[d.current]
}

// Evaluate re-checks the tier after the score changed to score.
// It reports whether the tier changed.
//
// Under PolicyEquality the check is edge-triggered on exact threshold
// values: if the score ever advanced by more than one at a time a
// threshold could be skipped and the tier would never change.
func (d *DifficultyController) Evaluate(score int) bool {
	prev := d.score
	d.score = score

	next := d.current
	switch d.cfg.Policy {
	case PolicyEquality:
		for _, t := range d.cfg.Transitions {
			if score == t.At {
				next = t.Tier
			}
		}
	case PolicyCrossing:
		for _, t := range d.cfg.Transitions {
			if prev < t.At && score >= t.At {
				next = t.Tier
			}
		}
	}

	if next == d.current {
		return false
	}
	d.current = next
	return true
}

// TierFor is the pure score-to-tier mapping: the tier of the last
// threshold at or below score, or the initial tier below the first one.
// For a score that grows one point at a time it agrees with Evaluate.
func TierFor(cfg DifficultyConfig, score int) Tier {
	tier := cfg.InitialTier
	if cfg.Policy == PolicyNone {
		return tier
	}
	for _, t := range cfg.Transitions {
		if score >= t.At {
			tier = t.Tier
		}
	}
	return tier
}
