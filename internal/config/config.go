// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
// Positions and sizes are in world units; speeds are per second.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Bird       FlappyBird       `yaml:"bird"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Tiers      TierTable        `yaml:"tiers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"`
	Storage    StorageConfig    `yaml:"storage"`
}

// WorldConfig is the size of the playfield.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, units/s²
	FlapVelocity float64 `yaml:"flap_velocity"` // Upward speed set by a flap, units/s
	PipeSpeed    float64 `yaml:"pipe_speed"`    // Leftward pipe speed, units/s
}

// FlappyBird defines the controlled entity.
type FlappyBird struct {
	StartXRatio float64 `yaml:"start_x_ratio"` // Start x as a fraction of world width
	StartYRatio float64 `yaml:"start_y_ratio"` // Start y as a fraction of world height
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	InsetY      float64 `yaml:"inset_y"` // Subtracted from Height for the hitbox
}

// FlappyObstacles defines obstacle pool parameters.
type FlappyObstacles struct {
	PoolSize   int     `yaml:"pool_size"` // Number of pipe pairs
	PipeWidth  float64 `yaml:"pipe_width"`
	PipeHeight float64 `yaml:"pipe_height"`
	Margin     int     `yaml:"margin"` // Minimum distance from the gap to the top and bottom
}

// LifecycleConfig times the game-over and resume transitions.
type LifecycleConfig struct {
	RestartDelay      time.Duration `yaml:"restart_delay"`
	CountdownFrom     int           `yaml:"countdown_from"`
	CountdownInterval time.Duration `yaml:"countdown_interval"`
}

// StorageConfig names the persisted keys.
type StorageConfig struct {
	BestScoreKey string `yaml:"best_score_key"`
}

// Range is an inclusive integer interval written as [min, max] in YAML.
type Range struct {
	Min int
	Max int
}

// UnmarshalYAML decodes a two-element sequence into a Range.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var bounds []int
	if err := value.Decode(&bounds); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if len(bounds) != 2 {
		return fmt.Errorf("range: expected [min, max], got %d values at line %d", len(bounds), value.Line)
	}
	r.Min, r.Max = bounds[0], bounds[1]
	return nil
}

// MarshalYAML encodes a Range as a flow sequence.
func (r Range) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{r.Min, r.Max} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprint(v),
		})
	}
	return node, nil
}

// Contains reports whether v lies within the inclusive bounds.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// TierRanges are the random placement bounds of one difficulty tier.
type TierRanges struct {
	HorizontalDistance Range `yaml:"horizontal_distance"`
	VerticalGap        Range `yaml:"vertical_gap"`
}

// TierTable maps each tier to its placement bounds.
type TierTable map[Tier]TierRanges

// UnmarshalYAML decodes each tier over its current value, so a file that sets
// only vertical_gap keeps the existing horizontal_distance.
func (t *TierTable) UnmarshalYAML(value *yaml.Node) error {
	var nodes map[Tier]yaml.Node
	if err := value.Decode(&nodes); err != nil {
		return fmt.Errorf("tiers: %w", err)
	}
	merged := make(TierTable, len(*t)+len(nodes))
	for tier, ranges := range *t {
		merged[tier] = ranges
	}
	for tier, node := range nodes {
		ranges := merged[tier]
		if err := node.Decode(&ranges); err != nil {
			return fmt.Errorf("tiers: %s: %w", tier, err)
		}
		merged[tier] = ranges
	}
	*t = merged
	return nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= c.Bird.InsetY || c.Bird.InsetY < 0 {
		return fmt.Errorf("config: invalid bird box %gx%g (inset %g)", c.Bird.Width, c.Bird.Height, c.Bird.InsetY)
	}
	if c.Physics.PipeSpeed <= 0 {
		return fmt.Errorf("config: pipe_speed must be positive, got %g", c.Physics.PipeSpeed)
	}
	if c.Obstacles.PoolSize < 1 {
		return fmt.Errorf("config: obstacle pool size must be at least 1, got %d", c.Obstacles.PoolSize)
	}
	if c.Obstacles.PipeWidth <= 0 || c.Obstacles.PipeHeight <= 0 {
		return fmt.Errorf("config: pipe size must be positive")
	}
	if c.Obstacles.Margin < 0 {
		return fmt.Errorf("config: margin must not be negative, got %d", c.Obstacles.Margin)
	}
	for _, tier := range Tiers() {
		ranges, ok := c.Tiers[tier]
		if !ok {
			return fmt.Errorf("config: missing tier %q", tier)
		}
		if ranges.HorizontalDistance.Min > ranges.HorizontalDistance.Max {
			return fmt.Errorf("config: tier %q has inverted horizontal_distance", tier)
		}
		if ranges.HorizontalDistance.Min <= 0 {
			return fmt.Errorf("config: tier %q horizontal_distance must be positive", tier)
		}
		if ranges.VerticalGap.Min > ranges.VerticalGap.Max || ranges.VerticalGap.Min < 0 {
			return fmt.Errorf("config: tier %q has invalid vertical_gap", tier)
		}
		if float64(ranges.VerticalGap.Max+2*c.Obstacles.Margin) > c.World.Height {
			return fmt.Errorf("config: tier %q gap does not fit in the world height", tier)
		}
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	if c.Lifecycle.RestartDelay < 0 || c.Lifecycle.CountdownInterval <= 0 || c.Lifecycle.CountdownFrom < 0 {
		return fmt.Errorf("config: invalid lifecycle timing")
	}
	if c.Storage.BestScoreKey == "" {
		return fmt.Errorf("config: best_score_key must not be empty")
	}
	return nil
}
