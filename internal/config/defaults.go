package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file
// cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: FlappyPhysics{
			Gravity:      600,
			FlapVelocity: 300,
			PipeSpeed:    200,
		},
		Bird: FlappyBird{
			StartXRatio: 0.1,
			StartYRatio: 0.5,
			Width:       48,
			Height:      48,
			InsetY:      8,
		},
		Obstacles: FlappyObstacles{
			PoolSize:   4,
			PipeWidth:  52,
			PipeHeight: 600,
			Margin:     20,
		},
		Tiers: TierTable{
			TierEasy: {
				HorizontalDistance: Range{Min: 300, Max: 350},
				VerticalGap:        Range{Min: 150, Max: 200},
			},
			TierNormal: {
				HorizontalDistance: Range{Min: 280, Max: 330},
				VerticalGap:        Range{Min: 140, Max: 190},
			},
			TierHard: {
				HorizontalDistance: Range{Min: 250, Max: 300},
				VerticalGap:        Range{Min: 120, Max: 170},
			},
		},
		Difficulty: DifficultyConfig{
			InitialTier: TierHard,
			Policy:      PolicyEquality,
			Transitions: []Transition{
				{At: 10, Tier: TierNormal},
				{At: 20, Tier: TierHard},
			},
		},
		Lifecycle: LifecycleConfig{
			RestartDelay:      time.Second,
			CountdownFrom:     3,
			CountdownInterval: time.Second,
		},
		Storage: StorageConfig{
			BestScoreKey: "bestScore",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
