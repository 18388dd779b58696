package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimTicks int
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with the autopilot",
	Long: `Run Flappy Bird without a terminal, with a simple bot flapping for
you, and print a summary of every run.

By default scores are kept in memory; --save records them in the database
like a normal game.

Examples:
  arcade simulate
  arcade simulate --ticks 36000 --seed 42
  arcade simulate --difficulty easy --save`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60, "Number of simulation ticks")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record runs and best score in the database")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyFlappyPreset(&cfg, preset)
	}

	var (
		kv    flappy.KeyValueStore = storage.NewMemoryKV()
		store *storage.Store
	)
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		kv = store
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed

	log := stderrLogger("simulate")
	game := flappy.New()
	game.ResetWithConfig(runtime, cfg, kv, log)
	bot := flappy.NewAutopilot()

	fmt.Printf("Simulating %d ticks at %d fps (seed %d)\n\n", flagSimTicks, runtime.TickRate, seed)

	var scores []int
	for i := 0; i < flagSimTicks; i++ {
		result := game.Step(bot.Input(game))
		if !result.RunEnded {
			continue
		}
		scores = append(scores, result.FinalScore)
		snap := game.Snapshot()
		fmt.Printf("  run %-4d  score %-5d  tier %-6s  hit %s\n", snap.Runs, result.FinalScore, snap.Tier, snap.Collision)

		if store != nil && result.FinalScore > 0 {
			if _, err := store.SaveScore(game.ID(), result.FinalScore); err != nil {
				log.Warn("could not record run", "error", err)
			}
		}
	}

	snap := game.Snapshot()
	fmt.Println()
	fmt.Printf("Finished runs: %d\n", len(scores))
	fmt.Printf("Current run:   %d (%s)\n", snap.Score, snap.State)
	fmt.Printf("Best score:    %d\n", flappy.NewScoreTracker(kv, cfg.Storage.BestScoreKey, log).BestScore())
	return nil
}
