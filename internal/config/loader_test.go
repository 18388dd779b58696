package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := ParseFlappy(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseFlappy(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestParseFlappyPartialOverride(t *testing.T) {
	data := []byte(`
physics:
  gravity: 900
tiers:
  easy:
    horizontal_distance: [100, 120]
    vertical_gap: [200, 220]
lifecycle:
  restart_delay: 2500ms
`)
	cfg, err := ParseFlappy(data)
	if err != nil {
		t.Fatalf("ParseFlappy failed: %v", err)
	}

	if cfg.Physics.Gravity != 900 {
		t.Errorf("Gravity = %f, expected 900", cfg.Physics.Gravity)
	}
	if cfg.Physics.PipeSpeed != 200 {
		t.Errorf("PipeSpeed = %f, expected default 200", cfg.Physics.PipeSpeed)
	}
	if cfg.Tiers[TierEasy].HorizontalDistance != (Range{Min: 100, Max: 120}) {
		t.Errorf("easy horizontal = %+v", cfg.Tiers[TierEasy].HorizontalDistance)
	}
	if cfg.Tiers[TierHard].VerticalGap != (Range{Min: 120, Max: 170}) {
		t.Errorf("hard tier should keep its default, got %+v", cfg.Tiers[TierHard])
	}
	if cfg.Lifecycle.RestartDelay != 2500*time.Millisecond {
		t.Errorf("RestartDelay = %v, expected 2.5s", cfg.Lifecycle.RestartDelay)
	}
}

func TestParseFlappyTierFieldOverride(t *testing.T) {
	cfg, err := ParseFlappy([]byte("tiers:\n  hard:\n    vertical_gap: [100, 150]\n"))
	if err != nil {
		t.Fatalf("ParseFlappy failed: %v", err)
	}

	defaults := DefaultFlappyConfig().Tiers
	hard := cfg.Tiers[TierHard]
	if hard.VerticalGap != (Range{Min: 100, Max: 150}) {
		t.Errorf("hard vertical_gap = %+v, expected [100 150]", hard.VerticalGap)
	}
	if hard.HorizontalDistance != defaults[TierHard].HorizontalDistance {
		t.Errorf("hard horizontal_distance = %+v, expected default %+v",
			hard.HorizontalDistance, defaults[TierHard].HorizontalDistance)
	}
	for _, tier := range []Tier{TierEasy, TierNormal} {
		if cfg.Tiers[tier] != defaults[tier] {
			t.Errorf("tier %q = %+v, expected default %+v", tier, cfg.Tiers[tier], defaults[tier])
		}
	}
}

func TestParseFlappyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"inverted range", "tiers:\n  hard:\n    horizontal_distance: [300, 250]\n    vertical_gap: [120, 170]\n"},
		{"short range", "tiers:\n  hard:\n    horizontal_distance: [300]\n    vertical_gap: [120, 170]\n"},
		{"unknown initial tier", "difficulty:\n  initial_tier: insane\n"},
		{"unknown policy", "difficulty:\n  policy: sometimes\n"},
		{"decreasing thresholds", "difficulty:\n  transitions:\n    - {at: 20, tier: normal}\n    - {at: 10, tier: hard}\n"},
		{"empty pool", "obstacles:\n  pool_size: 0\n"},
		{"zero horizontal distance", "tiers:\n  easy:\n    horizontal_distance: [0, 0]\n"},
		{"negative horizontal distance", "tiers:\n  hard:\n    horizontal_distance: [-300, -250]\n"},
		{"negative margin", "obstacles:\n  margin: -5\n"},
		{"zero pipe speed", "physics:\n  pipe_speed: 0\n"},
		{"negative pipe speed", "physics:\n  pipe_speed: -200\n"},
		{"gap taller than world", "world:\n  height: 100\n"},
		{"not yaml", "world: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFlappy([]byte(tc.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFlappyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  pipe_speed: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy failed: %v", err)
	}
	if cfg.Physics.PipeSpeed != 250 {
		t.Errorf("PipeSpeed = %f, expected 250", cfg.Physics.PipeSpeed)
	}
}

func TestLoadFlappyMissingCustomPath(t *testing.T) {
	cfg, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if cfg.Obstacles.PoolSize != 4 {
		t.Error("LoadFlappy should still return usable defaults on error")
	}
}
