package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BomberConfig
	if err := yaml.Unmarshal(defaultBomberYAML, &cfg); err != nil {
		t.Fatalf("embedded bomber.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBomberConfig()) {
		t.Errorf("embedded defaults drifted from DefaultBomberConfig:\n%+v\n%+v", cfg, DefaultBomberConfig())
	}
}

func TestLoadBomberCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	data := []byte("player:\n  lives: 7\nbombs:\n  fuse_seconds: 1.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBomber(path)
	if err != nil {
		t.Fatalf("LoadBomber: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Player.Lives)
	}
	if cfg.Bombs.FuseTime != 1.5 {
		t.Errorf("fuse = %.2f, want 1.5", cfg.Bombs.FuseTime)
	}
	if cfg.Player.Range != DefaultBomberConfig().Player.Range {
		t.Errorf("unset fields should keep defaults, range = %d", cfg.Player.Range)
	}
}

func TestLoadBomberErrors(t *testing.T) {
	if _, err := LoadBomber(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadBomber(bad)
	if err == nil {
		t.Error("expected parse error")
	}
	if !reflect.DeepEqual(cfg, DefaultBomberConfig()) {
		t.Error("parse failure should return defaults")
	}
}

func TestApplyBomberPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		enabled bool
	}{
		{DifficultyEasy, 5, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 2, true},
		{DifficultyFixed, 3, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBomberConfig()
			ApplyBomberPreset(&cfg, tt.preset)
			if cfg.Player.Lives != tt.lives {
				t.Errorf("lives = %d, want %d", cfg.Player.Lives, tt.lives)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("difficulty enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v; want normal", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DefaultBomberConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(1, 0); got != 0 {
		t.Errorf("level 1 difficulty = %.2f, want 0", got)
	}
	if got := dm.Level(1+cfg.Progression.MaxAt/2, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("midway difficulty = %.2f, want 0.5", got)
	}
	if got := dm.Level(100, 0); got != 1 {
		t.Errorf("late difficulty = %.2f, want 1", got)
	}

	dm.SetEnabled(false)
	if got := dm.Level(100, 0); got != 0 {
		t.Errorf("disabled difficulty = %.2f, want initial 0", got)
	}
}

func TestDifficultySpeedStepMatchesSpeed(t *testing.T) {
	cfg := DefaultBomberConfig().Difficulty
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)
	base := 1.5

	step := dm.SpeedStep(base)
	for lvl := 1; lvl <= cfg.Progression.MaxAt+1; lvl++ {
		want := dm.Speed(base, lvl, 0)
		got := dm.Speed(base, 1, 0) + float64(lvl-1)*step
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("level %d: linear speed %.4f, want %.4f", lvl, got, want)
		}
	}
	if math.Abs(dm.MaxSpeed(base)-base*(1+cfg.Scaling.SpeedMultiplier)) > 1e-9 {
		t.Errorf("max speed = %.4f", dm.MaxSpeed(base))
	}
}

func TestDifficultyExtraEnemies(t *testing.T) {
	cfg := DefaultBomberConfig().Difficulty
	cfg.Scaling.ExtraEnemies = 4
	dm := NewDifficultyManager(cfg)
	if got := dm.ExtraEnemies(1, 0); got != 0 {
		t.Errorf("extra enemies on level 1 = %d, want 0", got)
	}
	if got := dm.ExtraEnemies(50, 0); got != 4 {
		t.Errorf("extra enemies at max = %d, want 4", got)
	}
}
