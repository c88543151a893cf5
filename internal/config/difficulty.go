package config

import "math"

// DifficultyManager calculates dynamic game parameters from level reached or score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for the given game level and score.
// Game levels start at 1.
func (d *DifficultyManager) Level(gameLevel, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(gameLevel-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns base scaled by the difficulty at the given level and score.
func (d *DifficultyManager) Speed(base float64, gameLevel, score int) float64 {
	return base * (1.0 + d.Level(gameLevel, score)*d.cfg.Scaling.SpeedMultiplier)
}

// MaxSpeed returns base scaled at full difficulty.
func (d *DifficultyManager) MaxSpeed(base float64) float64 {
	if !d.IsEnabled() {
		return d.Speed(base, 1, 0)
	}
	return base * (1.0 + d.cfg.Scaling.SpeedMultiplier)
}

// SpeedStep returns how much Speed grows per game level under level progression.
// Other progression types do not grow with level and return zero.
func (d *DifficultyManager) SpeedStep(base float64) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	return base * d.cfg.Scaling.SpeedMultiplier * (1.0 - d.initialLevel) / maxAt
}

// ExtraEnemies returns how many enemies to add on top of the base count.
func (d *DifficultyManager) ExtraEnemies(gameLevel, score int) int {
	return int(math.Round(d.Level(gameLevel, score) * float64(d.cfg.Scaling.ExtraEnemies)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
