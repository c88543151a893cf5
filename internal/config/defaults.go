package config

import (
	_ "embed"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomb arena configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Arena: BomberArena{
			BreakableChance: 0.45,
		},
		Player: BomberPlayer{
			Speed:          3.0,
			Lives:          3,
			Bombs:          1,
			Range:          2,
			InvincibleTime: 2.0,
			RespawnOnHit:   false,
			MaxBombs:       5,
			MaxRange:       5,
			MaxSpeed:       6.0,
			SpeedStep:      0.5,
			MaxLives:       5,
		},
		Enemies: BomberEnemies{
			BaseCount:     2,
			PerLevel:      1,
			MaxCount:      6,
			Speed:         1.5,
			MaxSpeed:      3.0,
			TurnMin:       0.5,
			TurnMax:       2.0,
			ContactDamage: true,
		},
		Bombs: BomberBombs{
			FuseTime:      3.0,
			ExplosionTime: 0.5,
		},
		PowerUps: BomberPowerUps{
			Chance: 0.2,
			Weights: PowerUpWeight{
				Bomb:  40,
				Range: 40,
				Speed: 15,
				Life:  5,
			},
		},
		Scoring: BomberScoring{
			Wall:       10,
			Enemy:      100,
			PowerUp:    50,
			LevelBonus: 500,
		},
		Session: BomberSession{
			TransitionTime: 2.0,
			MaxTickDelta:   0.1,
			HoldTicks:      8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraEnemies:    0,
			},
		},
	}
}
