// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BomberConfig contains all configuration for the bomb arena game.
type BomberConfig struct {
	Arena      BomberArena      `yaml:"arena"`
	Player     BomberPlayer     `yaml:"player"`
	Enemies    BomberEnemies    `yaml:"enemies"`
	Bombs      BomberBombs      `yaml:"bombs"`
	PowerUps   BomberPowerUps   `yaml:"powerups"`
	Scoring    BomberScoring    `yaml:"scoring"`
	Session    BomberSession    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BomberArena defines level generation parameters.
type BomberArena struct {
	BreakableChance float64 `yaml:"breakable_chance"` // Chance a free cell gets a breakable wall
}

// BomberPlayer defines the player's starting stats and their caps.
type BomberPlayer struct {
	Speed          float64 `yaml:"speed"` // Cells per second
	Lives          int     `yaml:"lives"`
	Bombs          int     `yaml:"bombs"`
	Range          int     `yaml:"range"`
	InvincibleTime float64 `yaml:"invincible_seconds"`
	RespawnOnHit   bool    `yaml:"respawn_on_hit"`

	MaxBombs  int     `yaml:"max_bombs"`
	MaxRange  int     `yaml:"max_range"`
	MaxSpeed  float64 `yaml:"max_speed"`
	SpeedStep float64 `yaml:"speed_step"`
	MaxLives  int     `yaml:"max_lives"`
}

// BomberEnemies defines enemy population and movement.
type BomberEnemies struct {
	BaseCount     int     `yaml:"base_count"` // Enemies on level 1
	PerLevel      int     `yaml:"per_level"`  // Added per level
	MaxCount      int     `yaml:"max_count"`
	Speed         float64 `yaml:"speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	TurnMin       float64 `yaml:"turn_min"`
	TurnMax       float64 `yaml:"turn_max"`
	ContactDamage bool    `yaml:"contact_damage"`
}

// BomberBombs defines bomb timing.
type BomberBombs struct {
	FuseTime      float64 `yaml:"fuse_seconds"`
	ExplosionTime float64 `yaml:"explosion_seconds"`
}

// BomberPowerUps defines drop chance and kind weights.
type BomberPowerUps struct {
	Chance  float64       `yaml:"chance"`
	Weights PowerUpWeight `yaml:"weights"`
}

// PowerUpWeight is the relative drop weight of each power-up kind.
type PowerUpWeight struct {
	Bomb  int `yaml:"bomb"`
	Range int `yaml:"range"`
	Speed int `yaml:"speed"`
	Life  int `yaml:"life"`
}

// BomberScoring defines point awards.
type BomberScoring struct {
	Wall       int `yaml:"wall"`
	Enemy      int `yaml:"enemy"`
	PowerUp    int `yaml:"powerup"`
	LevelBonus int `yaml:"level_bonus"`
}

// BomberSession defines session timing and host input handling.
type BomberSession struct {
	TransitionTime float64 `yaml:"transition_seconds"`
	MaxTickDelta   float64 `yaml:"max_tick_delta"`
	HoldTicks      int     `yaml:"hold_ticks"` // Ticks a direction stays held after its last key event
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Enemies added on top of the base count at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
