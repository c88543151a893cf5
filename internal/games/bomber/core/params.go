package core

// GridSize is the side length of the square arena in cells.
const GridSize = 13

// ActorHalfSize is the half-extent of player and enemy collision boxes.
// Slightly under half a cell so actors fit through one-cell corridors.
const ActorHalfSize = 0.4

// Params holds every tunable of the simulation.
// Durations are in seconds, speeds in cells per second.
type Params struct {
	// Level generation
	BreakableChance float64 // Probability an eligible cell becomes breakable

	// Player
	PlayerSpeed    float64
	PlayerLives    int
	PlayerBombs    int
	PlayerRange    int
	InvincibleTime float64
	RespawnOnHit   bool // Move the player back to the start cell after a hit

	// Caps for power-up stats
	MaxBombs  int
	MaxRange  int
	MaxSpeed  float64
	SpeedStep float64
	MaxLives  int

	// Enemies
	EnemyBase      int     // Enemies on level 1
	EnemyPerLevel  int     // Additional enemies per level
	EnemyMax       int     // Upper bound on enemies per level
	EnemySpeed     float64 // Speed on level 1
	EnemySpeedStep float64 // Added per level
	EnemyMaxSpeed  float64
	EnemyTurnMin   float64 // Shortest time an enemy holds a direction
	EnemyTurnMax   float64 // Longest time an enemy holds a direction
	EnemyContact   bool    // Touching an enemy hurts the player

	// Bombs
	BombFuse          float64
	ExplosionLifetime float64

	// Power-ups
	PowerUpChance float64
	WeightBomb    int
	WeightRange   int
	WeightSpeed   int
	WeightLife    int

	// Scoring
	WallScore    int
	EnemyScore   int
	PowerUpScore int
	LevelBonus   int

	// Session
	TransitionDelay float64
	MaxTickDelta    float64 // Elapsed time per tick is clamped to this
}

// DefaultParams returns the canonical tuning.
func DefaultParams() Params {
	return Params{
		BreakableChance: 0.45,

		PlayerSpeed:    3.0,
		PlayerLives:    3,
		PlayerBombs:    1,
		PlayerRange:    2,
		InvincibleTime: 2.0,
		RespawnOnHit:   false,

		MaxBombs:  5,
		MaxRange:  5,
		MaxSpeed:  6.0,
		SpeedStep: 0.5,
		MaxLives:  5,

		EnemyBase:      2,
		EnemyPerLevel:  1,
		EnemyMax:       6,
		EnemySpeed:     1.5,
		EnemySpeedStep: 0.15,
		EnemyMaxSpeed:  3.0,
		EnemyTurnMin:   0.5,
		EnemyTurnMax:   2.0,
		EnemyContact:   true,

		BombFuse:          3.0,
		ExplosionLifetime: 0.5,

		PowerUpChance: 0.2,
		WeightBomb:    40,
		WeightRange:   40,
		WeightSpeed:   15,
		WeightLife:    5,

		WallScore:    10,
		EnemyScore:   100,
		PowerUpScore: 50,
		LevelBonus:   500,

		TransitionDelay: 2.0,
		MaxTickDelta:    0.1,
	}
}

// EnemyCount returns how many enemies spawn on the given level.
func (p Params) EnemyCount(level int) int {
	if level < 1 {
		level = 1
	}
	n := p.EnemyBase + (level-1)*p.EnemyPerLevel
	if p.EnemyMax > 0 && n > p.EnemyMax {
		n = p.EnemyMax
	}
	if n < 0 {
		n = 0
	}
	return n
}

// EnemySpeedFor returns enemy movement speed on the given level.
func (p Params) EnemySpeedFor(level int) float64 {
	if level < 1 {
		level = 1
	}
	s := p.EnemySpeed + float64(level-1)*p.EnemySpeedStep
	if p.EnemyMaxSpeed > 0 && s > p.EnemyMaxSpeed {
		s = p.EnemyMaxSpeed
	}
	return s
}
