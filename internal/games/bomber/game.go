// Package bomber hosts the bomb arena engine on the arcade platform: it maps
// terminal actions onto engine input, steps the session at a fixed rate and
// draws it into a screen buffer.
package bomber

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomb-arcade/internal/config"
	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
	"github.com/vovakirdan/bomb-arcade/internal/games/bomber/core"
	"github.com/vovakirdan/bomb-arcade/internal/registry"
)

// Variant selects a rule set.
type Variant string

const (
	// VariantStandard keeps the player in place when hit.
	VariantStandard Variant = "standard"
	// VariantClassic sends the player back to the start cell when hit and
	// only blasts hurt.
	VariantClassic Variant = "classic"
)

// Game implements registry.Game for the bomb arena.
type Game struct {
	variant Variant

	cfg     config.BomberConfig
	params  core.Params
	session *core.Session
	input   *holdInput
	fx      *effects

	rng      *rand.Rand // Seeds for restarts
	tickSecs float64

	levelChoice  int    // Per-instance start level, overrides SetStartLevel
	presetChoice string // Per-instance preset, overrides SetDifficultyPreset
	startLevel   int
	maxLevel     int
	tick         uint64

	screenW  int
	screenH  int
	tickRate int
	tooSmall bool
}

// Package-level settings applied on the next Reset.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
	logger             = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the level the next game starts on. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game with the standard rules.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a game with the classic rules.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register("bomber", func() registry.Game {
		return New()
	})
	registry.Register("bomber_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "bomber_classic"
	}
	return "bomber"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Bomb Arcade (Classic)"
	}
	return "Bomb Arcade"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Back to the start on every hit, only blasts hurt"
	}
	return "Blow up walls and enemies in a 13x13 arena"
}

// Reset loads config and prepares an idle session. The first Bomb or
// Confirm press starts play.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	presetName := difficultyPreset
	if g.presetChoice != "" {
		presetName = g.presetChoice
	}
	bc, preset := loadConfig(presetName)

	g.cfg = bc
	g.params = paramsFromConfig(bc, g.variant)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickSecs = cfg.TickSeconds()
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = tooSmall(g.screenW, g.screenH)
	g.tick = 0
	g.maxLevel = 0

	g.startLevel = 1
	if g.levelChoice > 0 {
		g.startLevel = g.levelChoice
	} else if selectedStartLevel > 0 {
		g.startLevel = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}

	g.input = newHoldInput(bc.Session.HoldTicks)
	g.fx = newEffects()
	g.session = core.NewSession(g.params, cfg.Seed)
	g.session.Subscribe(logHooks(logger, g.ID()))
	g.session.Subscribe(g.effectHooks())

	logger.Debug("game reset", "game", g.ID(), "seed", cfg.Seed, "preset", preset, "start_level", g.startLevel)
}

// start begins play on the selected start level.
func (g *Game) start() {
	g.input.reset()
	g.session.StartSessionAt(g.startLevel)
	g.maxLevel = g.session.Level()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.session.IsGameOver() {
		g.session.Reseed(g.rng.Int63())
		g.fx = newEffects()
		g.start()
		logger.Debug("game restarted", "game", g.ID(), "seed", g.session.Seed(), "start_level", g.startLevel)
		return platformcore.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if g.session.Phase() == core.PhaseIdle {
		if in.Has(platformcore.ActionBomb) || in.Has(platformcore.ActionConfirm) {
			g.start()
		}
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.session.TogglePause()
		g.input.reset()
	}
	if g.session.Phase() == core.PhasePaused {
		return platformcore.StepResult{State: g.State()}
	}

	dx, dy := g.input.update(in)
	g.session.SetInput(core.Input{
		Move:      platformcore.V(float64(dx), float64(dy)),
		PlaceBomb: in.Has(platformcore.ActionBomb),
	})
	g.session.Tick(g.tickSecs)
	g.fx.update(g.tickSecs)

	if lvl := g.session.Level(); lvl > g.maxLevel && !g.session.IsGameOver() {
		g.maxLevel = lvl
	}

	return platformcore.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.session.PlayerView().Score,
		Level:    g.maxLevel,
		GameOver: g.session.IsGameOver(),
		Paused:   g.session.Phase() == core.PhasePaused,
	}
}

// SelectStartLevel makes this instance start on level, including restarts.
func (g *Game) SelectStartLevel(level int) {
	g.levelChoice = max(level, 0)
}

// SelectDifficulty sets this instance's difficulty preset.
func (g *Game) SelectDifficulty(preset string) {
	g.presetChoice = preset
}

// Resize adapts to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = tooSmall(w, h)
	if g.tooSmall && g.session != nil {
		g.session.Pause()
	}
}

func tooSmall(w, h int) bool {
	return w < minScreenW || h < minScreenH
}

// SetVisible pauses the session while the host cannot show it.
func (g *Game) SetVisible(visible bool) {
	if g.session != nil {
		g.session.SetVisible(visible)
	}
}

// Session exposes the running engine for inspection.
func (g *Game) Session() *core.Session {
	return g.session
}

// loadConfig reads the bomber config and applies the selected preset.
// Problems are logged and fall back to defaults.
func loadConfig(presetName string) (config.BomberConfig, config.DifficultyPreset) {
	bc, err := config.LoadBomber(configPath)
	if err != nil {
		logger.Warn("using default bomber config", "error", err)
	}
	preset, ok := config.ParsePreset(presetName)
	if !ok {
		logger.Warn("unknown difficulty preset", "preset", presetName)
		preset = config.DifficultyNormal
	}
	config.ApplyBomberPreset(&bc, preset)
	return bc, preset
}

// paramsFromConfig maps loaded config onto engine tuning.
func paramsFromConfig(bc config.BomberConfig, v Variant) core.Params {
	dm := config.NewDifficultyManager(bc.Difficulty)
	p := core.DefaultParams()

	p.BreakableChance = bc.Arena.BreakableChance

	p.PlayerSpeed = bc.Player.Speed
	p.PlayerLives = bc.Player.Lives
	p.PlayerBombs = bc.Player.Bombs
	p.PlayerRange = bc.Player.Range
	p.InvincibleTime = bc.Player.InvincibleTime
	p.RespawnOnHit = bc.Player.RespawnOnHit
	p.MaxBombs = bc.Player.MaxBombs
	p.MaxRange = bc.Player.MaxRange
	p.MaxSpeed = bc.Player.MaxSpeed
	p.SpeedStep = bc.Player.SpeedStep
	p.MaxLives = bc.Player.MaxLives

	// Enemy speed grows linearly with level under the difficulty curve.
	base := bc.Enemies.Speed
	p.EnemySpeed = dm.Speed(base, 1, 0)
	p.EnemySpeedStep = dm.SpeedStep(base)
	p.EnemyMaxSpeed = math.Min(bc.Enemies.MaxSpeed, dm.MaxSpeed(base))
	p.EnemyBase = bc.Enemies.BaseCount + dm.ExtraEnemies(1, 0)
	p.EnemyPerLevel = bc.Enemies.PerLevel
	p.EnemyMax = bc.Enemies.MaxCount
	p.EnemyTurnMin = bc.Enemies.TurnMin
	p.EnemyTurnMax = bc.Enemies.TurnMax
	p.EnemyContact = bc.Enemies.ContactDamage

	p.BombFuse = bc.Bombs.FuseTime
	p.ExplosionLifetime = bc.Bombs.ExplosionTime

	p.PowerUpChance = bc.PowerUps.Chance
	p.WeightBomb = bc.PowerUps.Weights.Bomb
	p.WeightRange = bc.PowerUps.Weights.Range
	p.WeightSpeed = bc.PowerUps.Weights.Speed
	p.WeightLife = bc.PowerUps.Weights.Life

	p.WallScore = bc.Scoring.Wall
	p.EnemyScore = bc.Scoring.Enemy
	p.PowerUpScore = bc.Scoring.PowerUp
	p.LevelBonus = bc.Scoring.LevelBonus

	p.TransitionDelay = bc.Session.TransitionTime
	p.MaxTickDelta = bc.Session.MaxTickDelta

	if v == VariantClassic {
		p.RespawnOnHit = true
		p.EnemyContact = false
	}
	return p
}
