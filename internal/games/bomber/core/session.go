// Package core implements the bomb arena simulation: terrain, actors, bombs,
// blasts, pickups and the session state machine. It has no knowledge of
// terminals or rendering; hosts drive it with Tick and read snapshots.
package core

import "math/rand"

// Phase is the session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePlayerDead
	PhaseGameOver
	PhaseEnemiesCleared
	PhaseLevelTransition
	PhasePaused
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePlayerDead:
		return "player_dead"
	case PhaseGameOver:
		return "game_over"
	case PhaseEnemiesCleared:
		return "enemies_cleared"
	case PhaseLevelTransition:
		return "level_transition"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Session owns every entity of one game and advances it tick by tick.
// It is not safe for concurrent use.
type Session struct {
	params Params
	seed   int64
	rng    *rand.Rand

	level      int
	phase      Phase
	resumeTo   Phase
	hidden     bool
	transition float64
	ticks      uint64

	layout     Layout
	grid       *Grid
	player     Player
	enemies    []*Enemy
	nextEnemy  int
	bombs      []*Bomb
	explosions []Explosion
	powerUps   []PowerUp

	input Input
	hooks []Hooks
}

// NewSession creates an idle session with level 1 generated for preview.
func NewSession(params Params, seed int64) *Session {
	s := &Session{
		params: params,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		phase:  PhaseIdle,
	}
	s.player = newPlayer(params, PlayerStart)
	s.ResetLevel(1)
	return s
}

// Params returns the session tuning.
func (s *Session) Params() Params { return s.params }

// Seed returns the seed the next StartSession will use.
func (s *Session) Seed() int64 { return s.seed }

// Reseed changes the seed used by the next StartSession.
func (s *Session) Reseed(seed int64) { s.seed = seed }

// Level returns the current level number, starting at 1.
func (s *Session) Level() int { return s.level }

// Phase returns the current session state.
func (s *Session) Phase() Phase { return s.phase }

// Ticks returns the number of simulated ticks since the session started.
func (s *Session) Ticks() uint64 { return s.ticks }

// Layout returns the generated layout of the current level.
// Its grid reflects the terrain at generation time only.
func (s *Session) Layout() Layout { return s.layout }

// TransitionRemaining returns the seconds left before the next level starts.
func (s *Session) TransitionRemaining() float64 { return s.transition }

// IsRunning returns true while the simulation is advancing gameplay.
func (s *Session) IsRunning() bool { return s.phase == PhaseRunning }

// IsGameOver returns true once the player has run out of lives.
func (s *Session) IsGameOver() bool { return s.phase == PhaseGameOver }

// StartSession begins a fresh game on level 1.
func (s *Session) StartSession() {
	s.StartSessionAt(1)
}

// StartSessionAt begins a fresh game on the given level.
// The random source is reseeded so identical seeds replay identically.
func (s *Session) StartSessionAt(level int) {
	s.rng = rand.New(rand.NewSource(s.seed))
	s.player = newPlayer(s.params, PlayerStart)
	s.ticks = 0
	s.hidden = false
	s.ResetLevel(level)
	s.phase = PhaseRunning
	s.emit(func(h Hooks) {
		if h.OnScoreChanged != nil {
			h.OnScoreChanged(0)
		}
	})
}

// ResetLevel generates level n and places the player at the start with base
// stats. Lives and score carry over; the phase is left alone.
func (s *Session) ResetLevel(n int) {
	if n < 1 {
		n = 1
	}
	s.level = n
	s.layout = Generate(s.rng, LevelParams{
		BreakableChance: s.params.BreakableChance,
		EnemyCount:      s.params.EnemyCount(n),
	})
	s.grid = s.layout.Grid.Clone()

	lives, score := s.player.Lives, s.player.Score
	s.player = newPlayer(s.params, s.layout.PlayerStart)
	s.player.Lives = lives
	s.player.Score = score

	s.bombs = nil
	s.explosions = nil
	s.powerUps = nil
	s.input = Input{}
	s.transition = 0

	s.enemies = s.enemies[:0]
	speed := s.params.EnemySpeedFor(n)
	for _, sp := range s.layout.Spawns {
		s.nextEnemy++
		e := &Enemy{ID: s.nextEnemy, Pos: sp.Center(), Speed: speed, Alive: true}
		s.turnEnemy(e, DirNone)
		s.enemies = append(s.enemies, e)
	}

	s.emit(func(h Hooks) {
		if h.OnLevelStart != nil {
			h.OnLevelStart(n)
		}
	})
}

// SetInput records the player's intent for the next tick.
// A bomb request stays pending until a tick consumes it.
func (s *Session) SetInput(in Input) {
	pending := s.input.PlaceBomb
	s.input = in
	s.input.PlaceBomb = in.PlaceBomb || pending
}

// Tick advances the simulation by dt seconds, clamped to Params.MaxTickDelta.
func (s *Session) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if s.params.MaxTickDelta > 0 && dt > s.params.MaxTickDelta {
		dt = s.params.MaxTickDelta
	}

	switch s.phase {
	case PhaseRunning:
		s.ticks++
		s.step(dt)
	case PhaseEnemiesCleared, PhaseLevelTransition:
		s.ticks++
		s.phase = PhaseLevelTransition
		s.updateExplosions(dt)
		s.transition -= dt
		if s.transition <= 0 {
			s.ResetLevel(s.level + 1)
			s.phase = PhaseRunning
		}
	}
	s.input.PlaceBomb = false
}

func (s *Session) step(dt float64) {
	s.updatePlayer(dt)
	if s.phase != PhaseRunning {
		return
	}
	if s.input.PlaceBomb {
		s.PlaceBomb()
	}

	s.updateEnemies(dt)
	if s.phase != PhaseRunning {
		return
	}

	s.updateExplosions(dt)
	s.updateBombs(dt)
	s.compactEnemies()
	if s.phase != PhaseRunning {
		return
	}

	s.collectPowerUps()
	s.checkLevelCleared()
}

// hitPlayer costs a life unless the player is invincible.
func (s *Session) hitPlayer() {
	if s.phase != PhaseRunning || s.player.IsInvincible() {
		return
	}
	pl := &s.player
	pl.Lives--
	pl.Invincible = s.params.InvincibleTime
	lives := pl.Lives
	s.emit(func(h Hooks) {
		if h.OnPlayerHit != nil {
			h.OnPlayerHit(lives)
		}
	})

	if pl.Lives <= 0 {
		pl.Lives = 0
		s.phase = PhasePlayerDead
		s.input = Input{}
		s.phase = PhaseGameOver
		score := pl.Score
		s.emit(func(h Hooks) {
			if h.OnGameOver != nil {
				h.OnGameOver(score)
			}
		})
		return
	}

	if s.params.RespawnOnHit {
		pl.Pos = s.layout.PlayerStart.Center()
	}
}

func (s *Session) checkLevelCleared() {
	if len(s.enemies) > 0 {
		return
	}
	s.phase = PhaseEnemiesCleared
	s.transition = s.params.TransitionDelay
	s.addScore(s.params.LevelBonus)
	level, score := s.level, s.player.Score
	s.emit(func(h Hooks) {
		if h.OnLevelComplete != nil {
			h.OnLevelComplete(level, score)
		}
	})
}

func (s *Session) addScore(n int) {
	if n == 0 || s.phase == PhaseGameOver {
		return
	}
	s.player.Score += n
	score := s.player.Score
	s.emit(func(h Hooks) {
		if h.OnScoreChanged != nil {
			h.OnScoreChanged(score)
		}
	})
}

// Pause freezes an active session.
func (s *Session) Pause() {
	switch s.phase {
	case PhaseRunning, PhaseEnemiesCleared, PhaseLevelTransition:
		s.resumeTo = s.phase
		s.phase = PhasePaused
	}
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.phase != PhasePaused {
		return
	}
	s.phase = s.resumeTo
	s.hidden = false
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() {
	if s.phase == PhasePaused {
		s.Resume()
		return
	}
	s.Pause()
}

// SetVisible is the host hook for losing and regaining the screen.
// Hiding pauses the session; showing resumes it only if hiding paused it.
func (s *Session) SetVisible(visible bool) {
	if !visible {
		if s.phase != PhasePaused {
			s.Pause()
			s.hidden = s.phase == PhasePaused
		}
		return
	}
	if s.hidden {
		s.Resume()
	}
}

// Stop abandons the session. Ticks do nothing until the next StartSession.
func (s *Session) Stop() {
	s.phase = PhaseIdle
	s.input = Input{}
	s.hidden = false
}
