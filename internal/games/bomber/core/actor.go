package core

import platformcore "github.com/vovakirdan/bomb-arcade/internal/core"

// Player is the single controllable actor.
type Player struct {
	Pos        platformcore.Vec
	Speed      float64
	MaxBombs   int
	Range      int
	Lives      int
	Score      int
	Invincible float64 // Seconds of hit immunity remaining
	Facing     Dir
}

// Cell returns the cell the player occupies.
func (p *Player) Cell() Coord {
	return CellOf(p.Pos)
}

// Box returns the player's collision box.
func (p *Player) Box() platformcore.Box {
	return platformcore.BoxAround(p.Pos, ActorHalfSize)
}

// IsInvincible returns true while the post-hit immunity window is open.
func (p *Player) IsInvincible() bool {
	return p.Invincible > 0
}

// Enemy is a wandering hostile actor.
type Enemy struct {
	ID    int
	Pos   platformcore.Vec
	Speed float64
	Dir   Dir
	Turn  float64 // Seconds until the next direction change
	Alive bool
}

// Cell returns the cell the enemy occupies.
func (e *Enemy) Cell() Coord {
	return CellOf(e.Pos)
}

// Box returns the enemy's collision box.
func (e *Enemy) Box() platformcore.Box {
	return platformcore.BoxAround(e.Pos, ActorHalfSize)
}

// Input is the player's intent for the next tick.
type Input struct {
	Move      platformcore.Vec // Desired direction; longer than unit is normalized
	PlaceBomb bool             // Edge-triggered, consumed by the next tick
}

func newPlayer(p Params, start Coord) Player {
	return Player{
		Pos:      start.Center(),
		Speed:    p.PlayerSpeed,
		MaxBombs: p.PlayerBombs,
		Range:    p.PlayerRange,
		Lives:    p.PlayerLives,
		Facing:   DirDown,
	}
}

// updatePlayer moves the player by the held input.
func (s *Session) updatePlayer(dt float64) {
	pl := &s.player
	if pl.Invincible > 0 {
		pl.Invincible -= dt
		if pl.Invincible < 0 {
			pl.Invincible = 0
		}
	}

	move := s.input.Move.Normalized()
	if move.X != 0 || move.Y != 0 {
		pl.Facing = DirOf(move)
		pl.Pos = s.moveActor(pl.Pos, move.Scale(pl.Speed*dt))
	}

	if s.explosionAt(pl.Cell()) {
		s.hitPlayer()
	}
}

// updateEnemies moves every live enemy and applies hazards.
func (s *Session) updateEnemies(dt float64) {
	for _, e := range s.enemies {
		if s.phase != PhaseRunning {
			break
		}
		if !e.Alive {
			continue
		}

		e.Turn -= dt
		if e.Turn <= 0 || e.Dir == DirNone {
			s.turnEnemy(e, DirNone)
		}

		if e.Dir != DirNone {
			want := e.Dir.Vec().Scale(e.Speed * dt)
			before := e.Pos
			e.Pos = s.moveActor(e.Pos, want)
			e.Pos = alignToLane(e.Pos, e.Dir, e.Speed*dt)
			moved := e.Pos.Sub(before)
			// Blocked: less than half the intended travel along the heading.
			if moved.X*want.X+moved.Y*want.Y < 0.5*(want.X*want.X+want.Y*want.Y) {
				s.turnEnemy(e, e.Dir)
			}
		}

		if s.explosionAt(e.Cell()) {
			s.destroyEnemy(e)
			continue
		}
		if s.params.EnemyContact && e.Box().Overlaps(s.player.Box()) {
			s.hitPlayer()
		}
	}
	s.compactEnemies()
}

// turnEnemy picks a new heading among the open neighbouring cells,
// avoiding the blocked direction when any alternative exists.
func (s *Session) turnEnemy(e *Enemy, blocked Dir) {
	here := e.Cell()
	var open []Dir
	for _, d := range Dirs {
		if d == blocked {
			continue
		}
		n := here.Step(d)
		if s.grid.IsSolid(n) || s.bombAt(n) != nil {
			continue
		}
		open = append(open, d)
	}

	switch {
	case len(open) > 0:
		e.Dir = open[s.rng.Intn(len(open))]
	case blocked != DirNone:
		e.Dir = opposite(blocked)
	default:
		e.Dir = DirNone
	}
	e.Turn = s.params.EnemyTurnMin + s.rng.Float64()*(s.params.EnemyTurnMax-s.params.EnemyTurnMin)
}

func opposite(d Dir) Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// alignToLane eases the coordinate perpendicular to travel toward the
// current cell's centre line so enemies stay in corridors.
func alignToLane(pos platformcore.Vec, d Dir, step float64) platformcore.Vec {
	c := CellOf(pos).Center()
	switch d {
	case DirLeft, DirRight:
		pos.Y = approach(pos.Y, c.Y, step)
	case DirUp, DirDown:
		pos.X = approach(pos.X, c.X, step)
	}
	return pos
}

func approach(v, target, step float64) float64 {
	if v < target {
		v += step
		if v > target {
			v = target
		}
	} else if v > target {
		v -= step
		if v < target {
			v = target
		}
	}
	return v
}

func (s *Session) destroyEnemy(e *Enemy) {
	if !e.Alive || s.phase == PhaseGameOver {
		return
	}
	e.Alive = false
	s.addScore(s.params.EnemyScore)
	s.emit(func(h Hooks) {
		if h.OnEnemyDestroyed != nil {
			h.OnEnemyDestroyed(e.ID, e.Cell())
		}
	})
}

// compactEnemies drops destroyed enemies from the live list.
func (s *Session) compactEnemies() {
	live := s.enemies[:0]
	for _, e := range s.enemies {
		if e.Alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = live
}
