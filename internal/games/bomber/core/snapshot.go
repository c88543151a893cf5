package core

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
)

// PlayerView is a read-only copy of the player's state.
type PlayerView struct {
	Pos        platformcore.Vec
	Cell       Coord
	Speed      float64
	Lives      int
	Score      int
	MaxBombs   int
	BombsUsed  int
	Range      int
	Invincible float64
	Facing     Dir
}

// EnemyView is a read-only copy of one enemy.
type EnemyView struct {
	ID    int
	Pos   platformcore.Vec
	Cell  Coord
	Dir   Dir
	Alive bool
}

// PlayerView returns the player's current state.
func (s *Session) PlayerView() PlayerView {
	pl := s.player
	return PlayerView{
		Pos:        pl.Pos,
		Cell:       pl.Cell(),
		Speed:      pl.Speed,
		Lives:      pl.Lives,
		Score:      pl.Score,
		MaxBombs:   pl.MaxBombs,
		BombsUsed:  len(s.bombs),
		Range:      pl.Range,
		Invincible: pl.Invincible,
		Facing:     pl.Facing,
	}
}

// Enemies returns the live enemies.
func (s *Session) Enemies() []EnemyView {
	out := make([]EnemyView, 0, len(s.enemies))
	for _, e := range s.enemies {
		out = append(out, EnemyView{ID: e.ID, Pos: e.Pos, Cell: e.Cell(), Dir: e.Dir, Alive: e.Alive})
	}
	return out
}

// Walls returns the indestructible cells.
func (s *Session) Walls() []Coord { return s.grid.Walls() }

// BreakableWalls returns the destructible cells still standing.
func (s *Session) BreakableWalls() []Coord { return s.grid.Breakables() }

// Bombs returns the placed bombs in placement order.
func (s *Session) Bombs() []Bomb {
	out := make([]Bomb, len(s.bombs))
	for i, b := range s.bombs {
		out[i] = *b
	}
	return out
}

// Explosions returns the active blast cells.
func (s *Session) Explosions() []Explosion {
	return append([]Explosion(nil), s.explosions...)
}

// PowerUps returns the uncollected power-ups.
func (s *Session) PowerUps() []PowerUp {
	return append([]PowerUp(nil), s.powerUps...)
}

// IsWall returns true if c is indestructible.
func (s *Session) IsWall(c Coord) bool { return s.grid.IsWall(c) }

// IsBreakable returns true if c holds a destructible wall.
func (s *Session) IsBreakable(c Coord) bool { return s.grid.IsBreakable(c) }

// BombAt returns the bomb on c, if any.
func (s *Session) BombAt(c Coord) (Bomb, bool) {
	if b := s.bombAt(c); b != nil {
		return *b, true
	}
	return Bomb{}, false
}

// ExplosionAt returns true if c is part of an active blast.
func (s *Session) ExplosionAt(c Coord) bool { return s.explosionAt(c) }

// PowerUpAt returns the power-up on c, if any.
func (s *Session) PowerUpAt(c Coord) (PowerUp, bool) {
	for _, pu := range s.powerUps {
		if pu.Cell == c {
			return pu, true
		}
	}
	return PowerUp{}, false
}

// ActorAt reports whether the player or a live enemy occupies c.
func (s *Session) ActorAt(c Coord) bool {
	if s.player.Cell() == c {
		return true
	}
	for _, e := range s.enemies {
		if e.Alive && e.Cell() == c {
			return true
		}
	}
	return false
}

// Snapshot is a complete copy of the session state.
type Snapshot struct {
	Tick       uint64
	Level      int
	Phase      Phase
	Transition float64
	Player     PlayerView
	Enemies    []EnemyView
	Walls      []Coord
	Breakables []Coord
	Bombs      []Bomb
	Explosions []Explosion
	PowerUps   []PowerUp
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.ticks,
		Level:      s.level,
		Phase:      s.phase,
		Transition: s.transition,
		Player:     s.PlayerView(),
		Enemies:    s.Enemies(),
		Walls:      s.Walls(),
		Breakables: s.BreakableWalls(),
		Bombs:      s.Bombs(),
		Explosions: s.Explosions(),
		PowerUps:   s.PowerUps(),
	}
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v))) //#nosec G115 -- hash input only
		h.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putCoord := func(c Coord) {
		putInt(c.X)
		putInt(c.Y)
	}

	binary.LittleEndian.PutUint64(buf[:], snap.Tick)
	h.Write(buf[:])
	putInt(snap.Level)
	putInt(int(snap.Phase))
	putFloat(snap.Transition)

	p := snap.Player
	putFloat(p.Pos.X)
	putFloat(p.Pos.Y)
	putFloat(p.Speed)
	putInt(p.Lives)
	putInt(p.Score)
	putInt(p.MaxBombs)
	putInt(p.BombsUsed)
	putInt(p.Range)
	putFloat(p.Invincible)
	putInt(int(p.Facing))

	putInt(len(snap.Enemies))
	for _, e := range snap.Enemies {
		putInt(e.ID)
		putFloat(e.Pos.X)
		putFloat(e.Pos.Y)
		putInt(int(e.Dir))
	}
	putInt(len(snap.Walls))
	for _, c := range snap.Walls {
		putCoord(c)
	}
	putInt(len(snap.Breakables))
	for _, c := range snap.Breakables {
		putCoord(c)
	}
	putInt(len(snap.Bombs))
	for _, b := range snap.Bombs {
		putCoord(b.Cell)
		putFloat(b.Fuse)
		putInt(b.Range)
	}
	putInt(len(snap.Explosions))
	for _, e := range snap.Explosions {
		putCoord(e.Cell)
		putFloat(e.Remaining)
	}
	putInt(len(snap.PowerUps))
	for _, pu := range snap.PowerUps {
		putCoord(pu.Cell)
		putInt(int(pu.Kind))
	}
	return h.Sum64()
}
