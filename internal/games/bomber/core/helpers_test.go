package core

import (
	"math"
	"testing"
)

// openArena returns a running session on a grid with only the border ring,
// no pillars and no breakables. A stationary sentinel enemy sits in the far
// corner so the level does not end on the first tick.
func openArena(t *testing.T, p Params) *Session {
	t.Helper()
	p.PowerUpChance = 0
	s := NewSession(p, 1)
	s.StartSession()

	g := NewGrid(GridSize)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if isBorder(C(x, y)) {
				g.SetWall(C(x, y))
			}
		}
	}
	s.grid = g
	s.enemies = nil
	s.bombs = nil
	s.explosions = nil
	s.powerUps = nil
	addEnemy(s, C(11, 11))
	return s
}

// addEnemy places a stationary enemy on c.
func addEnemy(s *Session, c Coord) *Enemy {
	s.nextEnemy++
	e := &Enemy{ID: s.nextEnemy, Pos: c.Center(), Speed: 0, Dir: DirNone, Turn: math.MaxFloat64, Alive: true}
	s.enemies = append(s.enemies, e)
	return e
}

func putPlayer(s *Session, c Coord) {
	s.player.Pos = c.Center()
}

func addBomb(s *Session, c Coord, fuse float64, rng int) {
	s.bombs = append(s.bombs, &Bomb{Cell: c, Fuse: fuse, Range: rng})
}

func explosionSet(s *Session) map[Coord]bool {
	out := make(map[Coord]bool)
	for _, e := range s.explosions {
		out[e.Cell] = true
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
