package core

import "math/rand"

// PlayerStart is the cell the player spawns on at the start of every level.
var PlayerStart = C(1, 1)

// SpawnPoints lists enemy spawn cells, far from the player start first.
// When a level has more enemies than spawn points the list is reused.
var SpawnPoints = []Coord{
	C(11, 11),
	C(11, 1),
	C(1, 11),
	C(7, 7),
	C(11, 7),
	C(7, 11),
}

// Center is the middle cell of the arena.
var Center = C(GridSize/2, GridSize/2)

// LevelParams configures one run of the level generator.
type LevelParams struct {
	BreakableChance float64
	EnemyCount      int
}

// Layout is a generated level: terrain plus where actors begin.
type Layout struct {
	Grid        *Grid
	PlayerStart Coord
	Spawns      []Coord // One entry per enemy
}

// Generate builds a level in a single draw. Border and pillars are fixed and
// leave every free cell connected, so each spawn can be reached from the
// player start once breakable walls are blown away. Breakables are only
// drawn on free cells outside the safe zones.
func Generate(rng *rand.Rand, p LevelParams) Layout {
	return Layout{
		Grid:        drawGrid(rng, p.BreakableChance, safeCells()),
		PlayerStart: PlayerStart,
		Spawns:      spawnsFor(p.EnemyCount),
	}
}

// IsPillar reports whether c is one of the fixed interior pillars.
func IsPillar(c Coord) bool {
	return c.X >= 2 && c.X <= GridSize-3 && c.Y >= 2 && c.Y <= GridSize-3 &&
		c.X%2 == 0 && c.Y%2 == 0
}

func spawnsFor(n int) []Coord {
	if n <= 0 {
		return nil
	}
	out := make([]Coord, n)
	for i := range out {
		out[i] = SpawnPoints[i%len(SpawnPoints)]
	}
	return out
}

// safeCells returns the cells that must stay clear of breakable walls.
func safeCells() map[Coord]bool {
	safe := make(map[Coord]bool)
	safe[PlayerStart] = true
	safe[PlayerStart.Step(DirRight)] = true
	safe[PlayerStart.Step(DirDown)] = true
	for _, d := range Dirs {
		if n := Center.Step(d); !IsPillar(n) {
			safe[n] = true
		}
	}
	// All spawn points stay clear, not only the ones used this level,
	// so enemy count does not change the terrain draw.
	for _, s := range SpawnPoints {
		safe[s] = true
		for _, d := range Dirs {
			n := s.Step(d)
			if !IsPillar(n) && !isBorder(n) {
				safe[n] = true
			}
		}
	}
	return safe
}

func isBorder(c Coord) bool {
	return c.X <= 0 || c.Y <= 0 || c.X >= GridSize-1 || c.Y >= GridSize-1
}

func drawGrid(rng *rand.Rand, chance float64, safe map[Coord]bool) *Grid {
	g := NewGrid(GridSize)
	// Row-major so the same seed always yields the same layout.
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := C(x, y)
			switch {
			case isBorder(c), IsPillar(c):
				g.SetWall(c)
			case safe[c]:
			default:
				if rng.Float64() < chance {
					g.SetBreakable(c)
				}
			}
		}
	}
	return g
}
