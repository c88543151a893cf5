package core

import (
	"math/rand"
	"testing"

	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
)

func defaultLevelParams(enemies int) LevelParams {
	p := DefaultParams()
	return LevelParams{
		BreakableChance: p.BreakableChance,
		EnemyCount:      enemies,
	}
}

func TestCellOf(t *testing.T) {
	tests := []struct {
		pos  platformcore.Vec
		want Coord
	}{
		{platformcore.V(1, 1), C(1, 1)},
		{platformcore.V(1.49, 1), C(1, 1)},
		{platformcore.V(1.5, 1), C(2, 1)},
		{platformcore.V(0.51, 2.49), C(1, 2)},
		{platformcore.V(6.0, 5.5), C(6, 6)},
	}
	for _, tt := range tests {
		if got := CellOf(tt.pos); got != tt.want {
			t.Errorf("CellOf(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		l := Generate(rand.New(rand.NewSource(seed)), defaultLevelParams(3))
		for i := 0; i < GridSize; i++ {
			for _, c := range []Coord{C(i, 0), C(i, GridSize-1), C(0, i), C(GridSize-1, i)} {
				if !l.Grid.IsWall(c) {
					t.Fatalf("seed %d: border cell %v is not a wall", seed, c)
				}
				if l.Grid.IsBreakable(c) {
					t.Fatalf("seed %d: border cell %v is breakable", seed, c)
				}
			}
		}
	}
}

func TestGeneratePillarsAndDisjointSets(t *testing.T) {
	l := Generate(rand.New(rand.NewSource(7)), defaultLevelParams(3))
	for y := 2; y <= GridSize-3; y += 2 {
		for x := 2; x <= GridSize-3; x += 2 {
			if !l.Grid.IsWall(C(x, y)) {
				t.Errorf("pillar missing at %v", C(x, y))
			}
		}
	}
	for _, c := range l.Grid.Breakables() {
		if l.Grid.IsWall(c) {
			t.Errorf("cell %v is both wall and breakable", c)
		}
	}
}

func TestGenerateSafeStart(t *testing.T) {
	p := defaultLevelParams(6)
	p.BreakableChance = 1.0
	for seed := int64(0); seed < 20; seed++ {
		l := Generate(rand.New(rand.NewSource(seed)), p)
		for _, c := range []Coord{C(1, 1), C(2, 1), C(1, 2)} {
			if l.Grid.IsSolid(c) {
				t.Errorf("seed %d: start footprint cell %v is blocked", seed, c)
			}
		}
		for _, sp := range l.Spawns {
			if l.Grid.IsSolid(sp) {
				t.Errorf("seed %d: spawn %v is blocked", seed, sp)
			}
		}
	}
}

func TestGenerateSpawnsReachable(t *testing.T) {
	for _, chance := range []float64{0.45, 0.8, 1.0} {
		p := defaultLevelParams(6)
		p.BreakableChance = chance
		for seed := int64(0); seed < 200; seed++ {
			l := Generate(rand.New(rand.NewSource(seed)), p)
			if missing := unreachable(l.Grid, l.PlayerStart, l.Spawns); len(missing) > 0 {
				t.Fatalf("chance %.2f seed %d: unreachable spawns %v", chance, seed, missing)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(99)), defaultLevelParams(3))
	b := Generate(rand.New(rand.NewSource(99)), defaultLevelParams(3))

	ab, bb := a.Grid.Breakables(), b.Grid.Breakables()
	if len(ab) != len(bb) {
		t.Fatalf("breakable count differs: %d vs %d", len(ab), len(bb))
	}
	for i := range ab {
		if ab[i] != bb[i] {
			t.Fatalf("breakable %d differs: %v vs %v", i, ab[i], bb[i])
		}
	}
}

func TestGenerateSpawnsCycle(t *testing.T) {
	l := Generate(rand.New(rand.NewSource(1)), defaultLevelParams(len(SpawnPoints)+2))
	if len(l.Spawns) != len(SpawnPoints)+2 {
		t.Fatalf("expected %d spawns, got %d", len(SpawnPoints)+2, len(l.Spawns))
	}
	if l.Spawns[len(SpawnPoints)] != SpawnPoints[0] {
		t.Errorf("spawn list should wrap around, got %v", l.Spawns[len(SpawnPoints)])
	}
}

func TestGenerateWallsAreFixed(t *testing.T) {
	p := defaultLevelParams(3)
	p.BreakableChance = 1.0
	want := Generate(rand.New(rand.NewSource(0)), p).Grid.Walls()

	for seed := int64(1); seed < 50; seed++ {
		got := Generate(rand.New(rand.NewSource(seed)), p).Grid.Walls()
		if len(got) != len(want) {
			t.Fatalf("seed %d: %d walls, want %d", seed, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("seed %d: wall %d at %v, want %v", seed, i, got[i], want[i])
			}
		}
	}
}

func TestWallLatticeConnectsFreeCells(t *testing.T) {
	l := Generate(rand.New(rand.NewSource(3)), defaultLevelParams(3))
	seen := floodFill(l.Grid, l.PlayerStart)

	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := C(x, y)
			if !l.Grid.IsWall(c) && !seen[c] {
				t.Errorf("free cell %v is cut off from the start", c)
			}
		}
	}
}

// unreachable returns the targets that cannot be reached from start moving
// through any non-wall cell.
func unreachable(g *Grid, start Coord, targets []Coord) []Coord {
	seen := floodFill(g, start)
	var out []Coord
	for _, t := range targets {
		if !seen[t] {
			out = append(out, t)
		}
	}
	return out
}

func floodFill(g *Grid, start Coord) map[Coord]bool {
	seen := map[Coord]bool{start: true}
	queue := []Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Dirs {
			n := cur.Step(d)
			if seen[n] || !g.InBounds(n) || g.IsWall(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

func TestParamsEnemyScaling(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		level int
		want  int
	}{
		{0, p.EnemyBase},
		{1, p.EnemyBase},
		{2, p.EnemyBase + p.EnemyPerLevel},
		{100, p.EnemyMax},
	}
	for _, tt := range tests {
		if got := p.EnemyCount(tt.level); got != tt.want {
			t.Errorf("EnemyCount(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
	if got := p.EnemySpeedFor(100); got != p.EnemyMaxSpeed {
		t.Errorf("enemy speed should cap at %.2f, got %.2f", p.EnemyMaxSpeed, got)
	}
}
