package core

import "sort"

// Grid holds the static and destructible terrain of one level.
// Walls never change after generation; breakable cells are removed by blasts.
type Grid struct {
	Size      int
	walls     map[Coord]bool
	breakable map[Coord]bool
}

// NewGrid creates an empty grid of the given size.
func NewGrid(size int) *Grid {
	return &Grid{
		Size:      size,
		walls:     make(map[Coord]bool),
		breakable: make(map[Coord]bool),
	}
}

// InBounds returns true if the cell lies on the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// IsWall returns true for indestructible cells. Cells off the grid count as walls.
func (g *Grid) IsWall(c Coord) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.walls[c]
}

// IsBreakable returns true if the cell holds a destructible wall.
func (g *Grid) IsBreakable(c Coord) bool {
	return g.breakable[c]
}

// IsSolid returns true if actors cannot enter the cell because of terrain.
func (g *Grid) IsSolid(c Coord) bool {
	return g.IsWall(c) || g.IsBreakable(c)
}

// SetWall marks a cell indestructible. Any breakable wall there is removed.
func (g *Grid) SetWall(c Coord) {
	if !g.InBounds(c) {
		return
	}
	delete(g.breakable, c)
	g.walls[c] = true
}

// SetBreakable places a destructible wall. Ignored on indestructible cells.
func (g *Grid) SetBreakable(c Coord) {
	if !g.InBounds(c) || g.walls[c] {
		return
	}
	g.breakable[c] = true
}

// Break removes a destructible wall and reports whether one was there.
func (g *Grid) Break(c Coord) bool {
	if !g.breakable[c] {
		return false
	}
	delete(g.breakable, c)
	return true
}

// Walls returns all indestructible cells in row-major order.
func (g *Grid) Walls() []Coord {
	return sortedCells(g.walls)
}

// Breakables returns all destructible cells in row-major order.
func (g *Grid) Breakables() []Coord {
	return sortedCells(g.breakable)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.Size)
	for c := range g.walls {
		out.walls[c] = true
	}
	for c := range g.breakable {
		out.breakable[c] = true
	}
	return out
}

// sortedCells flattens a cell set into row-major order so callers
// see a stable sequence regardless of map iteration.
func sortedCells(set map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(set))
	for c, ok := range set {
		if ok {
			out = append(out, c)
		}
	}
	sortCoords(out)
	return out
}

func sortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
