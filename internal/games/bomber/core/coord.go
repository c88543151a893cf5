package core

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
)

// Coord represents a cell on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Center returns the continuous position of the cell's center.
func (c Coord) Center() platformcore.Vec {
	return platformcore.V(float64(c.X), float64(c.Y))
}

// Box returns the cell's bounding box in continuous coordinates.
func (c Coord) Box() platformcore.Box {
	return platformcore.BoxAround(c.Center(), 0.5)
}

// CellOf maps a continuous position to the cell containing it.
// Cells are unit squares centred on integer coordinates, so this rounds
// half up on both axes. Every occupancy test goes through this function.
func CellOf(p platformcore.Vec) Coord {
	return Coord{
		X: int(math.Floor(p.X + 0.5)),
		Y: int(math.Floor(p.Y + 0.5)),
	}
}

// Dir is one of the four axis directions.
type Dir int

const (
	DirNone Dir = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// Dirs lists the four axis directions in clockwise order.
var Dirs = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the unit cell offset of the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Vec returns the direction as a unit vector.
func (d Dir) Vec() platformcore.Vec {
	dx, dy := d.Delta()
	return platformcore.V(float64(dx), float64(dy))
}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// DirOf returns the dominant axis direction of a movement vector,
// or DirNone for the zero vector. Ties favour the horizontal axis.
func DirOf(v platformcore.Vec) Dir {
	if v.X == 0 && v.Y == 0 {
		return DirNone
	}
	if math.Abs(v.X) >= math.Abs(v.Y) {
		if v.X > 0 {
			return DirRight
		}
		return DirLeft
	}
	if v.Y > 0 {
		return DirDown
	}
	return DirUp
}
