package core

import platformcore "github.com/vovakirdan/bomb-arcade/internal/core"

// maxPushPasses bounds how often one move is resolved against the
// neighbourhood. Two obstacles at a corner need two passes.
const maxPushPasses = 3

// standEpsilon shrinks the box used to decide whether an actor is standing
// on a bomb, so an actor resting flush against a bomb face is not treated as
// standing on it because of rounding.
const standEpsilon = 1e-6

// moveActor applies delta to an actor centred at pos, one axis at a time,
// resolving overlaps with solid cells and bombs after each step.
// Bombs the actor already overlaps are ignored so it can walk off them.
func (s *Session) moveActor(pos, delta platformcore.Vec) platformcore.Vec {
	ignore := s.bombsUnder(platformcore.BoxAround(pos, ActorHalfSize-standEpsilon))

	if delta.X != 0 {
		pos = s.resolve(platformcore.V(pos.X+delta.X, pos.Y), ignore)
	}
	if delta.Y != 0 {
		pos = s.resolve(platformcore.V(pos.X, pos.Y+delta.Y), ignore)
	}
	return clampToArena(pos)
}

// resolve pushes a box centred at pos out of every obstacle in its 3x3
// neighbourhood along the axis of least penetration.
func (s *Session) resolve(pos platformcore.Vec, ignore map[Coord]bool) platformcore.Vec {
	for pass := 0; pass < maxPushPasses; pass++ {
		moved := false
		center := CellOf(pos)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c := center.Add(dx, dy)
				if !s.blocks(c, ignore) {
					continue
				}
				box := platformcore.BoxAround(pos, ActorHalfSize)
				cell := c.Box()
				if !box.Overlaps(cell) {
					continue
				}
				pos = pos.Add(box.Penetration(cell).MinPush())
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	return pos
}

// blocks reports whether cell c stops actor movement.
func (s *Session) blocks(c Coord, ignore map[Coord]bool) bool {
	if s.grid.IsSolid(c) {
		return true
	}
	return s.bombAt(c) != nil && !ignore[c]
}

// bombsUnder returns the cells of bombs overlapping box.
func (s *Session) bombsUnder(box platformcore.Box) map[Coord]bool {
	var out map[Coord]bool
	for _, b := range s.bombs {
		if box.Overlaps(b.Cell.Box()) {
			if out == nil {
				out = make(map[Coord]bool)
			}
			out[b.Cell] = true
		}
	}
	return out
}

// clampToArena keeps actor centres inside the playable interior.
func clampToArena(pos platformcore.Vec) platformcore.Vec {
	lo, hi := 1.0, float64(GridSize-2)
	return platformcore.V(
		platformcore.ClampF(pos.X, lo, hi),
		platformcore.ClampF(pos.Y, lo, hi),
	)
}
