package core

// Bomb is a placed charge counting down to detonation.
type Bomb struct {
	Cell  Coord
	Fuse  float64 // Seconds until detonation
	Range int
}

// Explosion is one cell of an active blast.
type Explosion struct {
	Cell      Coord
	Remaining float64 // Seconds the cell stays hazardous
}

// PlaceBomb drops a bomb on the player's cell.
// It does nothing if the player has no bombs left or the cell is taken.
func (s *Session) PlaceBomb() bool {
	if s.phase != PhaseRunning {
		return false
	}
	if len(s.bombs) >= s.player.MaxBombs {
		return false
	}
	cell := s.player.Cell()
	if s.bombAt(cell) != nil {
		return false
	}

	b := &Bomb{Cell: cell, Fuse: s.params.BombFuse, Range: s.player.Range}
	s.bombs = append(s.bombs, b)
	s.emit(func(h Hooks) {
		if h.OnBombPlaced != nil {
			h.OnBombPlaced(cell)
		}
	})
	return true
}

func (s *Session) bombAt(c Coord) *Bomb {
	for _, b := range s.bombs {
		if b.Cell == c {
			return b
		}
	}
	return nil
}

func (s *Session) removeBomb(b *Bomb) {
	for i, o := range s.bombs {
		if o == b {
			s.bombs = append(s.bombs[:i], s.bombs[i+1:]...)
			return
		}
	}
}

// updateBombs burns down fuses and detonates every bomb that runs out.
// Chained bombs go off inside the same call.
func (s *Session) updateBombs(dt float64) {
	for _, b := range s.bombs {
		b.Fuse -= dt
	}
	for s.phase == PhaseRunning {
		var next *Bomb
		for _, b := range s.bombs {
			if b.Fuse <= 0 {
				next = b
				break
			}
		}
		if next == nil {
			return
		}
		s.detonate(next)
	}
}

// detonate explodes b and anything its rays reach.
func (s *Session) detonate(b *Bomb) {
	// Removed first so a bomb in mutual range cannot re-trigger it.
	s.removeBomb(b)

	cells := []Coord{b.Cell}
	s.blast(b.Cell)

	// Rays stop spreading once the blast has ended the game.
rays:
	for _, d := range Dirs {
		c := b.Cell
		for i := 0; i < b.Range; i++ {
			if s.phase == PhaseGameOver {
				break rays
			}
			c = c.Step(d)
			if s.grid.IsWall(c) {
				break
			}
			cells = append(cells, c)
			s.blast(c)

			if s.grid.Break(c) {
				s.addScore(s.params.WallScore)
				s.emit(func(h Hooks) {
					if h.OnWallDestroyed != nil {
						h.OnWallDestroyed(c)
					}
				})
				s.rollPowerUp(c)
				break
			}
			if other := s.bombAt(c); other != nil {
				s.detonate(other)
				break
			}
		}
	}

	s.emit(func(h Hooks) {
		if h.OnExplosion != nil {
			h.OnExplosion(append([]Coord(nil), cells...))
		}
	})
}

// blast marks c as exploding and damages whatever stands there now.
func (s *Session) blast(c Coord) {
	if e := s.explosionIndex(c); e >= 0 {
		s.explosions[e].Remaining = s.params.ExplosionLifetime
	} else {
		s.explosions = append(s.explosions, Explosion{Cell: c, Remaining: s.params.ExplosionLifetime})
	}

	for _, e := range s.enemies {
		if e.Alive && e.Cell() == c {
			s.destroyEnemy(e)
		}
	}
	if s.player.Cell() == c {
		s.hitPlayer()
	}
}

func (s *Session) explosionIndex(c Coord) int {
	for i, e := range s.explosions {
		if e.Cell == c {
			return i
		}
	}
	return -1
}

func (s *Session) explosionAt(c Coord) bool {
	return s.explosionIndex(c) >= 0
}

// updateExplosions ages blast cells and drops the expired ones.
func (s *Session) updateExplosions(dt float64) {
	live := s.explosions[:0]
	for _, e := range s.explosions {
		e.Remaining -= dt
		if e.Remaining > 0 {
			live = append(live, e)
		}
	}
	s.explosions = live
}
