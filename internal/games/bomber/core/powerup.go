package core

// PowerUpKind identifies the stat a power-up raises.
type PowerUpKind int

const (
	PowerUpBomb PowerUpKind = iota
	PowerUpRange
	PowerUpSpeed
	PowerUpLife
)

// String returns the power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBomb:
		return "bomb"
	case PowerUpRange:
		return "range"
	case PowerUpSpeed:
		return "speed"
	case PowerUpLife:
		return "life"
	default:
		return "unknown"
	}
}

// PowerUp is a pickup lying on the floor.
type PowerUp struct {
	Cell Coord
	Kind PowerUpKind
}

// rollPowerUp maybe drops a power-up on a freshly cleared cell.
func (s *Session) rollPowerUp(c Coord) {
	if s.rng.Float64() >= s.params.PowerUpChance {
		return
	}
	kind, ok := s.pickPowerUpKind()
	if !ok {
		return
	}
	s.powerUps = append(s.powerUps, PowerUp{Cell: c, Kind: kind})
}

// pickPowerUpKind draws a kind from the weighted table.
func (s *Session) pickPowerUpKind() (PowerUpKind, bool) {
	weights := []struct {
		kind   PowerUpKind
		weight int
	}{
		{PowerUpBomb, s.params.WeightBomb},
		{PowerUpRange, s.params.WeightRange},
		{PowerUpSpeed, s.params.WeightSpeed},
		{PowerUpLife, s.params.WeightLife},
	}

	total := 0
	for _, w := range weights {
		if w.weight > 0 {
			total += w.weight
		}
	}
	if total == 0 {
		return 0, false
	}

	roll := s.rng.Intn(total)
	for _, w := range weights {
		if w.weight <= 0 {
			continue
		}
		if roll < w.weight {
			return w.kind, true
		}
		roll -= w.weight
	}
	return PowerUpBomb, true
}

// collectPowerUps applies any power-up under the player.
func (s *Session) collectPowerUps() {
	cell := s.player.Cell()
	for i := 0; i < len(s.powerUps); i++ {
		pu := s.powerUps[i]
		if pu.Cell != cell {
			continue
		}
		s.powerUps = append(s.powerUps[:i], s.powerUps[i+1:]...)
		i--

		s.applyPowerUp(pu.Kind)
		s.addScore(s.params.PowerUpScore)
		s.emit(func(h Hooks) {
			if h.OnPowerUpCollected != nil {
				h.OnPowerUpCollected(pu.Kind, pu.Cell)
			}
		})
	}
}

// applyPowerUp raises one player stat, never past its cap.
func (s *Session) applyPowerUp(kind PowerUpKind) {
	pl := &s.player
	p := s.params
	switch kind {
	case PowerUpBomb:
		if pl.MaxBombs < p.MaxBombs {
			pl.MaxBombs++
		}
	case PowerUpRange:
		if pl.Range < p.MaxRange {
			pl.Range++
		}
	case PowerUpSpeed:
		pl.Speed += p.SpeedStep
		if pl.Speed > p.MaxSpeed {
			pl.Speed = p.MaxSpeed
		}
	case PowerUpLife:
		if pl.Lives < p.MaxLives {
			pl.Lives++
		}
	}
}
