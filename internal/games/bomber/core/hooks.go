package core

// Hooks receives session events. Any field may be nil.
// Callbacks run synchronously inside Tick and must not call back into the session.
type Hooks struct {
	OnScoreChanged     func(score int)
	OnPlayerHit        func(livesLeft int)
	OnGameOver         func(finalScore int)
	OnLevelComplete    func(level, score int)
	OnEnemyDestroyed   func(id int, at Coord)
	OnExplosion        func(cells []Coord)
	OnBombPlaced       func(at Coord)
	OnPowerUpCollected func(kind PowerUpKind, at Coord)
	OnWallDestroyed    func(at Coord)
	OnLevelStart       func(level int)
}

// Subscribe registers a set of hooks. Subscribers are called in order.
func (s *Session) Subscribe(h Hooks) {
	s.hooks = append(s.hooks, h)
}

func (s *Session) emit(fn func(Hooks)) {
	for _, h := range s.hooks {
		fn(h)
	}
}
