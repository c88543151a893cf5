package core

import (
	"testing"

	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
)

func TestOccupancyQueries(t *testing.T) {
	s := openArena(t, DefaultParams())
	addEnemy(s, C(8, 5)).Pos = platformcore.V(8.5, 5)
	dead := addEnemy(s, C(3, 9))
	dead.Alive = false
	addBomb(s, C(9, 9), 3, 1)
	s.powerUps = append(s.powerUps, PowerUp{Cell: C(2, 9), Kind: PowerUpRange})

	tests := []struct {
		name    string
		playerX float64
		cell    Coord
		actor   bool
		bomb    bool
		powerUp bool
	}{
		{"player just below the boundary", 4.49, C(4, 3), true, false, false},
		{"player just below the boundary, next cell", 4.49, C(5, 3), false, false, false},
		{"player on the boundary rounds up", 4.5, C(5, 3), true, false, false},
		{"player on the boundary leaves the lower cell", 4.5, C(4, 3), false, false, false},
		{"enemy on the boundary rounds up", 1, C(9, 5), true, false, false},
		{"enemy leaves the lower cell", 1, C(8, 5), false, false, false},
		{"sentinel enemy", 1, C(11, 11), true, false, false},
		{"destroyed enemy is not an actor", 1, C(3, 9), false, false, false},
		{"bomb cell", 1, C(9, 9), false, true, false},
		{"power-up cell", 1, C(2, 9), false, false, true},
		{"empty cell", 1, C(6, 7), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.player.Pos = platformcore.V(tt.playerX, 3)

			if got := s.ActorAt(tt.cell); got != tt.actor {
				t.Errorf("ActorAt(%v) = %v, want %v", tt.cell, got, tt.actor)
			}
			if _, got := s.BombAt(tt.cell); got != tt.bomb {
				t.Errorf("BombAt(%v) = %v, want %v", tt.cell, got, tt.bomb)
			}
			if _, got := s.PowerUpAt(tt.cell); got != tt.powerUp {
				t.Errorf("PowerUpAt(%v) = %v, want %v", tt.cell, got, tt.powerUp)
			}
		})
	}
}

func TestOccupancyMatchesHazardCell(t *testing.T) {
	s := openArena(t, DefaultParams())
	s.player.Pos = platformcore.V(4.5, 3)
	s.explosions = append(s.explosions, Explosion{Cell: C(5, 3), Remaining: 1})

	if !s.ActorAt(C(5, 3)) {
		t.Fatal("player should occupy the cell its position rounds to")
	}
	s.Tick(0.01)
	if got := s.PlayerView().Lives; got != DefaultParams().PlayerLives-1 {
		t.Errorf("blast on the occupied cell should cost a life, lives = %d", got)
	}
}
