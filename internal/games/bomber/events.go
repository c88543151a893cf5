package bomber

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomb-arcade/internal/games/bomber/core"
)

// logHooks reports session events to l. Frequent events log at debug level.
func logHooks(l *log.Logger, game string) core.Hooks {
	l = l.With("game", game)
	return core.Hooks{
		OnLevelStart: func(level int) {
			l.Info("level start", "level", level)
		},
		OnBombPlaced: func(at core.Coord) {
			l.Debug("bomb placed", "cell", at)
		},
		OnExplosion: func(cells []core.Coord) {
			l.Debug("explosion", "cells", len(cells))
		},
		OnWallDestroyed: func(at core.Coord) {
			l.Debug("wall destroyed", "cell", at)
		},
		OnEnemyDestroyed: func(id int, at core.Coord) {
			l.Debug("enemy destroyed", "enemy", id, "cell", at)
		},
		OnPowerUpCollected: func(kind core.PowerUpKind, at core.Coord) {
			l.Debug("power-up collected", "kind", kind, "cell", at)
		},
		OnPlayerHit: func(livesLeft int) {
			l.Info("player hit", "lives", livesLeft)
		},
		OnLevelComplete: func(level, score int) {
			l.Info("level complete", "level", level, "score", score)
		},
		OnGameOver: func(finalScore int) {
			l.Info("game over", "score", finalScore)
		},
	}
}

// effectHooks drives the renderer's animations from session events.
func (g *Game) effectHooks() core.Hooks {
	return core.Hooks{
		OnLevelStart: func(level int) {
			g.fx.showBanner(fmt.Sprintf("LEVEL %d", level))
		},
		OnExplosion: func([]core.Coord) {
			g.fx.explode()
		},
		OnPlayerHit: func(int) {
			g.fx.playerHit()
		},
		OnLevelComplete: func(level, _ int) {
			g.fx.showBanner(fmt.Sprintf("LEVEL %d CLEAR", level))
		},
	}
}
