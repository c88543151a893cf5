package bomber

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/bomb-arcade/internal/core"
	"github.com/vovakirdan/bomb-arcade/internal/games/bomber/core"
)

const (
	cellW     = 3 // Screen columns per arena cell
	hudHeight = 2

	minScreenW = core.GridSize * cellW
	minScreenH = core.GridSize + hudHeight
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	ox, oy := g.arenaOrigin(dst)
	g.renderArena(dst, ox, oy)
	g.renderEnemies(dst, ox, oy)
	g.renderPlayer(dst, ox, oy)
	g.renderBanner(dst, oy)

	s := g.session
	switch s.Phase() {
	case core.PhaseIdle:
		g.renderOverlay(dst, g.Title(), "Press SPACE to start")
	case core.PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case core.PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", s.PlayerView().Score))
	case core.PhaseEnemiesCleared, core.PhaseLevelTransition:
		if !g.fx.bannerVisible() {
			g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", s.Level()),
				fmt.Sprintf("Next level in %.1fs", math.Max(0, s.TransitionRemaining())))
		}
	}
}

// arenaOrigin returns the screen position of cell (0,0).
func (g *Game) arenaOrigin(dst *platformcore.Screen) (int, int) {
	ox := (dst.Width() - minScreenW) / 2
	return max(ox, 0), hudHeight
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.session
	pv := s.PlayerView()
	hud := fmt.Sprintf(" %s  Score: %d  Lives: %s  Level: %d  Bombs: %d/%d  Range: %d  Speed: %.1f",
		g.Title(), pv.Score, strings.Repeat("♥", pv.Lives), s.Level(),
		pv.MaxBombs-pv.BombsUsed, pv.MaxBombs, pv.Range, pv.Speed)
	dst.DrawTextColor(0, 0, hud, platformcore.ColorBrightWhite)

	sep := platformcore.ColorDimGray
	if g.fx.hurtLevel > 0 && g.tick%8 < 4 {
		sep = platformcore.ColorBrightRed
	}
	dst.DrawHLine(0, 1, dst.Width(), '─', sep)
}

func (g *Game) renderArena(dst *platformcore.Screen, ox, oy int) {
	for y := range core.GridSize {
		for x := range core.GridSize {
			c := core.C(x, y)
			glyph, color := g.cellGlyph(c)
			drawCell(dst, ox, oy, c, glyph, color)
		}
	}
}

// cellGlyph picks what a cell shows under the actors. Blasts cover bombs and
// bombs cover pickups. Floor under an actor is shaded so the cell a bomb
// would land on, or a blast would hit, stays visible.
func (g *Game) cellGlyph(c core.Coord) (string, platformcore.Color) {
	s := g.session
	switch {
	case s.IsWall(c):
		return "███", platformcore.ColorGray
	case s.IsBreakable(c):
		return "▒▒▒", platformcore.ColorOrange
	case s.ExplosionAt(c):
		if g.fx.flashLevel > 0.5 {
			return "▓▓▓", platformcore.ColorBrightWhite
		}
		return "▓▓▓", platformcore.ColorBrightYellow
	}
	if b, ok := s.BombAt(c); ok {
		// Blink during the last second of the fuse
		if b.Fuse < 1 && g.tick%10 < 5 {
			return " ● ", platformcore.ColorBrightRed
		}
		return " ● ", platformcore.ColorRed
	}
	if p, ok := s.PowerUpAt(c); ok {
		return powerUpGlyph(p.Kind)
	}
	if s.ActorAt(c) {
		return " ░ ", platformcore.ColorDimGray
	}
	return " · ", platformcore.ColorDimGray
}

func powerUpGlyph(k core.PowerUpKind) (string, platformcore.Color) {
	switch k {
	case core.PowerUpBomb:
		return "[B]", platformcore.ColorBrightCyan
	case core.PowerUpRange:
		return "[R]", platformcore.ColorBrightYellow
	case core.PowerUpSpeed:
		return "[S]", platformcore.ColorNeonGreen
	case core.PowerUpLife:
		return "[♥]", platformcore.ColorBrightMagenta
	default:
		return "[?]", platformcore.ColorWhite
	}
}

func (g *Game) renderEnemies(dst *platformcore.Screen, ox, oy int) {
	for _, e := range g.session.Enemies() {
		if !e.Alive {
			continue
		}
		drawActor(dst, ox, oy, e.Pos, "<@>", platformcore.ColorNeonPink)
	}
}

func (g *Game) renderPlayer(dst *platformcore.Screen, ox, oy int) {
	pv := g.session.PlayerView()
	// Flicker while invincible
	if pv.Invincible > 0 && g.tick%12 < 6 {
		return
	}
	glyph := " ☻ "
	switch pv.Facing {
	case core.DirLeft:
		glyph = "<☻ "
	case core.DirRight:
		glyph = " ☻>"
	}
	drawActor(dst, ox, oy, pv.Pos, glyph, platformcore.ColorNeonBlue)
}

// renderBanner slides the current banner text in from the left edge.
func (g *Game) renderBanner(dst *platformcore.Screen, oy int) {
	if !g.fx.bannerVisible() {
		return
	}
	text := " " + g.fx.bannerText + " "
	n := utf8.RuneCountInString(text)
	target := (dst.Width() - n) / 2
	x := int(float32(-n) + g.fx.bannerPos*float32(target+n))
	y := oy + core.GridSize/2
	dst.DrawTextColor(x, y, text, platformcore.ColorBrightYellow)
}

// drawCell paints a cell-sized glyph at grid cell c.
func drawCell(dst *platformcore.Screen, ox, oy int, c core.Coord, glyph string, color platformcore.Color) {
	dst.DrawTextColor(ox+c.X*cellW, oy+c.Y, glyph, color)
}

// drawActor paints a glyph at a continuous position. Horizontal motion is
// shown at column resolution, vertical at row resolution.
func drawActor(dst *platformcore.Screen, ox, oy int, pos platformcore.Vec, glyph string, color platformcore.Color) {
	x := ox + int(math.Round(pos.X*cellW))
	y := oy + int(math.Floor(pos.Y+0.5))
	dst.DrawTextColor(x, y, glyph, color)
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorNeonPink)

	_, cy := box.Center()
	dst.DrawTextCentered(cy-1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(cy+1, line2, platformcore.ColorWhite)
}
