package bomber

import (
	"strings"

	"github.com/vovakirdan/bomb-arcade/internal/games/bomber/core"
)

// ASCII legend used by RenderASCII.
const (
	asciiWall      = '#'
	asciiBreakable = '+'
	asciiStart     = 'P'
	asciiSpawn     = 'E'
	asciiFloor     = '.'
)

// GenerateLevel returns the layout a game with this seed starts on when it
// begins at the given level, using the current config and difficulty settings.
func GenerateLevel(v Variant, seed int64, level int) core.Layout {
	bc, _ := loadConfig(difficultyPreset)
	s := core.NewSession(paramsFromConfig(bc, v), seed)
	s.StartSessionAt(level)
	return s.Layout()
}

// RenderASCII draws a layout one character per cell, rows separated by
// newlines.
func RenderASCII(l core.Layout) string {
	spawns := make(map[core.Coord]bool, len(l.Spawns))
	for _, c := range l.Spawns {
		spawns[c] = true
	}

	var b strings.Builder
	size := l.Grid.Size
	b.Grow(size * (size + 1))
	for y := range size {
		for x := range size {
			c := core.C(x, y)
			switch {
			case l.Grid.IsWall(c):
				b.WriteByte(asciiWall)
			case l.Grid.IsBreakable(c):
				b.WriteByte(asciiBreakable)
			case c == l.PlayerStart:
				b.WriteByte(asciiStart)
			case spawns[c]:
				b.WriteByte(asciiSpawn)
			default:
				b.WriteByte(asciiFloor)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
