package core

// Color is the foreground colour of a screen cell. Platforms map it to
// whatever their terminal supports.
type Color uint8

// Arena palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNeonPink
	ColorNeonBlue
	ColorNeonGreen
	ColorDimGray

	colorCount
)

// NumColors is the size of the palette, for tables indexed by Color.
const NumColors = int(colorCount)
