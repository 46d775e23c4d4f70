package core

// Color represents a foreground color for a screen cell or canvas primitive.
// Uses ANSI 256-color semantics so the terminal frontend can map it directly;
// the window frontend maps the same palette to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorDarkGreen
	ColorPurple
	ColorNavy
)

// Palette aliases used across the minigames.
const (
	ColorGood   = ColorGreen        // casual success
	ColorGold   = ColorBrightYellow // hard-mode accent
	ColorDanger = ColorBrightRed
	ColorAmber  = ColorOrange
	ColorMint   = ColorBrightGreen
	ColorWater  = ColorBrightCyan
)

// Accent returns the success accent for the current mode.
func Accent(hard bool) Color {
	if hard {
		return ColorGold
	}
	return ColorGood
}
