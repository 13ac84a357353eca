package core

// Color represents a draw colour understood by every surface.
// Terminal surfaces map it to ANSI codes, window surfaces to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorGreen
)

// RGBA8 returns the colour as 8-bit red, green, blue and alpha components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0, 255
	case ColorGray:
		return 128, 128, 128, 255
	case ColorGreen:
		return 120, 226, 160, 255
	case ColorWhite, ColorDefault:
		return 255, 255, 255, 255
	default:
		return 255, 255, 255, 255
	}
}
