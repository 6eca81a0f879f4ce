package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. Tetromino colors follow the usual guideline palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
	ColorDim
)

// String returns the color name, mainly for test output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}

// RGB returns an approximate 24-bit value for graphical frontends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 220, 50, 47
	case ColorGreen:
		return 80, 200, 80
	case ColorYellow:
		return 240, 220, 60
	case ColorBlue:
		return 50, 90, 220
	case ColorMagenta:
		return 170, 70, 200
	case ColorCyan:
		return 60, 210, 220
	case ColorOrange:
		return 240, 150, 40
	case ColorGray:
		return 100, 100, 100
	case ColorDim:
		return 70, 70, 70
	default:
		return 230, 230, 230
	}
}
