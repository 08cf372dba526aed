package core

// Color is the foreground color of a screen cell. Drivers translate it into
// whatever their terminal library understands.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorBrightGreen:  "bright-green",
	ColorBrightYellow: "bright-yellow",
	ColorGray:         "gray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ANSI returns the 256-color palette index used for this color.
// ColorDefault has no index and reports false.
func (c Color) ANSI() (int, bool) {
	switch c {
	case ColorRed:
		return 1, true
	case ColorGreen:
		return 2, true
	case ColorYellow:
		return 3, true
	case ColorBlue:
		return 4, true
	case ColorMagenta:
		return 5, true
	case ColorCyan:
		return 6, true
	case ColorBrightGreen:
		return 10, true
	case ColorBrightYellow:
		return 11, true
	case ColorGray:
		return 245, true
	default:
		return 0, false
	}
}
