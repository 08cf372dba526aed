package core

// Key is a semantic key press, already translated from whatever the
// terminal driver reported. Only these keys mean anything to the game.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyExit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyConfirm:
		return "confirm"
	case KeyExit:
		return "exit"
	default:
		return "none"
	}
}

// Heading returns the movement heading a directional key asks for.
func (k Key) Heading() (Heading, bool) {
	switch k {
	case KeyUp:
		return HeadingUp, true
	case KeyDown:
		return HeadingDown, true
	case KeyLeft:
		return HeadingLeft, true
	case KeyRight:
		return HeadingRight, true
	default:
		return HeadingRight, false
	}
}
