package core

import "fmt"

// Movement step sizes. Vertical moves are half a unit so that one step in
// either direction covers roughly the same distance on a terminal grid,
// where cells are about twice as tall as they are wide.
const (
	HorizontalStep = 1.0
	VerticalStep   = 0.5
)

// Position is a point on the playing field. Y grows upwards.
type Position struct {
	X, Y float64
}

// Pos is shorthand for constructing a Position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from o to p.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// In reports whether p lies inside [0, width) x [0, height).
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < float64(width) && p.Y >= 0 && p.Y < float64(height)
}

func (p Position) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Heading is one of the four cardinal movement directions.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// IsOpposite checks if two headings point in opposite directions.
func (h Heading) IsOpposite(other Heading) bool {
	return h.Opposite() == other
}

// Delta returns the unit displacement of one step in this heading.
func (h Heading) Delta() Position {
	switch h {
	case HeadingUp:
		return Position{Y: VerticalStep}
	case HeadingDown:
		return Position{Y: -VerticalStep}
	case HeadingLeft:
		return Position{X: -HorizontalStep}
	default:
		return Position{X: HorizontalStep}
	}
}

// HeadingFromVector derives the heading of a displacement vector.
// The dominant axis wins; a zero vector has no heading.
func HeadingFromVector(v Position) (Heading, bool) {
	if v.X == 0 && v.Y == 0 {
		return HeadingRight, false
	}
	if Abs(v.X) >= Abs(v.Y) {
		if v.X > 0 {
			return HeadingRight, true
		}
		return HeadingLeft, true
	}
	if v.Y > 0 {
		return HeadingUp, true
	}
	return HeadingDown, true
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}
