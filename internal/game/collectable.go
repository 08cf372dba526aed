package game

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Kind tags a Collectable variant.
type Kind int

const (
	KindApple Kind = iota
	KindSpeedBoost
	KindReverse
)

// specialKinds are the variants spawned by the periodic countdown.
var specialKinds = []Kind{KindSpeedBoost, KindReverse}

func (k Kind) String() string {
	switch k {
	case KindApple:
		return "apple"
	case KindSpeedBoost:
		return "speed-boost"
	case KindReverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Collectable is an item on the field. Every operation switches on the
// kind; the State handed to OnCollect and OnTick must not be retained.
type Collectable struct {
	kind Kind
	pos  core.Position

	// Speed-boost timer
	active     bool
	remaining  int
	priorLevel int
}

func newCollectable(kind Kind, pos core.Position) *Collectable {
	return &Collectable{kind: kind, pos: pos}
}

// Kind returns the variant tag.
func (c *Collectable) Kind() Kind { return c.kind }

// Position returns where the item was spawned.
func (c *Collectable) Position() core.Position { return c.pos }

// Visible reports whether the item is on the field. A collected speed
// boost stays in the collection as an invisible timer.
func (c *Collectable) Visible() bool {
	return !c.active
}

// OnCollect applies the item's effect and reports whether to remove it.
func (c *Collectable) OnCollect(s *State) bool {
	switch c.kind {
	case KindApple:
		s.growth++
		s.spawn(KindApple)
		return true

	case KindSpeedBoost:
		c.priorLevel = s.level
		s.level = s.cfg.BoostLevel
		c.remaining = s.cfg.BoostMinTicks + s.rng.Intn(s.cfg.BoostMaxTicks-s.cfg.BoostMinTicks)
		c.active = true
		return false

	case KindReverse:
		slices.Reverse(s.snake)
		if len(s.snake) < 2 {
			s.heading = s.heading.Opposite()
			return true
		}
		if h, ok := core.HeadingFromVector(s.snake[0].Sub(s.snake[1])); ok {
			s.heading = h
		}
		return true
	}
	return true
}

// OnTick runs once per update for every item and reports whether the item
// expired. Only an active speed boost does anything.
func (c *Collectable) OnTick(s *State) bool {
	if c.kind != KindSpeedBoost || !c.active {
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		return false
	}
	s.level = c.priorLevel
	return true
}

// Remaining returns the ticks left on an active speed boost.
func (c *Collectable) Remaining() int {
	if !c.active {
		return 0
	}
	return c.remaining
}

func (c *Collectable) String() string {
	return c.kind.String() + "@" + c.pos.String()
}
