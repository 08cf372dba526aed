package game

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Item is the renderer's view of a visible collectable.
type Item struct {
	Kind Kind
	Pos  core.Position
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Mode   Mode
	Cursor MenuItem
	Blink  bool

	Width, Height int

	Snake   []core.Position
	Heading core.Heading
	Items   []Item

	Score          int
	Elapsed        time.Duration
	Level          int
	BoostRemaining int // ticks left on an active speed boost, 0 if none

	LastScore int
	Scores    []core.ScoreEntry
}

// Snapshot copies the current state. Later updates do not affect it.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      s.mode,
		Cursor:    s.cursor,
		Blink:     s.blink,
		Width:     s.cfg.FieldWidth,
		Height:    s.cfg.FieldHeight,
		Snake:     slices.Clone(s.snake),
		Heading:   s.heading,
		Score:     s.Score(),
		Elapsed:   s.elapsed,
		Level:     s.level,
		LastScore: s.lastScore,
		Scores:    slices.Clone(s.scores),
	}
	for _, c := range s.collectables {
		if c.Visible() {
			snap.Items = append(snap.Items, Item{Kind: c.kind, Pos: c.pos})
		}
		snap.BoostRemaining = max(snap.BoostRemaining, c.Remaining())
	}
	return snap
}
