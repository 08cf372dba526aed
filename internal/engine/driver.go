package engine

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Presenter shows a finished frame. The screen is only valid for the
// duration of the call.
type Presenter interface {
	Present(screen *core.Screen) error
}

// Driver owns the terminal: it reads keys, presents frames, and restores
// the terminal on Close. Close must be safe to call more than once and must
// unblock a pending ReadKey.
type Driver interface {
	KeyReader
	Presenter
	Close() error
}

// Renderer draws one frame from a snapshot. It must not block for long.
type Renderer interface {
	Render(snap game.Snapshot)
}

// ScoreStore persists finished rounds. Load returns entries ranked by
// score, highest first.
type ScoreStore interface {
	Load() ([]core.ScoreEntry, error)
	Add(name string, score int) error
}
