package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// ScreenRenderer draws snapshots into a double-buffered Screen and hands a
// frame to the presenter only when it differs from the previous one.
type ScreenRenderer struct {
	presenter   Presenter
	logger      *log.Logger
	front, back *core.Screen
	presented   bool
	lastErr     string
}

// NewScreenRenderer creates a renderer sized for a width x height field.
func NewScreenRenderer(p Presenter, width, height int, logger *log.Logger) *ScreenRenderer {
	w, h := render.Size(width, height)
	return &ScreenRenderer{
		presenter: p,
		logger:    logger,
		front:     core.NewScreen(w, h),
		back:      core.NewScreen(w, h),
	}
}

// Render implements Renderer. Present errors are logged once per distinct
// message and otherwise ignored; the next changed frame retries.
func (r *ScreenRenderer) Render(snap game.Snapshot) {
	render.Draw(r.back, snap)
	if r.presented && r.back.Equal(r.front) {
		return
	}

	if err := r.presenter.Present(r.back); err != nil {
		if msg := err.Error(); msg != r.lastErr {
			r.lastErr = msg
			r.logger.Error("present frame", "err", err)
		}
		return
	}
	r.lastErr = ""
	r.presented = true
	r.front, r.back = r.back, r.front
}
