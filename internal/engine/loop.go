package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// Options configures a Loop.
type Options struct {
	TickInterval time.Duration
	IdleWait     time.Duration // 0 = spin
	Player       string        // name lost rounds are recorded under
	MenuTop      int           // high scores handed to the menu
}

// Loop is the control loop. It renders, polls at most one event without
// blocking, and dispatches it to the game state.
type Loop struct {
	state    *game.State
	driver   Driver
	renderer Renderer
	store    ScoreStore
	queue    *Queue
	opts     Options
	logger   *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewLoop wires a loop around an existing state. The loop takes ownership
// of the driver and closes it when Run returns.
func NewLoop(state *game.State, driver Driver, renderer Renderer, store ScoreStore, opts Options, logger *log.Logger) *Loop {
	return &Loop{
		state:    state,
		driver:   driver,
		renderer: renderer,
		store:    store,
		queue:    NewQueue(),
		opts:     opts,
		logger:   logger,
	}
}

// Queue exposes the event queue, mainly so tests can feed events directly.
func (l *Loop) Queue() *Queue {
	return l.queue
}

// Run starts both producers and loops until the player exits, ctx is
// cancelled, or the input producer fails. The driver is closed exactly once
// on every path, including a panic, which is re-raised after cleanup.
func (l *Loop) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			l.closeDriver()
			panic(r)
		}
		if cerr := l.closeDriver(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	l.refreshScores()

	inputErr := make(chan error, 1)
	l.goSafe(func() { inputErr <- RunInputProducer(ctx, l.driver, l.queue) })
	l.goSafe(func() { RunTicker(ctx, l.opts.TickInterval, l.queue) })
	l.logger.Debug("loop started", "tick", l.opts.TickInterval, "idle_wait", l.opts.IdleWait)

	idle := time.NewTimer(time.Hour)
	idle.Stop()
	defer idle.Stop()

	for !l.state.ShouldExit() {
		select {
		case <-ctx.Done():
			return nil
		case err := <-inputErr:
			return l.inputStopped(err)
		default:
		}

		if l.Step() || l.opts.IdleWait <= 0 {
			continue
		}

		idle.Reset(l.opts.IdleWait)
		select {
		case <-l.queue.Ready():
		case <-idle.C:
		case <-ctx.Done():
			return nil
		case err := <-inputErr:
			return l.inputStopped(err)
		}
		idle.Stop()
	}

	l.logger.Info("exit requested")
	return nil
}

// Step renders the current state, then consumes and dispatches at most one
// queued event. It reports whether an event was consumed.
func (l *Loop) Step() bool {
	l.renderer.Render(l.state.Snapshot())

	ev, ok := l.queue.TryPop()
	if !ok {
		return false
	}
	l.dispatch(ev)
	return true
}

func (l *Loop) dispatch(ev Event) {
	switch e := ev.(type) {
	case InputEvent:
		l.state.HandleKey(e.Key)
	case TickEvent:
		l.state.Tick()
	}

	if score, ok := l.state.TakeLostScore(); ok {
		l.recordScore(score)
	}
}

func (l *Loop) recordScore(score int) {
	l.logger.Info("round lost", "player", l.opts.Player, "score", score, "time", l.state.Elapsed())
	if err := l.store.Add(l.opts.Player, score); err != nil {
		l.logger.Error("save score", "err", err)
		return
	}
	l.refreshScores()
}

func (l *Loop) refreshScores() {
	entries, err := l.store.Load()
	if err != nil {
		l.logger.Warn("load scores", "err", err)
		return
	}
	if len(entries) > l.opts.MenuTop {
		entries = entries[:l.opts.MenuTop]
	}
	l.state.SetScores(entries)
}

func (l *Loop) inputStopped(err error) error {
	if err == nil {
		return nil
	}
	l.logger.Error("input producer stopped", "err", err)
	return err
}

func (l *Loop) closeDriver() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.driver.Close()
		if l.closeErr != nil {
			l.closeErr = fmt.Errorf("engine: close driver: %w", l.closeErr)
		}
	})
	return l.closeErr
}

// goSafe runs fn on a new goroutine. A panic there restores the terminal
// before it takes the process down, so the stack trace stays readable.
func (l *Loop) goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				l.logger.Error("goroutine panic", "panic", r)
				l.closeDriver()
				panic(r)
			}
		}()
		fn()
	}()
}
