// Package tcellterm drives the game through a tcell screen.
package tcellterm

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform"
)

// ErrClosed is returned by ReadKey and Present after Close.
var ErrClosed = errors.New("tcellterm: driver closed")

func init() {
	platform.Register(config.DriverTcell, func(opts platform.Options) (engine.Driver, error) {
		return NewDriver(opts)
	})
}

// Driver owns a tcell screen. ReadKey may run on a different goroutine
// than Present.
type Driver struct {
	screen tcell.Screen
	keymap *platform.Keymap
	logger *log.Logger

	mu        sync.Mutex // guards screen drawing
	closeOnce sync.Once
	closed    chan struct{}
}

// NewDriver opens the terminal screen.
func NewDriver(opts platform.Options) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: new screen: %w", err)
	}
	return NewDriverWithScreen(screen, opts)
}

// NewDriverWithScreen initializes screen and wraps it. Tests pass a
// simulation screen here.
func NewDriverWithScreen(screen tcell.Screen, opts platform.Options) (*Driver, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellterm: init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	opts.Logger.Debug("tcell driver started")
	return &Driver{
		screen: screen,
		keymap: opts.Keymap,
		logger: opts.Logger,
		closed: make(chan struct{}),
	}, nil
}

// ReadKey blocks until a key the keymap knows is pressed.
func (d *Driver) ReadKey() (core.Key, error) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return core.KeyNone, ErrClosed
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.mu.Lock()
			d.screen.Sync()
			d.mu.Unlock()
		case *tcell.EventKey:
			if k := d.keymap.Lookup(KeyName(ev)); k != core.KeyNone {
				return k, nil
			}
		}
	}
}

// KeyName names a tcell key event the way the keymap spells keys.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

// Present draws screen centered in the terminal.
func (d *Driver) Present(screen *core.Screen) error {
	select {
	case <-d.closed:
		return ErrClosed
	default:
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	tw, th := d.screen.Size()
	ox := max((tw-screen.Width())/2, 0)
	oy := max((th-screen.Height())/2, 0)

	d.screen.Clear()
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			d.screen.SetContent(ox+x, oy+y, c.Rune, nil, styleFor(c.Color))
		}
	}
	d.screen.Show()
	return nil
}

// Close restores the terminal. Safe to call twice.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		close(d.closed)
		d.mu.Lock()
		d.screen.Fini()
		d.mu.Unlock()
	})
	return nil
}

func styleFor(c core.Color) tcell.Style {
	idx, ok := c.ANSI()
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
