// Package tui provides the Bubble Tea terminal driver and the interactive
// scoreboard.
package tui

import (
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform"
)

// ErrClosed is returned by ReadKey and Present after Close.
var ErrClosed = errors.New("tui: driver closed")

func init() {
	platform.Register(config.DriverTea, func(opts platform.Options) (engine.Driver, error) {
		return NewDriver(opts)
	})
}

// frameMsg carries a rendered frame into the Bubble Tea program.
type frameMsg string

// Driver runs a Bubble Tea program on its own goroutine. Key presses leave
// the program through a channel; frames enter it through Program.Send.
type Driver struct {
	program *tea.Program
	keymap  *platform.Keymap
	logger  *log.Logger

	keys    chan string
	started chan struct{}
	done    chan struct{} // closed when the program has exited
	closed  chan struct{} // closed by Close

	startOnce sync.Once
	closeOnce sync.Once
	runErr    error
}

// NewDriver takes over the terminal and returns once the program runs.
func NewDriver(opts platform.Options, progOpts ...tea.ProgramOption) (*Driver, error) {
	if len(progOpts) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("tui: stdin and stdout must be a terminal")
		}
		progOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	d := &Driver{
		keymap:  opts.Keymap,
		logger:  opts.Logger,
		keys:    make(chan string, 64),
		started: make(chan struct{}),
		done:    make(chan struct{}),
		closed:  make(chan struct{}),
	}
	d.program = tea.NewProgram(frameModel{driver: d}, progOpts...)

	go func() {
		defer close(d.done)
		if _, err := d.program.Run(); err != nil {
			d.runErr = err
		}
	}()

	select {
	case <-d.started:
		d.logger.Debug("bubble tea driver started")
		return d, nil
	case <-d.done:
		return nil, fmt.Errorf("tui: start program: %w", d.runErr)
	}
}

// ReadKey blocks until the next key press and maps it through the keymap.
func (d *Driver) ReadKey() (core.Key, error) {
	select {
	case name := <-d.keys:
		return d.keymap.Lookup(name), nil
	case <-d.closed:
		return core.KeyNone, ErrClosed
	case <-d.done:
		if d.runErr != nil {
			return core.KeyNone, fmt.Errorf("tui: program exited: %w", d.runErr)
		}
		return core.KeyNone, ErrClosed
	}
}

// Present renders the screen with lipgloss and hands it to the program.
func (d *Driver) Present(screen *core.Screen) error {
	select {
	case <-d.done:
		return ErrClosed
	default:
	}
	d.program.Send(frameMsg(RenderScreen(screen)))
	return nil
}

// Close stops the program and restores the terminal. Safe to call twice.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		close(d.closed)
		d.program.Quit()
		<-d.done
	})
	if d.runErr != nil && !errors.Is(d.runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: program: %w", d.runErr)
	}
	return nil
}

// forward hands a key name to ReadKey unless the driver is closing.
func (d *Driver) forward(name string) {
	select {
	case d.keys <- name:
	case <-d.closed:
	}
}

// frameModel only displays the latest frame; all game logic lives in the
// engine.
type frameModel struct {
	driver        *Driver
	frame         string
	width, height int
}

func (m frameModel) Init() tea.Cmd {
	m.driver.startOnce.Do(func() { close(m.driver.started) })
	return nil
}

func (m frameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.driver.forward(msg.String())
	case frameMsg:
		m.frame = string(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m frameModel) View() string {
	if m.width == 0 || m.height == 0 {
		return m.frame
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.frame)
}
