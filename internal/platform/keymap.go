package platform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Keymap translates driver key names into game keys. Names follow the
// Bubble Tea convention ("up", "enter", "ctrl+c", "a"); drivers that are not
// Bubble Tea based translate their events into the same names first.
type Keymap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Exit    key.Binding
}

// NewKeymap builds bindings from the configured key lists.
func NewKeymap(cfg config.InputConfig) *Keymap {
	return &Keymap{
		Up:      binding(cfg.Up, "up"),
		Down:    binding(cfg.Down, "down"),
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Confirm: binding(cfg.Confirm, "select"),
		Exit:    binding(cfg.Exit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyName lets a plain string go through key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// Lookup returns the game key bound to name, or KeyNone. Exit is checked
// first so a key bound twice always quits.
func (km *Keymap) Lookup(name string) core.Key {
	k := keyName(name)
	switch {
	case key.Matches(k, km.Exit):
		return core.KeyExit
	case key.Matches(k, km.Confirm):
		return core.KeyConfirm
	case key.Matches(k, km.Up):
		return core.KeyUp
	case key.Matches(k, km.Down):
		return core.KeyDown
	case key.Matches(k, km.Left):
		return core.KeyLeft
	case key.Matches(k, km.Right):
		return core.KeyRight
	default:
		return core.KeyNone
	}
}

// ShortHelp implements help.KeyMap.
func (km *Keymap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Confirm, km.Exit}
}

// FullHelp implements help.KeyMap.
func (km *Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Confirm, km.Exit},
	}
}
