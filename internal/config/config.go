// Package config provides YAML-based configuration loading for the snake
// game: field geometry and timing, loop pacing, score storage, key bindings
// and the terminal driver.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete runtime configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Loop   LoopConfig   `yaml:"loop"`
	Scores ScoresConfig `yaml:"scores"`
	Input  InputConfig  `yaml:"input"`
	UI     UIConfig     `yaml:"ui"`
}

// GameConfig defines the simulation parameters. All delays are in raw ticks.
type GameConfig struct {
	FieldWidth    int           `yaml:"field_width"`
	FieldHeight   int           `yaml:"field_height"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	SubTicks      int           `yaml:"sub_ticks"` // raw ticks per simulation step at level 0
	InitialLength int           `yaml:"initial_length"`
	BlinkEvery    int           `yaml:"blink_every"`

	BoostLevel    int `yaml:"boost_level"`
	BoostMinTicks int `yaml:"boost_min_ticks"` // inclusive
	BoostMaxTicks int `yaml:"boost_max_ticks"` // exclusive

	SpecialMinTicks int `yaml:"special_min_ticks"`
	SpecialMaxTicks int `yaml:"special_max_ticks"` // inclusive
}

// LoopConfig tunes the control loop.
type LoopConfig struct {
	// IdleWait bounds how long an iteration that found no event waits for
	// the queue before rendering again. Zero makes the loop spin.
	IdleWait time.Duration `yaml:"idle_wait"`
}

// ScoresConfig selects the score store.
type ScoresConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`    // empty = per-user data directory
	Player  string `yaml:"player"`
	MenuTop int    `yaml:"menu_top"` // entries listed on the menu screen
}

// InputConfig lists the key names bound to each action. Names follow the
// Bubble Tea key string convention ("up", "enter", "ctrl+c", "w").
type InputConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Confirm []string `yaml:"confirm"`
	Exit    []string `yaml:"exit"`
}

// UIConfig selects the terminal driver.
type UIConfig struct {
	Driver string `yaml:"driver"` // "tea" or "tcell"
}

// Score store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Terminal drivers.
const (
	DriverTea   = "tea"
	DriverTcell = "tcell"
)

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	g := c.Game

	if g.FieldWidth < 2 || g.FieldHeight < 2 {
		errs = append(errs, fmt.Errorf("field must be at least 2x2, got %dx%d", g.FieldWidth, g.FieldHeight))
	}
	if g.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial_length must be positive, got %d", g.InitialLength))
	} else if g.InitialLength >= g.FieldWidth {
		errs = append(errs, fmt.Errorf("initial_length %d does not fit field width %d", g.InitialLength, g.FieldWidth))
	}
	if g.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", g.TickInterval))
	}
	if g.SubTicks < 1 {
		errs = append(errs, fmt.Errorf("sub_ticks must be at least 1, got %d", g.SubTicks))
	}
	if g.BlinkEvery < 1 {
		errs = append(errs, fmt.Errorf("blink_every must be at least 1, got %d", g.BlinkEvery))
	}
	if g.BoostLevel < 0 {
		errs = append(errs, fmt.Errorf("boost_level must not be negative, got %d", g.BoostLevel))
	}
	if g.BoostMinTicks < 1 || g.BoostMaxTicks <= g.BoostMinTicks {
		errs = append(errs, fmt.Errorf("boost ticks must satisfy 1 <= min < max, got [%d, %d)", g.BoostMinTicks, g.BoostMaxTicks))
	}
	if g.SpecialMinTicks < 1 || g.SpecialMaxTicks < g.SpecialMinTicks {
		errs = append(errs, fmt.Errorf("special ticks must satisfy 1 <= min <= max, got [%d, %d]", g.SpecialMinTicks, g.SpecialMaxTicks))
	}
	if c.Loop.IdleWait < 0 {
		errs = append(errs, fmt.Errorf("idle_wait must not be negative, got %s", c.Loop.IdleWait))
	}

	switch c.Scores.Backend {
	case BackendJSON, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("unknown scores backend %q", c.Scores.Backend))
	}
	if c.Scores.Player == "" {
		errs = append(errs, errors.New("scores player name must not be empty"))
	}
	if c.Scores.MenuTop < 0 {
		errs = append(errs, fmt.Errorf("menu_top must not be negative, got %d", c.Scores.MenuTop))
	}

	switch c.UI.Driver {
	case DriverTea, DriverTcell:
	default:
		errs = append(errs, fmt.Errorf("unknown driver %q", c.UI.Driver))
	}

	for action, keys := range c.Input.bindings() {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("no keys bound to %s", action))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (in InputConfig) bindings() map[string][]string {
	return map[string][]string{
		"up":      in.Up,
		"down":    in.Down,
		"left":    in.Left,
		"right":   in.Right,
		"confirm": in.Confirm,
		"exit":    in.Exit,
	}
}
