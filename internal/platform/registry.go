// Package platform connects the engine to real terminals. Driver packages
// register a factory from init(), and the CLI opens one by name without
// importing driver-specific code.
package platform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// Options is what every driver factory receives.
type Options struct {
	Keymap *Keymap
	Logger *log.Logger
}

// Factory acquires the terminal and returns a ready driver.
type Factory func(opts Options) (engine.Driver, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a driver factory under name.
// Panics if the name is already taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("platform: driver %q already registered", name))
	}
	factories[name] = f
}

// Names returns the registered driver names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open creates the driver registered under name.
func Open(name string, opts Options) (engine.Driver, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("platform: unknown driver %q (have %v)", name, Names())
	}
	d, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("platform: open %s driver: %w", name, err)
	}
	return d, nil
}

// Exists reports whether a driver is registered under name.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
