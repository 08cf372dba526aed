// Package storage persists finished rounds. Two backends share one
// interface: a JSON file (the default) and a SQLite database using the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Store is a ranked score list.
type Store interface {
	// Load returns every entry, highest score first. Ties keep the order
	// in which they were added.
	Load() ([]core.ScoreEntry, error)
	// Add records a score. It is durable when Add returns.
	Add(name string, score int) error
	// Clear removes every entry.
	Clear() error
	Close() error
}

// Open opens the backend named by cfg. An empty path selects the default
// file in the per-user data directory.
func Open(cfg config.ScoresConfig, logger *log.Logger) (Store, error) {
	path := cfg.Path
	if path == "" {
		var err error
		if path, err = DefaultPath(cfg.Backend); err != nil {
			return nil, err
		}
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendJSON:
		return OpenJSON(path, logger)
	case config.BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

// DefaultPath returns the score file for a backend inside DataDir.
func DefaultPath(backend string) (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	name := "scores.json"
	if backend == config.BackendSQLite {
		name = "scores.db"
	}
	return filepath.Join(dir, name), nil
}

// DataDir returns the per-user application data directory:
// $XDG_DATA_HOME/tui-snake, ~/.local/share/tui-snake, or %APPDATA%\tui-snake
// on Windows.
func DataDir() (string, error) {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, config.AppName), nil
		}
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, config.AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", config.AppName), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}
