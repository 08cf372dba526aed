package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// JSONStore keeps the whole ranked list in one JSON array of
// {"player_name", "score"} objects.
type JSONStore struct {
	path   string
	logger *log.Logger
	mu     sync.Mutex
}

// OpenJSON prepares a JSON store at path. The file itself is created on the
// first Add.
func OpenJSON(path string, logger *log.Logger) (*JSONStore, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return &JSONStore{path: path, logger: logger}, nil
}

// Path returns the backing file.
func (s *JSONStore) Path() string {
	return s.path
}

// Load returns the ranked list. A missing, unreadable or malformed file
// counts as an empty list.
func (s *JSONStore) Load() ([]core.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

// Add appends an entry and rewrites the file.
func (s *JSONStore) Add(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.read(), core.ScoreEntry{PlayerName: name, Score: score})
	rank(entries)
	return s.write(entries)
}

// Clear truncates the list to an empty array.
func (s *JSONStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]core.ScoreEntry{})
}

// Close is a no-op; every Add is already on disk.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) read() []core.ScoreEntry {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		s.logger.Warn("cannot read scores, starting empty", "path", s.path, "err", err)
		return nil
	}

	var entries []core.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("malformed scores file, starting empty", "path", s.path, "err", err)
		return nil
	}
	rank(entries)
	return entries
}

// write replaces the file atomically so a crash never leaves half a list.
func (s *JSONStore) write(entries []core.ScoreEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot sync scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// rank sorts by score, highest first, keeping insertion order for ties.
func rank(entries []core.ScoreEntry) {
	slices.SortStableFunc(entries, func(a, b core.ScoreEntry) int {
		return b.Score - a.Score
	})
}
