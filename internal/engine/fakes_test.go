package engine

import (
	"errors"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var errDriverClosed = errors.New("driver closed")

type fakeDriver struct {
	keys     chan core.Key
	readErr  error // returned by every ReadKey when set
	done     chan struct{}
	once     sync.Once
	closes   atomic.Int32
	presents atomic.Int32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		keys: make(chan core.Key, 16),
		done: make(chan struct{}),
	}
}

func (d *fakeDriver) ReadKey() (core.Key, error) {
	if d.readErr != nil {
		return core.KeyNone, d.readErr
	}
	select {
	case k := <-d.keys:
		return k, nil
	case <-d.done:
		return core.KeyNone, errDriverClosed
	}
}

func (d *fakeDriver) Present(*core.Screen) error {
	d.presents.Add(1)
	return nil
}

func (d *fakeDriver) Close() error {
	d.closes.Add(1)
	d.once.Do(func() { close(d.done) })
	return nil
}

type fakeRenderer struct {
	renders int
	panicOn int // panic on this render, 0 = never
}

func (r *fakeRenderer) Render(game.Snapshot) {
	r.renders++
	if r.renders == r.panicOn {
		panic("render failed")
	}
}

type fakeStore struct {
	mu      sync.Mutex
	entries []core.ScoreEntry
	loads   int
}

func (s *fakeStore) Load() ([]core.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return append([]core.ScoreEntry(nil), s.entries...), nil
}

func (s *fakeStore) Add(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, core.ScoreEntry{PlayerName: name, Score: score})
	return nil
}

func (s *fakeStore) added() []core.ScoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.ScoreEntry(nil), s.entries...)
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func testOptions() Options {
	return Options{
		TickInterval: config.Default().Game.TickInterval,
		IdleWait:     time.Millisecond,
		Player:       "tester",
		MenuTop:      5,
	}
}

func newTestLoop(t *testing.T, cfg config.GameConfig) (*Loop, *fakeDriver, *fakeRenderer, *fakeStore) {
	t.Helper()
	d := newFakeDriver()
	r := &fakeRenderer{}
	st := &fakeStore{}
	state := game.New(cfg, rand.New(rand.NewSource(1)))
	return NewLoop(state, d, r, st, testOptions(), testLogger()), d, r, st
}
