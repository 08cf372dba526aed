// Package game implements the snake simulation: the screen-mode state
// machine, the per-tick update, and the collectable items that act on it.
//
// A State is owned by a single goroutine. Nothing in this package locks.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Mode is the top-level screen mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeLost
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuQuit
	menuItemCount
)

func (m MenuItem) String() string {
	if m == MenuQuit {
		return "Quit"
	}
	return "Start"
}

// MenuItems lists the menu entries in display order.
func MenuItems() []MenuItem {
	return []MenuItem{MenuStart, MenuQuit}
}

// State is the simulation aggregate. It is created once, reset at the start
// of every round and discarded when the program exits.
type State struct {
	cfg config.GameConfig
	rng *rand.Rand

	mode   Mode
	cursor MenuItem
	exit   bool

	// Snake state, head at index 0
	snake         []core.Position
	heading       core.Heading
	headingLocked bool // a heading change was accepted since the last update
	growth        int  // tail segments to keep on upcoming moves

	collectables     []*Collectable
	level            int
	elapsed          time.Duration
	specialCountdown int

	// Raw tick bookkeeping
	subTick      int
	rawSinceMove int
	blinkTick    int
	blink        bool

	lastScore   int
	lostPending bool
	scores      []core.ScoreEntry
}

// New creates a State in menu mode. A nil rng is seeded from the clock.
func New(cfg config.GameConfig, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &State{
		cfg:    cfg,
		rng:    rng,
		mode:   ModeMenu,
		cursor: MenuStart,
	}
	s.resetRound()
	return s
}

// Reset starts a new round: fresh snake heading right, one apple, level
// zero, timer zero, and a new special-item countdown.
func (s *State) Reset() {
	s.resetRound()
	s.mode = ModePlaying
	s.spawn(KindApple)
}

func (s *State) resetRound() {
	n := s.cfg.InitialLength
	headX := s.cfg.FieldWidth/2 + (n-1)/2
	y := float64(s.cfg.FieldHeight / 2)

	s.snake = make([]core.Position, n)
	for i := range s.snake {
		s.snake[i] = core.Pos(float64(headX-i), y)
	}
	s.heading = core.HeadingRight
	s.headingLocked = false
	s.growth = 0

	s.collectables = nil
	s.level = 0
	s.elapsed = 0
	s.specialCountdown = s.rollSpecialCountdown()

	s.subTick = s.cfg.SubTicks
	s.rawSinceMove = 0
	s.lostPending = false
}

// Mode returns the current screen mode.
func (s *State) Mode() Mode { return s.mode }

// Cursor returns the highlighted menu entry.
func (s *State) Cursor() MenuItem { return s.cursor }

// ShouldExit reports whether the player asked to quit.
func (s *State) ShouldExit() bool { return s.exit }

// Snake returns the snake body, head first. The slice must not be modified.
func (s *State) Snake() []core.Position { return s.snake }

// Heading returns the current movement heading.
func (s *State) Heading() core.Heading { return s.heading }

// Level returns the difficulty level.
func (s *State) Level() int { return s.level }

// Elapsed returns the round time.
func (s *State) Elapsed() time.Duration { return s.elapsed }

// Score is the number of segments grown this round.
func (s *State) Score() int {
	return len(s.snake) - s.cfg.InitialLength
}

// SetScores replaces the high-score list shown on the menu.
func (s *State) SetScores(entries []core.ScoreEntry) {
	s.scores = entries
}

// TakeLostScore returns the score of a round that was just lost and has not
// been handed out yet. It reports false once the score was taken.
func (s *State) TakeLostScore() (int, bool) {
	if !s.lostPending {
		return 0, false
	}
	s.lostPending = false
	return s.lastScore, true
}

func (s *State) lose() {
	s.mode = ModeLost
	s.lastScore = s.Score()
	s.lostPending = true
}
