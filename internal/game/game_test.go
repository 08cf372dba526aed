package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s := New(config.Default().Game, rand.New(rand.NewSource(1)))
	s.Reset()
	return s
}

func countKind(s *State, kind Kind) int {
	n := 0
	for _, c := range s.collectables {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func TestNewStartsInMenu(t *testing.T) {
	s := New(config.Default().Game, rand.New(rand.NewSource(1)))

	if s.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", s.Mode())
	}
	if s.Cursor() != MenuStart {
		t.Errorf("Cursor() = %v, expected Start", s.Cursor())
	}
	if len(s.collectables) != 0 {
		t.Errorf("menu should have no collectables, got %d", len(s.collectables))
	}
}

func TestResetInitialRound(t *testing.T) {
	s := newTestState(t)

	expected := []core.Position{
		core.Pos(21, 5), core.Pos(20, 5), core.Pos(19, 5), core.Pos(18, 5), core.Pos(17, 5),
	}
	if len(s.snake) != len(expected) {
		t.Fatalf("snake length = %d, expected %d", len(s.snake), len(expected))
	}
	for i, p := range expected {
		if s.snake[i] != p {
			t.Errorf("segment %d = %v, expected %v", i, s.snake[i], p)
		}
	}
	if s.Heading() != core.HeadingRight {
		t.Errorf("Heading() = %v, expected right", s.Heading())
	}
	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected playing", s.Mode())
	}
	if countKind(s, KindApple) != 1 || len(s.collectables) != 1 {
		t.Errorf("expected exactly one apple, got %v", s.collectables)
	}
	if s.specialCountdown < 100 || s.specialCountdown > 300 {
		t.Errorf("special countdown %d outside [100, 300]", s.specialCountdown)
	}
	if s.Score() != 0 || s.Level() != 0 || s.Elapsed() != 0 {
		t.Errorf("score/level/elapsed should start at zero, got %d/%d/%v", s.Score(), s.Level(), s.Elapsed())
	}
}

func TestResetClearsPreviousRound(t *testing.T) {
	s := newTestState(t)
	s.spawn(KindReverse)
	s.level = 2
	s.elapsed = time.Minute

	s.Reset()

	if len(s.collectables) != 1 || countKind(s, KindApple) != 1 {
		t.Errorf("reset should leave a single apple, got %v", s.collectables)
	}
	if s.level != 0 || s.elapsed != 0 {
		t.Errorf("reset should clear level and timer, got %d and %v", s.level, s.elapsed)
	}
}

func TestMenuCursorClamped(t *testing.T) {
	s := New(config.Default().Game, rand.New(rand.NewSource(1)))

	s.HandleKey(core.KeyUp)
	if s.Cursor() != MenuStart {
		t.Errorf("cursor should not wrap above Start, got %v", s.Cursor())
	}
	s.HandleKey(core.KeyDown)
	s.HandleKey(core.KeyDown)
	s.HandleKey(core.KeyDown)
	if s.Cursor() != MenuQuit {
		t.Errorf("cursor should stop at Quit, got %v", s.Cursor())
	}
	s.HandleKey(core.KeyUp)
	if s.Cursor() != MenuStart {
		t.Errorf("cursor should move back to Start, got %v", s.Cursor())
	}
}

func TestMenuConfirm(t *testing.T) {
	s := New(config.Default().Game, rand.New(rand.NewSource(1)))
	s.HandleKey(core.KeyConfirm)
	if s.Mode() != ModePlaying {
		t.Errorf("confirming Start should begin play, got %v", s.Mode())
	}

	s = New(config.Default().Game, rand.New(rand.NewSource(1)))
	s.HandleKey(core.KeyDown)
	s.HandleKey(core.KeyConfirm)
	if !s.ShouldExit() {
		t.Error("confirming Quit should set the exit flag")
	}
	if s.Mode() != ModeMenu {
		t.Errorf("quitting should not change mode, got %v", s.Mode())
	}
}

func TestMenuIgnoresSideKeys(t *testing.T) {
	s := New(config.Default().Game, rand.New(rand.NewSource(1)))
	s.HandleKey(core.KeyLeft)
	s.HandleKey(core.KeyRight)
	s.HandleKey(core.KeyNone)

	if s.Mode() != ModeMenu || s.Cursor() != MenuStart || s.ShouldExit() {
		t.Error("side keys should be no-ops on the menu")
	}
}

func TestExitInEveryMode(t *testing.T) {
	for _, mode := range []Mode{ModeMenu, ModePlaying, ModeLost} {
		s := newTestState(t)
		s.mode = mode
		s.HandleKey(core.KeyExit)
		if !s.ShouldExit() {
			t.Errorf("exit key ignored in %v", mode)
		}
	}
}

func TestLostConfirmReturnsToMenu(t *testing.T) {
	s := newTestState(t)
	s.cursor = MenuQuit
	s.lose()

	// Directions do nothing on the lost screen.
	s.HandleKey(core.KeyUp)
	if s.Mode() != ModeLost {
		t.Fatalf("Mode() = %v, expected lost", s.Mode())
	}

	s.HandleKey(core.KeyConfirm)
	if s.Mode() != ModeMenu {
		t.Errorf("Mode() = %v, expected menu", s.Mode())
	}
	if s.Cursor() != MenuStart {
		t.Errorf("cursor should reset to Start, got %v", s.Cursor())
	}
}

func TestOppositeKeyIgnored(t *testing.T) {
	s := newTestState(t)

	for range 10 {
		s.HandleKey(core.KeyLeft)
	}
	if s.Heading() != core.HeadingRight {
		t.Errorf("Heading() = %v, reversal should be ignored", s.Heading())
	}

	// The ignored reversals did not use up the window.
	s.HandleKey(core.KeyUp)
	if s.Heading() != core.HeadingUp {
		t.Errorf("Heading() = %v, expected up", s.Heading())
	}
}

func TestDebounceOneChangePerUpdate(t *testing.T) {
	s := newTestState(t)

	s.HandleKey(core.KeyUp)
	s.HandleKey(core.KeyLeft)
	if s.Heading() != core.HeadingUp {
		t.Fatalf("second change in one window should be dropped, heading = %v", s.Heading())
	}

	s.Update(0)
	s.HandleKey(core.KeyLeft)
	if s.Heading() != core.HeadingLeft {
		t.Errorf("update should reopen the window, heading = %v", s.Heading())
	}
}

func TestSameHeadingKeepsWindowOpen(t *testing.T) {
	s := newTestState(t)

	s.HandleKey(core.KeyRight)
	s.HandleKey(core.KeyDown)
	if s.Heading() != core.HeadingDown {
		t.Errorf("repeating the current heading should not close the window, heading = %v", s.Heading())
	}
}

func TestHeadingNeverReversedWithinWindow(t *testing.T) {
	s := newTestState(t)
	rng := rand.New(rand.NewSource(42))
	keys := []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyConfirm}

	for i := range 5000 {
		if rng.Intn(3) == 0 {
			s.Tick()
		} else {
			prev, locked, mode := s.heading, s.headingLocked, s.mode
			s.HandleKey(keys[rng.Intn(len(keys))])
			// Starting a round resets the heading; only steering counts.
			if mode == ModePlaying && s.heading != prev {
				if locked {
					t.Fatalf("step %d: heading changed twice in one window", i)
				}
				if s.heading.IsOpposite(prev) {
					t.Fatalf("step %d: heading reversed from %v to %v", i, prev, s.heading)
				}
			}
		}
		if len(s.snake) < 1 {
			t.Fatalf("step %d: snake is empty", i)
		}
	}
}

func TestMoveDeltas(t *testing.T) {
	tests := []struct {
		heading  core.Heading
		expected core.Position
	}{
		{core.HeadingUp, core.Pos(5, 5.5)},
		{core.HeadingDown, core.Pos(5, 4.5)},
		{core.HeadingLeft, core.Pos(4, 5)},
		{core.HeadingRight, core.Pos(6, 5)},
	}

	for _, tt := range tests {
		s := newTestState(t)
		s.snake = []core.Position{core.Pos(5, 5)}
		s.collectables = nil
		s.heading = tt.heading

		s.Update(0)

		if s.snake[0] != tt.expected {
			t.Errorf("heading %v: head = %v, expected %v", tt.heading, s.snake[0], tt.expected)
		}
		if len(s.snake) != 1 {
			t.Errorf("heading %v: length = %d, expected 1", tt.heading, len(s.snake))
		}
	}
}

func TestAppleGrowth(t *testing.T) {
	s := newTestState(t)
	s.collectables = []*Collectable{newCollectable(KindApple, s.snake[0])}
	before := len(s.snake)
	tail := s.snake[len(s.snake)-1]

	s.Update(0)

	if len(s.snake) != before+1 {
		t.Errorf("length = %d, expected %d", len(s.snake), before+1)
	}
	if s.snake[len(s.snake)-1] != tail {
		t.Errorf("tail = %v, growth should keep %v", s.snake[len(s.snake)-1], tail)
	}
	if s.Heading() != core.HeadingRight {
		t.Errorf("Heading() = %v, apple must not steer", s.Heading())
	}
	if countKind(s, KindApple) != 1 {
		t.Errorf("expected a fresh apple, got %v", s.collectables)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
}

func TestExactlyOneAppleWhilePlaying(t *testing.T) {
	s := newTestState(t)
	s.specialCountdown = 0

	for i := 0; i < 200 && s.Mode() == ModePlaying; i++ {
		// Feed the snake now and then so apples are consumed and replaced.
		if i%4 == 0 {
			for _, c := range s.collectables {
				if c.kind == KindApple {
					c.pos = s.snake[0]
				}
			}
		}
		switch i % 8 {
		case 0:
			s.Steer(core.HeadingUp)
		case 2, 6:
			s.Steer(core.HeadingRight)
		case 4:
			s.Steer(core.HeadingDown)
		}
		s.Update(0)
		if s.Mode() == ModePlaying && countKind(s, KindApple) != 1 {
			t.Fatalf("update %d: %d apples on the field", i, countKind(s, KindApple))
		}
	}
}

func TestBoundsCollision(t *testing.T) {
	cfg := config.Default().Game
	cfg.FieldWidth, cfg.FieldHeight = 10, 10
	s := New(cfg, rand.New(rand.NewSource(1)))
	s.Reset()
	s.collectables = nil
	s.snake = []core.Position{core.Pos(9.5, 5), core.Pos(8.5, 5)}
	s.heading = core.HeadingRight

	s.Update(0)

	if s.snake[0].X <= 10 {
		t.Fatalf("head x = %g, expected past the edge", s.snake[0].X)
	}
	if s.Mode() != ModeLost {
		t.Errorf("Mode() = %v, expected lost", s.Mode())
	}
}

func TestBoundsAtLowerEdge(t *testing.T) {
	s := newTestState(t)
	s.collectables = nil
	s.snake = []core.Position{core.Pos(5, 0.5)}
	s.heading = core.HeadingDown

	s.Update(0)
	if s.Mode() != ModePlaying {
		t.Fatalf("y = 0 is inside the field, got %v", s.Mode())
	}
	s.Update(0)
	if s.Mode() != ModeLost {
		t.Errorf("y = -0.5 is outside the field, got %v", s.Mode())
	}
}

func TestSelfCollision(t *testing.T) {
	s := newTestState(t)
	s.collectables = nil
	s.snake = []core.Position{
		core.Pos(5, 5), core.Pos(4, 5), core.Pos(3, 5), core.Pos(2, 5),
		core.Pos(2, 5.5), core.Pos(2, 6), core.Pos(2, 6.5),
	}
	// Force the head back onto the second segment.
	s.heading = core.HeadingLeft

	s.Update(0)

	if s.Mode() != ModeLost {
		t.Fatalf("Mode() = %v, expected lost", s.Mode())
	}
	score, ok := s.TakeLostScore()
	if !ok {
		t.Fatal("lost score should be pending")
	}
	if want := len(s.snake) - s.cfg.InitialLength; score != want {
		t.Errorf("score = %d, expected %d", score, want)
	}
	if _, ok := s.TakeLostScore(); ok {
		t.Error("lost score should be handed out once")
	}
}

func TestReverse(t *testing.T) {
	s := newTestState(t)
	s.snake = []core.Position{core.Pos(5, 5), core.Pos(4, 5), core.Pos(3, 5)}
	s.heading = core.HeadingRight

	item := newCollectable(KindReverse, s.snake[0])
	if !item.OnCollect(s) {
		t.Error("reverse should be removed on collect")
	}

	expected := []core.Position{core.Pos(3, 5), core.Pos(4, 5), core.Pos(5, 5)}
	for i, p := range expected {
		if s.snake[i] != p {
			t.Errorf("segment %d = %v, expected %v", i, s.snake[i], p)
		}
	}
	if s.Heading() != core.HeadingLeft {
		t.Errorf("Heading() = %v, expected left", s.Heading())
	}
}

func TestReverseVertical(t *testing.T) {
	s := newTestState(t)
	s.snake = []core.Position{core.Pos(5, 5), core.Pos(5, 5.5), core.Pos(6, 5.5)}
	s.heading = core.HeadingDown

	newCollectable(KindReverse, s.snake[0]).OnCollect(s)

	// New head (6, 5.5) minus second (5, 5.5) points right.
	if s.Heading() != core.HeadingRight {
		t.Errorf("Heading() = %v, expected right", s.Heading())
	}
}

func TestReverseSingleSegment(t *testing.T) {
	s := newTestState(t)
	s.snake = []core.Position{core.Pos(5, 5)}
	s.heading = core.HeadingUp

	newCollectable(KindReverse, s.snake[0]).OnCollect(s)

	if s.Heading() != core.HeadingDown {
		t.Errorf("Heading() = %v, expected down", s.Heading())
	}
}

func TestReverseViaUpdate(t *testing.T) {
	s := newTestState(t)
	s.collectables = []*Collectable{newCollectable(KindReverse, s.snake[0])}

	s.Update(0)

	if s.Heading() != core.HeadingLeft {
		t.Errorf("Heading() = %v, expected left", s.Heading())
	}
	// Old tail (17, 5) became the head and moved one step left.
	if s.snake[0] != core.Pos(16, 5) {
		t.Errorf("head = %v, expected (16, 5)", s.snake[0])
	}
	if len(s.collectables) != 0 {
		t.Errorf("reverse should be gone, got %v", s.collectables)
	}
	if s.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, expected playing", s.Mode())
	}
}

func TestSpeedBoostExpiry(t *testing.T) {
	s := newTestState(t)
	s.level = 0
	boost := newCollectable(KindSpeedBoost, core.Pos(1, 1))

	if boost.OnCollect(s) {
		t.Fatal("speed boost should stay in the collection after collect")
	}
	if s.Level() != s.cfg.BoostLevel {
		t.Errorf("Level() = %d, expected %d", s.Level(), s.cfg.BoostLevel)
	}
	if boost.Visible() {
		t.Error("active speed boost should be invisible")
	}
	remaining := boost.Remaining()
	if remaining < s.cfg.BoostMinTicks || remaining >= s.cfg.BoostMaxTicks {
		t.Fatalf("countdown %d outside [%d, %d)", remaining, s.cfg.BoostMinTicks, s.cfg.BoostMaxTicks)
	}

	for i := 1; i < remaining; i++ {
		if boost.OnTick(s) {
			t.Fatalf("boost expired early after %d ticks", i)
		}
	}
	if !boost.OnTick(s) {
		t.Fatal("boost should expire when the countdown reaches zero")
	}
	if s.Level() != 0 {
		t.Errorf("Level() = %d, expected prior level 0", s.Level())
	}
}

func TestSpeedBoostViaUpdate(t *testing.T) {
	s := newTestState(t)
	s.collectables = []*Collectable{newCollectable(KindSpeedBoost, s.snake[0])}
	s.specialCountdown = 1000

	s.Update(0)
	if s.Level() != s.cfg.BoostLevel {
		t.Fatalf("Level() = %d, expected boost level", s.Level())
	}
	if countKind(s, KindSpeedBoost) != 1 {
		t.Fatal("active boost should remain in the collection")
	}
	if snap := s.Snapshot(); snap.BoostRemaining == 0 || len(snap.Items) != 0 {
		t.Errorf("snapshot should show the timer but not the item, got %+v", snap)
	}

	// Walk the snake up and down in place so it survives the countdown.
	for i := 0; i < s.cfg.BoostMaxTicks && countKind(s, KindSpeedBoost) > 0; i++ {
		s.snake = []core.Position{core.Pos(5, 5)}
		s.Update(0)
	}
	if countKind(s, KindSpeedBoost) != 0 {
		t.Error("expired boost should be removed")
	}
	if s.Level() != 0 {
		t.Errorf("Level() = %d, expected 0 after expiry", s.Level())
	}
}

func TestSpecialSpawn(t *testing.T) {
	s := newTestState(t)
	s.specialCountdown = 0

	s.Update(0)

	if got := len(s.collectables) - countKind(s, KindApple); got != 1 {
		t.Fatalf("expected one special item, got %d", got)
	}
	if s.specialCountdown < 100 || s.specialCountdown > 300 {
		t.Errorf("countdown %d should be re-rolled into [100, 300]", s.specialCountdown)
	}

	// A special already present blocks the next spawn.
	s.specialCountdown = 0
	s.Update(0)
	if got := len(s.collectables) - countKind(s, KindApple); got != 1 {
		t.Errorf("expected still one special item, got %d", got)
	}
}

func TestSpecialSpawnCountsDown(t *testing.T) {
	s := newTestState(t)
	s.specialCountdown = 2

	s.Update(0)
	if s.specialCountdown != 1 {
		t.Errorf("countdown = %d, expected 1", s.specialCountdown)
	}
	if len(s.collectables) != 1 {
		t.Errorf("nothing should spawn before zero, got %v", s.collectables)
	}
}

func TestSpawnAvoidsSnake(t *testing.T) {
	cfg := config.Default().Game
	cfg.FieldWidth, cfg.FieldHeight = 4, 3
	s := New(cfg, rand.New(rand.NewSource(1)))

	// Inner area of a 4x3 field is (1, 1) and (2, 1).
	s.snake = []core.Position{core.Pos(1, 1)}
	for range 20 {
		s.collectables = nil
		if !s.spawn(KindApple) {
			t.Fatal("spawn should find the free cell")
		}
		if got := s.collectables[0].Position(); got != core.Pos(2, 1) {
			t.Fatalf("spawned at %v, expected (2, 1)", got)
		}
	}

	s.snake = []core.Position{core.Pos(1, 1), core.Pos(2, 1)}
	s.collectables = nil
	if s.spawn(KindApple) {
		t.Error("spawn on a full field should fail")
	}
	if len(s.collectables) != 0 {
		t.Errorf("nothing should spawn on a full field, got %v", s.collectables)
	}
}

func TestSpawnPositionsAreWholeCells(t *testing.T) {
	s := newTestState(t)
	for range 100 {
		p, ok := s.freePosition()
		if !ok {
			t.Fatal("free position expected")
		}
		if p.X != float64(int(p.X)) || p.Y != float64(int(p.Y)) {
			t.Fatalf("%v is not a whole cell", p)
		}
		if p.X < 1 || p.X >= float64(s.cfg.FieldWidth-1) || p.Y < 1 || p.Y >= float64(s.cfg.FieldHeight-1) {
			t.Fatalf("%v lies on the outer ring", p)
		}
	}
}
