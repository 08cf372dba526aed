package game

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Tick handles one raw ticker event. The blink flag advances in every mode.
// While playing, a sub-tick counter counts down from the configured value
// and the simulation update fires once it reaches the threshold for the
// current level; higher levels fire sooner.
func (s *State) Tick() {
	s.blinkTick++
	if s.blinkTick >= s.cfg.BlinkEvery {
		s.blinkTick = 0
		s.blink = !s.blink
	}

	if s.mode != ModePlaying {
		return
	}

	s.rawSinceMove++
	s.subTick--
	if s.subTick <= s.threshold() {
		elapsed := time.Duration(s.rawSinceMove) * s.cfg.TickInterval
		s.subTick = s.cfg.SubTicks
		s.rawSinceMove = 0
		s.Update(elapsed)
	}
}

// threshold is the sub-tick count at which the update fires. Level 0 waits
// for the counter to run out; the threshold never reaches the reset value,
// so even large levels move at most once per raw tick.
func (s *State) threshold() int {
	return core.Clamp(s.level, 0, s.cfg.SubTicks-1)
}

// Update runs one simulation step. It does nothing outside of play.
func (s *State) Update(elapsed time.Duration) {
	if s.mode != ModePlaying {
		return
	}

	s.elapsed += elapsed
	s.collect()

	for _, c := range slices.Clone(s.collectables) {
		if c.OnTick(s) {
			s.remove(c)
		}
	}

	s.move()
	s.stepSpecialSpawn()

	if s.collided() {
		s.lose()
	}
	s.headingLocked = false
}

// collect applies the first visible collectable under the head.
func (s *State) collect() {
	head := s.snake[0]
	for _, c := range s.collectables {
		if !c.Visible() || c.Position() != head {
			continue
		}
		if c.OnCollect(s) {
			s.remove(c)
		}
		return
	}
}

func (s *State) remove(c *Collectable) {
	s.collectables = slices.DeleteFunc(s.collectables, func(o *Collectable) bool {
		return o == c
	})
}

// move prepends the new head and drops the tail unless growth is pending.
func (s *State) move() {
	head := s.snake[0].Add(s.heading.Delta())
	s.snake = slices.Insert(s.snake, 0, head)
	if s.growth > 0 {
		s.growth--
		return
	}
	s.snake = s.snake[:len(s.snake)-1]
}

func (s *State) stepSpecialSpawn() {
	if s.specialCountdown > 0 {
		s.specialCountdown--
		return
	}
	if !s.hasSpecial() {
		s.spawn(specialKinds[s.rng.Intn(len(specialKinds))])
	}
	s.specialCountdown = s.rollSpecialCountdown()
}

// hasSpecial reports whether any non-apple item exists, including a
// speed boost that is active but no longer on the field.
func (s *State) hasSpecial() bool {
	return slices.ContainsFunc(s.collectables, func(c *Collectable) bool {
		return c.kind != KindApple
	})
}

func (s *State) collided() bool {
	head := s.snake[0]
	if !head.In(s.cfg.FieldWidth, s.cfg.FieldHeight) {
		return true
	}
	return slices.Contains(s.snake[1:], head)
}
