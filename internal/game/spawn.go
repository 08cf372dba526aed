package game

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxSpawnAttempts bounds random re-rolls before falling back to a scan.
const maxSpawnAttempts = 1000

// spawn places a new item of the given kind on a free cell. It reports
// false, and spawns nothing, when the field has no free cell left.
func (s *State) spawn(kind Kind) bool {
	pos, ok := s.freePosition()
	if !ok {
		return false
	}
	s.collectables = append(s.collectables, newCollectable(kind, pos))
	return true
}

// freePosition picks a random whole-number cell that is not covered by the
// snake or a visible item. Items stay off the outer ring of the field when
// the field is large enough to have an inner area.
func (s *State) freePosition() (core.Position, bool) {
	x0, x1 := spawnRange(s.cfg.FieldWidth)
	y0, y1 := spawnRange(s.cfg.FieldHeight)

	for range maxSpawnAttempts {
		p := core.Pos(float64(x0+s.rng.Intn(x1-x0)), float64(y0+s.rng.Intn(y1-y0)))
		if !s.occupied(p) {
			return p, true
		}
	}

	var free []core.Position
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			if p := core.Pos(float64(x), float64(y)); !s.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Position{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

func spawnRange(n int) (int, int) {
	if n > 2 {
		return 1, n - 1
	}
	return 0, n
}

func (s *State) occupied(p core.Position) bool {
	if slices.Contains(s.snake, p) {
		return true
	}
	return slices.ContainsFunc(s.collectables, func(c *Collectable) bool {
		return c.Visible() && c.pos == p
	})
}

// rollSpecialCountdown returns a value in [SpecialMinTicks, SpecialMaxTicks].
func (s *State) rollSpecialCountdown() int {
	return s.cfg.SpecialMinTicks + s.rng.Intn(s.cfg.SpecialMaxTicks-s.cfg.SpecialMinTicks+1)
}
