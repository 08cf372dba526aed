// Package engine drives the game: two producers feed one event queue and a
// single control loop consumes it, owning the game state exclusively.
package engine

import "github.com/vovakirdan/tui-snake/internal/core"

// Event is a value pushed by a producer and consumed by the loop.
type Event interface {
	event()
}

// InputEvent carries a key press that means something to the game.
type InputEvent struct {
	Key core.Key
}

func (InputEvent) event() {}

// TickEvent is one beat of the fixed-interval ticker.
type TickEvent struct{}

func (TickEvent) event() {}
