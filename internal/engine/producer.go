package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyReader blocks until the next key press.
type KeyReader interface {
	ReadKey() (core.Key, error)
}

// RunInputProducer forwards key presses to q until ReadKey fails or ctx is
// done. Keys that mean nothing to the game are dropped. It returns nil when
// stopped through ctx, otherwise the read error.
//
// ReadKey cannot be interrupted, so after cancellation the producer stays
// blocked until the reader is closed.
func RunInputProducer(ctx context.Context, r KeyReader, q *Queue) error {
	for {
		key, err := r.ReadKey()
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("engine: read key: %w", err)
		}
		if key == core.KeyNone {
			continue
		}
		q.Push(InputEvent{Key: key})
	}
}

// RunTicker pushes a TickEvent every interval until ctx is done.
func RunTicker(ctx context.Context, interval time.Duration, q *Queue) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.Push(TickEvent{})
		}
	}
}
