package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type scriptedReader struct {
	keys []core.Key
	err  error
}

func (r *scriptedReader) ReadKey() (core.Key, error) {
	if len(r.keys) == 0 {
		return core.KeyNone, r.err
	}
	k := r.keys[0]
	r.keys = r.keys[1:]
	return k, nil
}

func TestInputProducerDropsMeaninglessKeys(t *testing.T) {
	boom := errors.New("tty gone")
	r := &scriptedReader{
		keys: []core.Key{core.KeyUp, core.KeyNone, core.KeyConfirm, core.KeyNone},
		err:  boom,
	}
	q := NewQueue()

	err := RunInputProducer(context.Background(), r, q)
	require.ErrorIs(t, err, boom)

	var got []Event
	for ev, ok := q.TryPop(); ok; ev, ok = q.TryPop() {
		got = append(got, ev)
	}
	assert.Equal(t, []Event{InputEvent{Key: core.KeyUp}, InputEvent{Key: core.KeyConfirm}}, got)
}

func TestInputProducerStopsQuietlyAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &scriptedReader{err: errDriverClosed}
	assert.NoError(t, RunInputProducer(ctx, r, NewQueue()))
}

func TestTickerPushesUntilCancelled(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		RunTicker(ctx, time.Millisecond, q)
		close(done)
	}()

	require.Eventually(t, func() bool { return q.Len() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop after cancel")
	}

	ev, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, TickEvent{}, ev)
}
