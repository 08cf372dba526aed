package engine

import "sync"

// Queue is an unbounded FIFO shared by any number of producers and a single
// consumer. Push never blocks and never drops; TryPop never blocks.
type Queue struct {
	mu    sync.Mutex
	items []Event
	ready chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		ready: make(chan struct{}, 1),
	}
}

// Push appends ev and wakes a consumer waiting on Ready.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// TryPop removes the oldest event. It reports false when the queue is empty.
func (q *Queue) TryPop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}
	ev := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		// Let append reuse the backing array from the start.
		q.items = q.items[:0:0]
	}
	return ev, true
}

// Ready is signalled after a Push. A signal may be stale; the receiver must
// still use TryPop to find out whether anything is queued.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
