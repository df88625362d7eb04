// Package queue provides the unbounded FIFO queue that carries pointer
// events from window callbacks to the event loop. Producers never block
// and never drop: bursts of cursor movement land in a growable backlog
// and a pump goroutine feeds them, in order, to the single consumer.
package queue

import (
	"sync"
)

// Queue is an unbounded multi-producer, single-consumer FIFO.
//
// Push may be called from any goroutine. Exactly one consumer must
// receive from C; FIFO order is only defined for a single receiver.
type Queue[T any] struct {
	mu      sync.Mutex
	backlog []T

	wake chan struct{}
	out  chan T
	done chan struct{}

	closeOnce sync.Once
}

// New creates the queue and starts its pump goroutine.
func New[T any]() *Queue[T] {
	q := &Queue[T]{
		wake: make(chan struct{}, 1),
		out:  make(chan T),
		done: make(chan struct{}),
	}
	go q.pump()
	return q
}

// Push appends v to the queue. It never blocks and never drops; after
// Close it is a no-op.
func (q *Queue[T]) Push(v T) {
	select {
	case <-q.done:
		return
	default:
	}

	q.mu.Lock()
	q.backlog = append(q.backlog, v)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// C returns the channel the consumer receives from. The channel is closed
// when the queue is closed and the backlog is abandoned.
func (q *Queue[T]) C() <-chan T {
	return q.out
}

// Len reports the number of events not yet handed to the consumer.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.backlog)
}

// Close stops the pump. Events still in the backlog are discarded; the
// consumer's channel is closed once the pump exits. Close is idempotent.
func (q *Queue[T]) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
}

// pump moves events one at a time from the backlog to the consumer,
// blocking on wake when the backlog is empty.
func (q *Queue[T]) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		if len(q.backlog) == 0 {
			q.mu.Unlock()
			select {
			case <-q.wake:
				continue
			case <-q.done:
				return
			}
		}
		v := q.backlog[0]
		q.backlog = q.backlog[1:]
		q.mu.Unlock()

		select {
		case q.out <- v:
		case <-q.done:
			return
		}
	}
}
