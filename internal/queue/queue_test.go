package queue

import (
	"sync"
	"testing"
	"time"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()
	defer q.Close()

	const n = 100
	for i := range n {
		q.Push(i)
	}

	for i := range n {
		select {
		case got := <-q.C():
			if got != i {
				t.Fatalf("received %d, want %d", got, i)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for element %d", i)
		}
	}
}

func TestQueuePushNeverBlocks(t *testing.T) {
	q := New[int]()
	defer q.Close()

	// No consumer: a burst far beyond any channel capacity must still
	// land without blocking.
	const n = 10000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range n {
			q.Push(i)
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Push blocked on an unconsumed queue")
	}

	// The pump holds at most one element in flight; the rest stay in
	// the backlog.
	if got := q.Len(); got < n-1 {
		t.Errorf("Len() = %d, want at least %d", got, n-1)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := New[int]()
	defer q.Close()

	const producers = 8
	const perProducer = 500

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				q.Push(p*perProducer + i)
			}
		}()
	}

	seen := make(map[int]bool, producers*perProducer)
	recvDone := make(chan struct{})
	go func() {
		defer close(recvDone)
		for range producers * perProducer {
			select {
			case v := <-q.C():
				if seen[v] {
					t.Errorf("element %d delivered twice", v)
					return
				}
				seen[v] = true
			case <-time.After(5 * time.Second):
				t.Error("timed out draining queue")
				return
			}
		}
	}()

	wg.Wait()
	<-recvDone

	if len(seen) != producers*perProducer {
		t.Errorf("received %d distinct elements, want %d", len(seen), producers*perProducer)
	}
}

func TestQueueCloseClosesConsumerChannel(t *testing.T) {
	q := New[int]()
	q.Close()

	select {
	case _, ok := <-q.C():
		if ok {
			t.Error("received an element from a closed queue")
		}
	case <-time.After(time.Second):
		t.Fatal("consumer channel not closed after Close")
	}
}

func TestQueuePushAfterClose(t *testing.T) {
	q := New[int]()
	q.Close()

	// Must not panic or block.
	q.Push(1)
	q.Push(2)
}

func TestQueueCloseIdempotent(t *testing.T) {
	q := New[int]()
	q.Close()
	q.Close()
}

func TestQueueOrderUnderLoad(t *testing.T) {
	q := New[int]()
	defer q.Close()

	const n = 2000
	go func() {
		for i := range n {
			q.Push(i)
		}
	}()

	next := 0
	for next < n {
		select {
		case v := <-q.C():
			if v != next {
				t.Fatalf("received %d, want %d", v, next)
			}
			next++
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out at element %d", next)
		}
	}
}
