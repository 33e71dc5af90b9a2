package toydiff

import (
	"io"
	"sync"
)

// Queue is a FIFO of values usable as an upstream for Diff: an empty
// open queue reports ErrWouldBlock, a closed one drains its remainder
// and then reports io.EOF. Limit caps the queued count; zero or less
// means unbounded. Set Limit before use. The zero Queue is ready.
type Queue[V any] struct {
	Limit  int
	vals   []V
	closed bool
	lock   sync.Mutex
	cond   sync.Cond
}

func (q *Queue[V]) full() bool {
	return q.Limit > 0 && len(q.vals) >= q.Limit
}

// Drain appends one value. Returns ErrClosed after Close and
// ErrWouldBlock when the queue is at Limit.
func (q *Queue[V]) Drain(v V) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	if q.closed {
		return ErrClosed
	}
	if q.full() {
		return ErrWouldBlock
	}
	was0 := len(q.vals) == 0
	q.vals = append(q.vals, v)
	if was0 && q.cond.L != nil {
		q.cond.Broadcast()
	}
	return nil
}

// Feed pops the oldest value. An open empty queue would block, so it
// returns ErrWouldBlock; a closed one keeps feeding until empty and
// then returns io.EOF.
func (q *Queue[V]) Feed() (v V, err error) {
	q.lock.Lock()
	defer q.lock.Unlock()
	return q.feed()
}

// caller holds the lock
func (q *Queue[V]) feed() (v V, err error) {
	if len(q.vals) == 0 {
		if q.closed {
			err = io.EOF
		} else {
			err = ErrWouldBlock
		}
		return
	}
	wasfull := q.full()
	v = q.vals[0]
	q.vals = q.vals[1:]
	if wasfull && q.cond.L != nil {
		q.cond.Broadcast()
	}
	return
}

// Close stops intake. Values already queued stay feedable; once they
// are gone Feed returns io.EOF.
func (q *Queue[V]) Close() error {
	q.lock.Lock()
	q.closed = true
	if q.cond.L != nil {
		q.cond.Broadcast()
	}
	q.lock.Unlock()
	return nil
}

// Size reports the queued count, serving as the Sizer hint.
func (q *Queue[V]) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.vals)
}

// Blocking returns a view of the queue whose Feed waits for a value
// or Close instead of returning ErrWouldBlock, and whose Drain waits
// for room instead. Both views share the same values.
func (q *Queue[V]) Blocking() FeedDrainCloser[V] {
	q.lock.Lock()
	if q.cond.L == nil {
		q.cond.L = &q.lock
	}
	q.lock.Unlock()
	return &blockingQueue[V]{q}
}

type blockingQueue[V any] struct {
	queue *Queue[V]
}

func (bq *blockingQueue[V]) Drain(v V) error {
	q := bq.queue
	q.lock.Lock()
	defer q.lock.Unlock()
	for q.full() && !q.closed {
		q.cond.Wait()
	}
	if q.closed {
		return ErrClosed
	}
	was0 := len(q.vals) == 0
	q.vals = append(q.vals, v)
	if was0 {
		q.cond.Broadcast()
	}
	return nil
}

func (bq *blockingQueue[V]) Feed() (v V, err error) {
	q := bq.queue
	q.lock.Lock()
	defer q.lock.Unlock()
	for len(q.vals) == 0 && !q.closed {
		q.cond.Wait()
	}
	return q.feed()
}

func (bq *blockingQueue[V]) Close() error {
	return bq.queue.Close()
}
