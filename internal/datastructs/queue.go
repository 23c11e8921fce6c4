package queue

import "errors"

// ErrFull is returned by Enqueue when the queue is at capacity.
var ErrFull = errors.New("queue is full")

// ErrEmpty is returned by Dequeue when there is nothing to take.
var ErrEmpty = errors.New("empty queue")

// Queue is a bounded FIFO backed by a channel. Enqueue never blocks, so
// producers can report backpressure instead of stalling; consumers choose
// between the non-blocking Dequeue and the blocking DequeueWait.
type Queue[T any] struct {
	data chan T
}

func NewQueue[T any](size int) *Queue[T] {
	return &Queue[T]{data: make(chan T, size)}
}

func (q *Queue[T]) Enqueue(value T) error {
	select {
	case q.data <- value:
		return nil
	default:
		return ErrFull
	}
}

func (q *Queue[T]) Dequeue() (T, error) {
	var res T
	select {
	case res = <-q.data:
		return res, nil
	default:
		return res, ErrEmpty
	}
}

// DequeueWait blocks until a value is available.
func (q *Queue[T]) DequeueWait() T {
	return <-q.data
}

func (q *Queue[T]) Len() int {
	return len(q.data)
}
