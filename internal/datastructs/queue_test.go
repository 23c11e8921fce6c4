package queue_test

import (
	"errors"
	"testing"
	"time"

	queue "github.com/calcyard/mathcalc/internal/datastructs"
)

func TestEnqueueDequeue(t *testing.T) {
	q := queue.NewQueue[int](2)

	if err := q.Enqueue(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Enqueue(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.Enqueue(3); !errors.Is(err, queue.ErrFull) {
		t.Errorf("error = %v, want %v", err, queue.ErrFull)
	}

	v, err := q.Dequeue()
	if err != nil || v != 1 {
		t.Errorf("Dequeue = %v, %v; want 1, nil", v, err)
	}
	if got := q.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestDequeueEmpty(t *testing.T) {
	q := queue.NewQueue[string](1)
	if _, err := q.Dequeue(); !errors.Is(err, queue.ErrEmpty) {
		t.Errorf("error = %v, want %v", err, queue.ErrEmpty)
	}
}

func TestDequeueWaitBlocks(t *testing.T) {
	q := queue.NewQueue[int](1)
	done := make(chan int, 1)

	go func() {
		done <- q.DequeueWait()
	}()

	select {
	case <-done:
		t.Fatal("DequeueWait returned before Enqueue")
	case <-time.After(10 * time.Millisecond):
	}

	if err := q.Enqueue(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case v := <-done:
		if v != 42 {
			t.Errorf("DequeueWait = %d, want 42", v)
		}
	case <-time.After(time.Second):
		t.Fatal("DequeueWait did not return after Enqueue")
	}
}
