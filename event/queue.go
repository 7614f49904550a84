// Package event carries collision notifications out of the per-frame
// detection pass to observers that do not want listener callbacks.
package event

import "sync/atomic"

// Queue is a lock-free MPSC ring buffer of collision events
// Thread-Safety:
//   - Push: lock-free CAS, multiple producers OK
//   - Consume: single consumer (the owner of the room)
//   - Published flags prevent reading partial writes
//
// Overflow: oldest events are overwritten when full
type Queue struct {
	events    [QueueSize]Collision
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event using CAS with published flags. O(1) amortized
func (q *Queue) Push(ev Collision) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after the write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > QueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head.
// Single-consumer design; stops early at any slot not yet published.
func (q *Queue) Consume() []Collision {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail == head {
		return nil
	}

	out := make([]Collision, 0, tail-head)
	for i := head; i < tail; i++ {
		idx := i & bufferMask
		if !q.published[idx].Load() {
			break
		}
		out = append(out, q.events[idx])
		q.published[idx].Store(false)
	}
	q.head.Store(head + uint64(len(out)))
	return out
}

// Pending returns the number of unconsumed events
func (q *Queue) Pending() int {
	return int(q.tail.Load() - q.head.Load())
}
