package event

import (
	"testing"

	"github.com/starforge/stellar/core"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(Collision{Self: core.MakeEntity(uint32(i), 1), Frame: int64(i)})
	}
	if q.Pending() != 5 {
		t.Fatalf("pending = %d, want 5", q.Pending())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("consumed %d events, want 5", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d, want %d", i, ev.Frame, i)
		}
	}
	if q.Pending() != 0 {
		t.Error("queue must be empty after consume")
	}
	if q.Consume() != nil {
		t.Error("empty consume must return nil")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	const extra = 10
	for i := 0; i < QueueSize+extra; i++ {
		q.Push(Collision{Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != QueueSize {
		t.Fatalf("consumed %d events, want %d", len(events), QueueSize)
	}
	if events[0].Frame != extra {
		t.Errorf("oldest surviving frame = %d, want %d", events[0].Frame, extra)
	}
	if last := events[len(events)-1].Frame; last != QueueSize+extra-1 {
		t.Errorf("newest frame = %d, want %d", last, QueueSize+extra-1)
	}
}

func TestQueueInterleavedPushConsume(t *testing.T) {
	q := NewQueue()
	next := int64(0)
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Push(Collision{Frame: next})
			next++
		}
		for _, ev := range q.Consume() {
			_ = ev
		}
		if q.Pending() != 0 {
			t.Fatalf("round %d: pending = %d after consume", round, q.Pending())
		}
	}
}
