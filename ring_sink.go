package itch

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
)

// ErrSinkTimeout is returned when a RingSink cannot drain before its context ends.
var ErrSinkTimeout = errors.New("itch: ring sink shutdown timeout")

const defaultRingBatch = 256

// RingSink hands messages to a downstream sink on its own goroutine.
//
// Publishers claim slots in a fixed ring with a CAS on the producer sequence
// and are safe to call concurrently. A single consumer forwards published
// messages to the downstream sink in order, in batches of up to batchSize;
// the batch slice is reused, so downstream must copy what it keeps.
// Publish spins while the ring is full, so a slow downstream applies
// backpressure to the scanner instead of growing memory.
type RingSink struct {
	_        [56]byte
	producer atomic.Int64
	_        [56]byte
	consumer atomic.Int64
	_        [56]byte

	ring      []Message
	published []int64
	mask      int64
	capacity  int64
	batchSize int

	downstream MessageSink
	closed     atomic.Bool
	done       chan struct{}
}

// NewRingSink creates a RingSink in front of downstream. capacity must be a
// power of 2.
func NewRingSink(capacity int64, downstream MessageSink) *RingSink {
	if capacity <= 0 || (capacity&(capacity-1)) != 0 {
		panic("itch: ring sink capacity must be a power of 2")
	}

	rs := &RingSink{
		ring:       make([]Message, capacity),
		published:  make([]int64, capacity),
		mask:       capacity - 1,
		capacity:   capacity,
		batchSize:  min(defaultRingBatch, int(capacity)),
		downstream: downstream,
		done:       make(chan struct{}),
	}
	rs.producer.Store(-1)
	rs.consumer.Store(-1)
	for i := range rs.published {
		atomic.StoreInt64(&rs.published[i], -1)
	}
	return rs
}

// Start launches the consumer goroutine.
func (rs *RingSink) Start() {
	go rs.consume()
}

// Publish enqueues msgs. Messages published after Shutdown are dropped.
func (rs *RingSink) Publish(msgs ...Message) {
	for _, msg := range msgs {
		if rs.closed.Load() {
			logger.Warn("ring sink closed, message dropped", "kind", msg.Kind().String())
			return
		}
		rs.publish(msg)
	}
}

func (rs *RingSink) publish(msg Message) {
	var seq int64
	for {
		cur := rs.producer.Load()
		seq = cur + 1
		if seq-rs.capacity > rs.consumer.Load() {
			runtime.Gosched()
			continue
		}
		if rs.producer.CompareAndSwap(cur, seq) {
			break
		}
		runtime.Gosched()
	}

	idx := seq & rs.mask
	rs.ring[idx] = msg
	atomic.StoreInt64(&rs.published[idx], seq)
}

// Shutdown stops accepting messages and waits until every claimed message has
// reached the downstream sink. Call it once publishers have returned.
func (rs *RingSink) Shutdown(ctx context.Context) error {
	rs.closed.Store(true)

	select {
	case <-rs.done:
		return nil
	case <-ctx.Done():
		return ErrSinkTimeout
	}
}

// Pending returns the number of claimed messages not yet forwarded.
func (rs *RingSink) Pending() int64 {
	return rs.producer.Load() - rs.consumer.Load()
}

func (rs *RingSink) consume() {
	defer close(rs.done)

	batch := make([]Message, 0, rs.batchSize)
	next := rs.consumer.Load() + 1
	for {
		closed := rs.closed.Load()
		available := rs.producer.Load()

		for next <= available {
			idx := next & rs.mask
			for atomic.LoadInt64(&rs.published[idx]) != next {
				runtime.Gosched()
			}
			batch = append(batch, rs.ring[idx])
			rs.ring[idx] = Message{}

			if len(batch) == rs.batchSize || next == available {
				rs.downstream.Publish(batch...)
				rs.consumer.Store(next)
				batch = batch[:0]
			}
			next++
		}

		if closed {
			return
		}
		runtime.Gosched()
	}
}
