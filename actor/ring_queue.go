// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	gods "github.com/Workiva/go-datastructures/queue"
)

// BlockingQueue is the collection a BoundedMailbox stores its envelopes in
type BlockingQueue interface {
	// Offer inserts the envelope without blocking and reports whether it was accepted
	Offer(envelope *Envelope) bool
	// Poll removes and returns the next envelope, or nil when the queue is empty
	Poll() *Envelope
	// Len returns the number of queued envelopes
	Len() int64
	// Cap returns the capacity of the queue
	Cap() int64
	// Dispose releases the queue and unblocks internal waiters
	Dispose()
}

// a single-slot ring buffer cannot tell a full slot from an empty one
const minRingCapacity = 2

// QueueDecorator wraps the queue of a BoundedMailbox at construction time
type QueueDecorator func(queue BlockingQueue) BlockingQueue

// RingQueue is a BlockingQueue backed by a fixed-size ring buffer
type RingQueue struct {
	underlying *gods.RingBuffer
}

// enforce compilation error
var _ BlockingQueue = (*RingQueue)(nil)

// NewRingQueue creates a RingQueue. The ring buffer rounds capacity up to the
// next power of two and holds at least two envelopes.
func NewRingQueue(capacity int) *RingQueue {
	if capacity < minRingCapacity {
		capacity = minRingCapacity
	}
	return &RingQueue{
		underlying: gods.NewRingBuffer(uint64(capacity)),
	}
}

// Offer inserts the envelope when there is room left
func (q *RingQueue) Offer(envelope *Envelope) bool {
	ok, err := q.underlying.Offer(envelope)
	return err == nil && ok
}

// Poll removes the next envelope. It never blocks on an empty queue.
func (q *RingQueue) Poll() *Envelope {
	if q.underlying.Len() > 0 {
		item, _ := q.underlying.Get()
		if envelope, ok := item.(*Envelope); ok {
			return envelope
		}
	}
	return nil
}

// Len returns the number of queued envelopes
func (q *RingQueue) Len() int64 {
	return int64(q.underlying.Len())
}

// Cap returns the ring buffer capacity
func (q *RingQueue) Cap() int64 {
	return int64(q.underlying.Cap())
}

// Dispose releases the ring buffer
func (q *RingQueue) Dispose() {
	q.underlying.Dispose()
}
