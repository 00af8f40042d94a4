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
	"sync"

	"go.uber.org/atomic"

	"github.com/tochemey/dropwatch/internal/sidetable"
)

type boundedNode struct {
	next atomic.Pointer[boundedNode]
	data *Envelope
}

var boundedNodePool = sync.Pool{New: func() any { return new(boundedNode) }}

// nodeOutcomes holds, per mailbox, the slot recording whether the latest add
// attempt was accepted
var nodeOutcomes = sidetable.Find[BoundedNodeMailbox, *atomic.Bool]()

// BoundedNodeMailbox is a lock-free, bounded MPSC mailbox built on linked
// nodes.
//
// Characteristics
//   - Non-blocking: an envelope submitted while the mailbox holds capacity
//     messages is handed to dead letters immediately.
//   - FIFO ordering across all producers.
//   - Nodes are pooled to avoid per-message allocations.
//
// Every add attempt records its outcome in a slot published once, at
// construction, in a side table keyed on the mailbox. The slot reports
// accepted until the first attempt and is overwritten by every attempt,
// whichever goroutine makes it.
type BoundedNodeMailbox struct {
	head  atomic.Pointer[boundedNode] // consumer only
	_pad1 [64]byte
	tail  atomic.Pointer[boundedNode] // producers only
	_pad2 [64]byte

	size        atomic.Int64
	capacity    int64
	disposed    atomic.Bool
	deadLetters *DeadLetters
	outcome     *atomic.Bool
}

// enforce compilation error
var _ Mailbox = (*BoundedNodeMailbox)(nil)

// NewBoundedNodeMailbox creates a BoundedNodeMailbox holding at most capacity
// messages. A capacity below one is raised to one. Rejected envelopes are
// published to deadLetters, which may be nil.
func NewBoundedNodeMailbox(capacity int, deadLetters *DeadLetters) *BoundedNodeMailbox {
	if capacity < 1 {
		capacity = 1
	}

	dummy := boundedNodePool.Get().(*boundedNode)
	dummy.next.Store(nil)
	dummy.data = nil

	mailbox := &BoundedNodeMailbox{
		capacity:    int64(capacity),
		deadLetters: deadLetters,
		outcome:     atomic.NewBool(true),
	}
	mailbox.head.Store(dummy)
	mailbox.tail.Store(dummy)
	nodeOutcomes.Set(mailbox, mailbox.outcome)
	return mailbox
}

// Enqueue adds the envelope to the mailbox or, when the mailbox is full or
// disposed, publishes it to dead letters.
func (m *BoundedNodeMailbox) Enqueue(receiver Ref, envelope *Envelope) {
	accepted := m.add(envelope)
	m.outcome.Store(accepted)
	if !accepted {
		m.deadLetters.Publish(receiver, envelope)
	}
}

// Dequeue removes and returns the envelope at the head of the mailbox.
// Returns nil if the mailbox is empty. Must be called by a single consumer.
func (m *BoundedNodeMailbox) Dequeue() *Envelope {
	head := m.head.Load()
	next := head.next.Load()
	if next == nil {
		return nil
	}

	m.head.Store(next)
	value := next.data
	next.data = nil

	head.next.Store(nil)
	boundedNodePool.Put(head)
	m.size.Dec()
	return value
}

// IsEmpty returns true when the mailbox is empty
func (m *BoundedNodeMailbox) IsEmpty() bool {
	return m.head.Load().next.Load() == nil
}

// Len returns the number of messages in the mailbox
func (m *BoundedNodeMailbox) Len() int64 {
	return m.size.Load()
}

// Capacity returns the maximum number of messages the mailbox holds
func (m *BoundedNodeMailbox) Capacity() int64 {
	return m.capacity
}

// Dispose stops the mailbox from accepting new envelopes
func (m *BoundedNodeMailbox) Dispose() {
	m.disposed.Store(true)
}

func (m *BoundedNodeMailbox) add(envelope *Envelope) bool {
	if m.disposed.Load() {
		return false
	}

	// reserve a slot first so that concurrent producers never overshoot
	if m.size.Inc() > m.capacity {
		m.size.Dec()
		return false
	}

	n := boundedNodePool.Get().(*boundedNode)
	n.data = envelope
	n.next.Store(nil)

	prev := m.tail.Swap(n)
	prev.next.Store(n)
	return true
}
