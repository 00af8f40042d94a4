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
)

type unboundedNode struct {
	next atomic.Pointer[unboundedNode]
	data *Envelope
}

var unboundedNodePool = sync.Pool{New: func() any { return new(unboundedNode) }}

// UnboundedMailbox is a lock-free MPSC mailbox without a capacity limit.
// Enqueue always accepts; it never publishes to dead letters.
type UnboundedMailbox struct {
	head  atomic.Pointer[unboundedNode] // consumer only
	_pad1 [64]byte
	tail  atomic.Pointer[unboundedNode] // producers only
	_pad2 [64]byte
}

// enforce compilation error
var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox creates an UnboundedMailbox
func NewUnboundedMailbox() *UnboundedMailbox {
	dummy := unboundedNodePool.Get().(*unboundedNode)
	dummy.next.Store(nil)
	dummy.data = nil
	m := &UnboundedMailbox{}
	m.head.Store(dummy)
	m.tail.Store(dummy)
	return m
}

// Enqueue places the envelope in the mailbox. Never blocks.
func (m *UnboundedMailbox) Enqueue(_ Ref, envelope *Envelope) {
	n := unboundedNodePool.Get().(*unboundedNode)
	n.data = envelope
	n.next.Store(nil)

	prev := m.tail.Swap(n)
	prev.next.Store(n)
}

// Dequeue removes and returns the envelope at the head of the mailbox.
// Returns nil if the mailbox is empty. Must be called by a single consumer.
func (m *UnboundedMailbox) Dequeue() *Envelope {
	head := m.head.Load()
	next := head.next.Load()
	if next == nil {
		return nil
	}

	m.head.Store(next)
	value := next.data
	next.data = nil

	head.next.Store(nil)
	unboundedNodePool.Put(head)
	return value
}

// Len walks the mailbox and returns a best-effort count
func (m *UnboundedMailbox) Len() int64 {
	var count int64
	for n := m.head.Load().next.Load(); n != nil; n = n.next.Load() {
		count++
	}
	return count
}

// IsEmpty returns true when the mailbox is empty
func (m *UnboundedMailbox) IsEmpty() bool {
	return m.head.Load().next.Load() == nil
}

// Dispose is a no-op for this mailbox
func (m *UnboundedMailbox) Dispose() {}
