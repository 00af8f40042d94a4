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

package instrument

import (
	"go.uber.org/atomic"

	"github.com/tochemey/dropwatch/actor"
	"github.com/tochemey/dropwatch/internal/sidetable"
)

// QueueKind tags the bounded mailbox implementations the adapter understands
type QueueKind int

const (
	// UnknownQueue is any mailbox the adapter does not know how to read
	UnknownQueue QueueKind = iota
	// NodeQueue is actor.BoundedNodeMailbox: outcomes live in a side table
	NodeQueue
	// QueueBased is actor.BoundedMailbox: outcomes live in a QueueProxy
	QueueBased
)

// String returns the kind name
func (k QueueKind) String() string {
	switch k {
	case NodeQueue:
		return "node"
	case QueueBased:
		return "queue-based"
	default:
		return "unknown"
	}
}

var nodeOutcomes = sidetable.Find[actor.BoundedNodeMailbox, *atomic.Bool]()

// KindOf classifies mailbox
func KindOf(mailbox actor.Mailbox) QueueKind {
	switch mailbox.(type) {
	case *actor.BoundedNodeMailbox:
		return NodeQueue
	case *actor.BoundedMailbox:
		return QueueBased
	default:
		return UnknownQueue
	}
}

// Dropped reports whether the latest submission to mailbox was dropped.
// Missing outcome data and unknown mailbox kinds count as not dropped.
func Dropped(mailbox actor.Mailbox) bool {
	switch KindOf(mailbox) {
	case NodeQueue:
		box, _ := mailbox.(*actor.BoundedNodeMailbox)
		slot, ok := nodeOutcomes.Get(box)
		return ok && slot != nil && !slot.Load()
	case QueueBased:
		box, _ := mailbox.(*actor.BoundedMailbox)
		proxy, ok := box.Queue().(*QueueProxy)
		return ok && !proxy.LastResult()
	default:
		return false
	}
}

// QueueProxy wraps the queue of an actor.BoundedMailbox and remembers the
// result of the latest Offer. Install it with actor.WithQueueDecorator.
type QueueProxy struct {
	underlying actor.BlockingQueue
	result     *atomic.Bool
}

// enforce compilation error
var _ actor.BlockingQueue = (*QueueProxy)(nil)

// NewQueueProxy wraps queue. Until the first Offer the proxy reports success.
func NewQueueProxy(queue actor.BlockingQueue) *QueueProxy {
	return &QueueProxy{
		underlying: queue,
		result:     atomic.NewBool(true),
	}
}

// DecorateQueue is an actor.QueueDecorator installing a QueueProxy
func DecorateQueue(queue actor.BlockingQueue) actor.BlockingQueue {
	return NewQueueProxy(queue)
}

// Offer forwards to the wrapped queue and records the result
func (x *QueueProxy) Offer(envelope *actor.Envelope) bool {
	accepted := x.underlying.Offer(envelope)
	x.result.Store(accepted)
	return accepted
}

// LastResult returns the result of the latest Offer
func (x *QueueProxy) LastResult() bool {
	if x == nil {
		return true
	}
	return x.result.Load()
}

// Poll forwards to the wrapped queue
func (x *QueueProxy) Poll() *actor.Envelope {
	return x.underlying.Poll()
}

// Len forwards to the wrapped queue
func (x *QueueProxy) Len() int64 {
	return x.underlying.Len()
}

// Cap forwards to the wrapped queue
func (x *QueueProxy) Cap() int64 {
	return x.underlying.Cap()
}

// Dispose forwards to the wrapped queue
func (x *QueueProxy) Dispose() {
	x.underlying.Dispose()
}

// Unwrap returns the wrapped queue
func (x *QueueProxy) Unwrap() actor.BlockingQueue {
	return x.underlying
}
