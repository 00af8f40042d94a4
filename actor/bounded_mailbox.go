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
	"context"
	"errors"
	"time"

	"github.com/flowchartsman/retry"
)

// pushRetryDelay is the initial pause between two offers to a full queue
const pushRetryDelay = 100 * time.Microsecond

// errQueueFull drives the push retries and never leaves this package
var errQueueFull = errors.New("queue is full")

// BoundedMailbox is a bounded MPSC mailbox that stores its envelopes in a
// BlockingQueue.
//
// Enqueue offers the envelope to the queue. Without a push timeout a full
// queue rejects immediately; with one the offer is retried until the timeout
// elapses. Rejected envelopes are published to dead letters.
//
// The queue can be wrapped at construction with WithQueueDecorator. Queue
// returns the wrapped queue.
type BoundedMailbox struct {
	queue       BlockingQueue
	pushTimeout time.Duration
	deadLetters *DeadLetters
}

// enforce compilation error
var _ Mailbox = (*BoundedMailbox)(nil)

type boundedMailboxConfig struct {
	queue       BlockingQueue
	decorators  []QueueDecorator
	pushTimeout time.Duration
}

// BoundedMailboxOption configures a BoundedMailbox
type BoundedMailboxOption func(config *boundedMailboxConfig)

// WithPushTimeout sets how long Enqueue keeps offering to a full queue
func WithPushTimeout(timeout time.Duration) BoundedMailboxOption {
	return func(config *boundedMailboxConfig) {
		config.pushTimeout = timeout
	}
}

// WithQueue replaces the default RingQueue
func WithQueue(queue BlockingQueue) BoundedMailboxOption {
	return func(config *boundedMailboxConfig) {
		config.queue = queue
	}
}

// WithQueueDecorator wraps the mailbox queue. Decorators are applied in the
// order they are given, on top of the queue set by WithQueue.
func WithQueueDecorator(decorator QueueDecorator) BoundedMailboxOption {
	return func(config *boundedMailboxConfig) {
		if decorator != nil {
			config.decorators = append(config.decorators, decorator)
		}
	}
}

// NewBoundedMailbox creates a BoundedMailbox with the given capacity.
// Rejected envelopes are published to deadLetters, which may be nil.
func NewBoundedMailbox(capacity int, deadLetters *DeadLetters, opts ...BoundedMailboxOption) *BoundedMailbox {
	config := new(boundedMailboxConfig)
	for _, opt := range opts {
		opt(config)
	}

	queue := config.queue
	if queue == nil {
		queue = NewRingQueue(capacity)
	}

	for _, decorate := range config.decorators {
		if wrapped := decorate(queue); wrapped != nil {
			queue = wrapped
		}
	}

	return &BoundedMailbox{
		queue:       queue,
		pushTimeout: config.pushTimeout,
		deadLetters: deadLetters,
	}
}

// Enqueue offers the envelope to the queue and publishes it to dead letters
// when the queue does not accept it.
func (m *BoundedMailbox) Enqueue(receiver Ref, envelope *Envelope) {
	if !m.offer(envelope) {
		m.deadLetters.Publish(receiver, envelope)
	}
}

// Dequeue removes and returns the next envelope, or nil when the mailbox is empty
func (m *BoundedMailbox) Dequeue() *Envelope {
	return m.queue.Poll()
}

// IsEmpty reports whether the mailbox currently has no messages
func (m *BoundedMailbox) IsEmpty() bool {
	return m.queue.Len() == 0
}

// Len returns the current number of messages in the mailbox
func (m *BoundedMailbox) Len() int64 {
	return m.queue.Len()
}

// Dispose releases the underlying queue
func (m *BoundedMailbox) Dispose() {
	m.queue.Dispose()
}

// Queue returns the queue backing the mailbox, decorators included
func (m *BoundedMailbox) Queue() BlockingQueue {
	if m == nil {
		return nil
	}
	return m.queue
}

func (m *BoundedMailbox) offer(envelope *Envelope) bool {
	if m.queue.Offer(envelope) {
		return true
	}

	if m.pushTimeout <= 0 {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.pushTimeout)
	defer cancel()

	maxTries := int(m.pushTimeout/pushRetryDelay) + 1
	retrier := retry.NewRetrier(maxTries, pushRetryDelay, m.pushTimeout)
	err := retrier.RunContext(ctx, func(_ context.Context) error {
		if m.queue.Offer(envelope) {
			return nil
		}
		return errQueueFull
	})
	return err == nil
}
