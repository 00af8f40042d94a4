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
	"go.uber.org/atomic"
)

// DeadLetterHandler is called for every envelope a mailbox could not accept
type DeadLetterHandler func(receiver Ref, envelope *Envelope)

// DeadLetters collects envelopes rejected by bounded mailboxes
type DeadLetters struct {
	count   *atomic.Int64
	handler DeadLetterHandler
}

// NewDeadLetters creates a DeadLetters sink. handler is optional.
func NewDeadLetters(handler DeadLetterHandler) *DeadLetters {
	return &DeadLetters{
		count:   atomic.NewInt64(0),
		handler: handler,
	}
}

// Publish records a rejected envelope
func (x *DeadLetters) Publish(receiver Ref, envelope *Envelope) {
	if x == nil {
		return
	}
	x.count.Inc()
	if x.handler != nil {
		x.handler(receiver, envelope)
	}
}

// Count returns the number of envelopes published so far
func (x *DeadLetters) Count() int64 {
	if x == nil {
		return 0
	}
	return x.count.Load()
}
