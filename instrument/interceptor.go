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
	"github.com/tochemey/dropwatch/actor"
	"github.com/tochemey/dropwatch/metric"
)

// EnqueueInterceptor records dropped messages after each mailbox submission.
// It keeps no state between calls and is safe for concurrent use.
type EnqueueInterceptor struct {
	instruments *metric.Instruments
}

// NewEnqueueInterceptor creates an EnqueueInterceptor recording on instruments
func NewEnqueueInterceptor(instruments *metric.Instruments) *EnqueueInterceptor {
	return &EnqueueInterceptor{instruments: instruments}
}

// OnEnqueueExit must be called once self.Enqueue(receiver, ...) has returned,
// on the same goroutine. It adds at most one to the dropped messages counter
// and never panics.
func (x *EnqueueInterceptor) OnEnqueueExit(self actor.Mailbox, receiver actor.Ref) {
	if x == nil || x.instruments == nil {
		return
	}

	// observing must never break the observed enqueue
	defer func() { _ = recover() }()

	withCell, ok := receiver.(actor.RefWithCell)
	if !ok {
		return
	}

	cell := withCell.Underlying()
	if cell == nil {
		return
	}

	attrs, ok := AttributesOf(cell)
	if !ok {
		return
	}

	state, ok := StateOf(cell)
	if !ok || !state.Enabled() {
		return
	}

	if Dropped(self) {
		x.instruments.DroppedMessages().Add(1, attrs)
	}
}
