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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/tochemey/dropwatch/actor"
	"github.com/tochemey/dropwatch/internal/testutil"
	"github.com/tochemey/dropwatch/metric"
)

// scriptedQueue accepts or rejects offers following a script. Once the
// script is exhausted every offer is accepted.
type scriptedQueue struct {
	mu      sync.Mutex
	results []bool
}

var _ actor.BlockingQueue = (*scriptedQueue)(nil)

func newScriptedQueue(results ...bool) *scriptedQueue {
	return &scriptedQueue{results: results}
}

func (q *scriptedQueue) Offer(*actor.Envelope) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.results) == 0 {
		return true
	}
	result := q.results[0]
	q.results = q.results[1:]
	return result
}

func (q *scriptedQueue) Poll() *actor.Envelope {
	return nil
}

func (q *scriptedQueue) Len() int64 {
	return 0
}

func (q *scriptedQueue) Cap() int64 {
	return 0
}

func (q *scriptedQueue) Dispose() {}

// panickyRef claims to carry a cell but blows up when asked for it
type panickyRef struct{}

func (panickyRef) Path() string {
	return "/user/panicky"
}

func (panickyRef) Underlying() *actor.Cell {
	panic("no cell here")
}

func newInterceptor(t *testing.T) (*EnqueueInterceptor, *sdkmetric.ManualReader) {
	t.Helper()
	provider, reader := testutil.MeterProvider(t)
	instruments, err := metric.NewInstruments(metric.NewProvider(provider).Meter())
	require.NoError(t, err)
	return NewEnqueueInterceptor(instruments), reader
}

// newInstrumentedCell creates a cell on mailbox carrying attributes for its
// path and an enabled state
func newInstrumentedCell(path string, mailbox actor.Mailbox) (*actor.Cell, attribute.Set) {
	cell := actor.NewCell(path, "default-dispatcher", mailbox)
	attrs := attribute.NewSet(attribute.String("actor", path))
	Attach(cell, attrs, NewContextState(true))
	return cell, attrs
}

// submit enqueues into the cell mailbox and runs the interceptor the way the
// installed join point does
func submit(interceptor *EnqueueInterceptor, cell *actor.Cell) {
	mailbox := cell.Mailbox()
	mailbox.Enqueue(cell.Self(), &actor.Envelope{Message: "msg"})
	interceptor.OnEnqueueExit(mailbox, cell.Self())
}

// setNodeOutcome overwrites the outcome slot of mailbox
func setNodeOutcome(mailbox *actor.BoundedNodeMailbox, accepted bool) {
	if slot, ok := nodeOutcomes.Get(mailbox); ok {
		slot.Store(accepted)
	}
}

func dropped(t *testing.T, reader *sdkmetric.ManualReader, attrs attribute.Set) int64 {
	t.Helper()
	return testutil.Int64Sum(t, reader, metric.DroppedMessagesName, attrs)
}

func points(t *testing.T, reader *sdkmetric.ManualReader) int {
	t.Helper()
	return testutil.Int64Points(t, reader, metric.DroppedMessagesName)
}
