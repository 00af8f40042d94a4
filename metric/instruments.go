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

package metric

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DroppedMessagesName is the name of the dropped messages counter
const DroppedMessagesName = "dropped_messages"

// Instruments holds the process-wide mailbox instruments.
// It is created once when the agent starts and is safe for concurrent use.
type Instruments struct {
	droppedMessages *Counter
}

// NewInstruments creates the mailbox instruments on the given meter
func NewInstruments(meter metric.Meter) (*Instruments, error) {
	counter, err := meter.Int64Counter(
		DroppedMessagesName,
		metric.WithDescription("Total number of messages dropped by bounded mailboxes"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create droppedMessages instrument, %w", err)
	}

	return &Instruments{
		droppedMessages: &Counter{underlying: counter},
	}, nil
}

// DroppedMessages returns the dropped messages counter
func (x *Instruments) DroppedMessages() *Counter {
	if x == nil {
		return nil
	}
	return x.droppedMessages
}

// MaxIncrement is the largest value a single Add records. It is exact as
// both an int64 and a float64.
const MaxIncrement uint64 = 1 << 53

// Counter is a monotonic counter that accepts unsigned increments.
//
// Add never blocks the caller: values are aggregated in memory by the
// underlying MeterProvider and exported on its own schedule.
type Counter struct {
	underlying metric.Int64Counter
}

// Add increments the counter by count with the given attributes.
// A zero count is ignored and a count above MaxIncrement is recorded as
// MaxIncrement. The running sum is kept by the MeterProvider and is not
// guaranteed to stay exact once it leaves that range.
func (x *Counter) Add(count uint64, attrs attribute.Set) {
	if x == nil || x.underlying == nil || count == 0 {
		return
	}

	x.underlying.Add(context.Background(), int64(min(count, MaxIncrement)), metric.WithAttributeSet(attrs))
}
