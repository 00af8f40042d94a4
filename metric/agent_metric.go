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
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const (
	// InstrumentedCellsName is the name of the instrumented cells gauge
	InstrumentedCellsName = "instrumented_cells"
	// DeadLetterCountName is the name of the dead letters counter
	DeadLetterCountName = "dead_letter_count"
)

// AgentMetric defines the observable metrics of the agent
type AgentMetric struct {
	instrumentedCells metric.Int64ObservableGauge
	deadLetterCount   metric.Int64ObservableCounter
}

// NewAgentMetric creates an instance of AgentMetric
func NewAgentMetric(meter metric.Meter) (*AgentMetric, error) {
	agentMetric := new(AgentMetric)
	var err error
	if agentMetric.instrumentedCells, err = meter.Int64ObservableGauge(
		InstrumentedCellsName,
		metric.WithDescription("Number of live actor cells carrying drop instrumentation"),
	); err != nil {
		return nil, fmt.Errorf("failed to create instrumentedCells instrument, %w", err)
	}
	if agentMetric.deadLetterCount, err = meter.Int64ObservableCounter(
		DeadLetterCountName,
		metric.WithDescription("Total number of envelopes routed to dead letters"),
	); err != nil {
		return nil, fmt.Errorf("failed to create deadLetterCount instrument, %w", err)
	}
	return agentMetric, nil
}

// InstrumentedCells returns the instrumented cells gauge
func (x *AgentMetric) InstrumentedCells() metric.Int64ObservableGauge {
	return x.instrumentedCells
}

// DeadLetterCount returns the dead letters counter
func (x *AgentMetric) DeadLetterCount() metric.Int64ObservableCounter {
	return x.deadLetterCount
}
