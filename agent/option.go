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

package agent

import (
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/dropwatch/actor"
	"github.com/tochemey/dropwatch/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(agent *Agent)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(agent *Agent)

// Apply applies the option to the agent
func (f OptionFunc) Apply(agent *Agent) {
	f(agent)
}

// WithLogger sets the agent logger. Only failures of the woven advice and of
// the agent lifecycle are logged above debug level.
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(agent *Agent) {
		agent.logger = logger
	})
}

// WithMeterProvider sets the MeterProvider the dropped_messages counter is
// created from. The global otel MeterProvider is used by default.
func WithMeterProvider(meterProvider otelmetric.MeterProvider) Option {
	return OptionFunc(func(agent *Agent) {
		agent.meterProvider = meterProvider
	})
}

// WithAttributes adds attributes to the set of every registered cell
func WithAttributes(kv ...attribute.KeyValue) Option {
	return OptionFunc(func(agent *Agent) {
		agent.attributes = append(agent.attributes, kv...)
	})
}

// WithExcludedPaths registers actor path prefixes whose cells start with drop
// recording turned off. A prefix matches the path itself and its descendants.
func WithExcludedPaths(prefixes ...string) Option {
	return OptionFunc(func(agent *Agent) {
		agent.excluded.Append(prefixes...)
	})
}

// WithDeadLetters sets the dead letters whose count is observed by the
// dead_letter_count metric.
func WithDeadLetters(deadLetters ...*actor.DeadLetters) Option {
	return OptionFunc(func(agent *Agent) {
		agent.deadLetters = append(agent.deadLetters, deadLetters...)
	})
}
