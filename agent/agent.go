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
	"context"
	"slices"
	"strings"
	"sync"

	goset "github.com/deckarep/golang-set/v2"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/tochemey/dropwatch/actor"
	"github.com/tochemey/dropwatch/errors"
	"github.com/tochemey/dropwatch/instrument"
	"github.com/tochemey/dropwatch/internal/validation"
	"github.com/tochemey/dropwatch/log"
	"github.com/tochemey/dropwatch/metric"
)

const (
	// PathKey is the attribute key holding the actor path of a cell
	PathKey = attribute.Key("actor.path")
	// DispatcherKey is the attribute key holding the dispatcher of a cell
	DispatcherKey = attribute.Key("actor.dispatcher")
)

type adviceTable map[actor.JoinPoint][]actor.Advice

// Agent installs drop detection into an actor runtime.
//
// Mailboxes handed to Weave call every advice registered for
// actor.EnqueuePoint after each Enqueue. Once started, the agent registers the
// drop interceptor as such an advice, so a drop on a registered cell
// increments dropped_messages with the attributes of that cell.
type Agent struct {
	logger        log.Logger
	meterProvider otelmetric.MeterProvider
	attributes    []attribute.KeyValue
	excluded      goset.Set[string]
	deadLetters   []*actor.DeadLetters

	advices     *atomic.Pointer[adviceTable]
	instruments *atomic.Pointer[metric.Instruments]
	started     *atomic.Bool

	// guards the lifecycle and registrations
	mu           sync.Mutex
	registration otelmetric.Registration
}

// New creates an Agent. It returns an error wrapping errors.ErrInvalidConfig
// when the options do not validate.
func New(opts ...Option) (*Agent, error) {
	agent := &Agent{
		logger:      log.DefaultLogger,
		excluded:    goset.NewSet[string](),
		advices:     atomic.NewPointer(&adviceTable{}),
		instruments: atomic.NewPointer[metric.Instruments](nil),
		started:     atomic.NewBool(false),
	}

	for _, opt := range opts {
		opt.Apply(agent)
	}

	if err := agent.validate(); err != nil {
		return nil, errors.NewErrInvalidConfig(err)
	}
	return agent, nil
}

// Start creates the instruments and attaches the drop interceptor to the
// enqueue join point.
func (a *Agent) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.started.Load() {
		return errors.ErrAgentAlreadyStarted
	}

	meter := metric.NewProvider(a.meterProvider).Meter()
	instruments, err := metric.NewInstruments(meter)
	if err != nil {
		a.logger.Error(err)
		return errors.NewInstrumentError(err)
	}

	registration, err := a.registerMetrics(meter)
	if err != nil {
		a.logger.Error(err)
		return errors.NewInstrumentError(err)
	}

	a.registration = registration
	a.instruments.Store(instruments)
	a.After(actor.EnqueuePoint, instrument.NewEnqueueInterceptor(instruments).OnEnqueueExit)
	a.started.Store(true)
	a.logger.Debug("drop detection agent started")
	return nil
}

// Stop removes every advice, unregisters the observable metrics and flushes the logger.
func (a *Agent) Stop(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started.Load() {
		return errors.ErrAgentNotStarted
	}

	a.advices.Store(&adviceTable{})
	a.instruments.Store(nil)
	a.started.Store(false)

	var err error
	if a.registration != nil {
		err = multierr.Append(err, a.registration.Unregister())
		a.registration = nil
	}

	a.logger.Debug("drop detection agent stopped")
	return multierr.Append(err, a.logger.Flush())
}

// Running reports whether the agent has started
func (a *Agent) Running() bool {
	return a.started.Load()
}

// Instruments returns the instruments created at Start, nil when the agent is not running
func (a *Agent) Instruments() *metric.Instruments {
	return a.instruments.Load()
}

// After registers advice to run after point on every woven mailbox.
// Registrations are visible to enqueues that start after After returns.
func (a *Agent) After(point actor.JoinPoint, advice actor.Advice) {
	if advice == nil {
		return
	}

	for {
		current := a.advices.Load()
		next := make(adviceTable, len(*current)+1)
		for key, value := range *current {
			next[key] = value
		}
		next[point] = append(slices.Clone((*current)[point]), advice)
		if a.advices.CompareAndSwap(current, &next) {
			return
		}
	}
}

// Weave returns a mailbox whose Enqueue runs the advices of
// actor.EnqueuePoint once mailbox.Enqueue returns. Advices receive mailbox
// itself. Weaving a woven mailbox returns it unchanged.
func (a *Agent) Weave(mailbox actor.Mailbox) actor.Mailbox {
	if mailbox == nil {
		return nil
	}
	if woven, ok := mailbox.(*wovenMailbox); ok {
		return woven
	}
	return &wovenMailbox{Mailbox: mailbox, agent: a}
}

// Decorator returns the queue decorator to hand to actor.WithQueueDecorator
// so the agent can observe the outcome of every offer.
func (a *Agent) Decorator() actor.QueueDecorator {
	return instrument.DecorateQueue
}

// Register attaches the telemetry attributes and a fresh instrumentation
// state to cell. Cells under an excluded path start disabled.
func (a *Agent) Register(cell *actor.Cell) error {
	if cell == nil {
		return errors.ErrUndefinedCell
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := instrument.StateOf(cell); ok {
		return errors.ErrCellAlreadyRegistered
	}

	kvs := make([]attribute.KeyValue, 0, len(a.attributes)+2)
	kvs = append(kvs, a.attributes...)
	kvs = append(kvs,
		PathKey.String(cell.Path()),
		DispatcherKey.String(cell.Dispatcher()))

	instrument.Attach(cell, attribute.NewSet(kvs...), instrument.NewContextState(!a.excludes(cell.Path())))
	return nil
}

// Spawn creates a cell over the woven mailbox and registers it.
//
// Drops of an actor.BoundedMailbox are only visible through its queue proxy:
// build it with actor.WithQueueDecorator(agent.Decorator()). Spawn logs a
// warning for a bounded mailbox without proxy and registers it anyway.
func (a *Agent) Spawn(path, dispatcher string, mailbox actor.Mailbox) (*actor.Cell, error) {
	if mailbox == nil {
		return nil, errors.ErrUndefinedMailbox
	}

	if box, ok := mailbox.(*actor.BoundedMailbox); ok {
		if _, proxied := box.Queue().(*instrument.QueueProxy); !proxied {
			a.logger.Warnf("bounded mailbox of %s has no queue proxy, its drops will not be recorded", path)
		}
	}

	cell := actor.NewCell(path, dispatcher, a.Weave(mailbox))
	if err := a.Register(cell); err != nil {
		return nil, err
	}
	return cell, nil
}

// Enable turns drop recording on for a registered cell
func (a *Agent) Enable(cell *actor.Cell) error {
	state, err := a.stateOf(cell)
	if err != nil {
		return err
	}
	state.Enable()
	return nil
}

// Disable turns drop recording off for a registered cell
func (a *Agent) Disable(cell *actor.Cell) error {
	state, err := a.stateOf(cell)
	if err != nil {
		return err
	}
	state.Disable()
	return nil
}

func (a *Agent) stateOf(cell *actor.Cell) (*instrument.ContextState, error) {
	if cell == nil {
		return nil, errors.ErrUndefinedCell
	}
	state, ok := instrument.StateOf(cell)
	if !ok {
		return nil, errors.ErrCellNotRegistered
	}
	return state, nil
}

func (a *Agent) excludes(path string) bool {
	excluded := false
	a.excluded.Each(func(prefix string) bool {
		trimmed := strings.TrimSuffix(prefix, "/")
		excluded = path == trimmed || strings.HasPrefix(path, trimmed+"/")
		return excluded
	})
	return excluded
}

// advise runs the advices of point. A panicking advice is logged and does
// not prevent the next one from running.
func (a *Agent) advise(point actor.JoinPoint, self actor.Mailbox, receiver actor.Ref) {
	for _, advice := range (*a.advices.Load())[point] {
		a.run(point, advice, self, receiver)
	}
}

func (a *Agent) run(point actor.JoinPoint, advice actor.Advice, self actor.Mailbox, receiver actor.Ref) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Errorf("%s advice failed: %v", point, r)
		}
	}()
	advice(self, receiver)
}

func (a *Agent) registerMetrics(meter otelmetric.Meter) (otelmetric.Registration, error) {
	metrics, err := metric.NewAgentMetric(meter)
	if err != nil {
		return nil, err
	}

	observeOpt := otelmetric.WithAttributes(a.attributes...)
	return meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		var deadLetters int64
		for _, dl := range a.deadLetters {
			deadLetters += dl.Count()
		}
		observer.ObserveInt64(metrics.InstrumentedCells(), int64(instrument.Registered()), observeOpt)
		observer.ObserveInt64(metrics.DeadLetterCount(), deadLetters, observeOpt)
		return nil
	}, metrics.InstrumentedCells(), metrics.DeadLetterCount())
}

func (a *Agent) validate() error {
	chain := validation.New(validation.AllErrors()).
		AddAssertion(a.logger != nil, "the logger is required")

	for _, kv := range a.attributes {
		chain.AddValidator(validation.NewAttributeValidator(kv, PathKey, DispatcherKey))
	}

	for _, prefix := range a.excluded.ToSlice() {
		chain.AddValidator(validation.NewPathPrefixValidator(prefix))
	}

	for _, deadLetters := range a.deadLetters {
		chain.AddAssertion(deadLetters != nil, "the dead letters are not defined")
	}

	return chain.Validate()
}
