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
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/atomic"

	"github.com/tochemey/dropwatch/actor"
	"github.com/tochemey/dropwatch/internal/sidetable"
)

var (
	cellAttributes = sidetable.Find[actor.Cell, attribute.Set]()
	cellStates     = sidetable.Find[actor.Cell, *ContextState]()
)

// ContextState is the instrumentation state of an actor cell.
// It is created and toggled by the installer; the interceptor only reads it.
type ContextState struct {
	enabled *atomic.Bool
}

// NewContextState creates a ContextState
func NewContextState(enabled bool) *ContextState {
	return &ContextState{enabled: atomic.NewBool(enabled)}
}

// Enabled reports whether drops on the cell are recorded
func (x *ContextState) Enabled() bool {
	return x != nil && x.enabled != nil && x.enabled.Load()
}

// Enable turns drop recording on
func (x *ContextState) Enable() {
	x.enabled.Store(true)
}

// Disable turns drop recording off
func (x *ContextState) Disable() {
	x.enabled.Store(false)
}

// Attach associates the telemetry attributes and the state with cell.
// A nil cell is ignored; a nil state leaves the cell without state.
func Attach(cell *actor.Cell, attrs attribute.Set, state *ContextState) {
	if cell == nil {
		return
	}
	cellAttributes.Set(cell, attrs)
	if state != nil {
		cellStates.Set(cell, state)
	}
}

// AttributesOf returns the telemetry attributes attached to cell
func AttributesOf(cell *actor.Cell) (attribute.Set, bool) {
	return cellAttributes.Get(cell)
}

// StateOf returns the ContextState attached to cell
func StateOf(cell *actor.Cell) (*ContextState, bool) {
	state, ok := cellStates.Get(cell)
	return state, ok && state != nil
}

// Registered returns the number of live cells carrying a ContextState
func Registered() int {
	return cellStates.Len()
}
