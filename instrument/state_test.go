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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tochemey/dropwatch/actor"
)

func TestContextState(t *testing.T) {
	state := NewContextState(true)
	assert.True(t, state.Enabled())

	state.Disable()
	assert.False(t, state.Enabled())

	state.Enable()
	assert.True(t, state.Enabled())

	var nilState *ContextState
	assert.False(t, nilState.Enabled())
	assert.False(t, new(ContextState).Enabled())
}

func TestAttach(t *testing.T) {
	t.Run("With attributes and state", func(t *testing.T) {
		cell := actor.NewCell("/user/foo", "default", actor.NewUnboundedMailbox())
		attrs := attribute.NewSet(attribute.String("actor", "/user/foo"))
		state := NewContextState(true)

		Attach(cell, attrs, state)

		got, ok := AttributesOf(cell)
		require.True(t, ok)
		assert.True(t, got.Equals(&attrs))

		gotState, ok := StateOf(cell)
		require.True(t, ok)
		assert.Same(t, state, gotState)
	})
	t.Run("With cells kept apart", func(t *testing.T) {
		first := actor.NewCell("/user/a", "default", actor.NewUnboundedMailbox())
		second := actor.NewCell("/user/b", "default", actor.NewUnboundedMailbox())
		Attach(first, attribute.NewSet(attribute.String("actor", "/user/a")), NewContextState(true))

		_, ok := AttributesOf(second)
		assert.False(t, ok)
		_, ok = StateOf(second)
		assert.False(t, ok)
	})
	t.Run("With nil state", func(t *testing.T) {
		cell := actor.NewCell("/user/c", "default", actor.NewUnboundedMailbox())
		Attach(cell, attribute.NewSet(), nil)

		_, ok := AttributesOf(cell)
		assert.True(t, ok)
		_, ok = StateOf(cell)
		assert.False(t, ok)
	})
	t.Run("With nil cell", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Attach(nil, attribute.NewSet(), NewContextState(true))
		})
		_, ok := AttributesOf(nil)
		assert.False(t, ok)
		_, ok = StateOf(nil)
		assert.False(t, ok)
	})
}
