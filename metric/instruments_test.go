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
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/tochemey/dropwatch/internal/testutil"
)

func TestNewInstruments(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	instruments, err := NewInstruments(meter)
	require.NoError(t, err)
	assert.NotNil(t, instruments)
	assert.NotNil(t, instruments.DroppedMessages())
}

func TestDroppedMessages(t *testing.T) {
	t.Run("With a single increment", func(t *testing.T) {
		provider, reader := testutil.MeterProvider(t)
		instruments, err := NewInstruments(NewProvider(provider).Meter())
		require.NoError(t, err)

		attrs := attribute.NewSet(attribute.String("actor.path", "/user/foo"))
		instruments.DroppedMessages().Add(1, attrs)

		assert.EqualValues(t, 1, testutil.Int64Sum(t, reader, DroppedMessagesName, attrs))
	})
	t.Run("With zero count", func(t *testing.T) {
		provider, reader := testutil.MeterProvider(t)
		instruments, err := NewInstruments(NewProvider(provider).Meter())
		require.NoError(t, err)

		attrs := attribute.NewSet(attribute.String("actor.path", "/user/foo"))
		instruments.DroppedMessages().Add(0, attrs)

		assert.Zero(t, testutil.Int64Points(t, reader, DroppedMessagesName))
	})
	t.Run("With count beyond the max increment", func(t *testing.T) {
		provider, reader := testutil.MeterProvider(t)
		instruments, err := NewInstruments(NewProvider(provider).Meter())
		require.NoError(t, err)

		attrs := attribute.NewSet(attribute.String("actor.path", "/user/big"))
		instruments.DroppedMessages().Add(math.MaxUint64, attrs)

		assert.EqualValues(t, int64(MaxIncrement), testutil.Int64Sum(t, reader, DroppedMessagesName, attrs))
	})
	t.Run("With large counts summed", func(t *testing.T) {
		provider, reader := testutil.MeterProvider(t)
		instruments, err := NewInstruments(NewProvider(provider).Meter())
		require.NoError(t, err)

		attrs := attribute.NewSet(attribute.String("actor.path", "/user/bulk"))
		instruments.DroppedMessages().Add(MaxIncrement-1, attrs)
		instruments.DroppedMessages().Add(1, attrs)

		assert.EqualValues(t, int64(MaxIncrement), testutil.Int64Sum(t, reader, DroppedMessagesName, attrs))
	})
	t.Run("With concurrent increments", func(t *testing.T) {
		provider, reader := testutil.MeterProvider(t)
		instruments, err := NewInstruments(NewProvider(provider).Meter())
		require.NoError(t, err)

		attrs := attribute.NewSet(attribute.String("actor.path", "/user/busy"))
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 250 {
					instruments.DroppedMessages().Add(1, attrs)
				}
			}()
		}
		wg.Wait()

		assert.EqualValues(t, 2000, testutil.Int64Sum(t, reader, DroppedMessagesName, attrs))
	})
	t.Run("With nil instruments", func(t *testing.T) {
		var instruments *Instruments
		assert.NotPanics(t, func() {
			instruments.DroppedMessages().Add(1, attribute.NewSet())
		})
	})
}

func TestNewProvider(t *testing.T) {
	provider := NewProvider(nil)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.Meter())
}
