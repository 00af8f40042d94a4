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
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnboundedMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()

		in1 := &Envelope{Message: 1}
		in2 := &Envelope{Message: 2}
		mailbox.Enqueue(NoSender, in1)
		mailbox.Enqueue(NoSender, in2)

		assert.EqualValues(t, 2, mailbox.Len())
		assert.Same(t, in1, mailbox.Dequeue())
		assert.Same(t, in2, mailbox.Dequeue())
		assert.True(t, mailbox.IsEmpty())
		assert.Nil(t, mailbox.Dequeue())
		mailbox.Dispose()
	})
	t.Run("With multiple producers", func(t *testing.T) {
		producers := 4
		perProducer := 100
		expCount := producers * perProducer
		mailbox := NewUnboundedMailbox()

		var consumerWg sync.WaitGroup
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			i := 0
			for i < expCount {
				if mailbox.Dequeue() == nil {
					runtime.Gosched()
					continue
				}
				i++
			}
		}()

		var producersWg sync.WaitGroup
		producersWg.Add(producers)
		for range producers {
			go func() {
				defer producersWg.Done()
				for range perProducer {
					mailbox.Enqueue(NoSender, &Envelope{})
				}
			}()
		}

		producersWg.Wait()
		consumerWg.Wait()
		assert.True(t, mailbox.IsEmpty())
	})
}
