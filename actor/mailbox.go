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

// Mailbox defines the contract for an actor's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue.
//   - Dequeue is called from a single consumer goroutine (MPSC).
//   - Messages are dequeued in FIFO order.
//
// Bounded behavior
//   - Enqueue does not report failures. A bounded mailbox that cannot accept
//     an envelope hands it to its DeadLetters and returns normally. Whether a
//     given submission was accepted is only observable after the fact.
//
// Observability
//   - IsEmpty and Len are best-effort snapshots under concurrency.
type Mailbox interface {
	// Enqueue submits an envelope addressed to receiver
	Enqueue(receiver Ref, envelope *Envelope)
	// Dequeue fetches the next envelope or returns nil when the mailbox is empty
	Dequeue() *Envelope
	// IsEmpty reports whether the mailbox currently has no messages
	IsEmpty() bool
	// Len returns a snapshot of the number of messages in the mailbox
	Len() int64
	// Dispose releases any resources held by the mailbox
	Dispose()
}
