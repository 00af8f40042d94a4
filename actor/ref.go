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

// Ref is anything a message can be addressed to
type Ref interface {
	// Path returns the actor path the reference points at
	Path() string
}

// RefWithCell is a Ref backed by a local actor cell.
// Remote references, NoSender and dead letters do not carry a cell.
type RefWithCell interface {
	Ref
	// Underlying returns the cell owning the mailbox the reference delivers to
	Underlying() *Cell
}

// LocalRef addresses an actor living in the current process
type LocalRef struct {
	cell *Cell
}

// enforce compilation error
var _ RefWithCell = (*LocalRef)(nil)

// Path returns the actor path
func (x *LocalRef) Path() string {
	if x == nil || x.cell == nil {
		return ""
	}
	return x.cell.Path()
}

// Underlying returns the actor cell
func (x *LocalRef) Underlying() *Cell {
	if x == nil {
		return nil
	}
	return x.cell
}

// Tell submits message to the actor mailbox. The call never fails: when the
// mailbox rejects the envelope it ends up in dead letters.
func (x *LocalRef) Tell(sender Ref, message any) {
	if x == nil || x.cell == nil || x.cell.mailbox == nil {
		return
	}
	x.cell.mailbox.Enqueue(x, &Envelope{Message: message, Sender: sender})
}

type noSender struct{}

func (noSender) Path() string { return "" }

// NoSender is the sender of messages sent from outside any actor
var NoSender Ref = noSender{}
