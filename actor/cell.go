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
	"github.com/google/uuid"
)

// Cell is the execution context of an actor: it owns the actor mailbox and
// is the unit drop metrics are attributed to.
//
// A Cell is identified by its pointer. Telemetry data is attached to it from
// the outside; the Cell itself knows nothing about instrumentation.
type Cell struct {
	id         string
	path       string
	dispatcher string
	mailbox    Mailbox
	self       *LocalRef
}

// NewCell creates an actor cell with the given path, dispatcher name and mailbox
func NewCell(path, dispatcher string, mailbox Mailbox) *Cell {
	cell := &Cell{
		id:         uuid.NewString(),
		path:       path,
		dispatcher: dispatcher,
		mailbox:    mailbox,
	}
	cell.self = &LocalRef{cell: cell}
	return cell
}

// ID returns the unique id of the cell
func (x *Cell) ID() string {
	return x.id
}

// Path returns the actor path
func (x *Cell) Path() string {
	return x.path
}

// Dispatcher returns the dispatcher name
func (x *Cell) Dispatcher() string {
	return x.dispatcher
}

// Mailbox returns the cell mailbox
func (x *Cell) Mailbox() Mailbox {
	return x.mailbox
}

// Self returns the reference other actors use to reach this cell
func (x *Cell) Self() *LocalRef {
	return x.self
}
