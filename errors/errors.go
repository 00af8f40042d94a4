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

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrAgentAlreadyStarted is returned when Start is called on a running agent.
	ErrAgentAlreadyStarted = errors.New("agent has already started")

	// ErrAgentNotStarted is returned when an operation requires a running agent.
	ErrAgentNotStarted = errors.New("agent has not started")

	// ErrUndefinedCell is returned when a nil actor cell is handed to the agent.
	ErrUndefinedCell = errors.New("actor cell is not defined")

	// ErrCellAlreadyRegistered is returned when an actor cell already carries
	// its telemetry attributes. Attributes are set once per cell.
	ErrCellAlreadyRegistered = errors.New("actor cell is already registered")

	// ErrCellNotRegistered is returned when toggling instrumentation on an actor
	// cell that has never been registered.
	ErrCellNotRegistered = errors.New("actor cell is not registered")

	// ErrUndefinedMailbox is returned when a nil mailbox is handed to the agent.
	ErrUndefinedMailbox = errors.New("mailbox is not defined")

	// ErrInvalidConfig is returned when the agent options do not validate.
	ErrInvalidConfig = errors.New("invalid agent configuration")
)

// NewErrInvalidConfig wraps the validation violations with ErrInvalidConfig
func NewErrInvalidConfig(err error) error {
	return errors.Join(ErrInvalidConfig, err)
}

// InstrumentError is returned when the metric instruments cannot be created
type InstrumentError struct {
	err error
}

// enforce compilation error
var _ error = (*InstrumentError)(nil)

// NewInstrumentError returns an instance of InstrumentError
func NewInstrumentError(err error) *InstrumentError {
	return &InstrumentError{
		err: fmt.Errorf("instrument error: %w", err),
	}
}

// Error implements the standard error interface
func (i *InstrumentError) Error() string {
	return i.err.Error()
}

func (i *InstrumentError) Unwrap() error {
	return i.err
}
