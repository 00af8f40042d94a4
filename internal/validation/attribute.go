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

package validation

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

type attributeValidator struct {
	kv       attribute.KeyValue
	reserved []attribute.Key
}

// NewAttributeValidator checks that kv is a valid otel attribute whose key is none of reserved
func NewAttributeValidator(kv attribute.KeyValue, reserved ...attribute.Key) Validator {
	return attributeValidator{kv: kv, reserved: reserved}
}

func (v attributeValidator) Validate() error {
	if !v.kv.Valid() {
		return fmt.Errorf("the attribute [%s] is invalid", v.kv.Key)
	}
	for _, key := range v.reserved {
		if v.kv.Key == key {
			return fmt.Errorf("the attribute key [%s] is reserved", key)
		}
	}
	return nil
}
