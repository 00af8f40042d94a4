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
	"strings"
)

type pathPrefixValidator struct {
	prefix string
}

// NewPathPrefixValidator checks that prefix is an absolute actor path prefix such as /user/workers
func NewPathPrefixValidator(prefix string) Validator {
	return pathPrefixValidator{prefix: prefix}
}

func (v pathPrefixValidator) Validate() error {
	switch {
	case strings.TrimSpace(v.prefix) == "":
		return fmt.Errorf("the path prefix is required")
	case !strings.HasPrefix(v.prefix, "/"):
		return fmt.Errorf("the path prefix [%s] must start with /", v.prefix)
	case strings.ContainsAny(v.prefix, " \t\n"):
		return fmt.Errorf("the path prefix [%s] must not contain whitespace", v.prefix)
	default:
		return nil
	}
}
