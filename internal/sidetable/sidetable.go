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

// Package sidetable attaches values to objects whose type cannot carry them.
//
// A Table is keyed by the identity of its owner and holds the owner weakly:
// an entry never keeps its owner alive and is evicted once the owner has been
// garbage collected.
package sidetable

import (
	"reflect"
	"runtime"
	"sync"
	"weak"
)

// Table associates a value of type V with objects of type O.
//
// Reads are lock-free. Set may be called concurrently with Get.
type Table[O any, V any] struct {
	entries sync.Map // weak.Pointer[O] -> V
}

// New creates a standalone Table. Most callers should use Find so that
// independent packages share the same association.
func New[O any, V any]() *Table[O, V] {
	return &Table[O, V]{}
}

// Set associates value with owner, replacing any previous value.
// A nil owner is ignored.
func (t *Table[O, V]) Set(owner *O, value V) {
	if owner == nil {
		return
	}

	key := weak.Make(owner)
	if _, loaded := t.entries.Swap(key, value); !loaded {
		runtime.AddCleanup(owner, t.evict, key)
	}
}

// Get returns the value associated with owner. The boolean is false when
// owner is nil or has no association.
func (t *Table[O, V]) Get(owner *O) (V, bool) {
	var zero V
	if owner == nil {
		return zero, false
	}

	value, ok := t.entries.Load(weak.Make(owner))
	if !ok {
		return zero, false
	}

	typed, ok := value.(V)
	return typed, ok
}

// Len returns the number of live associations. It is meant for tests and
// diagnostics and walks the whole table.
func (t *Table[O, V]) Len() int {
	count := 0
	t.entries.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

func (t *Table[O, V]) evict(key weak.Pointer[O]) {
	t.entries.Delete(key)
}

type tableKey struct {
	owner reflect.Type
	value reflect.Type
}

var tables sync.Map // tableKey -> *Table[O, V]

// Find returns the process-wide Table for the (O, V) pair, creating it on
// first use. Two calls with the same type arguments always return the same
// Table; tables for different value types on the same owner type never
// collide.
func Find[O any, V any]() *Table[O, V] {
	key := tableKey{owner: reflect.TypeFor[O](), value: reflect.TypeFor[V]()}
	if table, ok := tables.Load(key); ok {
		return table.(*Table[O, V])
	}

	table, _ := tables.LoadOrStore(key, New[O, V]())
	return table.(*Table[O, V])
}
