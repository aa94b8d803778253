// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

import "sync/atomic"

// Stepping boundary for external runtimes.
// A Cursor drives interpretation one element at a time for embedders
// that pull outputs from an event loop rather than consuming a Stream
// directly.

// Cursor is a one-shot handle over an output stream position.
// Next may be called at most once per cursor; each call returns the
// cursor for the following position. Calling Next twice panics. Use
// Discard to explicitly abandon a cursor.
//
// The affine discipline makes accidental double-consumption of a
// single position an immediate error instead of a silent fork.
type Cursor[A any] struct {
	used atomic.Uintptr
	rest Stream[A]
}

// NewCursor returns a cursor positioned at the head of s.
func NewCursor[A any](s Stream[A]) *Cursor[A] {
	return &Cursor[A]{rest: s}
}

// Next forces one element and returns it with the cursor for the next
// position. Panics if the cursor has already been used or discarded.
func (c *Cursor[A]) Next() (A, *Cursor[A]) {
	if c.used.Add(1) != 1 {
		panic("causal: cursor used twice")
	}
	x, rest := c.rest()
	return x, &Cursor[A]{rest: rest}
}

// TryNext attempts to advance. Returns (element, next cursor, true) on
// success, or (zero, nil, false) if the cursor was already used.
func (c *Cursor[A]) TryNext() (A, *Cursor[A], bool) {
	if c.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	x, rest := c.rest()
	return x, &Cursor[A]{rest: rest}, true
}

// Discard marks the cursor as consumed without forcing the stream.
func (c *Cursor[A]) Discard() {
	c.used.Store(1)
	c.rest = nil
}
