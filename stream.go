// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

import (
	"iter"
	"sync"
)

// Stream represents a lazily produced infinite sequence.
// Forcing the closure yields the head and the stream of the rest;
// a Stream never terminates by contract.
//
// Streams built from the constructors in this package are pure values:
// forcing the same Stream twice yields the same head and an equivalent
// tail, so streams may be shared between independent consumers.
type Stream[A any] func() (A, Stream[A])

// Head forces the stream and returns its first element.
func (s Stream[A]) Head() A {
	x, _ := s()
	return x
}

// Tail forces the stream and returns the stream of everything after
// the first element.
func (s Stream[A]) Tail() Stream[A] {
	_, t := s()
	return t
}

// Take forces the first n elements into a prefix.
// Exactly n elements are pulled from the stream, no more.
func (s Stream[A]) Take(n int) Prefix[A] {
	p := Empty[A]()
	for range n {
		var x A
		x, s = s()
		p = p.Extend(x)
	}
	return p
}

// Forever returns the constant stream x, x, x, …
func Forever[A any](x A) Stream[A] {
	var s Stream[A]
	s = func() (A, Stream[A]) { return x, s }
	return s
}

// Iterate returns the stream x, f(x), f(f(x)), …
func Iterate[A any](x A, f func(A) A) Stream[A] {
	return func() (A, Stream[A]) {
		return x, Iterate(f(x), f)
	}
}

// Unfold generates a stream from a seed: each step produces one element
// and the next seed.
func Unfold[S, A any](seed S, f func(S) (A, S)) Stream[A] {
	return func() (A, Stream[A]) {
		x, next := f(seed)
		return x, Unfold(next, f)
	}
}

// FromFunc returns the stream f(0), f(1), f(2), …
// Position-indexed and pure, so the result is replayable from any point.
func FromFunc[A any](f func(int) A) Stream[A] {
	return fromFuncAt(f, 0)
}

func fromFuncAt[A any](f func(int) A, i int) Stream[A] {
	return func() (A, Stream[A]) {
		return f(i), fromFuncAt(f, i+1)
	}
}

// Nats returns the stream 1, 2, 3, 4, …
func Nats() Stream[int] {
	return FromFunc(func(i int) int { return i + 1 })
}

// FromSeq adapts an iter.Seq to a Stream. The sequence must be infinite:
// if it terminates, forcing the stream past its end panics, because a
// Stream has no way to signal exhaustion.
//
// Cells are memoized, so the resulting Stream keeps value semantics even
// though the underlying pull iterator is single-use: forcing a shared
// cell twice pulls the source only once.
func FromSeq[A any](seq iter.Seq[A]) Stream[A] {
	next, _ := iter.Pull(seq)
	return pullCell(next)
}

// pullCell wraps one position of a single-use pull iterator in a
// memoized stream cell.
func pullCell[A any](next func() (A, bool)) Stream[A] {
	var (
		once sync.Once
		head A
		tail Stream[A]
	)
	return func() (A, Stream[A]) {
		once.Do(func() {
			x, ok := next()
			if !ok {
				panic("causal: input stream terminated")
			}
			head = x
			tail = pullCell(next)
		})
		return head, tail
	}
}

// Seq returns a range-over-func view of the stream. The sequence is
// infinite; the consumer is expected to break out of the loop.
func (s Stream[A]) Seq() iter.Seq[A] {
	return func(yield func(A) bool) {
		rest := s
		for {
			var x A
			x, rest = rest()
			if !yield(x) {
				return
			}
		}
	}
}
