// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// Stream interpreters: each turns a representation into a producer of
// an infinite output stream from an infinite input stream. Both are
// single-threaded, pull-driven, and side-effect-free: one input element
// is consumed per output element requested, the n-th output depends
// only on the first n inputs, and no interpreter ever looks ahead.

// InterpretTransducer runs t over the input stream. Forcing the n-th
// output forces exactly the first n inputs: each cell consumes one
// input, steps the machine once, emits the output, and recurses lazily
// on the successor machine and the input's tail.
//
// t itself is never mutated; re-driving the same t over the same input
// reproduces the same output stream.
func InterpretTransducer[A, B any](t Transducer[A, B], input Stream[A]) Stream[B] {
	return func() (B, Stream[B]) {
		x, rest := input()
		y, next := t(x)
		return y, InterpretTransducer(next, rest)
	}
}

// InterpretCausal runs c over the input stream, threading the prefix of
// inputs consumed so far. On each input x with accumulated prefix p it
// emits c.ApplyNext(p, x) and recurses with p.Extend(x).
//
// The accumulation is essential: an interpreter that reused ApplyOne at
// every position would forget history and mis-render any causal
// function whose output depends on more than the latest input. The
// causality law is what guarantees the committed outputs here agree
// with c.Component applied to any longer prefix.
func InterpretCausal[A, B any](c Causal[A, B], input Stream[A]) Stream[B] {
	return interpretFrom(c, Empty[A](), input)
}

func interpretFrom[A, B any](c Causal[A, B], acc Prefix[A], input Stream[A]) Stream[B] {
	return func() (B, Stream[B]) {
		x, rest := input()
		y := c.ApplyNext(acc, x)
		return y, interpretFrom(c, acc.Extend(x), rest)
	}
}
