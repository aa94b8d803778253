// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// Transducer represents an explicit state machine from A to B: the
// value is its own step rule, and the hidden state lives in the
// closure. Stepping is pure — it returns the output together with a
// successor transducer and never mutates the receiver, so any earlier
// machine remains valid and a transformation can be branched or
// replayed from any point.
//
// No introspection beyond Step is possible: two transducers with
// different internal encodings can only be told apart (or not) by
// their input/output behavior. Equivalence is therefore bisimulation,
// approximated by [Bisimilar].
type Transducer[A, B any] func(x A) (B, Transducer[A, B])

// Step consumes one input element and returns the output element
// together with the successor machine. Equivalent to calling t directly.
func (t Transducer[A, B]) Step(x A) (B, Transducer[A, B]) {
	return t(x)
}

// Machine builds a transducer from an initial state and a step rule.
// The rule must be total and deterministic over its whole state×input
// domain; it receives the current state by value and returns the next.
func Machine[S, A, B any](state S, step func(S, A) (B, S)) Transducer[A, B] {
	return func(x A) (B, Transducer[A, B]) {
		y, next := step(state, x)
		return y, Machine(next, step)
	}
}

// Arr lifts an ordinary function to a stateless transducer.
func Arr[A, B any](f func(A) B) Transducer[A, B] {
	var t Transducer[A, B]
	t = func(x A) (B, Transducer[A, B]) { return f(x), t }
	return t
}

// Drive folds the machine over a finite prefix, left to right,
// returning the prefix of outputs and the machine left after the last
// step. Drive(t, Empty()) returns (Empty(), t).
func Drive[A, B any](t Transducer[A, B], p Prefix[A]) (Prefix[B], Transducer[A, B]) {
	if p.Len() == 0 {
		return Empty[B](), t
	}
	out, mid := Drive(t, p.Truncate())
	y, next := mid(p.Last())
	return out.Extend(y), next
}

// Standard machines.

// RunningSum returns the machine whose state is the total of all inputs
// seen so far, initially 0; each step emits the updated total.
// On input 1, 2, 3, 4, … it produces 1, 3, 6, 10, …
func RunningSum() Transducer[int, int] {
	return Machine(0, func(total, x int) (int, int) {
		return total + x, total + x
	})
}

// Delay returns the machine that emits the previous input, starting
// with the given initial element: a one-element memory.
func Delay[A any](initial A) Transducer[A, A] {
	return Machine(initial, func(prev, x A) (A, A) {
		return prev, x
	})
}

// Latch returns the machine that emits false until pred first holds for
// an input, and true from that element onward.
func Latch[A any](pred func(A) bool) Transducer[A, bool] {
	return Machine(false, func(seen bool, x A) (bool, bool) {
		seen = seen || pred(x)
		return seen, seen
	})
}
