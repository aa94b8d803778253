// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// Composition of stream transformations. Causal functions and
// transducers are both closed under sequential composition, and the
// converters and interpreters respect it: interpreting a composite is
// the same as piping one interpretation into the other.

// Identity returns the transducer that emits every input unchanged.
func Identity[A any]() Transducer[A, A] {
	var t Transducer[A, A]
	t = func(x A) (A, Transducer[A, A]) { return x, t }
	return t
}

// Compose runs t and feeds each of its outputs through u.
// The composite state is the pair of component states; stepping steps
// both machines once, preserving one-output-per-input.
func Compose[A, B, C any](t Transducer[A, B], u Transducer[B, C]) Transducer[A, C] {
	return func(x A) (C, Transducer[A, C]) {
		y, t2 := t(x)
		z, u2 := u(y)
		return z, Compose(t2, u2)
	}
}

// IdentityCausal returns the identity causal function.
func IdentityCausal[A any]() Causal[A, A] {
	return New(func(p Prefix[A]) Prefix[A] { return p })
}

// ComposeCausal applies c and then d, componentwise. Both laws are
// inherited: the composite is length-preserving because each factor
// is, and it commutes with truncation because each factor does.
func ComposeCausal[A, B, C any](c Causal[A, B], d Causal[B, C]) Causal[A, C] {
	return New(func(p Prefix[A]) Prefix[C] {
		return d.Component(c.Component(p))
	})
}
