// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// Causal represents a causal stream function from A to B: a family of
// length-preserving prefix transforms, one per length, presented
// uniformly as a single function on prefixes.
//
// A Causal value carries two preconditions that Go cannot express in
// the type and New does not check:
//
//   - length preservation: component(p).Len() == p.Len() for every p
//   - the causality law: component(p.Truncate()) == component(p).Truncate()
//     for every nonempty p
//
// Together these say the first n outputs depend only on the first n
// inputs, so an output element, once committed, is never revised when
// the input grows. The law cannot be verified at runtime for an
// unbounded family; [CausalityHolds] samples it on representative
// prefixes and is what the test suite uses in place of a proof.
type Causal[A, B any] struct {
	component func(Prefix[A]) Prefix[B]
}

// New builds a causal function from a uniform component function.
// The component must be length-preserving and satisfy the causality
// law; see the type documentation. New trusts the caller.
func New[A, B any](component func(Prefix[A]) Prefix[B]) Causal[A, B] {
	return Causal[A, B]{component: component}
}

// Component applies the length-n transform, where n = p.Len().
func (c Causal[A, B]) Component(p Prefix[A]) Prefix[B] {
	return c.component(p)
}

// ApplyOne observes the causal function as a plain A → B function by
// wrapping x in a singleton prefix and unwrapping the singleton result.
// This is the only external view of a causal function as an ordinary
// function.
func (c Causal[A, B]) ApplyOne(x A) B {
	return c.component(Empty[A]().Extend(x)).Last()
}

// ApplyNext computes the one new output produced when the input grows
// from p to p.Extend(x). Definitionally this is
// c.Component(p.Extend(x)).Last(); by the causality law it is exactly
// the element the longer transform appends beyond c.Component(p).
// This is the operation that drives interpretation.
func (c Causal[A, B]) ApplyNext(p Prefix[A], x A) B {
	return c.component(p.Extend(x)).Last()
}

// Pointwise lifts an ordinary function to a memoryless causal function:
// each output position is f of the same input position.
func Pointwise[A, B any](f func(A) B) Causal[A, B] {
	return New(func(p Prefix[A]) Prefix[B] {
		out := Empty[B]()
		for _, x := range p.Elements() {
			out = out.Extend(f(x))
		}
		return out
	})
}

// CausalityHolds samples New's precondition: it checks that component
// is length-preserving and satisfies the causality law on every sample
// prefix and all of its truncations. Agreement on samples is evidence,
// not proof — the law ranges over an unbounded family and cannot be
// decided at runtime.
func CausalityHolds[A any, B comparable](component func(Prefix[A]) Prefix[B], samples []Prefix[A]) bool {
	for _, p := range samples {
		out := component(p)
		if out.Len() != p.Len() {
			return false
		}
		for p.Len() > 0 {
			p = p.Truncate()
			shorter := component(p)
			if shorter.Len() != p.Len() {
				return false
			}
			if !PrefixEqual(shorter, out.Truncate()) {
				return false
			}
			out = shorter
		}
	}
	return true
}
