// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// Equivalence predicates. Full extensional equality of causal functions
// and full bisimulation of transducers or streams range over unbounded
// domains and cannot be decided at runtime; each predicate here is a
// bounded approximation over caller-supplied samples or depth, intended
// for test harnesses rather than production control flow. Agreement is
// evidence of equivalence, disagreement is a definite counterexample.

// EquivCausal reports whether c and d agree pointwise on every sample
// prefix and all of its truncations. This samples causal equivalence:
// components compared at every length reachable from the samples,
// ignoring how either family was constructed.
func EquivCausal[A any, B comparable](c, d Causal[A, B], samples []Prefix[A]) bool {
	for _, p := range samples {
		for {
			if !PrefixEqual(c.Component(p), d.Component(p)) {
				return false
			}
			if p.Len() == 0 {
				break
			}
			p = p.Truncate()
		}
	}
	return true
}

// Bisimilar reports whether t and u produce identical outputs at every
// step along each of the given input prefixes. This is transducer
// bisimulation unfolded to the depth of each input: outputs must agree
// and the successor machines must again agree on the remaining input.
func Bisimilar[A any, B comparable](t, u Transducer[A, B], inputs []Prefix[A]) bool {
	for _, p := range inputs {
		t2, u2 := t, u
		for _, x := range p.Elements() {
			var yt, yu B
			yt, t2 = t2(x)
			yu, u2 = u2(x)
			if yt != yu {
				return false
			}
		}
	}
	return true
}

// EqualStreams reports whether s and t agree on their first depth
// elements. This is stream bisimulation unfolded depth times: heads
// must agree and the tails must again agree, depth-1 deep.
func EqualStreams[A comparable](s, t Stream[A], depth int) bool {
	for range depth {
		var x, y A
		x, s = s()
		y, t = t()
		if x != y {
			return false
		}
	}
	return true
}
