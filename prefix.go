// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// Prefix is an immutable, length-tracked finite sequence: the first n
// elements of a stream. Prefixes are persistent values — Extend and
// Truncate return new prefixes and never touch the receiver, so any
// earlier prefix remains valid and can be shared or replayed freely.
//
// The representation is a linked snoc chain growing from the end:
// Extend, Truncate and Last are O(1) and extensions share structure
// with the prefix they extend.
//
// Two eta laws hold by construction and are relied on throughout:
// a length-0 prefix equals Empty(), and any nonempty prefix p equals
// p.Truncate().Extend(p.Last()).
type Prefix[A any] struct {
	n    int
	node *snoc[A]
}

// snoc is one cell of the chain: the newest element plus the rest.
// Invariant: the chain reachable from Prefix.node has exactly Prefix.n cells.
type snoc[A any] struct {
	value A
	prev  *snoc[A]
}

// Empty returns the length-0 prefix.
func Empty[A any]() Prefix[A] {
	return Prefix[A]{}
}

// PrefixOf builds a prefix from the given elements, first element first.
func PrefixOf[A any](xs ...A) Prefix[A] {
	p := Empty[A]()
	for _, x := range xs {
		p = p.Extend(x)
	}
	return p
}

// Len returns the exact length n.
func (p Prefix[A]) Len() int { return p.n }

// Extend appends one element, returning a prefix of length n+1.
// The receiver is unchanged.
func (p Prefix[A]) Extend(x A) Prefix[A] {
	return Prefix[A]{
		n:    p.n + 1,
		node: &snoc[A]{value: x, prev: p.node},
	}
}

// Truncate drops the last element, returning a prefix of length n-1.
// Panics on the empty prefix.
func (p Prefix[A]) Truncate() Prefix[A] {
	if p.n == 0 {
		panic("causal: truncate of empty prefix")
	}
	return Prefix[A]{n: p.n - 1, node: p.node.prev}
}

// Last returns the most recently appended element.
// Panics on the empty prefix.
func (p Prefix[A]) Last() A {
	if p.n == 0 {
		panic("causal: last of empty prefix")
	}
	return p.node.value
}

// At returns the element at position i, 0-based from the front.
// Panics if i is out of range.
func (p Prefix[A]) At(i int) A {
	if i < 0 || i >= p.n {
		panic("causal: prefix index out of range")
	}
	node := p.node
	for k := p.n - 1; k > i; k-- {
		node = node.prev
	}
	return node.value
}

// Elements materializes the prefix as a fresh slice, first element first.
func (p Prefix[A]) Elements() []A {
	if p.n == 0 {
		return nil
	}
	out := make([]A, p.n)
	node := p.node
	for i := p.n - 1; i >= 0; i-- {
		out[i] = node.value
		node = node.prev
	}
	return out
}

// PrefixEqual reports structural equality: same length, equal elements.
func PrefixEqual[A comparable](p, q Prefix[A]) bool {
	if p.n != q.n {
		return false
	}
	pn, qn := p.node, q.node
	for pn != nil {
		if pn == qn {
			// Shared tail, equal by construction.
			return true
		}
		if pn.value != qn.value {
			return false
		}
		pn, qn = pn.prev, qn.prev
	}
	return true
}
