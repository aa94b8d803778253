// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package causal provides two equivalent models of causal stream
// transformation in Go: causal functions and transducers.
//
// A causal stream transformation turns an infinite input sequence into
// an infinite output sequence under one non-negotiable invariant:
// exactly one output element is committed per input element consumed,
// and a committed output is never revised as more input arrives.
//
// The package gives this class two representations and proves (by
// sampled properties, in place of machine-checked proofs) that they
// coincide:
//
//   - [Causal]: the extensional view — a family of length-preserving
//     prefix transforms, one per length, constrained by the causality
//     law: the transform at length n agrees with the truncation of the
//     transform at length n+1.
//   - [Transducer]: the machine view — an opaque state plus a step rule
//     (state, input) → (output, next state), exposed as a pure function
//     that returns a successor machine instead of mutating.
//
// # Design Philosophy
//
// causal provides:
//   - Immutable value semantics throughout: prefixes, machines, and
//     causal functions are never mutated, only extended or stepped into
//     successors, so any intermediate value is a reusable checkpoint
//   - Closure-first representations: a [Stream] is its own forcing
//     function and a [Transducer] is its own step rule
//   - Bounded, sampling-based stand-ins for the undecidable parts:
//     the causality law and all equivalence relations
//
// # Prefixes
//
// [Prefix] is an immutable, length-exact finite sequence, the record of
// "the input (or output) seen so far":
//
//   - [Empty], [PrefixOf]: construction
//   - [Prefix.Extend]: append one element, O(1), sharing structure
//   - [Prefix.Truncate], [Prefix.Last]: drop/read the newest element,
//     defined only on nonempty prefixes (misuse panics)
//   - [Prefix.Len], [Prefix.At], [Prefix.Elements]: inspection
//   - [PrefixEqual]: structural equality
//
// Two eta laws hold by construction: a length-0 prefix is [Empty], and
// any nonempty p equals p.Truncate().Extend(p.Last()).
//
// # Streams
//
// [Stream] is a pull-based lazy infinite sequence: forcing it yields
// head and tail. Sources:
//
//   - [Forever], [Iterate], [Unfold], [FromFunc], [Nats]: pure sources
//   - [FromSeq]: adapt an infinite iter.Seq (memoized; panics if the
//     sequence terminates, which the contract forbids)
//   - [Stream.Seq]: range-over-func view of a stream
//   - [Stream.Take]: force the first n elements into a [Prefix]
//   - [Cursor]: affine one-shot stepping handle for event-loop
//     embedders ([Cursor.Next] panics on reuse, [Cursor.TryNext] is the
//     non-panicking variant, [Cursor.Discard] abandons)
//
// # Causal Functions
//
//   - [New]: construct from a uniform component on prefixes; the
//     causality law is a documented precondition, sampled by
//     [CausalityHolds] rather than checked per call
//   - [Causal.Component]: apply the length-n transform
//   - [Causal.ApplyOne]: observe as a plain function via singletons
//   - [Causal.ApplyNext]: the one new output when the input grows by
//     one element — the operation interpretation is built on
//   - [Pointwise]: memoryless lifting of an ordinary function
//
// # Transducers
//
//   - [Machine]: construct from initial state and step rule
//   - [Transducer.Step]: consume one input, yield output and successor
//   - [Arr], [Identity]: stateless machines
//   - [RunningSum], [Delay], [Latch]: standard machines
//   - [Drive]: fold a machine over a finite prefix
//
// # Interpretation
//
//   - [InterpretTransducer]: step, emit, recurse on the successor
//   - [InterpretCausal]: emit ApplyNext against the accumulated prefix,
//     then extend it; the accumulating form is the only correct one —
//     reusing the single-step view at every position forgets history
//
// Both interpreters are productive (one output per input, forced
// lazily), never look ahead, and leave the interpreted value untouched,
// so re-driving it reproduces the same outputs.
//
// # Reify / Reflect
//
// The two representations convert into each other following Filinski
// (1994): reify turns the semantic value into a machine, reflect turns
// a machine into its extensional behavior.
//
//   - [Reify]: Causal → Transducer (state = accumulated input prefix)
//   - [Reflect]: Transducer → Causal (component = Drive over the prefix)
//
// Round-tripping either way preserves behavior: Reflect(Reify(c)) is
// causally equivalent to c, and Reify(Reflect(t)) is bisimilar to t.
//
// # Composition
//
//   - [Compose], [Identity]: sequential composition of machines
//   - [ComposeCausal], [IdentityCausal]: composition of causal functions
//
// # Equivalence
//
// All three equivalences are coinductive and undecidable in general;
// the predicates are bounded approximations for test harnesses:
//
//   - [EquivCausal]: pointwise agreement on sampled prefixes
//   - [Bisimilar]: stepwise output agreement along sampled inputs
//   - [EqualStreams]: agreement on the first depth elements
//
// # Example
//
//	sum := causal.RunningSum()
//	out := causal.InterpretTransducer(sum, causal.Nats())
//	got := out.Take(4) // 1, 3, 6, 10
//
//	// Same behavior through the extensional representation.
//	viaCausal := causal.InterpretCausal(causal.Reflect(sum), causal.Nats())
//	causal.EqualStreams(out, viaCausal, 100) // true
package causal
