// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal

// The two representations can be converted at runtime. The naming
// follows Filinski (1994): reify converts a semantic value (the
// extensional Causal family) into a syntactic representation (a
// steppable machine), and reflect is the inverse.
//
// Both conversions are total and structure-preserving: round-tripping
// either way yields a value equivalent to the original — causally
// equivalent for Causal, bisimilar for Transducer.

// Reify converts a causal function into a transducer. The machine's
// hidden state is the prefix of inputs consumed so far, initially
// empty: stepping on x emits c.ApplyNext(acc, x) and advances the
// state to acc.Extend(x). This is the same accumulation strategy as
// [InterpretCausal], packaged as a machine.
//
// Because prefixes are persistent, every intermediate machine remains
// a valid checkpoint of the transformation.
func Reify[A, B any](c Causal[A, B]) Transducer[A, B] {
	return reifyFrom(c, Empty[A]())
}

func reifyFrom[A, B any](c Causal[A, B], acc Prefix[A]) Transducer[A, B] {
	return func(x A) (B, Transducer[A, B]) {
		return c.ApplyNext(acc, x), reifyFrom(c, acc.Extend(x))
	}
}

// Reflect converts a transducer into a causal function: the length-n
// component folds the machine over the n-element input prefix with
// [Drive], keeping the outputs and discarding the final machine.
//
// The reflected family satisfies the causality law because folding
// commutes with prefix extension: driving over p.Extend(x) is driving
// over p and then stepping once more on x, so the first n outputs are
// untouched by the extension. This is the key lemma behind round-trip
// correctness and is stated as a tested property.
func Reflect[A, B any](t Transducer[A, B]) Causal[A, B] {
	return New(func(p Prefix[A]) Prefix[B] {
		out, _ := Drive(t, p)
		return out
	})
}
