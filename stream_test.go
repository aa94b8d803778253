// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal_test

import (
	"testing"

	"code.hybscloud.com/causal"
)

func TestForever(t *testing.T) {
	s := causal.Forever(7)
	if !causal.PrefixEqual(s.Take(3), causal.PrefixOf(7, 7, 7)) {
		t.Fatalf("got %v, want [7 7 7]", s.Take(3).Elements())
	}
}

func TestIterate(t *testing.T) {
	s := causal.Iterate(1, func(x int) int { return x * 2 })
	if !causal.PrefixEqual(s.Take(4), causal.PrefixOf(1, 2, 4, 8)) {
		t.Fatalf("got %v, want [1 2 4 8]", s.Take(4).Elements())
	}
}

func TestUnfold(t *testing.T) {
	// Fibonacci via seed pairs.
	type pair struct{ a, b int }
	s := causal.Unfold(pair{0, 1}, func(p pair) (int, pair) {
		return p.a, pair{p.b, p.a + p.b}
	})
	if !causal.PrefixEqual(s.Take(6), causal.PrefixOf(0, 1, 1, 2, 3, 5)) {
		t.Fatalf("got %v, want [0 1 1 2 3 5]", s.Take(6).Elements())
	}
}

func TestFromFunc(t *testing.T) {
	s := causal.FromFunc(func(i int) int { return i * i })
	if !causal.PrefixEqual(s.Take(4), causal.PrefixOf(0, 1, 4, 9)) {
		t.Fatalf("got %v, want [0 1 4 9]", s.Take(4).Elements())
	}
}

func TestNats(t *testing.T) {
	if !causal.PrefixEqual(causal.Nats().Take(4), causal.PrefixOf(1, 2, 3, 4)) {
		t.Fatalf("got %v, want [1 2 3 4]", causal.Nats().Take(4).Elements())
	}
}

func TestHeadTail(t *testing.T) {
	s := causal.Nats()
	if s.Head() != 1 {
		t.Fatalf("got head %d, want 1", s.Head())
	}
	if s.Tail().Head() != 2 {
		t.Fatalf("got second %d, want 2", s.Tail().Head())
	}
	// Forcing is value-semantic: the original stream is unchanged.
	if s.Head() != 1 {
		t.Fatalf("got head %d after Tail, want 1", s.Head())
	}
}

func TestTakeZero(t *testing.T) {
	if got := causal.Nats().Take(0); got.Len() != 0 {
		t.Fatalf("got len %d, want 0", got.Len())
	}
}

func TestFromSeq(t *testing.T) {
	s := causal.FromSeq(func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i * 10) {
				return
			}
		}
	})
	if !causal.PrefixEqual(s.Take(3), causal.PrefixOf(0, 10, 20)) {
		t.Fatalf("got %v, want [0 10 20]", s.Take(3).Elements())
	}
}

func TestFromSeqMemoized(t *testing.T) {
	pulls := 0
	s := causal.FromSeq(func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulls++
			if !yield(i) {
				return
			}
		}
	})
	// Forcing the same shared cells twice pulls the source once per cell.
	first := s.Take(5)
	second := s.Take(5)
	if !causal.PrefixEqual(first, second) {
		t.Fatalf("got %v then %v, want identical", first.Elements(), second.Elements())
	}
	if pulls != 5 {
		t.Fatalf("got %d pulls, want 5", pulls)
	}
}

func TestFromSeqTerminatedPanics(t *testing.T) {
	s := causal.FromSeq(func(yield func(int) bool) {
		yield(1)
	})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	s.Take(2)
}

func TestSeq(t *testing.T) {
	var got []int
	for x := range causal.Nats().Seq() {
		got = append(got, x)
		if len(got) == 3 {
			break
		}
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}
