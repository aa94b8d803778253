// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package causal_test

import (
	"testing"

	"code.hybscloud.com/causal"
)

func TestEmptyPrefix(t *testing.T) {
	p := causal.Empty[int]()
	if p.Len() != 0 {
		t.Fatalf("got len %d, want 0", p.Len())
	}
	if got := p.Elements(); got != nil {
		t.Fatalf("got %v, want nil", got)
	}
}

func TestExtendLast(t *testing.T) {
	p := causal.Empty[int]().Extend(1).Extend(2).Extend(3)
	if p.Len() != 3 {
		t.Fatalf("got len %d, want 3", p.Len())
	}
	if p.Last() != 3 {
		t.Fatalf("got last %d, want 3", p.Last())
	}
}

func TestTruncate(t *testing.T) {
	p := causal.PrefixOf(1, 2, 3)
	q := p.Truncate()
	if q.Len() != 2 {
		t.Fatalf("got len %d, want 2", q.Len())
	}
	if q.Last() != 2 {
		t.Fatalf("got last %d, want 2", q.Last())
	}
	// Receiver unchanged.
	if p.Len() != 3 || p.Last() != 3 {
		t.Fatalf("truncate mutated receiver: len %d last %d", p.Len(), p.Last())
	}
}

func TestEtaLaws(t *testing.T) {
	// A length-0 prefix is Empty().
	if !causal.PrefixEqual(causal.PrefixOf[int](), causal.Empty[int]()) {
		t.Fatal("length-0 prefix is not Empty()")
	}
	// A nonempty prefix decomposes as Truncate + Last.
	p := causal.PrefixOf(4, 5, 6)
	if !causal.PrefixEqual(p, p.Truncate().Extend(p.Last())) {
		t.Fatal("eta decomposition failed")
	}
}

func TestExtendShares(t *testing.T) {
	// Two extensions of the same prefix are independent values.
	p := causal.PrefixOf(1, 2)
	a := p.Extend(3)
	b := p.Extend(4)
	if a.Last() != 3 || b.Last() != 4 {
		t.Fatalf("got %d and %d, want 3 and 4", a.Last(), b.Last())
	}
	if p.Len() != 2 {
		t.Fatalf("base prefix mutated: len %d", p.Len())
	}
}

func TestAt(t *testing.T) {
	p := causal.PrefixOf(10, 20, 30)
	for i, want := range []int{10, 20, 30} {
		if got := p.At(i); got != want {
			t.Fatalf("At(%d): got %d, want %d", i, got, want)
		}
	}
}

func TestElementsOrder(t *testing.T) {
	p := causal.PrefixOf("a", "b", "c")
	got := p.Elements()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPrefixEqual(t *testing.T) {
	if !causal.PrefixEqual(causal.PrefixOf(1, 2, 3), causal.PrefixOf(1, 2, 3)) {
		t.Fatal("equal prefixes reported unequal")
	}
	if causal.PrefixEqual(causal.PrefixOf(1, 2, 3), causal.PrefixOf(1, 2)) {
		t.Fatal("different lengths reported equal")
	}
	if causal.PrefixEqual(causal.PrefixOf(1, 2, 3), causal.PrefixOf(1, 2, 4)) {
		t.Fatal("different elements reported equal")
	}
	// Shared tail fast path.
	base := causal.PrefixOf(1, 2)
	if !causal.PrefixEqual(base.Extend(3), base.Extend(3)) {
		t.Fatal("extensions sharing a tail reported unequal")
	}
}

func TestTruncateEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	causal.Empty[int]().Truncate()
}

func TestLastEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	causal.Empty[int]().Last()
}

func TestAtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	causal.PrefixOf(1).At(1)
}
