// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package item

import "testing"

func TestMapDictionaryAddAndLookup(t *testing.T) {
	d := NewMapDictionary()
	a := d.Add("a", Both)
	b := d.Add("b", HeadOnly)

	if id, ok := d.IDOf("a"); !ok || id != a {
		t.Fatalf("IDOf(a) = (%d, %v), want (%d, true)", id, ok, a)
	}
	if d.NameOf(b) != "b" {
		t.Fatalf("NameOf(%d) = %q, want b", b, d.NameOf(b))
	}
	if d.Appearance(b) != HeadOnly {
		t.Fatalf("Appearance(b) = %v, want HeadOnly", d.Appearance(b))
	}
	if d.ItemCount() != 2 {
		t.Fatalf("ItemCount() = %d, want 2", d.ItemCount())
	}
}

func TestMapDictionaryAddDuplicatePanics(t *testing.T) {
	d := NewMapDictionary()
	d.Add("a", Both)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate Add")
		}
	}()
	d.Add("a", Both)
}

func TestMapDictionaryIncrFrequency(t *testing.T) {
	d := NewMapDictionary()
	a := d.Add("a", Both)
	d.IncrFrequency(a, 3)
	d.IncrFrequency(a, 2)
	if got := d.Frequency(a); got != 5 {
		t.Fatalf("Frequency(a) = %d, want 5", got)
	}
}

func TestMapDictionarySortByFrequency(t *testing.T) {
	d := NewMapDictionary()
	a := d.Add("a", Both)
	b := d.Add("b", Both)
	c := d.Add("c", Both)
	d.IncrFrequency(a, 5)
	d.IncrFrequency(b, 1)
	d.IncrFrequency(c, 3)

	oldToNew := d.SortByFrequency()

	// b (freq 1) should now sort first, c (freq 3) second, a (freq 5) last.
	newB, newC, newA := oldToNew[b], oldToNew[c], oldToNew[a]
	if !(newB < newC && newC < newA) {
		t.Fatalf("expected ascending-frequency order b < c < a, got b=%d c=%d a=%d", newB, newC, newA)
	}
	if d.NameOf(newB) != "b" || d.NameOf(newC) != "c" || d.NameOf(newA) != "a" {
		t.Fatalf("names did not follow their remapped ids")
	}
	if id, ok := d.IDOf("a"); !ok || id != newA {
		t.Fatalf("IDOf(a) after sort = (%d,%v), want (%d,true)", id, ok, newA)
	}
}

func TestAppearance(t *testing.T) {
	cases := []struct {
		a             Appearance
		extend, body, head bool
	}{
		{Ignore, false, false, false},
		{BodyOnly, true, true, false},
		{HeadOnly, true, false, true},
		{Both, true, true, true},
	}
	for _, c := range cases {
		if got := c.a.CanExtend(); got != c.extend {
			t.Errorf("%v.CanExtend() = %v, want %v", c.a, got, c.extend)
		}
		if got := c.a.CanBeBody(); got != c.body {
			t.Errorf("%v.CanBeBody() = %v, want %v", c.a, got, c.body)
		}
		if got := c.a.CanBeHead(); got != c.head {
			t.Errorf("%v.CanBeHead() = %v, want %v", c.a, got, c.head)
		}
	}
}
