// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package transaction

import "testing"

func TestSliceSourceRoundTrip(t *testing.T) {
	txs := [][]int32{{1, 2}, {2, 3}, {1, 2, 3}}
	s := NewSliceSource(txs)
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i := 0; i < 2; i++ {
		s.Reset()
		var got [][]int32
		for {
			tx, ok := s.Next()
			if !ok {
				break
			}
			got = append(got, tx)
		}
		if len(got) != len(txs) {
			t.Fatalf("pass %d: got %d transactions, want %d", i, len(got), len(txs))
		}
	}
}

func TestBuildOccurrenceCountIsSubtreeWeight(t *testing.T) {
	txs := [][]int32{
		{1, 2, 3},
		{1, 2},
		{1, 2, 4},
	}
	tr := Build(txs)
	root := tr.Root()

	if root.ChildCount() != 1 {
		t.Fatalf("root has %d children, want 1 (item 1 shared by all)", root.ChildCount())
	}
	n1 := root.Child(0)
	if n1.Item() != 1 || n1.OccurrenceCount() != 3 {
		t.Fatalf("node 1: item=%d count=%d, want item=1 count=3", n1.Item(), n1.OccurrenceCount())
	}

	if n1.ChildCount() != 1 {
		t.Fatalf("node 1 has %d children, want 1 (item 2)", n1.ChildCount())
	}
	n2 := n1.Child(0)
	if n2.Item() != 2 || n2.OccurrenceCount() != 3 {
		t.Fatalf("node 1,2: item=%d count=%d, want item=2 count=3", n2.Item(), n2.OccurrenceCount())
	}

	// node 1,2 terminates for txs[1] but also continues to 3 and to 4:
	// two children, each with count 1.
	if n2.ChildCount() != 2 {
		t.Fatalf("node 1,2 has %d children, want 2 (items 3 and 4)", n2.ChildCount())
	}
	for i := 0; i < n2.ChildCount(); i++ {
		c := n2.Child(i)
		if c.OccurrenceCount() != 1 {
			t.Errorf("node 1,2,%d: count=%d, want 1", c.Item(), c.OccurrenceCount())
		}
		if c.Item() != 3 && c.Item() != 4 {
			t.Errorf("unexpected child item %d", c.Item())
		}
	}

	if n2.MaxDepth() != 1 {
		t.Errorf("node 1,2 MaxDepth() = %d, want 1", n2.MaxDepth())
	}
	if n1.MaxDepth() != 2 {
		t.Errorf("node 1 MaxDepth() = %d, want 2", n1.MaxDepth())
	}
}

func TestBuildLenAndReplay(t *testing.T) {
	txs := [][]int32{{5}, {6, 7}}
	tr := Build(txs)
	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}
	tx, ok := tr.Next()
	if !ok || len(tx) != 1 || tx[0] != 5 {
		t.Fatalf("Next() = (%v,%v), want ([5],true)", tx, ok)
	}
	tr.Reset()
	tx, ok = tr.Next()
	if !ok || len(tx) != 1 || tx[0] != 5 {
		t.Fatalf("Next() after Reset() = (%v,%v), want ([5],true)", tx, ok)
	}
}
