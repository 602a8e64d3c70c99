// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import "testing"

func TestNewItemIndexDenseWhenMemoryOptimiseOff(t *testing.T) {
	// Sparse span (ids 10 and 100): 3*n=6 < 2*k=182, so with
	// memoryOptimise=false this must still come out dense.
	idx := newItemIndex([]int32{10, 100}, false)
	if _, ok := idx.(denseIndex); !ok {
		t.Fatalf("newItemIndex(memoryOptimise=false) = %T, want denseIndex", idx)
	}
}

func TestNewItemIndexDensePacked(t *testing.T) {
	// ids 5,6,7,8: n=4, k=4, 3*4=12 >= 2*4=8 -> dense even with
	// memoryOptimise=true.
	idx := newItemIndex([]int32{5, 6, 7, 8}, true)
	if _, ok := idx.(denseIndex); !ok {
		t.Fatalf("newItemIndex(packed) = %T, want denseIndex", idx)
	}
}

func TestNewItemIndexSparseWhenScattered(t *testing.T) {
	// ids 1, 50: n=2, k=50, 3*2=6 < 2*50=100 -> sparse under
	// memoryOptimise=true.
	idx := newItemIndex([]int32{1, 50}, true)
	s, ok := idx.(sparseIndex)
	if !ok {
		t.Fatalf("newItemIndex(scattered) = %T, want sparseIndex", idx)
	}
	if s.size() != 2 {
		t.Errorf("sparseIndex.size() = %d, want 2", s.size())
	}
	if i, ok := s.indexOf(1); !ok || i != 0 {
		t.Errorf("indexOf(1) = (%d,%v), want (0,true)", i, ok)
	}
	if i, ok := s.indexOf(50); !ok || i != 1 {
		t.Errorf("indexOf(50) = (%d,%v), want (1,true)", i, ok)
	}
	if _, ok := s.indexOf(25); ok {
		t.Error("indexOf(25) should fail: 25 is not tracked")
	}
	if s.min() != 1 || s.max() != 50 {
		t.Errorf("min/max = %d/%d, want 1/50", s.min(), s.max())
	}
	if s.itemAt(0) != 1 || s.itemAt(1) != 50 {
		t.Errorf("itemAt(0,1) = %d,%d, want 1,50", s.itemAt(0), s.itemAt(1))
	}
}

func TestDenseIndexBounds(t *testing.T) {
	d := denseIndex{offset: 5, n: 3} // covers 5,6,7
	if d.size() != 3 {
		t.Fatalf("size() = %d, want 3", d.size())
	}
	if i, ok := d.indexOf(5); !ok || i != 0 {
		t.Errorf("indexOf(5) = (%d,%v), want (0,true)", i, ok)
	}
	if i, ok := d.indexOf(7); !ok || i != 2 {
		t.Errorf("indexOf(7) = (%d,%v), want (2,true)", i, ok)
	}
	if _, ok := d.indexOf(4); ok {
		t.Error("indexOf(4) should fail: below offset")
	}
	if _, ok := d.indexOf(8); ok {
		t.Error("indexOf(8) should fail: at or past offset+n")
	}
	if d.itemAt(1) != 6 {
		t.Errorf("itemAt(1) = %d, want 6", d.itemAt(1))
	}
	if d.min() != 5 || d.max() != 7 {
		t.Errorf("min/max = %d/%d, want 5/7", d.min(), d.max())
	}
}

func TestNodeLookupCounterAndChild(t *testing.T) {
	root := newRootNode([]int32{7, 3, 9})
	if c, ok := root.lookupCounter(1); !ok || c.support != 3 {
		t.Fatalf("lookupCounter(1) = (%v,%v), want (support=3,true)", c, ok)
	}
	if _, ok := root.lookupCounter(99); ok {
		t.Error("lookupCounter(99) should fail: id out of range")
	}
	if _, ok := root.lookupChild(0); ok {
		t.Error("lookupChild should fail before any level is appended")
	}
	if root.hasChildren() {
		t.Error("hasChildren() should be false before any level is appended")
	}

	child := &Node{id: 0, depth: 1, parent: root}
	root.childIndex = denseIndex{offset: 0, n: 1}
	root.children = []*Node{child}
	if !root.hasChildren() {
		t.Error("hasChildren() should be true once childIndex is set")
	}
	got, ok := root.lookupChild(0)
	if !ok || got != child {
		t.Fatalf("lookupChild(0) = (%v,%v), want (child,true)", got, ok)
	}
}

func TestNodePath(t *testing.T) {
	root := newRootNode([]int32{1, 1, 1})
	a := &Node{id: 10, depth: 1, parent: root}
	b := &Node{id: 20, depth: 2, parent: a}
	buf := make([]int32, 2)
	got := b.path(buf)
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Fatalf("path() = %v, want [10 20]", got)
	}
}
