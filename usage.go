// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import "github.com/bits-and-blooms/bitset"

// ItemUsage returns the set of item ids that appear in at least one
// candidate the tree ever considered extending: either directly, as a
// counter whose support cleared the extension threshold, or indirectly, as
// the path item of a node some deeper qualifying counter hangs off of. A
// caller mining several related runs can use this to narrow the dictionary
// passed to the next run down to the items that mattered at all.
//
// It requires the tree to be in the Counted state.
func (t *Tree) ItemUsage() *bitset.BitSet {
	used := bitset.New(uint(t.dict.ItemCount()))
	t.requireCounted()
	minExt := uint32(t.opts.minSuppForExtension())
	t.markUsage(t.root, used, minExt)
	return used
}

// markUsage is a postorder walk: a node's own id (its last path item) is
// marked in used exactly when either one of its own counters clears minExt
// or one of its children was itself marked (i.e. had a qualifying
// descendant), so usage propagates from a deep qualifying counter all the
// way back up to every item on the path that reached it.
func (t *Tree) markUsage(n *Node, used *bitset.BitSet, minExt uint32) (marked bool) {
	for i := 0; i < n.index.size(); i++ {
		if uint32(n.support(i)) >= minExt {
			used.Set(uint(n.index.itemAt(i)))
			marked = true
		}
	}
	if n.hasChildren() {
		for i := 0; i < n.childIndex.size(); i++ {
			c := n.children[i]
			if c == nil {
				continue
			}
			if t.markUsage(c, used, minExt) {
				marked = true
			}
		}
	}
	if marked && n.depth > 0 {
		used.Set(uint(n.id))
	}
	return marked
}
