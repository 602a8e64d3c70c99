// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

// MarkClosed sets the SKIP bit on every counter that is not closed: a
// frequent set S is closed only if no proper superset of S shares its
// support, since such a superset occurs in exactly the same transactions
// and makes S redundant to report alongside it.
//
// It requires the tree to be in the Counted state and leaves it there;
// MarkClosed and MarkMaximal are mutually exclusive passes run once after
// the last AddLevel, before extraction.
func (t *Tree) MarkClosed() {
	t.requireCounted()
	t.markDominated(func(subSupport, setSupport int32) bool { return subSupport == setSupport })
}

// MarkMaximal sets the SKIP bit on every counter that is not maximal: a
// frequent set S is maximal only if none of its proper supersets is also
// frequent. Equivalently, every proper subset of every frequent set is
// marked SKIP, since a subset of a frequent set is never itself maximal.
func (t *Tree) MarkMaximal() {
	t.requireCounted()
	t.markDominated(func(subSupport, setSupport int32) bool { return true })
}

// markDominated walks every level from deepest to shallowest; for each
// frequent counter (representing a set S) it marks every immediate
// (|S|-1)-subset's counter SKIP when keep reports it dominated. Processing
// deepest-first and re-examining every frequent counter regardless of its
// own SKIP state (not just the ones freshly marked) is what turns one
// immediate-subset pass per level into the full transitive closure over
// every proper subset: a subset two levels down gets marked when its own
// (now-SKIP) immediate superset is later visited in its own right.
func (t *Tree) markDominated(keep func(subSupport, setSupport int32) bool) {
	for depth := t.Height(); depth >= 1; depth-- {
		t.eachNodeAtDepth(depth, func(n *Node) {
			size := n.index.size()
			for i := 0; i < size; i++ {
				setSupport := n.support(i)
				if setSupport < int32(t.opts.MinSupport) {
					continue
				}
				itemI := n.index.itemAt(i)
				t.eachImmediateSubset(n, itemI, func(_ int32, sub *counter) {
					if keep(sub.support, setSupport) {
						sub.skip = true
					}
				})
			}
		})
	}
}
