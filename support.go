// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

// LookupSupport returns the support of items, a sorted, strictly ascending
// item-id slice, if the tree tracks a counter for it. It returns ok=false
// if items was never a candidate (pruned, or never frequent enough to
// reach this depth) or is longer than the tree has levels for.
func (t *Tree) LookupSupport(items []int32) (support int, ok bool) {
	if len(items) == 0 || len(items) > t.Height()+1 {
		return 0, false
	}
	s, found := t.lookupSupportFrom(t.root, items)
	if !found {
		return 0, false
	}
	return int(s), true
}

// lookupSupportFrom descends from start through items[:len(items)-1] via
// child links, then resolves the counter for the final item at the node
// reached.
func (t *Tree) lookupSupportFrom(start *Node, items []int32) (int32, bool) {
	c, ok := t.lookupCounterFrom(start, items)
	if !ok {
		return 0, false
	}
	return c.support, true
}

// lookupCounterFrom is lookupSupportFrom's underlying primitive, returning
// the counter itself rather than just its support so a caller can mark it.
// It is the one subset-resolution routine candidate pruning (builder.go),
// closed/maximal marking (filter.go), and rule/measure evaluation
// (extract.go) all build on.
func (t *Tree) lookupCounterFrom(start *Node, items []int32) (*counter, bool) {
	n := start
	for i := 0; i < len(items)-1; i++ {
		child, ok := n.lookupChild(items[i])
		if !ok {
			return nil, false
		}
		n = child
	}
	return n.lookupCounter(items[len(items)-1])
}

// eachImmediateSubset calls fn once for every (n.depth)-sized proper
// subset of the (n.depth+1)-sized set formed by n's path plus itemI (the
// item tracked at the counter slot the caller is examining), passing the
// dropped item and the subset's own counter. There are exactly n.depth+1
// such subsets: dropping itemI itself resolves directly via n's parent
// (the subset left over is path(n), whose counter lives one level up, at
// the parent's slot for n.id), and dropping each of n's depth path items in turn
// resolves by walking ancestors and re-descending through the remaining
// suffix, the same technique candidate pruning uses to check a
// (k-1)-subset's support. n.parent must be non-nil (n.depth >= 1).
func (t *Tree) eachImmediateSubset(n *Node, itemI int32, fn func(dropped int32, sub *counter)) {
	full := make([]int32, n.depth+1)
	copy(full, t.path(n))
	full[n.depth] = itemI

	if c, ok := n.parent.lookupCounter(n.id); ok {
		fn(itemI, c)
	}
	for curr := n; curr.parent != nil; curr = curr.parent {
		suffix := full[curr.depth:]
		if c, ok := t.lookupCounterFrom(curr.parent, suffix); ok {
			fn(curr.id, c)
		}
	}
}
