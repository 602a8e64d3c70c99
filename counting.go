// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

// CountTransaction updates the counters at the current deepest level for
// one sorted, duplicate-free transaction. It must be called once per
// transaction, for every transaction in the database, between an AddLevel
// call and the matching EndCountingPass.
func (t *Tree) CountTransaction(items []int32) {
	if t.state != stateBuildingLevel {
		panic("freqmine: logic error: CountTransaction called outside a counting pass")
	}
	t.countAt(t.root, items)
}

// countAt descends the tree following every possible extension position in
// items, incrementing a counter only at the deepest level (every shallower
// level's counters are already final from an earlier counting pass); the
// recursion itself is how a single transaction contributes to every
// candidate it happens to contain, not just one.
func (t *Tree) countAt(n *Node, items []int32) {
	if n.depth == t.Height() {
		for _, it := range items {
			if c, ok := n.lookupCounter(it); ok {
				c.support++
			}
		}
		return
	}
	for i, it := range items {
		child, ok := n.lookupChild(it)
		if !ok || child.skipSubtree {
			continue
		}
		t.countAt(child, items[i+1:])
	}
}

// CountTransactionTree updates the counters at the current deepest level
// for every transaction represented by root, a shared-prefix compression
// of the transaction database. It must be called exactly once per
// counting pass, replacing a loop of CountTransaction calls over the same
// database, and is equivalent to one in its effect on the tree.
func (t *Tree) CountTransactionTree(root TransactionTreeNode) {
	if t.state != stateBuildingLevel {
		panic("freqmine: logic error: CountTransactionTree called outside a counting pass")
	}
	t.countTreeAt(t.root, root)
}

// countTreeAt mirrors countAt, but walks a transaction tree instead of a
// single flat transaction: every child of tn is one candidate next
// extension position, shared across however many transactions pass
// through it, so it contributes its precomputed OccurrenceCount as a
// single weighted increment instead of one unit per transaction.
func (t *Tree) countTreeAt(n *Node, tn TransactionTreeNode) {
	remaining := t.Height() - n.depth
	if tn.MaxDepth()+1 < remaining {
		return
	}

	// Try every deeper starting position from the same item-tree node
	// first, the transaction-tree analogue of countAt's per-position loop.
	for i := 0; i < tn.ChildCount(); i++ {
		t.countTreeAt(n, tn.Child(i))
	}

	if n.depth == t.Height() {
		for i := 0; i < tn.ChildCount(); i++ {
			c := tn.Child(i)
			if cnt, ok := n.lookupCounter(c.Item()); ok {
				cnt.support += int32(c.OccurrenceCount())
			}
		}
		return
	}
	for i := 0; i < tn.ChildCount(); i++ {
		c := tn.Child(i)
		child, ok := n.lookupChild(c.Item())
		if !ok || child.skipSubtree {
			continue
		}
		t.countTreeAt(child, c)
	}
}

// EndCountingPass marks the current deepest level fully counted, allowing
// the next AddLevel call (or, once no further level can be added, a filter
// and extraction pass).
func (t *Tree) EndCountingPass() {
	if t.state != stateBuildingLevel {
		panic("freqmine: logic error: EndCountingPass called outside a counting pass")
	}
	t.state = stateCounted
}
