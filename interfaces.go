// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import "github.com/elsif/freqmine/item"

// Dictionary is re-exported from package item: the tree reads item counts,
// appearances, and frequencies at construction and during candidate
// generation, and never writes.
type Dictionary = item.Dictionary

// Appearance is re-exported from package item.
type Appearance = item.Appearance

const (
	Ignore   = item.Ignore
	BodyOnly = item.BodyOnly
	HeadOnly = item.HeadOnly
	Both     = item.Both
)

// TransactionSource yields sorted, duplicate-free transactions one at a
// time. Implementations need not buffer every transaction in memory; Next
// must return a slice the caller may retain only until the next call to
// Next.
type TransactionSource interface {
	// Next returns the next transaction's sorted, unique item ids, or
	// ok=false once the source is exhausted.
	Next() (items []int32, ok bool)
	// Reset rewinds the source so a subsequent Next starts over; the tree
	// needs one full pass per counting round.
	Reset()
	// Len returns the total number of transactions, the N term in a
	// lift/confidence computation.
	Len() int
}

// TreeTransactionSource is implemented by a TransactionSource that can
// also expose its transactions as a shared-prefix tree. A Job prefers this
// over one CountTransaction call per transaction when available, since a
// single CountTransactionTree call over the whole pass amortises the cost
// of transactions sharing a prefix.
type TreeTransactionSource interface {
	TransactionSource
	// Root returns the shared-prefix tree's root.
	Root() TransactionTreeNode
}

// TransactionTreeNode is one node of a shared-prefix transaction tree: a
// compressed trie over the transaction database used to accelerate
// CountTransactionTree. Children are ordered by ascending item id,
// matching the sorted-item invariant CountTransaction relies on.
type TransactionTreeNode interface {
	// MaxDepth returns the length of the longest transaction passing
	// through this node, counted from this node (0 for a leaf). Used to
	// skip a subtree that cannot possibly satisfy the counting descent's
	// remaining-depth budget.
	MaxDepth() int
	// ChildCount returns the number of children at this node.
	ChildCount() int
	// Child returns the i-th child, in ascending item-id order.
	Child(i int) TransactionTreeNode
	// Item returns the item id labeling the edge from the parent to this
	// node.
	Item() int32
	// OccurrenceCount returns how many original transactions this node's
	// subtree represents in total, whether they terminate at this exact
	// node or continue through one of its descendants. It is the weight
	// CountTransactionTree adds to a matching counter, precomputed once
	// when the transaction tree is built rather than summed on every
	// counting pass.
	OccurrenceCount() int
}
