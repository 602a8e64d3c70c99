// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

// Package transaction supplies the freqmine.TransactionSource
// implementations a caller needs to actually run a mining job: an
// in-memory slice source for small databases and tests, and a
// shared-prefix tree that compresses a database down to its distinct
// prefixes before a counting pass ever touches freqmine.Tree.
package transaction

import (
	"sort"

	"github.com/elsif/freqmine"
)

// node is one shared-prefix tree node. Children are kept in a slice
// sorted ascending by item, resolved by binary search on insert and
// walked linearly by ChildCount/Child, mirroring the item-set tree's own
// sorted-child-array idiom one level down in the stack.
type node struct {
	item     int32
	count    int
	maxDepth int
	children []*node
}

func (n *node) MaxDepth() int    { return n.maxDepth }
func (n *node) ChildCount() int  { return len(n.children) }
func (n *node) Item() int32      { return n.item }
func (n *node) OccurrenceCount() int { return n.count }

func (n *node) Child(i int) freqmine.TransactionTreeNode { return n.children[i] }

// childFor returns the child tracking item, creating and inserting it in
// sorted order if it does not already exist.
func (n *node) childFor(item int32) *node {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].item >= item })
	if i < len(n.children) && n.children[i].item == item {
		return n.children[i]
	}
	c := &node{item: item}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	return c
}

// Tree is a shared-prefix compression of a transaction database: every
// distinct prefix across all transactions is stored once, with a weight
// (OccurrenceCount) equal to how many transactions share it. It implements
// freqmine.TreeTransactionSource, so a Job counts a whole pass with a
// single freqmine.Tree.CountTransactionTree call instead of one
// CountTransaction call per transaction.
type Tree struct {
	root         node
	transactions [][]int32
	pos          int
}

// Build constructs a Tree from transactions, a slice of sorted,
// duplicate-free item-id slices. transactions is retained, not copied, so
// that Next can replay it.
func Build(transactions [][]int32) *Tree {
	t := &Tree{transactions: transactions}
	for _, tx := range transactions {
		t.insert(tx)
	}
	fixDepths(&t.root)
	return t
}

func (t *Tree) insert(items []int32) {
	n := &t.root
	n.count++
	for _, it := range items {
		n = n.childFor(it)
		n.count++
	}
}

// fixDepths computes every node's MaxDepth bottom-up: the length of the
// longest path from this node to a leaf.
func fixDepths(n *node) int {
	max := 0
	for _, c := range n.children {
		if d := fixDepths(c) + 1; d > max {
			max = d
		}
	}
	n.maxDepth = max
	return max
}

// Root returns the shared-prefix tree's root, satisfying
// freqmine.TreeTransactionSource.
func (t *Tree) Root() freqmine.TransactionTreeNode { return &t.root }

// Next and Reset let Tree also stand in as a plain TransactionSource
// (e.g. for a first, dictionary-building pass that needs individual
// transactions rather than the compressed form); it replays the same
// slices Build was given, in order.
func (t *Tree) Next() ([]int32, bool) {
	if t.pos >= len(t.transactions) {
		return nil, false
	}
	tx := t.transactions[t.pos]
	t.pos++
	return tx, true
}

func (t *Tree) Reset() { t.pos = 0 }

// Len returns the number of transactions the tree was built from.
func (t *Tree) Len() int { return len(t.transactions) }
