// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import "sort"

// counter holds the support of one tracked extension, plus the SKIP marker
// written by the closed/maximal filter. The two are kept as separate fields
// rather than a shared sign bit: masking a reserved top bit on every read
// buys nothing once Go gives us a second field for free.
type counter struct {
	support int32
	skip    bool // closed/maximal domination marker
}

// itemIndex maps between an item identifier and its counter or child slot.
// It has exactly two implementations, denseIndex and sparseIndex, chosen
// once per node at creation time and never changed afterwards: a tagged
// variant instead of a single struct with a discriminator flag.
type itemIndex interface {
	// size is the number of slots this index addresses.
	size() int
	// indexOf returns the slot for item, if tracked.
	indexOf(item int32) (int, bool)
	// itemAt returns the item identifier tracked at slot i.
	itemAt(i int) int32
	// min and max bound the range of identifiers this index can possibly
	// resolve, used to fast-forward or stop a sorted transaction scan.
	min() int32
	max() int32
}

// denseIndex addresses a contiguous identifier range [offset, offset+n) by
// direct offset subtraction. Every identifier in the range gets a slot, not
// only the identifiers that were genuine candidates: downward closure
// guarantees that any identifier present only because it shares the dense
// range, but which failed (k-1)-subset pruning, can never accumulate
// enough support to pass the min-support test at extraction, so no
// separate validity marker is needed. This mirrors
// original_source/ext/apriori/src/istree.c's Add_Level, which sets a pure
// vector's size to the full span and simply leaves unused slots at zero.
type denseIndex struct {
	offset int32
	n      int32
}

func (d denseIndex) size() int { return int(d.n) }

func (d denseIndex) indexOf(item int32) (int, bool) {
	i := item - d.offset
	if i < 0 || i >= d.n {
		return 0, false
	}
	return int(i), true
}

func (d denseIndex) itemAt(i int) int32 { return d.offset + int32(i) }
func (d denseIndex) min() int32         { return d.offset }
func (d denseIndex) max() int32         { return d.offset + d.n - 1 }

// sparseIndex is a strictly ascending list of tracked item identifiers,
// resolved by binary search. Counter slot i corresponds to ids[i].
type sparseIndex struct {
	ids []int32
}

func (s sparseIndex) size() int { return len(s.ids) }

func (s sparseIndex) indexOf(item int32) (int, bool) {
	i, ok := sort.Find(len(s.ids), func(i int) int {
		return int(item) - int(s.ids[i])
	})
	return i, ok
}

func (s sparseIndex) itemAt(i int) int32 { return s.ids[i] }
func (s sparseIndex) min() int32         { return s.ids[0] }
func (s sparseIndex) max() int32         { return s.ids[len(s.ids)-1] }

// newItemIndex picks dense or sparse layout for a sorted, strictly
// ascending list of tracked item identifiers by a density test: dense when
// the tracked items fill at least two thirds of their own identifier span.
//
// original_source's Add_Level computes this as 3*n >= 2*k, where n is the
// tracked item count and k is the span of identifiers they cover; that
// inequality is what is implemented here. The form with the factors
// swapped, 2*n >= 3*k, could never hold, since n can never exceed k.
func newItemIndex(ids []int32, memoryOptimise bool) itemIndex {
	n := len(ids)
	k := int(ids[n-1]-ids[0]) + 1
	if !memoryOptimise || 3*n >= 2*k {
		return denseIndex{offset: ids[0], n: int32(k)}
	}
	cp := make([]int32, n)
	copy(cp, ids)
	return sparseIndex{ids: cp}
}

// Node represents the set of all frequent k-item sets sharing a particular
// (k-1)-prefix P: it owns one counter per tracked extension {P ∪ {x}}.
type Node struct {
	id             int32 // last item on the path from root; -1 at the root
	depth          int   // path length from root to this node (root: 0)
	headOnlyOnPath bool  // some item on the path has appearance HeadOnly

	parent *Node
	succ   *Node // next node on the same level; nil at the level's end

	index  itemIndex
	counts []counter // len(counts) == index.size()

	// childIndex and children are present only once AddLevel has appended
	// the next level under this node. A tracked extension with no
	// surviving grandchild candidates gets no child node at all: its
	// entry, if any, stays nil.
	childIndex itemIndex
	children   []*Node

	skipSubtree bool // SKIP on chcnt: counting may stop descending here
}

func newRootNode(counts []int32) *Node {
	n := &Node{id: -1, depth: 0}
	n.index = denseIndex{offset: 0, n: int32(len(counts))}
	n.counts = make([]counter, len(counts))
	for i, c := range counts {
		n.counts[i].support = c
	}
	return n
}

// hasChildren reports whether AddLevel has appended a level under n.
func (n *Node) hasChildren() bool { return n.childIndex != nil }

// lookupCounter resolves the counter tracking item within n, if any.
func (n *Node) lookupCounter(item int32) (*counter, bool) {
	i, ok := n.index.indexOf(item)
	if !ok {
		return nil, false
	}
	return &n.counts[i], true
}

// lookupChild resolves the child node for item within n, if any.
func (n *Node) lookupChild(item int32) (*Node, bool) {
	if n.childIndex == nil {
		return nil, false
	}
	i, ok := n.childIndex.indexOf(item)
	if !ok || n.children[i] == nil {
		return nil, false
	}
	return n.children[i], true
}

// support returns the support for the counter at slot i, with the SKIP
// marker masked off (it is never encoded in the value itself, but this
// mirrors the source's COUNT() macro at the call sites that matter).
func (n *Node) support(i int) int32 { return n.counts[i].support }

// path writes the item identifiers from root to n (exclusive of the root's
// sentinel) into buf, which must have length >= n.depth, and returns the
// filled prefix.
func (n *Node) path(buf []int32) []int32 {
	out := buf[:n.depth]
	for cur := n; cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur.id
	}
	return out
}
