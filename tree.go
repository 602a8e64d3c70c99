// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import (
	"fmt"

	"go.uber.org/zap"
)

// state tracks the tree's lifecycle: Empty -> BuildingLevel k -> Counted k
// -> (BuildingLevel k+1 | Filter | Extract).
type state int

const (
	stateEmpty state = iota
	stateBuildingLevel
	stateCounted
)

// Tree is the item-set prefix tree: the candidate/counter store and the
// counting protocol that drives it. A Tree is single-threaded and not
// re-entrant; the only safe suspension points are between two calls to the
// same extraction iterator.
type Tree struct {
	opts Options
	dict Dictionary
	log  *zap.Logger

	root       *Node
	levelHeads []*Node // levelHeads[d] is the first node at depth d; root at [0]
	state      state

	pathBuf        []int32 // reusable, sized to the deepest level's depth
	builderScratch []int32 // identifier-map scratch; unused, AddLevel allocates its own slices

	total int // transaction count; 0 until SetTransactionCount is called
}

// SetTransactionCount records the size of the transaction database, the n
// term lift and the extra measures (conf-diff, info-gain, chi2, ...) need
// and which the tree has no other way to learn, since TransactionSource.Len
// belongs to the caller driving the counting passes, not the tree itself.
// Extraction treats an unset (zero) count as "lift and the extra measures
// are unavailable" rather than dividing by zero.
func (t *Tree) SetTransactionCount(n int) { t.total = n }

// requireCounted panics if the tree is not in the Counted state; extraction
// and filtering both require every counter at the deepest level to be
// final.
func (t *Tree) requireCounted() {
	if t.state != stateCounted {
		panic("freqmine: logic error: operation requires the tree to be in the Counted state")
	}
}

// NewTree creates the root node from oneItemCounts, an externally supplied
// vector of 1-item counts indexed by item id. log may be nil, in which
// case a no-op logger is used, matching how library code in the retrieved
// pack keeps logging injectable rather than reaching for a
// package-global.
func NewTree(opts Options, dict Dictionary, oneItemCounts []int32, log *zap.Logger) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(oneItemCounts) != dict.ItemCount() {
		return nil, fmt.Errorf("%w: oneItemCounts has %d entries, dictionary has %d items",
			ErrInvalidArgument, len(oneItemCounts), dict.ItemCount())
	}
	if log == nil {
		log = zap.NewNop()
	}

	root := newRootNode(oneItemCounts)
	t := &Tree{
		opts:       opts,
		dict:       dict,
		log:        log,
		root:       root,
		levelHeads: []*Node{root},
		state:      stateCounted, // the root's counters are already populated
		pathBuf:    make([]int32, 1, 8),
	}
	return t, nil
}

// Height returns the depth of the deepest level currently built (0: only
// the root exists).
func (t *Tree) Height() int { return len(t.levelHeads) - 1 }

// requiredTransactionLen is the minimum transaction length that could
// possibly contribute to the deepest level's counters.
func (t *Tree) requiredTransactionLen() int { return t.Height() + 1 }

// path returns the root-to-n item path, reusing the tree's scratch buffer.
func (t *Tree) path(n *Node) []int32 {
	if cap(t.pathBuf) < n.depth {
		t.pathBuf = make([]int32, n.depth)
	}
	return n.path(t.pathBuf[:n.depth])
}

// levelHeadAt returns the first node at depth, or nil if depth is out of
// range; the rest of that level is reached by following succ links.
func (t *Tree) levelHeadAt(depth int) *Node {
	if depth < 0 || depth >= len(t.levelHeads) {
		return nil
	}
	return t.levelHeads[depth]
}

// eachNodeAtDepth calls fn for every node at the given depth, following the
// level-head's succ chain.
func (t *Tree) eachNodeAtDepth(depth int, fn func(*Node)) {
	if depth < 0 || depth >= len(t.levelHeads) {
		return
	}
	for n := t.levelHeads[depth]; n != nil; n = n.succ {
		fn(n)
	}
}
