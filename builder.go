// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// AddLevel grows the tree by one level: for every node at the current
// deepest level it generates candidate extensions from the frequent
// (k-1)-prefix's counters, pruning any candidate that has a (k-1)-subset
// not already known frequent.
//
// It returns added=true if at least one node was appended, added=false if
// no node qualified (the tree has reached its maximum frequent depth), or
// a non-nil error (always wrapping [ErrAllocation]) if growing the level
// panicked with a runtime allocation error; on error every node touched
// during the call is rolled back and the tree is left exactly as it was
// before the call.
//
// AddLevel requires the tree to be in the Counted state (every node at the
// current deepest level has been counted against the full transaction
// database); calling it otherwise is a programming error.
func (t *Tree) AddLevel() (added bool, err error) {
	if t.state != stateCounted {
		panic("freqmine: logic error: AddLevel called before the counting pass for the current level finished")
	}

	depth := t.Height()
	minExt := int32(t.opts.minSuppForExtension())
	minBody := int32(t.opts.minBodySupport())

	var newLevel []*Node // linked via succ as we go
	var tail *Node
	var touched []*Node // nodes mutated so far this call, for rollback on panic

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(runtime.Error); !ok {
			// A programming-error panic (e.g. a broken invariant), not an
			// allocation failure: let it keep propagating.
			panic(r)
		}
		rollbackLevel(touched)
		added, err = false, fmt.Errorf("%w: %v", ErrAllocation, r)
	}()

	t.eachNodeAtDepth(depth, func(n *Node) {
		touched = append(touched, n)
		children := t.buildChildrenFor(n, minExt, minBody)
		if len(children) == 0 {
			n.skipSubtree = true
			return
		}

		ids := make([]int32, len(children))
		for i, c := range children {
			ids[i] = c.node.id
		}
		n.childIndex = newItemIndex(ids, t.opts.MemoryOptimise)
		n.children = make([]*Node, n.childIndex.size())
		for _, c := range children {
			slot, ok := n.childIndex.indexOf(c.node.id)
			if !ok {
				panic("freqmine: logic error: just-built child index missing its own id")
			}
			n.children[slot] = c.node

			if tail == nil {
				newLevel = append(newLevel, c.node)
			} else {
				tail.succ = c.node
			}
			tail = c.node
			if len(newLevel) == 0 || newLevel[len(newLevel)-1] != c.node {
				newLevel = append(newLevel, c.node)
			}
		}
	})

	if len(newLevel) == 0 {
		return false, nil
	}

	// link succ chain in creation order
	for i := 0; i+1 < len(newLevel); i++ {
		newLevel[i].succ = newLevel[i+1]
	}
	newLevel[len(newLevel)-1].succ = nil

	t.levelHeads = append(t.levelHeads, newLevel[0])
	t.state = stateBuildingLevel

	t.propagateSkip()

	t.log.Debug("level added",
		zap.Int("depth", depth+1),
		zap.Int("nodes", len(newLevel)),
	)
	return true, nil
}

// rollbackLevel restores every node touched during a failed AddLevel call
// to its state before that call began: no children, not skipped.
func rollbackLevel(touched []*Node) {
	for _, n := range touched {
		n.skipSubtree = false
		n.childIndex = nil
		n.children = nil
	}
}

type builtChild struct {
	node *Node
}

// buildChildrenFor runs candidate generation for every counter slot of n,
// returning one builtChild per tracked extension that gained at least one
// surviving grandchild candidate of its own.
func (t *Tree) buildChildrenFor(n *Node, minExt, minBody int32) []builtChild {
	var out []builtChild

	size := n.index.size()
	for i := 0; i < size; i++ {
		itemI := n.index.itemAt(i)
		appI := t.dict.Appearance(itemI)
		if !appI.CanExtend() {
			continue
		}
		if n.headOnlyOnPath && appI.IsHeadOnly() {
			continue
		}
		if n.support(i) < minExt {
			continue
		}
		hdonly := n.headOnlyOnPath || appI.IsHeadOnly()

		ids, counts := t.candidatesFor(n, i, itemI, hdonly, minExt, minBody)
		if len(ids) == 0 {
			continue
		}

		child := &Node{
			id:             itemI,
			depth:          n.depth + 1,
			headOnlyOnPath: hdonly,
			parent:         n,
			index:          newItemIndex(ids, t.opts.MemoryOptimise),
		}
		child.counts = make([]counter, child.index.size())
		for k, id := range ids {
			slot, ok := child.index.indexOf(id)
			if !ok {
				panic("freqmine: logic error: just-built node index missing a tracked item")
			}
			child.counts[slot].support = counts[k]
		}
		out = append(out, builtChild{node: child})
	}
	return out
}

// candidatesFor enumerates every item_j after itemI tracked by n and
// applies the appearance, head-only, extension-threshold, and
// (k-1)-subset pruning tests, returning the surviving item ids in
// ascending order together with their counter seed value (always 0: a
// freshly built candidate's own support is accumulated by later counting
// passes, not known in advance).
func (t *Tree) candidatesFor(n *Node, i int, itemI int32, hdonly bool, minExt, minBody int32) (ids []int32, seeds []int32) {
	full := make([]int32, n.depth+2)
	copy(full, t.path(n))
	full[n.depth] = itemI

	size := n.index.size()
	for j := i + 1; j < size; j++ {
		itemJ := n.index.itemAt(j)
		appJ := t.dict.Appearance(itemJ)
		if !appJ.CanExtend() {
			continue
		}
		if hdonly && appJ.IsHeadOnly() {
			continue
		}
		sJ := n.support(j)
		if sJ < minExt {
			continue
		}

		full[n.depth+1] = itemJ

		bodyOK := n.support(i) >= minBody || sJ >= minBody
		ok := true
		for curr := n; curr.parent != nil; curr = curr.parent {
			suffix := full[curr.depth:]
			s, found := t.lookupSupportFrom(curr.parent, suffix)
			if !found || s < minExt {
				ok = false
				break
			}
			if s >= minBody {
				bodyOK = true
			}
		}
		if !ok || !bodyOK {
			continue
		}

		ids = append(ids, itemJ)
		seeds = append(seeds, 0)
	}
	return ids, seeds
}

// propagateSkip walks the tree bottom-up from the level just below the new
// deepest level to the root, marking any node whose every child is already
// SKIP as SKIP itself, so subtree-skip status compounds across levels as
// more of the tree's remaining branches get exhausted.
func (t *Tree) propagateSkip() {
	for depth := t.Height() - 2; depth >= 0; depth-- {
		t.eachNodeAtDepth(depth, func(n *Node) {
			if n.skipSubtree || !n.hasChildren() {
				return
			}
			for i := 0; i < n.childIndex.size(); i++ {
				c := n.children[i]
				if c != nil && !c.skipSubtree {
					return
				}
			}
			n.skipSubtree = true
		})
	}
}
