// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import (
	"iter"
	"math"

	"github.com/elsif/freqmine/measure"
)

// Pattern is one frequent item set reported by SetIter, HedgeIter, or
// GroupIter.
type Pattern struct {
	// Items is the set's sorted, ascending item ids.
	Items []int32
	// Support is the set's absolute transaction count.
	Support int
	// Measure is a pattern quality score: for Sets, the log-support
	// quotient against the independence prior; for Hedges and Groups, the
	// minimum per-rotation evaluation measure (0 if none is configured).
	Measure float64
}

// Rule is one association rule reported by RuleIter: Body -> Head.
type Rule struct {
	// Body is the rule's antecedent, sorted ascending; it never contains
	// Head.
	Body []int32
	// Head is the rule's single consequent item.
	Head int32
	// Support is the absolute transaction count of Body union {Head}.
	Support int
	// Confidence is Support / support(Body), in [0,1].
	Confidence float64
	// Lift is Confidence divided by Head's unconditional frequency rate;
	// 0 if the tree was never told the total transaction count.
	Lift float64
	// Measure is the configured extra evaluation measure; 0 if none is
	// configured.
	Measure float64
}

// levelCursor walks every tracked, non-SKIP, min-support-qualifying
// counter across a depth range, one level at a time via each level's succ
// chain, in either ascending (shallow to deep) or descending (deep to
// shallow) depth order. It is the one traversal primitive Sets, Rules,
// Hyperedges, and Groups all share; what differs between them is what they
// do with each qualifying (node, slot, item) triple.
type levelCursor struct {
	t        *Tree
	desc     bool
	minDepth int
	maxDepth int
	depth    int
	node     *Node
	index    int
	done     bool
}

func boundedMaxDepth(t *Tree, maxLen int) int {
	maxDepth := t.Height()
	if maxLen > 0 && maxLen-1 < maxDepth {
		maxDepth = maxLen - 1
	}
	return maxDepth
}

func newLevelCursor(t *Tree, minLen, maxLen int) *levelCursor {
	maxDepth := boundedMaxDepth(t, maxLen)
	minDepth := minLen - 1
	if minDepth < 0 {
		minDepth = 0
	}
	lc := &levelCursor{t: t, minDepth: minDepth, maxDepth: maxDepth, depth: minDepth}
	if lc.depth > lc.maxDepth {
		lc.done = true
		return lc
	}
	lc.node = t.levelHeadAt(lc.depth)
	return lc
}

func newLevelCursorDesc(t *Tree, minLen, maxLen int) *levelCursor {
	maxDepth := boundedMaxDepth(t, maxLen)
	minDepth := minLen - 1
	if minDepth < 0 {
		minDepth = 0
	}
	lc := &levelCursor{t: t, desc: true, minDepth: minDepth, maxDepth: maxDepth, depth: maxDepth}
	if lc.depth < lc.minDepth {
		lc.done = true
		return lc
	}
	lc.node = t.levelHeadAt(lc.depth)
	return lc
}

func (lc *levelCursor) advanceLevel() bool {
	if lc.desc {
		lc.depth--
		if lc.depth < lc.minDepth {
			return false
		}
	} else {
		lc.depth++
		if lc.depth > lc.maxDepth {
			return false
		}
	}
	lc.node = lc.t.levelHeadAt(lc.depth)
	lc.index = 0
	return true
}

// next returns the next qualifying counter as (owning node, slot, tracked
// item), skipping SKIP-marked and below-threshold slots along the way.
func (lc *levelCursor) next() (n *Node, idx int, item int32, ok bool) {
	for {
		if lc.done {
			return nil, 0, 0, false
		}
		if lc.node == nil {
			if !lc.advanceLevel() {
				lc.done = true
				return nil, 0, 0, false
			}
			continue
		}
		if lc.index >= lc.node.index.size() {
			lc.node = lc.node.succ
			lc.index = 0
			continue
		}
		i := lc.index
		lc.index++
		c := &lc.node.counts[i]
		if c.skip || c.support < int32(lc.t.opts.MinSupport) {
			continue
		}
		return lc.node, i, lc.node.index.itemAt(i), true
	}
}

// logSupportQuotient scores a set against the independence prior: how much
// more (or less) often it occurs than the product of its items'
// individual frequencies would predict, in log2 units (0 under perfect
// independence). It returns 0 if the tree has no transaction count or any
// item has zero recorded frequency.
func (t *Tree) logSupportQuotient(items []int32, support int32) float64 {
	if t.total <= 0 || support <= 0 {
		return 0
	}
	logExpected := -float64(len(items)-1) * math.Log2(float64(t.total))
	for _, id := range items {
		f := t.dict.Frequency(id)
		if f <= 0 {
			return 0
		}
		logExpected += math.Log2(float64(f))
	}
	return math.Log2(float64(support)) - logExpected
}

// evaluateExtra applies the tree's configured extra measure, if any, to a
// body/head pair; ok is true unconditionally when no extra measure is
// configured.
func (t *Tree) evaluateExtra(setSupport, bodySupport, headSupport int32) (float64, bool) {
	if t.opts.ExtraMeasure == MeasureNone {
		return 0, true
	}
	return measure.Evaluate(t.opts.ExtraMeasure, int(setSupport), int(bodySupport), int(headSupport), t.total)
}

// SetIter enumerates frequent item sets. Depending on which filter, if
// any, was run before extraction began, this also enumerates closed or
// maximal sets (the SKIP bit next skips either way).
type SetIter struct {
	t  *Tree
	lc *levelCursor
}

// Sets returns an iterator over frequent item sets bounded by MinLen and
// MaxLen. It requires the tree to be in the Counted state.
func (t *Tree) Sets() *SetIter {
	t.requireCounted()
	return &SetIter{t: t, lc: newLevelCursor(t, t.opts.MinLen, t.opts.MaxLen)}
}

// Next returns the next pattern, or ok=false once exhausted.
func (it *SetIter) Next() (Pattern, bool) {
	n, i, item, ok := it.lc.next()
	if !ok {
		return Pattern{}, false
	}
	items := make([]int32, n.depth+1)
	copy(items, it.t.path(n))
	items[n.depth] = item
	support := n.support(i)
	return Pattern{
		Items:   items,
		Support: int(support),
		Measure: it.t.logSupportQuotient(items, support),
	}, true
}

// All adapts Next to the standard iter.Seq pull/push bridge.
func (it *SetIter) All() iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

type headCandidate struct {
	head        int32
	bodySupport int32
}

// headCandidates lists every item in the set formed by n's path plus
// itemI that is eligible to stand as a rule's head: every CanBeHead item,
// unless the set already carries a HeadOnly item on its path or at itemI
// itself, in which case that one item is the only eligible head (a
// HeadOnly item can never appear in a body, so if it isn't the head
// nothing in this set can form a rule).
func (t *Tree) headCandidates(n *Node, itemI int32) []headCandidate {
	hasHeadOnly := n.headOnlyOnPath || t.dict.Appearance(itemI).IsHeadOnly()
	var out []headCandidate
	t.eachImmediateSubset(n, itemI, func(head int32, sub *counter) {
		app := t.dict.Appearance(head)
		if hasHeadOnly {
			if !app.IsHeadOnly() {
				return
			}
		} else if !app.CanBeHead() {
			return
		}
		out = append(out, headCandidate{head: head, bodySupport: sub.support})
	})
	return out
}

// buildRule evaluates one head candidate against the confidence and extra
// measure floors, returning ok=false if it fails either.
func (t *Tree) buildRule(n *Node, itemI int32, hc headCandidate, setSupport int32) (Rule, bool) {
	if hc.bodySupport <= 0 {
		return Rule{}, false
	}
	confidence := float64(setSupport) / float64(hc.bodySupport)
	if confidence < t.opts.MinConfidence {
		return Rule{}, false
	}

	headSupport := int32(t.dict.Frequency(hc.head))
	m, ok := t.evaluateExtra(setSupport, hc.bodySupport, headSupport)
	if !ok {
		return Rule{}, false
	}
	if t.opts.MinMeasure != 0 && t.opts.ExtraMeasure != MeasureNone && m < t.opts.MinMeasure {
		return Rule{}, false
	}

	full := make([]int32, n.depth+1)
	copy(full, t.path(n))
	full[n.depth] = itemI
	body := make([]int32, 0, len(full)-1)
	for _, id := range full {
		if id != hc.head {
			body = append(body, id)
		}
	}

	lift := 0.0
	if t.total > 0 && headSupport > 0 {
		lift = confidence * float64(t.total) / float64(headSupport)
	}

	return Rule{
		Body:       body,
		Head:       hc.head,
		Support:    int(setSupport),
		Confidence: confidence,
		Lift:       lift,
		Measure:    m,
	}, true
}

// RuleIter enumerates association rules Body -> Head drawn from frequent
// sets of size >= 2: the outer cursor selects a set the same way SetIter
// does, the inner cursor chooses each eligible item in turn as the head.
type RuleIter struct {
	t     *Tree
	lc    *levelCursor
	node  *Node
	idx   int
	item  int32
	heads []headCandidate
	hPos  int
}

// Rules returns a rule iterator. MinLen is raised to 2 if configured
// lower, since a rule needs at least a body and a head. It requires the
// tree to be in the Counted state.
func (t *Tree) Rules() *RuleIter {
	t.requireCounted()
	minLen := t.opts.MinLen
	if minLen < 2 {
		minLen = 2
	}
	return &RuleIter{t: t, lc: newLevelCursor(t, minLen, t.opts.MaxLen)}
}

// Next returns the next rule, or ok=false once exhausted.
func (it *RuleIter) Next() (Rule, bool) {
	t := it.t
	for {
		for it.hPos < len(it.heads) {
			hc := it.heads[it.hPos]
			it.hPos++
			setSupport := it.node.support(it.idx)
			if rule, ok := t.buildRule(it.node, it.item, hc, setSupport); ok {
				return rule, true
			}
		}
		n, i, item, ok := it.lc.next()
		if !ok {
			return Rule{}, false
		}
		it.node, it.idx, it.item = n, i, item
		it.heads = t.headCandidates(n, item)
		it.hPos = 0
	}
}

// All adapts Next to the standard iter.Seq pull/push bridge.
func (it *RuleIter) All() iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		for {
			r, ok := it.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// rotationScore computes the average confidence and the minimum extra
// measure across every rotation of the set formed by n's path plus itemI
// (every item taken in turn as the "head" half of the rotation, with no
// appearance-based restriction: a hyperedge or group has no fixed rule
// direction). ok is false if no rotation has a usable body support.
func (t *Tree) rotationScore(n *Node, itemI int32, setSupport int32) (avgConfidence, minMeasure float64, ok bool) {
	var sum float64
	var count int
	minMeasure = math.Inf(1)
	t.eachImmediateSubset(n, itemI, func(head int32, sub *counter) {
		if sub.support <= 0 {
			return
		}
		confidence := float64(setSupport) / float64(sub.support)
		sum += confidence
		count++
		headSupport := int32(t.dict.Frequency(head))
		if m, mOK := t.evaluateExtra(setSupport, sub.support, headSupport); mOK && m < minMeasure {
			minMeasure = m
		}
	})
	if count == 0 {
		return 0, 0, false
	}
	if math.IsInf(minMeasure, 1) {
		minMeasure = 0
	}
	return sum / float64(count), minMeasure, true
}

// HedgeIter enumerates hyperedges: frequent sets whose rotation-averaged
// confidence and minimum extra measure both clear their thresholds. A set
// that fails either threshold has its counter marked SKIP, matching the
// source's treatment of a failed additional measure as a pruning signal
// for descendants reached again during the same pass.
type HedgeIter struct {
	t  *Tree
	lc *levelCursor
}

// Hyperedges returns a hyperedge iterator. MinLen is raised to 2 if
// configured lower. It requires the tree to be in the Counted state.
func (t *Tree) Hyperedges() *HedgeIter {
	t.requireCounted()
	minLen := t.opts.MinLen
	if minLen < 2 {
		minLen = 2
	}
	return &HedgeIter{t: t, lc: newLevelCursor(t, minLen, t.opts.MaxLen)}
}

// Next returns the next hyperedge pattern, or ok=false once exhausted.
func (it *HedgeIter) Next() (Pattern, bool) {
	t := it.t
	for {
		n, i, item, ok := it.lc.next()
		if !ok {
			return Pattern{}, false
		}
		setSupport := n.support(i)
		avgConfidence, minMeasure, rOK := t.rotationScore(n, item, setSupport)
		if !rOK || avgConfidence < t.opts.MinConfidence || minMeasure < math.Abs(t.opts.MinMeasure) {
			n.counts[i].skip = true
			continue
		}
		items := make([]int32, n.depth+1)
		copy(items, t.path(n))
		items[n.depth] = item
		return Pattern{Items: items, Support: int(setSupport), Measure: minMeasure}, true
	}
}

// All adapts Next to the standard iter.Seq pull/push bridge.
func (it *HedgeIter) All() iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// GroupIter enumerates groups top-down (deepest level first): a frequent
// set whose minimum rotation measure clears the threshold, with every
// proper subset's counter marked SKIP immediately after emission so a
// dominated, smaller variant of an already-reported group is never
// reported again.
type GroupIter struct {
	t  *Tree
	lc *levelCursor
}

// Groups returns a group iterator. MinLen is raised to 2 if configured
// lower. It requires the tree to be in the Counted state.
func (t *Tree) Groups() *GroupIter {
	t.requireCounted()
	minLen := t.opts.MinLen
	if minLen < 2 {
		minLen = 2
	}
	return &GroupIter{t: t, lc: newLevelCursorDesc(t, minLen, t.opts.MaxLen)}
}

// Next returns the next group pattern, or ok=false once exhausted.
func (it *GroupIter) Next() (Pattern, bool) {
	t := it.t
	for {
		n, i, item, ok := it.lc.next()
		if !ok {
			return Pattern{}, false
		}
		setSupport := n.support(i)
		_, minMeasure, rOK := t.rotationScore(n, item, setSupport)
		if !rOK || minMeasure < math.Abs(t.opts.MinMeasure) {
			continue
		}
		items := make([]int32, n.depth+1)
		copy(items, t.path(n))
		items[n.depth] = item
		for mask := 1; mask < 1<<len(items)-1; mask++ {
			sub := make([]int32, 0, len(items))
			for b, id := range items {
				if mask&(1<<b) != 0 {
					sub = append(sub, id)
				}
			}
			if c, found := t.lookupCounterFrom(t.root, sub); found {
				c.skip = true
			}
		}
		return Pattern{Items: items, Support: int(setSupport), Measure: minMeasure}, true
	}
}

// All adapts Next to the standard iter.Seq pull/push bridge.
func (it *GroupIter) All() iter.Seq[Pattern] {
	return func(yield func(Pattern) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}
