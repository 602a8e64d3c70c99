// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import (
	"fmt"

	"github.com/elsif/freqmine/measure"
)

// Target selects what kind of pattern the tree's extraction iterators
// produce.
type Target byte

const (
	TargetSets Target = iota
	TargetClosedSets
	TargetMaximalSets
	TargetRules
	TargetHyperedges
	TargetGroups
)

// RuleSupportMode selects the formula AddLevel uses for the extension
// threshold when mining rules.
type RuleSupportMode byte

const (
	// BodyOnly uses MinSupport as the extension threshold; rule
	// confidence is not considered while growing the tree.
	RuleSupportBodyOnly RuleSupportMode = iota
	// BodyAndHead lowers the extension threshold for rules, hyperedges and
	// groups to ceil(MinConfidence*MinSupport), so counters are kept for
	// bodies below MinSupport; a candidate is then kept only if at least
	// one of its (k-1)-subsets reaches MinSupport.
	RuleSupportBodyAndHead
)

// ExtraMeasureKind selects an additional evaluation measure applied on top
// of support and confidence, re-exported from package measure so callers
// configuring a Tree need not import it directly.
type ExtraMeasureKind = measure.Kind

const (
	MeasureNone              = measure.None
	MeasureConfDiff          = measure.ConfDiff
	MeasureConfQuotDiffToOne = measure.ConfQuotDiffToOne
	MeasureImprovementDiff   = measure.ImprovementDiff
	MeasureInfoGain          = measure.InfoGain
	MeasureChi2Normalised    = measure.Chi2Normalised
	MeasureChi2PValue        = measure.Chi2PValue
)

// Options configures a Tree/Job. Validate returns ErrInvalidArgument,
// wrapped with detail, the first time it finds an out-of-range field; the
// tree is not constructed when validation fails.
type Options struct {
	// MinSupport is the absolute (transaction-count) floor for extension
	// and for a reported item set. Must be >= 1.
	MinSupport int

	// MinConfidence is the rule/hyperedge confidence floor, in [0,1].
	MinConfidence float64

	Target Target

	// MinLen and MaxLen bound reported pattern cardinality. MinLen must be
	// >= 1; MaxLen, if non-zero, must be >= MinLen.
	MinLen, MaxLen int

	ExtraMeasure ExtraMeasureKind
	// MinMeasure is the floor for the chosen ExtraMeasure (for hyperedges
	// and groups, whose measure is the minimum over all rotations, the
	// absolute value is used as the floor regardless of sign).
	MinMeasure float64

	// MemoryOptimise enables the dense/sparse node-layout choice. When
	// false every node is dense.
	MemoryOptimise bool

	RuleSupportMode RuleSupportMode
}

// Validate checks Options for internal consistency.
func (o Options) Validate() error {
	if o.MinSupport < 1 {
		return fmt.Errorf("%w: MinSupport must be >= 1, got %d", ErrInvalidArgument, o.MinSupport)
	}
	if o.MinConfidence < 0 || o.MinConfidence > 1 {
		return fmt.Errorf("%w: MinConfidence must be in [0,1], got %v", ErrInvalidArgument, o.MinConfidence)
	}
	if o.MinLen < 1 {
		return fmt.Errorf("%w: MinLen must be >= 1, got %d", ErrInvalidArgument, o.MinLen)
	}
	if o.MaxLen != 0 && o.MaxLen < o.MinLen {
		return fmt.Errorf("%w: MaxLen (%d) must be >= MinLen (%d)", ErrInvalidArgument, o.MaxLen, o.MinLen)
	}
	switch o.Target {
	case TargetSets, TargetClosedSets, TargetMaximalSets, TargetRules, TargetHyperedges, TargetGroups:
	default:
		return fmt.Errorf("%w: unknown target %d", ErrInvalidArgument, o.Target)
	}
	return nil
}

// minSuppForExtension is the lowest support a candidate body may have while
// still permitting a rule of the configured support and confidence.
func (o Options) minSuppForExtension() int {
	if o.Target != TargetRules && o.Target != TargetHyperedges && o.Target != TargetGroups {
		return o.MinSupport
	}
	if o.RuleSupportMode != RuleSupportBodyAndHead || o.MinConfidence == 0 {
		return o.MinSupport
	}
	// ceil(conf * supp)
	v := o.MinConfidence * float64(o.MinSupport)
	i := int(v)
	if float64(i) < v {
		i++
	}
	if i < 1 {
		i = 1
	}
	return i
}

// minBodySupport is the plain support threshold a rule body must clear.
func (o Options) minBodySupport() int {
	return o.MinSupport
}
