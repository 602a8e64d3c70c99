// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

// Package measure computes the additional rule-evaluation measures a
// confidence threshold alone cannot express: how much a rule's confidence
// departs from the head item's baseline rate, an information-theoretic
// gain over that baseline, and a chi-squared independence test between
// body and head.
package measure

import (
	"math"

	"github.com/elsif/freqmine/measure/internal/stat"
)

// Kind selects one additional evaluation measure, layered on top of
// support and confidence, and used both as a rule-emission floor and as
// the per-rotation score hyperedges and groups minimise over.
type Kind byte

const (
	// None disables the extra measure; Evaluate always returns 0, true.
	None Kind = iota
	// ConfDiff is the absolute difference between a rule's confidence and
	// the head item's unconditional frequency.
	ConfDiff
	// ConfQuotDiffToOne is 1 minus the confidence quotient (confidence
	// over head frequency, inverted when above 1 so the measure stays in
	// [0,1] regardless of which direction the rule beats the baseline).
	ConfQuotDiffToOne
	// ImprovementDiff is the absolute difference between the confidence
	// quotient and 1, unbounded above unlike ConfQuotDiffToOne.
	ImprovementDiff
	// InfoGain is the information-theoretic gain, in bits, of knowing the
	// body over the head's prior distribution.
	InfoGain
	// Chi2Normalised is the chi-squared statistic for independence of
	// body and head, normalised by the total transaction count.
	Chi2Normalised
	// Chi2PValue is the p-value of the one-degree-of-freedom chi-squared
	// independence test between body and head.
	Chi2PValue
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case ConfDiff:
		return "conf-diff"
	case ConfQuotDiffToOne:
		return "conf-quot-diff-to-1"
	case ImprovementDiff:
		return "improvement-diff"
	case InfoGain:
		return "info-gain"
	case Chi2Normalised:
		return "chi2-normalised"
	case Chi2PValue:
		return "chi2-pvalue"
	default:
		return "unknown"
	}
}

// Evaluate computes kind for a candidate rule with the given set support
// (body and head together), body support, head (1-item) support, and the
// total transaction count n. ok is false when the measure is undefined for
// these inputs (zero or total denominators); callers should then treat the
// candidate as failing whatever floor they apply the measure against.
func Evaluate(kind Kind, set, body, head, n int) (float64, bool) {
	if n <= 0 {
		return 0, false
	}
	switch kind {
	case None:
		return 0, true
	case ConfDiff:
		if body <= 0 {
			return 0, false
		}
		return math.Abs(float64(head)/float64(n) - float64(set)/float64(body)), true
	case ConfQuotDiffToOne:
		if head <= 0 || body <= 0 {
			return 0, false
		}
		q := (float64(set) / float64(body)) / (float64(head) / float64(n))
		if q > 1 {
			q = 1 / q
		}
		return 1 - q, true
	case ImprovementDiff:
		if head <= 0 || body <= 0 {
			return 0, false
		}
		q := (float64(set) / float64(body)) / (float64(head) / float64(n))
		return math.Abs(q - 1), true
	case InfoGain:
		return infoGain(set, body, head, n)
	case Chi2Normalised:
		return chi2(set, body, head, n)
	case Chi2PValue:
		v, ok := chi2(set, body, head, n)
		if !ok {
			return 0, false
		}
		return stat.Chi2SurvivalOneDF(float64(n) * v), true
	default:
		return 0, false
	}
}

// infoGain computes the information-theoretic divergence, in bits, between
// the observed body/head contingency table and the distribution head's
// marginal frequency alone would predict, summed over all four head/body
// presence combinations.
func infoGain(set, body, head, n int) (float64, bool) {
	if head <= 0 || head >= n || body <= 0 || body >= n {
		return 0, false
	}
	var sum float64
	fn := float64(n)
	if set > 0 {
		sum += float64(set) * math.Log(float64(set)/(float64(head)*float64(body)/fn))
	}
	if t := body - set; t > 0 {
		sum += float64(t) * math.Log(float64(t)/(float64(n-head)*float64(body)/fn))
	}
	if t := head - set; t > 0 {
		sum += float64(t) * math.Log(float64(t)/(float64(head)*float64(n-body)/fn))
	}
	if t := n - head - body + set; t > 0 {
		sum += float64(t) * math.Log(float64(t)/(float64(n-head)*float64(n-body)/fn))
	}
	return sum / fn / math.Ln2, true
}

// chi2 computes the normalised chi-squared statistic for independence of
// the head and body item sets, scaled so multiplying by n yields the
// conventional chi-squared statistic with one degree of freedom.
func chi2(set, body, head, n int) (float64, bool) {
	if head <= 0 || head >= n || body <= 0 || body >= n {
		return 0, false
	}
	fn := float64(n)
	t := float64(head)*float64(body) - float64(set)*fn
	return (t * t) / (float64(head) * float64(n-head) * float64(body) * float64(n-body)), true
}
