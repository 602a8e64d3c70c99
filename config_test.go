// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package freqmine

import "testing"

func TestMinSuppForExtensionBodyAndHeadFormula(t *testing.T) {
	cases := []struct {
		name       string
		opts       Options
		wantExtend int
	}{
		{
			name:       "body_and_head rounds up a fractional ceiling",
			opts:       Options{MinSupport: 10, MinConfidence: 0.75, Target: TargetRules, RuleSupportMode: RuleSupportBodyAndHead},
			wantExtend: 8, // ceil(0.75*10) = ceil(7.5) = 8
		},
		{
			name:       "body_and_head with an exact ceiling",
			opts:       Options{MinSupport: 8, MinConfidence: 0.5, Target: TargetRules, RuleSupportMode: RuleSupportBodyAndHead},
			wantExtend: 4, // ceil(0.5*8) = ceil(4.0) = 4
		},
		{
			name:       "body_and_head rounds up a small fraction",
			opts:       Options{MinSupport: 7, MinConfidence: 0.34, Target: TargetRules, RuleSupportMode: RuleSupportBodyAndHead},
			wantExtend: 3, // ceil(0.34*7) = ceil(2.38) = 3
		},
		{
			name:       "zero confidence falls back to MinSupport",
			opts:       Options{MinSupport: 5, MinConfidence: 0, Target: TargetRules, RuleSupportMode: RuleSupportBodyAndHead},
			wantExtend: 5,
		},
		{
			name:       "body_only ignores the formula regardless of confidence",
			opts:       Options{MinSupport: 10, MinConfidence: 0.75, Target: TargetRules, RuleSupportMode: RuleSupportBodyOnly},
			wantExtend: 10,
		},
		{
			name:       "plain set mining ignores the formula regardless of mode",
			opts:       Options{MinSupport: 10, MinConfidence: 0.75, Target: TargetSets, RuleSupportMode: RuleSupportBodyAndHead},
			wantExtend: 10,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.opts.minSuppForExtension(); got != c.wantExtend {
				t.Errorf("minSuppForExtension() = %d, want %d", got, c.wantExtend)
			}
		})
	}
}
