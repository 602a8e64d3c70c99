// Copyright (c) 2026 the freqmine authors
// SPDX-License-Identifier: MIT

package stat

import (
	"math"
	"testing"
)

func TestChi2SurvivalOneDFKnownQuantiles(t *testing.T) {
	// Standard chi-squared(1) critical values: P(X > 3.841) ~= 0.05,
	// P(X > 6.635) ~= 0.01.
	cases := []struct {
		x, want float64
	}{
		{3.841459, 0.05},
		{6.634897, 0.01},
		{0, 1},
	}
	for _, c := range cases {
		got := Chi2SurvivalOneDF(c.x)
		if math.Abs(got-c.want) > 2e-3 {
			t.Errorf("Chi2SurvivalOneDF(%v) = %v, want ~%v", c.x, got, c.want)
		}
	}
}

func TestGammaPQComplement(t *testing.T) {
	for _, x := range []float64{0.1, 1, 2.5, 10, 50} {
		p := GammaP(2.5, x)
		q := GammaQ(2.5, x)
		if math.Abs(p+q-1) > 1e-6 {
			t.Errorf("GammaP(2.5,%v)+GammaQ(2.5,%v) = %v, want 1", x, x, p+q)
		}
	}
}
