// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abstat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Hypothesis selects the alternative hypothesis of a test, and with
// it the tail of the standard normal distribution a p-value is taken
// from.
type Hypothesis int

const (
	// OneSided tests whether the variation converts at a higher
	// rate than the control. Its p-value is the upper tail.
	OneSided Hypothesis = iota
)

func (h Hypothesis) String() string {
	switch h {
	case OneSided:
		return "one-sided"
	}
	return fmt.Sprintf("Hypothesis(%d)", int(h))
}

// PValue returns the p-value of z-score z under hypothesis h.
func (h Hypothesis) PValue(z float64) float64 {
	switch h {
	case OneSided:
		return 1 - stats.StdNormal.CDF(z)
	}
	panic("unknown hypothesis " + h.String())
}

// ZScore returns the difference between the conversion rates of
// variant and control in units of the standard error of that
// difference. It is positive when variant converts at a higher rate.
func ZScore(control, variant Variant) (float64, error) {
	gc, err := observe(control)
	if err != nil {
		return 0, err
	}
	gv, err := observe(variant)
	if err != nil {
		return 0, err
	}
	return zScore(gc, gv), nil
}

func zScore(control, variant group) float64 {
	diff := variant.rate - control.rate
	se := seDiff(control, variant)
	if se == 0 {
		// Both rates are 0 or 1, so neither group varies.
		if diff == 0 {
			return 0
		}
		return math.Inf(int(mathx.Sign(diff)))
	}
	return diff / se
}

// PValue returns the one-sided, upper-tail p-value of z-score z: the
// probability of a z-score at least this large if the variation and
// the control convert at the same rate.
func PValue(z float64) float64 {
	return OneSided.PValue(z)
}

// IsSignificant reports whether variant converts at a significantly
// higher rate than control at the given confidence level, that is,
// whether its p-value is strictly below 1 - confidence.
func IsSignificant(control, variant Variant, confidence float64) (bool, error) {
	c, err := OneSided.Compare(control, variant, confidence)
	if err != nil {
		return false, err
	}
	return c.Significant(), nil
}

// A Comparison is the result of testing a variation against a control.
type Comparison struct {
	// ControlRate and VariantRate are the conversion rates of the
	// two groups.
	ControlRate, VariantRate float64

	// StdErr is the standard error of the difference between the
	// two rates.
	StdErr float64

	// Z is the z-score of the difference.
	Z float64

	// P is the p-value of the null hypothesis that both groups
	// convert at the same rate.
	P float64

	// Alpha is 1 - confidence. The variation is significant if
	// P < Alpha.
	Alpha float64

	// N1 and N2 are the impressions of the control and the
	// variation.
	N1, N2 int

	// Warnings is a list of warnings about the inputs of this
	// comparison. They don't prevent the test, but should be
	// reported along with its result.
	Warnings []error
}

// Compare tests variant against control under hypothesis h at the
// given confidence level.
func (h Hypothesis) Compare(control, variant Variant, confidence float64) (Comparison, error) {
	if !(confidence > 0 && confidence < 1) {
		return Comparison{}, fmt.Errorf("confidence %v: %w", confidence, ErrConfidence)
	}
	gc, err := observe(control)
	if err != nil {
		return Comparison{}, fmt.Errorf("control: %w", err)
	}
	gv, err := observe(variant)
	if err != nil {
		return Comparison{}, fmt.Errorf("variation: %w", err)
	}
	z := zScore(gc, gv)
	c := Comparison{
		ControlRate: gc.rate,
		VariantRate: gv.rate,
		StdErr:      seDiff(gc, gv),
		Z:           z,
		P:           h.PValue(z),
		Alpha:       1 - confidence,
		N1:          gc.n,
		N2:          gv.n,
	}
	c.Warnings = append(c.Warnings, checkGroup("control", control)...)
	c.Warnings = append(c.Warnings, checkGroup("variation", variant)...)
	return c, nil
}

// Compare tests whether variant converts at a higher rate than control
// at the given confidence level.
func Compare(control, variant Variant, confidence float64) (Comparison, error) {
	return OneSided.Compare(control, variant, confidence)
}

// minExpected is the smallest expected number of conversions and
// non-conversions for which the normal approximation is trusted.
const minExpected = 5

func checkGroup(name string, v Variant) []error {
	c, n := v.Observed()
	if c < 0 || c > n {
		return []error{fmt.Errorf("%s has %d conversions out of %d impressions", name, c, n)}
	}
	if c < minExpected || n-c < minExpected {
		return []error{fmt.Errorf("%s needs >= %d conversions and non-conversions for the normal approximation, has %d/%d", name, minExpected, c, n)}
	}
	return nil
}

// Significant reports whether the null hypothesis is rejected.
func (c Comparison) Significant() bool {
	return c.P < c.Alpha
}

// String summarizes the comparison. The general form of this string
// is "z=Z.ZZ p=0.PPP n=N1+N2".
func (c Comparison) String() string {
	s := fmt.Sprintf("z=%.2f p=%0.3f ", c.Z, c.P)
	if c.N1 == c.N2 {
		return s + fmt.Sprintf("n=%d", c.N1)
	}
	return s + fmt.Sprintf("n=%d+%d", c.N1, c.N2)
}

// FormatLift formats the relative change from the control's conversion
// rate to the variation's. If the variation is not significant, it
// returns "~".
func (c Comparison) FormatLift() string {
	if !c.Significant() {
		return "~"
	}
	if c.ControlRate == c.VariantRate {
		return "0.00%"
	}
	if c.ControlRate == 0 {
		return "?"
	}
	pct := (c.VariantRate/c.ControlRate - 1) * 100
	return fmt.Sprintf("%+.2f%%", pct)
}
