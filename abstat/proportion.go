// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abstat

import (
	"fmt"
	"math"
)

// ConversionRate returns conversions / impressions.
func ConversionRate(conversions, impressions int) (float64, error) {
	if impressions <= 0 {
		return 0, fmt.Errorf("conversion rate of %d/%d: %w", conversions, impressions, ErrZeroImpressions)
	}
	return float64(conversions) / float64(impressions), nil
}

// StandardError returns the standard error of a sample proportion
// with the given rate over the given number of impressions, using the
// normal approximation to the binomial distribution.
//
// The rate is expected to be in [0, 1] but is not checked.
func StandardError(rate float64, impressions int) (float64, error) {
	if impressions <= 0 {
		return 0, fmt.Errorf("standard error over %d impressions: %w", impressions, ErrZeroImpressions)
	}
	return math.Sqrt(rate * (1 - rate) / float64(impressions)), nil
}

// group is the rate and standard error of one Variant.
type group struct {
	n    int
	rate float64
	se   float64
}

func observe(v Variant) (group, error) {
	c, n := v.Observed()
	rate, err := ConversionRate(c, n)
	if err != nil {
		return group{}, err
	}
	se, err := StandardError(rate, n)
	if err != nil {
		return group{}, err
	}
	return group{n, rate, se}, nil
}

// StandardErrorOfDifference returns the standard error of the
// difference between the conversion rates of two independent groups.
func StandardErrorOfDifference(control, variant Variant) (float64, error) {
	gc, err := observe(control)
	if err != nil {
		return 0, err
	}
	gv, err := observe(variant)
	if err != nil {
		return 0, err
	}
	return seDiff(gc, gv), nil
}

func seDiff(control, variant group) float64 {
	return math.Sqrt(control.se*control.se + variant.se*variant.se)
}
