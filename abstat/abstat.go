// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abstat computes the statistical significance of A/B
// experiments over conversion counts.
//
// Each group of an experiment is observed as a number of conversions
// out of a number of impressions. A variation is compared against the
// control with a one-sided test for a difference of proportions: the
// null hypothesis is that both groups convert at the same rate, and it
// is rejected only if the variation converts at a higher rate. A
// variation that does worse than the control is therefore never
// significant.
//
// All functions are pure and safe to call concurrently. Nothing is
// cached; every query recomputes its result from the counts.
package abstat

import (
	"errors"
	"fmt"
)

// A Variant is a group of an experiment. Callers may use any type that
// reports its counts; abstat never looks at anything else and returns
// the caller's values unmodified.
type Variant interface {
	// Observed returns the number of conversions and impressions
	// recorded for this group. Impressions must be > 0 and
	// conversions should be in [0, impressions].
	Observed() (conversions, impressions int)
}

// Counts is a Variant with no other data attached.
type Counts struct {
	Conversions int
	Impressions int
}

var _ Variant = Counts{}

func (c Counts) Observed() (conversions, impressions int) {
	return c.Conversions, c.Impressions
}

func (c Counts) String() string {
	return fmt.Sprintf("%d/%d", c.Conversions, c.Impressions)
}

var (
	// ErrZeroImpressions is returned when a rate or standard error
	// is computed for a group without impressions.
	ErrZeroImpressions = errors.New("impressions must be positive")

	// ErrMissingControl is returned by experiment queries when the
	// experiment has no control group.
	ErrMissingControl = errors.New("experiment has no control")

	// ErrNoSignificantVariant is returned by experiment queries when
	// no variation is significantly better than the control.
	ErrNoSignificantVariant = errors.New("no significant variation")

	// ErrConfidence is returned when a confidence level is not in
	// the open interval (0, 1).
	ErrConfidence = errors.New("confidence must be in (0, 1)")
)
