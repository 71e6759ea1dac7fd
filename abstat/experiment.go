// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abstat

import "fmt"

// DefaultConfidence is the confidence level of an Experiment that
// doesn't set one.
const DefaultConfidence = 0.95

// An Experiment compares a set of variations against one control.
//
// The zero Experiment has no control; its queries return
// ErrMissingControl until Control is set.
type Experiment[V Variant] struct {
	// Hypothesis is the alternative hypothesis each variation is
	// tested for. The zero value is OneSided.
	Hypothesis Hypothesis

	// Confidence is the confidence level, in (0, 1), at which a
	// variation is significant. If 0, DefaultConfidence is used.
	Confidence float64

	// Control is the baseline group, or nil if not configured.
	Control *V

	// Variations are the groups tested against Control, in the
	// order they were added.
	Variations []V
}

// NewExperiment returns an Experiment with the default confidence
// level that compares variations against control.
func NewExperiment[V Variant](control V, variations ...V) *Experiment[V] {
	return &Experiment[V]{
		Confidence: DefaultConfidence,
		Control:    &control,
		Variations: variations,
	}
}

// AddVariation appends v to e's variations.
func (e *Experiment[V]) AddVariation(v V) {
	e.Variations = append(e.Variations, v)
}

func (e *Experiment[V]) confidence() float64 {
	if e.Confidence == 0 {
		return DefaultConfidence
	}
	return e.Confidence
}

// Compare tests each variation against the control and returns the
// results in the order of e.Variations.
func (e *Experiment[V]) Compare() ([]Comparison, error) {
	if e.Control == nil {
		return nil, ErrMissingControl
	}
	out := make([]Comparison, 0, len(e.Variations))
	for i, v := range e.Variations {
		c, err := e.Hypothesis.Compare(*e.Control, v, e.confidence())
		if err != nil {
			return nil, fmt.Errorf("variation %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// FilterSignificant returns the variations that are significantly
// better than the control, in the order of e.Variations.
//
// If there are none, it returns a nil slice and ErrNoSignificantVariant,
// so a nil error always comes with at least one variation.
func (e *Experiment[V]) FilterSignificant() ([]V, error) {
	cs, err := e.Compare()
	if err != nil {
		return nil, err
	}
	var sig []V
	for i, c := range cs {
		if c.Significant() {
			sig = append(sig, e.Variations[i])
		}
	}
	if len(sig) == 0 {
		return nil, ErrNoSignificantVariant
	}
	return sig, nil
}

// HighestSignificance returns the significant variation with the
// smallest p-value. If several variations share that p-value, the
// earliest one wins. If no variation is significant, it returns
// ErrNoSignificantVariant.
func (e *Experiment[V]) HighestSignificance() (V, error) {
	var best V
	cs, err := e.Compare()
	if err != nil {
		return best, err
	}
	bi := -1
	for i, c := range cs {
		if !c.Significant() {
			continue
		}
		if bi < 0 || c.P < cs[bi].P {
			bi = i
		}
	}
	if bi < 0 {
		return best, ErrNoSignificantVariant
	}
	return e.Variations[bi], nil
}
