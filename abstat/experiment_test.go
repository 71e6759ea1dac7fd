// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abstat

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type page struct {
	Name        string
	Conversions int
	Impressions int
}

func (p page) Observed() (int, int) {
	return p.Conversions, p.Impressions
}

var (
	pageControl = page{"Control Variation", 1600, 80000}
	pageA       = page{"Variation A", 1500, 80000}
	pageB       = page{"Variation B", 1700, 80000}
	pageC       = page{"Variation C", 1800, 80000}
)

func TestExperimentDefaults(t *testing.T) {
	var e Experiment[page]
	if e.confidence() != 0.95 {
		t.Errorf("default confidence = %v, want 0.95", e.confidence())
	}
	if e.Control != nil || len(e.Variations) != 0 {
		t.Errorf("zero Experiment = %+v", e)
	}
	if _, err := e.FilterSignificant(); !errors.Is(err, ErrMissingControl) {
		t.Errorf("FilterSignificant: want ErrMissingControl, got %v", err)
	}
	if _, err := e.HighestSignificance(); !errors.Is(err, ErrMissingControl) {
		t.Errorf("HighestSignificance: want ErrMissingControl, got %v", err)
	}

	e.AddVariation(pageB)
	if _, err := e.FilterSignificant(); !errors.Is(err, ErrMissingControl) {
		t.Errorf("FilterSignificant: want ErrMissingControl, got %v", err)
	}

	e2 := NewExperiment(pageControl)
	if e2.Confidence != DefaultConfidence || e2.Control == nil || *e2.Control != pageControl {
		t.Errorf("NewExperiment = %+v", e2)
	}
}

func TestFilterSignificant(t *testing.T) {
	e := NewExperiment(pageControl, pageA, pageB, pageC)
	got, err := e.FilterSignificant()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]page{pageB, pageC}, got); diff != "" {
		t.Errorf("FilterSignificant mismatch (-want +got):\n%s", diff)
	}

	// Insertion order is kept.
	e = NewExperiment(pageControl, pageC, pageA, pageB)
	got, err = e.FilterSignificant()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]page{pageC, pageB}, got); diff != "" {
		t.Errorf("FilterSignificant mismatch (-want +got):\n%s", diff)
	}

	// Only C clears 99% confidence.
	e.Confidence = 0.99
	got, err = e.FilterSignificant()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]page{pageC}, got); diff != "" {
		t.Errorf("FilterSignificant mismatch (-want +got):\n%s", diff)
	}

	e = NewExperiment(pageControl, pageA)
	got, err = e.FilterSignificant()
	if !errors.Is(err, ErrNoSignificantVariant) || got != nil {
		t.Errorf("FilterSignificant = %v, %v, want nil, ErrNoSignificantVariant", got, err)
	}

	e = NewExperiment(pageControl)
	if _, err := e.FilterSignificant(); !errors.Is(err, ErrNoSignificantVariant) {
		t.Errorf("FilterSignificant with no variations: want ErrNoSignificantVariant, got %v", err)
	}
}

func TestHighestSignificance(t *testing.T) {
	check := func(e *Experiment[page], want page) {
		t.Helper()
		got, err := e.HighestSignificance()
		if err != nil {
			t.Errorf("HighestSignificance: %v", err)
			return
		}
		if got != want {
			t.Errorf("HighestSignificance = %+v, want %+v", got, want)
		}
	}
	check(NewExperiment(pageControl, pageA, pageB, pageC), pageC)
	check(NewExperiment(pageControl, pageC, pageB, pageA), pageC)
	check(NewExperiment(pageControl, pageA, pageB), pageB)

	// Ties go to the earliest variation.
	b2 := page{"Variation B2", 1700, 80000}
	check(NewExperiment(pageControl, pageA, pageB, b2), pageB)
	check(NewExperiment(pageControl, b2, pageA, pageB), b2)

	// A non-significant first variation is never picked.
	e := NewExperiment(pageControl, pageA)
	if got, err := e.HighestSignificance(); !errors.Is(err, ErrNoSignificantVariant) {
		t.Errorf("HighestSignificance = %+v, %v, want ErrNoSignificantVariant", got, err)
	}
}

func TestExperimentErrors(t *testing.T) {
	e := NewExperiment(pageControl, pageB, page{"Empty", 0, 0})
	if _, err := e.FilterSignificant(); !errors.Is(err, ErrZeroImpressions) {
		t.Errorf("FilterSignificant: want ErrZeroImpressions, got %v", err)
	}
	if _, err := e.HighestSignificance(); !errors.Is(err, ErrZeroImpressions) {
		t.Errorf("HighestSignificance: want ErrZeroImpressions, got %v", err)
	}

	e = NewExperiment(page{"Empty control", 0, 0}, pageB)
	if _, err := e.Compare(); !errors.Is(err, ErrZeroImpressions) {
		t.Errorf("Compare: want ErrZeroImpressions, got %v", err)
	}

	e = NewExperiment(pageControl, pageB)
	e.Confidence = 1.5
	if _, err := e.FilterSignificant(); !errors.Is(err, ErrConfidence) {
		t.Errorf("FilterSignificant: want ErrConfidence, got %v", err)
	}
}

func TestExperimentPointers(t *testing.T) {
	// Pointer variants come back as the same pointers.
	ctl, a, b := &pageControl, &pageA, &pageB
	e := NewExperiment[*page](ctl, a, b)
	got, err := e.FilterSignificant()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != b {
		t.Errorf("FilterSignificant = %v, want [%p]", got, b)
	}
	best, err := e.HighestSignificance()
	if err != nil {
		t.Fatal(err)
	}
	if best != b {
		t.Errorf("HighestSignificance = %p, want %p", best, b)
	}
}

func TestExperimentCompare(t *testing.T) {
	e := NewExperiment[Variant](variantB, variantA, page{"C", 1800, 80000})
	cs, err := e.Compare()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 2 {
		t.Fatalf("got %d comparisons, want 2", len(cs))
	}
	for i, c := range cs {
		if !aeq(c.ControlRate, 0.02125) {
			t.Errorf("comparison %d: control rate %v, want 0.02125", i, c.ControlRate)
		}
	}
	if cs[0].Significant() || !cs[1].Significant() {
		t.Errorf("got %v", cs)
	}
}
