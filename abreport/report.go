// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abreport renders the results of an A/B experiment as text,
// HTML, or a chart.
package abreport

import (
	"fmt"

	"golang.org/x/abtest/abstat"
)

// A Labeler is a variant that has a display name. Variants that don't
// implement Labeler are called "control" and "variation N".
type Labeler interface {
	Label() string
}

// A Table is the result of an experiment, one Row per group.
type Table struct {
	Hypothesis abstat.Hypothesis
	Confidence float64

	// Rows starts with the control, followed by the variations in
	// the order of the experiment.
	Rows []*Row
}

// A Row is one group of an experiment.
type Row struct {
	Label                    string
	Conversions, Impressions int
	Rate                     float64

	// Comparison is the test of this variation against the
	// control. It is nil for the control row.
	Comparison *abstat.Comparison

	// Best is set on the variation HighestSignificance would pick.
	Best bool
}

// Verdict returns "best", "significant", or "" for a Row.
func (r *Row) Verdict() string {
	switch {
	case r.Best:
		return "best"
	case r.Comparison != nil && r.Comparison.Significant():
		return "significant"
	}
	return ""
}

// Build tests every variation of e against its control and collects
// the results in a Table.
func Build[V abstat.Variant](e *abstat.Experiment[V]) (*Table, error) {
	cs, err := e.Compare()
	if err != nil {
		return nil, err
	}
	t := &Table{Hypothesis: e.Hypothesis, Confidence: e.Confidence}
	if t.Confidence == 0 {
		t.Confidence = abstat.DefaultConfidence
	}

	ctl, err := newRow(*e.Control, "control")
	if err != nil {
		return nil, err
	}
	t.Rows = append(t.Rows, ctl)

	best := -1
	for i, v := range e.Variations {
		row, err := newRow(v, fmt.Sprintf("variation %d", i+1))
		if err != nil {
			return nil, err
		}
		c := cs[i]
		row.Comparison = &c
		t.Rows = append(t.Rows, row)
		if c.Significant() && (best < 0 || c.P < cs[best].P) {
			best = i
		}
	}
	if best >= 0 {
		t.Rows[best+1].Best = true
	}
	return t, nil
}

func newRow(v abstat.Variant, label string) (*Row, error) {
	if l, ok := v.(Labeler); ok {
		label = l.Label()
	}
	c, n := v.Observed()
	rate, err := abstat.ConversionRate(c, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return &Row{Label: label, Conversions: c, Impressions: n, Rate: rate}, nil
}

// Title describes the test the table reports on.
func (t *Table) Title() string {
	return fmt.Sprintf("%s test at %s confidence", t.Hypothesis, formatPct(t.Confidence, 0))
}

func formatPct(x float64, prec int) string {
	return fmt.Sprintf("%.*f%%", prec, 100*x)
}
