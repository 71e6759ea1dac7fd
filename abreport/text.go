// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abreport

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/abtest/internal/texttab"
)

// ToText writes a fixed-width text rendering of t to w, followed by
// any warnings about the comparisons.
func (t *Table) ToText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.Title()); err != nil {
		return err
	}

	var tab texttab.Table
	tab.Row().Cell("").
		Cell("conversions", texttab.Right).
		Cell("impressions", texttab.Right).
		Cell("rate", texttab.Right).
		Cell("lift", texttab.Right).
		Cell("z", texttab.Right).
		Cell("p", texttab.Right).
		Cell("")
	for _, r := range t.Rows {
		tab.Row().Cell(r.Label).
			Cell(strconv.Itoa(r.Conversions), texttab.Right).
			Cell(strconv.Itoa(r.Impressions), texttab.Right).
			Cell(formatPct(r.Rate, 2), texttab.Right)
		if c := r.Comparison; c != nil {
			tab.Cell(c.FormatLift(), texttab.Right).
				Cell(fmt.Sprintf("%.2f", c.Z), texttab.Right).
				Cell(fmt.Sprintf("%.3f", c.P), texttab.Right).
				Cell(r.Verdict())
		}
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	for _, r := range t.Rows {
		if r.Comparison == nil {
			continue
		}
		for _, warn := range r.Comparison.Warnings {
			if _, err := fmt.Fprintf(w, "%s: %s\n", r.Label, warn); err != nil {
				return err
			}
		}
	}
	return nil
}
