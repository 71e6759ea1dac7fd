// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abreport

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	barColor         = color.Gray{0xa0}
	significantColor = color.RGBA{0x2e, 0x8b, 0x57, 0xff}
	controlLineColor = color.RGBA{0xb2, 0x22, 0x22, 0xff}
)

// Plot returns a bar chart of the conversion rate of every group in t.
// Significant variations are highlighted and a dashed line marks the
// control's rate.
func (t *Table) Plot() (*plot.Plot, error) {
	var all, sig plotter.Values
	var labels []string
	for _, r := range t.Rows {
		all = append(all, 100*r.Rate)
		if r.Comparison != nil && r.Comparison.Significant() {
			sig = append(sig, 100*r.Rate)
		} else {
			sig = append(sig, 0)
		}
		labels = append(labels, r.Label)
	}

	pl := plot.New()
	pl.Title.Text = t.Title()
	pl.Y.Label.Text = "conversion rate (%)"
	pl.Y.Min = 0

	w := vg.Points(30)
	bars, err := plotter.NewBarChart(all, w)
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	sigBars, err := plotter.NewBarChart(sig, w)
	if err != nil {
		return nil, err
	}
	sigBars.Color = significantColor
	sigBars.LineStyle.Width = 0
	pl.Add(bars, sigBars)

	if len(t.Rows) > 0 {
		rate := 100 * t.Rows[0].Rate
		line := plotter.NewFunction(func(float64) float64 { return rate })
		line.Color = controlLineColor
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		pl.Add(line)
	}

	pl.NominalX(labels...)
	return pl, nil
}

// ToPNG writes the chart returned by Plot to w as a PNG image of the
// given size.
func (t *Table) ToPNG(w io.Writer, width, height vg.Length) error {
	pl, err := t.Plot()
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
