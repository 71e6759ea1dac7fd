// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of a text table. Cells are added row by row with
// Row and Cell, which return the Table so calls can be chained.
type Table struct {
	rows [][]cell
	cols int
}

type cell struct {
	value string
	right bool
}

// A CellOption changes how a cell is laid out.
type CellOption func(c *cell)

// Right aligns a cell to the right edge of its column.
var Right CellOption = func(c *cell) { c.right = true }

// Row starts a new row.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell to the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := cell{value: value}
	for _, o := range opts {
		o(&c)
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format writes table t to w. Columns are separated by two spaces and
// rows never end in spaces.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row {
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}

	var b strings.Builder
	for _, row := range t.rows {
		b.Reset()
		for i, c := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			pad := ws[i] - utf8.RuneCountInString(c.value)
			if c.right {
				fmt.Fprintf(&b, "%*s%s", pad, "", c.value)
			} else {
				fmt.Fprintf(&b, "%s%*s", c.value, pad, "")
			}
		}
		line := strings.TrimRight(b.String(), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
