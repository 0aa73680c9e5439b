// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/wrgl/devtools/pkg/diff"
)

const maxCellWidth = 40

// DiffTable shows the rows of an annotated table, one tview cell per
// annotated cell. Row 0 is the header.
type DiffTable struct {
	*tview.Table
	palette *Palette
	header  []diff.HeaderCell
	rows    []*diff.AnnotatedRow
	columns []int

	selectedFunc func(msg string)
}

func NewDiffTable(palette *Palette) *DiffTable {
	t := &DiffTable{
		Table:   tview.NewTable(),
		palette: palette,
	}
	t.Table.SetFixed(1, 0).
		SetSelectable(true, true).
		SetSelectionChangedFunc(t.selectionChanged)
	return t
}

// SetSelectedFunc registers a callback receiving a description of the
// selected cell whenever the selection moves.
func (t *DiffTable) SetSelectedFunc(f func(msg string)) *DiffTable {
	t.selectedFunc = f
	return t
}

// SetRows replaces the displayed rows. columns holds indices of the
// visible columns; nil shows every column.
func (t *DiffTable) SetRows(header []diff.HeaderCell, rows []*diff.AnnotatedRow, columns []int) *DiffTable {
	if columns == nil {
		columns = make([]int, len(header))
		for i := range columns {
			columns[i] = i
		}
	}
	t.header = header
	t.rows = rows
	t.columns = columns
	t.Table.Clear()
	for j, c := range columns {
		t.Table.SetCell(0, j, styledCell(header[c].Name, t.palette.headerStyle(header[c])).
			SetSelectable(false))
	}
	for i, row := range rows {
		for j, c := range columns {
			cell := row.Cells[c]
			t.Table.SetCell(i+1, j, styledCell(cellText(cell.Text), t.palette.cellStyle(cell)).
				SetMaxWidth(maxCellWidth))
		}
	}
	if len(rows) > 0 && len(columns) > 0 {
		t.Table.Select(1, 0)
	}
	return t
}

func styledCell(text string, style tcell.Style) *tview.TableCell {
	fg, bg, attr := style.Decompose()
	return tview.NewTableCell(text).
		SetTextColor(fg).
		SetBackgroundColor(bg).
		SetAttributes(attr)
}

func cellText(v diff.Value) string {
	if !v.Valid {
		return ""
	}
	return v.S
}

func describeValue(v diff.Value) string {
	if !v.Valid {
		return "(absent)"
	}
	return strconv.Quote(v.S)
}

// Describe explains the cell at the given table position, including the
// previous value of changed cells.
func (t *DiffTable) Describe(row, column int) string {
	if row < 1 || row > len(t.rows) || column < 0 || column >= len(t.columns) {
		return ""
	}
	r := t.rows[row-1]
	c := t.columns[column]
	cell := r.Cells[c]
	name := t.header[c].Name
	switch cell.Change {
	case diff.Changed:
		return fmt.Sprintf("%s: %s -> %s", name, describeValue(cell.OldText), describeValue(cell.Text))
	case diff.Added:
		return fmt.Sprintf("%s: added %s", name, describeValue(cell.Text))
	case diff.Deleted:
		return fmt.Sprintf("%s: deleted %s", name, describeValue(cell.Text))
	default:
		return fmt.Sprintf("%s: %s", name, describeValue(cell.Text))
	}
}

func (t *DiffTable) selectionChanged(row, column int) {
	if t.selectedFunc != nil {
		t.selectedFunc(t.Describe(row, column))
	}
}
