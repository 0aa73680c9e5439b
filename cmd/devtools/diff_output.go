// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/spf13/cobra"
	"github.com/wrgl/devtools/cmd/devtools/utils"
	"github.com/wrgl/devtools/pkg/api/payload"
	"github.com/wrgl/devtools/pkg/csvutil"
	"github.com/wrgl/devtools/pkg/diff"
	"github.com/wrgl/devtools/pkg/session"
)

const maxTextCellWidth = 40

// projectTable returns a table holding only the visible rows and columns of
// st. The session table is left untouched.
func projectTable(st session.State, hideColumns []string) (*diff.Table, error) {
	columns, err := st.Table.VisibleColumns(hideColumns)
	if err != nil {
		return nil, err
	}
	rows := st.VisibleRows()
	t := &diff.Table{
		Header: make([]diff.HeaderCell, len(columns)),
		Rows:   make([]*diff.AnnotatedRow, len(rows)),
	}
	for i, c := range columns {
		t.Header[i] = st.Table.Header[c]
	}
	for i, r := range rows {
		row := &diff.AnnotatedRow{
			Kind:    r.Kind,
			HasDiff: r.HasDiff,
			Cells:   make([]diff.Cell, len(columns)),
		}
		for j, c := range columns {
			row.Cells[j] = r.Cells[c]
		}
		t.Rows[i] = row
	}
	return t, nil
}

func diffSummary(colorize *colorstring.Colorize, s diff.Summary, cols diff.ColumnChanges) string {
	parts := []string{}
	if cols.HasChanges() {
		sl := []string{}
		if n := len(cols.Added); n > 0 {
			sl = append(sl, utils.Paint(colorize, "green", fmt.Sprintf("+%d", n)))
		}
		if n := len(cols.Removed); n > 0 {
			sl = append(sl, utils.Paint(colorize, "red", fmt.Sprintf("-%d", n)))
		}
		if n := len(cols.Moved); n > 0 {
			sl = append(sl, utils.Paint(colorize, "yellow", fmt.Sprintf("moved %d", n)))
		}
		parts = append(parts, "columns: "+strings.Join(sl, "/"))
	}
	if s.HasChanges() {
		sl := []string{}
		if s.Added > 0 {
			sl = append(sl, utils.Paint(colorize, "green", fmt.Sprintf("+%d", s.Added)))
		}
		if s.Deleted > 0 {
			sl = append(sl, utils.Paint(colorize, "red", fmt.Sprintf("-%d", s.Deleted)))
		}
		if s.Modified > 0 {
			sl = append(sl, utils.Paint(colorize, "yellow", fmt.Sprintf("m%d", s.Modified)))
		}
		parts = append(parts, "rows: "+strings.Join(sl, "/"))
	} else {
		parts = append(parts, "rows: no changes")
	}
	return strings.Join(parts, "; ")
}

func textCell(cell diff.Cell) utils.TableCell {
	switch cell.Change {
	case diff.Added:
		return utils.TableCell{Text: cell.Text.S, Color: "green"}
	case diff.Deleted:
		return utils.TableCell{Text: cell.Text.S, Color: "red"}
	case diff.Changed:
		if !cell.OldText.Valid {
			return utils.TableCell{Text: cell.Text.S, Color: "yellow"}
		}
		return utils.TableCell{Text: cell.OldText.S + " -> " + cell.Text.S, Color: "yellow"}
	}
	return utils.TableCell{Text: cell.Text.S}
}

func writeDiffText(w io.Writer, colorize *colorstring.Colorize, t *diff.Table, s diff.Summary, cols diff.ColumnChanges) {
	rows := make([][]utils.TableCell, 0, len(t.Rows)+1)
	header := make([]utils.TableCell, len(t.Header))
	for i, h := range t.Header {
		header[i] = utils.TableCell{Text: h.Name, Color: "bold"}
		if h.IsKey {
			header[i].Color = "cyan"
		}
	}
	rows = append(rows, header)
	for _, r := range t.Rows {
		row := make([]utils.TableCell, len(r.Cells))
		for i, c := range r.Cells {
			row[i] = textCell(c)
		}
		rows = append(rows, row)
	}
	utils.PrintTable(w, rows, maxTextCellWidth, colorize)
	fmt.Fprintf(w, "\n%s\n", diffSummary(colorize, s, cols))
}

func outputDiffToText(cmd *cobra.Command, opts *diffOptions, st session.State) error {
	t, err := projectTable(st, opts.hideColumns)
	if err != nil {
		return err
	}
	w, cleanup, err := utils.PagerOrOut(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	writeDiffText(w, utils.NewColorize(opts.noColor), t, st.Table.Summary(), st.Columns)
	return nil
}

func cellValues(cells []diff.Cell, old bool) []string {
	sl := make([]string, len(cells))
	for i, c := range cells {
		if old && c.Change == diff.Changed {
			sl[i] = c.OldText.S
		} else {
			sl[i] = c.Text.S
		}
	}
	return sl
}

// outputDiffToCSV writes one record per row with a label in front. A
// modified row is written twice: the previous values then the current ones.
func outputDiffToCSV(cmd *cobra.Command, opts *diffOptions, st session.State) error {
	t, err := projectTable(st, opts.hideColumns)
	if err != nil {
		return err
	}
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, append([]string{""}, t.Columns()...))
	for _, r := range t.Rows {
		switch r.Kind {
		case diff.AddedRow:
			records = append(records, append([]string{"ADDED"}, cellValues(r.Cells, false)...))
		case diff.DeletedRow:
			records = append(records, append([]string{"REMOVED"}, cellValues(r.Cells, false)...))
		case diff.Modified:
			records = append(records,
				append([]string{"BASE ROW"}, cellValues(r.Cells, true)...),
				append([]string{"MODIFIED"}, cellValues(r.Cells, false)...),
			)
		default:
			records = append(records, append([]string{""}, cellValues(r.Cells, false)...))
		}
	}
	_, err = io.WriteString(cmd.OutOrStdout(), csvutil.Stringify(records, opts.sep, opts.quote))
	return err
}

func outputDiffToJSON(cmd *cobra.Command, opts *diffOptions, st session.State) error {
	t, err := projectTable(st, opts.hideColumns)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(&payload.DiffResponse{
		Sum: payload.Checksum(
			st.KeyColumns, st.Previous, st.Current,
			string(st.Separator), string(st.Quote), st.Duplicates.String(), strconv.FormatBool(st.ShowOnlyDiff),
		),
		Table:   t,
		Summary: st.Table.Summary(),
		Columns: st.Columns,
	})
}
