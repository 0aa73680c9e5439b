// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package diff

import "fmt"

type HeaderCell struct {
	Name  string `json:"name"`
	IsKey bool   `json:"isKey"`
}

// Cell is one annotated cell. OldText is only valid when Change is
// Changed and the previous value was present.
type Cell struct {
	Text    Value      `json:"text"`
	OldText Value      `json:"oldText"`
	Change  ChangeKind `json:"changeKind"`
}

type AnnotatedRow struct {
	Kind    RowKind `json:"kind"`
	HasDiff bool    `json:"hasDiff"`
	Cells   []Cell  `json:"cells"`
}

// Table is the annotated result of a diff. Rows from the current version
// come first in their original order, followed by deleted rows in the
// previous version's order.
type Table struct {
	Header []HeaderCell    `json:"header"`
	Rows   []*AnnotatedRow `json:"rows"`
}

func (t *Table) Columns() []string {
	sl := make([]string, len(t.Header))
	for i, h := range t.Header {
		sl[i] = h.Name
	}
	return sl
}

// Keys returns names of header cells marked as key, in column order.
func (t *Table) Keys() []string {
	sl := []string{}
	for _, h := range t.Header {
		if h.IsKey {
			sl = append(sl, h.Name)
		}
	}
	return sl
}

// Filter returns the rows to display. When onlyDiff is set, rows without
// any difference are left out. The table itself is never modified.
func (t *Table) Filter(onlyDiff bool) []*AnnotatedRow {
	if !onlyDiff {
		return t.Rows
	}
	rows := make([]*AnnotatedRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.HasDiff {
			rows = append(rows, r)
		}
	}
	return rows
}

type Summary struct {
	Added     int `json:"added"`
	Deleted   int `json:"deleted"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
}

func (s Summary) HasChanges() bool {
	return s.Added > 0 || s.Deleted > 0 || s.Modified > 0
}

func (s Summary) String() string {
	return fmt.Sprintf("+%d/-%d/m%d", s.Added, s.Deleted, s.Modified)
}

func (t *Table) Summary() Summary {
	s := Summary{}
	for _, r := range t.Rows {
		switch r.Kind {
		case AddedRow:
			s.Added++
		case DeletedRow:
			s.Deleted++
		case Modified:
			s.Modified++
		default:
			s.Unchanged++
		}
	}
	return s
}
