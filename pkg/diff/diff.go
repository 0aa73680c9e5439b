// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package diff

import (
	"github.com/go-logr/logr"
	"github.com/wrgl/devtools/pkg/slice"
)

// DuplicatePolicy decides which row a repeated key resolves to when the
// rows of one version are indexed by key.
type DuplicatePolicy int

const (
	LastWins DuplicatePolicy = iota
	FirstWins
)

type differ struct {
	policy DuplicatePolicy
	logger logr.Logger
}

type Option func(d *differ)

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(d *differ) {
		d.policy = p
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(d *differ) {
		d.logger = logger
	}
}

func (d *differ) index(keys []string, rows []Row) map[string]Row {
	m := make(map[string]Row, len(rows))
	for _, r := range rows {
		k := RowKey(keys, r)
		if _, ok := m[k]; ok && d.policy == FirstWins {
			continue
		}
		m[k] = r
	}
	return m
}

// Diff aligns previous and current rows by their key columns and annotates
// every row and cell with how it changed. Every row of current yields one
// output row; every row of previous whose key is missing from current
// yields one deleted row after them.
func Diff(columns, keys []string, previous, current []Row, opts ...Option) *Table {
	d := &differ{logger: logr.Discard()}
	for _, opt := range opts {
		opt(d)
	}

	currByKey := d.index(keys, current)
	prevByKey := d.index(keys, previous)

	deleted := []Row{}
	for _, r := range previous {
		if _, ok := currByKey[RowKey(keys, r)]; !ok {
			deleted = append(deleted, r)
		}
	}

	t := &Table{
		Header: make([]HeaderCell, len(columns)),
		Rows:   make([]*AnnotatedRow, 0, len(current)+len(deleted)),
	}
	for i, c := range columns {
		t.Header[i] = HeaderCell{Name: c, IsKey: slice.StringSliceContains(keys, c)}
	}
	for _, r := range current {
		if prev, ok := prevByKey[RowKey(keys, r)]; ok {
			t.Rows = append(t.Rows, compareRows(columns, prev, r))
		} else {
			t.Rows = append(t.Rows, addedRow(columns, r))
		}
	}
	for _, r := range deleted {
		t.Rows = append(t.Rows, deletedRow(columns, r))
	}

	if d.logger.V(1).Enabled() {
		s := t.Summary()
		d.logger.V(1).Info("diff computed",
			"columns", len(columns),
			"added", s.Added,
			"deleted", s.Deleted,
			"modified", s.Modified,
			"unchanged", s.Unchanged,
		)
	}
	return t
}

func addedRow(columns []string, row Row) *AnnotatedRow {
	r := &AnnotatedRow{
		Kind:    AddedRow,
		HasDiff: true,
		Cells:   make([]Cell, len(columns)),
	}
	for i, c := range columns {
		r.Cells[i] = Cell{Text: row.Get(c), Change: Added}
	}
	return r
}

func deletedRow(columns []string, row Row) *AnnotatedRow {
	r := &AnnotatedRow{
		Kind:    DeletedRow,
		HasDiff: true,
		Cells:   make([]Cell, len(columns)),
	}
	for i, c := range columns {
		r.Cells[i] = Cell{Text: row.Get(c), Change: Deleted}
	}
	return r
}

// compareRows compares cell values by exact string equality; an absent
// value only equals another absent value.
func compareRows(columns []string, prev, curr Row) *AnnotatedRow {
	r := &AnnotatedRow{
		Kind:  Unchanged,
		Cells: make([]Cell, len(columns)),
	}
	for i, c := range columns {
		v, oldV := curr.Get(c), prev.Get(c)
		r.Cells[i].Text = v
		if v != oldV {
			r.Cells[i].Change = Changed
			r.Cells[i].OldText = oldV
			r.HasDiff = true
		}
	}
	if r.HasDiff {
		r.Kind = Modified
	}
	return r
}
