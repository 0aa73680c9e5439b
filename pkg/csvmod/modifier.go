// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvmod

import (
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Changes records what a Modifier did, by row key and column name.
type Changes struct {
	AddedRows      []string
	RemovedRows    []string
	ModifiedRows   []string
	AddedColumns   []string
	RemovedColumns []string
}

// Modifier derives a new version of a table. The first column is treated as
// the key: it is never removed, renamed or moved, and each row is touched
// by at most one row operation.
type Modifier struct {
	f         *gofakeit.Faker
	Rows      [][]string
	Changes   Changes
	nRows     int
	nCols     int
	nextID    int
	preserved map[string]struct{}
	touched   map[string]struct{}
}

// NewModifier copies rows, so the original table is left untouched.
func NewModifier(f *gofakeit.Faker, rows [][]string) *Modifier {
	m := &Modifier{
		f:         f,
		Rows:      make([][]string, len(rows)),
		nRows:     len(rows) - 1,
		nCols:     len(rows[0]),
		nextID:    len(rows),
		preserved: map[string]struct{}{rows[0][0]: {}},
		touched:   map[string]struct{}{},
	}
	for i, row := range rows {
		m.Rows[i] = append([]string(nil), row...)
		if i == 0 {
			continue
		}
		if id, err := strconv.Atoi(row[0]); err == nil && id >= m.nextID {
			m.nextID = id + 1
		}
	}
	return m
}

func portion(n int, pct float64) int {
	return int(float64(n) * pct)
}

func insertAt(sl []string, i int, s string) []string {
	sl = append(sl, "")
	copy(sl[i+1:], sl[i:])
	sl[i] = s
	return sl
}

func removeAt(sl []string, i int) []string {
	return append(sl[:i], sl[i+1:]...)
}

// untouchedRows returns, in random order, indices of rows no row operation
// has picked yet.
func (m *Modifier) untouchedRows() []int {
	inds := []int{}
	for _, i := range m.f.Rand.Perm(len(m.Rows) - 1) {
		if _, ok := m.touched[m.Rows[i+1][0]]; !ok {
			inds = append(inds, i+1)
		}
	}
	return inds
}

// freeColumns returns, in random order, indices of columns that can be
// removed, renamed or moved.
func (m *Modifier) freeColumns() []int {
	inds := []int{}
	for _, j := range m.f.Rand.Perm(len(m.Rows[0])) {
		if _, ok := m.preserved[m.Rows[0][j]]; !ok {
			inds = append(inds, j)
		}
	}
	return inds
}

// PreserveColumns protects columns from column operations.
func (m *Modifier) PreserveColumns(columns ...string) *Modifier {
	for _, s := range columns {
		m.preserved[s] = struct{}{}
	}
	return m
}

func (m *Modifier) AddRows(pct float64) *Modifier {
	for n := portion(m.nRows, pct); n > 0; n-- {
		row := make([]string, len(m.Rows[0]))
		row[0] = strconv.Itoa(m.nextID)
		m.nextID++
		for j := 1; j < len(row); j++ {
			row[j] = fakeValue(m.f, m.Rows[0][j])
		}
		k := 1 + m.f.Rand.Intn(len(m.Rows))
		m.Rows = append(m.Rows[:k], append([][]string{row}, m.Rows[k:]...)...)
		m.touched[row[0]] = struct{}{}
		m.Changes.AddedRows = append(m.Changes.AddedRows, row[0])
	}
	return m
}

func (m *Modifier) RemoveRows(pct float64) *Modifier {
	inds := m.untouchedRows()
	if n := portion(m.nRows, pct); n < len(inds) {
		inds = inds[:n]
	}
	removed := map[int]struct{}{}
	for _, i := range inds {
		removed[i] = struct{}{}
		m.touched[m.Rows[i][0]] = struct{}{}
		m.Changes.RemovedRows = append(m.Changes.RemovedRows, m.Rows[i][0])
	}
	rows := m.Rows[:0]
	for i, row := range m.Rows {
		if _, ok := removed[i]; !ok {
			rows = append(rows, row)
		}
	}
	m.Rows = rows
	return m
}

// ModifyRows changes pct of the non-key cells of pct of the rows, at least
// one cell per picked row.
func (m *Modifier) ModifyRows(pct float64) *Modifier {
	nCells := portion(len(m.Rows[0])-1, pct)
	if nCells < 1 {
		nCells = 1
	}
	inds := m.untouchedRows()
	if n := portion(m.nRows, pct); n < len(inds) {
		inds = inds[:n]
	}
	if len(m.Rows[0]) < 2 {
		return m
	}
	for _, i := range inds {
		row := m.Rows[i]
		cols := m.f.Rand.Perm(len(row) - 1)
		if nCells < len(cols) {
			cols = cols[:nCells]
		}
		for _, j := range cols {
			v := fakeValue(m.f, m.Rows[0][j+1])
			if v == row[j+1] {
				v += "*"
			}
			row[j+1] = v
		}
		m.touched[row[0]] = struct{}{}
		m.Changes.ModifiedRows = append(m.Changes.ModifiedRows, row[0])
	}
	return m
}

func (m *Modifier) newColumnName() string {
	for {
		name := "col_" + strings.ToLower(m.f.LetterN(5))
		if _, ok := m.preserved[name]; ok {
			continue
		}
		exists := false
		for _, s := range m.Rows[0] {
			if s == name {
				exists = true
				break
			}
		}
		if !exists {
			return name
		}
	}
}

func (m *Modifier) AddColumns(pct float64) *Modifier {
	for n := portion(m.nCols, pct); n > 0; n-- {
		name := m.newColumnName()
		j := 1 + m.f.Rand.Intn(len(m.Rows[0]))
		m.Rows[0] = insertAt(m.Rows[0], j, name)
		for k := 1; k < len(m.Rows); k++ {
			m.Rows[k] = insertAt(m.Rows[k], j, m.f.Word())
		}
		m.preserved[name] = struct{}{}
		m.Changes.AddedColumns = append(m.Changes.AddedColumns, name)
	}
	return m
}

func (m *Modifier) RemoveColumns(pct float64) *Modifier {
	inds := m.freeColumns()
	if n := portion(m.nCols, pct); n < len(inds) {
		inds = inds[:n]
	}
	for len(inds) > 0 {
		// remove from the right so remaining indices stay valid
		maxI := 0
		for i, j := range inds {
			if j > inds[maxI] {
				maxI = i
			}
		}
		j := inds[maxI]
		inds = append(inds[:maxI], inds[maxI+1:]...)
		m.Changes.RemovedColumns = append(m.Changes.RemovedColumns, m.Rows[0][j])
		for k := range m.Rows {
			m.Rows[k] = removeAt(m.Rows[k], j)
		}
	}
	return m
}

// RenameColumns gives new names to pct of the columns. To a diff this looks
// like one removed and one added column each.
func (m *Modifier) RenameColumns(pct float64) *Modifier {
	inds := m.freeColumns()
	if n := portion(m.nCols, pct); n < len(inds) {
		inds = inds[:n]
	}
	for _, j := range inds {
		name := m.newColumnName()
		m.Changes.RemovedColumns = append(m.Changes.RemovedColumns, m.Rows[0][j])
		m.Changes.AddedColumns = append(m.Changes.AddedColumns, name)
		m.Rows[0][j] = name
		m.preserved[name] = struct{}{}
	}
	return m
}

// MoveColumns moves pct of the columns to other positions after the key
// column.
func (m *Modifier) MoveColumns(pct float64) *Modifier {
	if len(m.Rows[0]) < 3 {
		return m
	}
	n := portion(m.nCols, pct)
	for _, j := range m.freeColumns() {
		if n == 0 {
			break
		}
		if j == 0 {
			continue
		}
		l := j
		for l == j {
			l = 1 + m.f.Rand.Intn(len(m.Rows[0])-1)
		}
		for k := range m.Rows {
			v := m.Rows[k][j]
			m.Rows[k] = insertAt(removeAt(m.Rows[k], j), l, v)
		}
		n--
	}
	return m
}
