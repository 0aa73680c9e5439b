// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package table turns raw delimited text into the keyed rows consumed by
// package diff.
package table

import (
	"github.com/go-logr/logr"
	"github.com/wrgl/devtools/pkg/csvutil"
	"github.com/wrgl/devtools/pkg/diff"
	"github.com/wrgl/devtools/pkg/errors"
	"github.com/wrgl/devtools/pkg/slice"
)

const (
	InputKeyColumns = "key columns"
	InputPrevious   = "previous"
	InputCurrent    = "current"
)

// Input holds both versions of a table ready to be diffed.
type Input struct {
	// Columns is the union of both headers: previous header order first,
	// then columns only found in the current header.
	Columns []string
	Keys    []string

	PreviousHeader []string
	CurrentHeader  []string

	Previous []diff.Row
	Current  []diff.Row
}

type loader struct {
	sep            rune
	quote          rune
	checkDuplicate bool
	logger         logr.Logger
}

type LoadOption func(l *loader)

func WithSeparator(r rune) LoadOption {
	return func(l *loader) {
		l.sep = r
	}
}

func WithQuote(r rune) LoadOption {
	return func(l *loader) {
		l.quote = r
	}
}

// WithDuplicateCheck makes Load fail with a *DuplicateKeyError when a key
// repeats within one version.
func WithDuplicateCheck() LoadOption {
	return func(l *loader) {
		l.checkDuplicate = true
	}
}

func WithLogger(logger logr.Logger) LoadOption {
	return func(l *loader) {
		l.logger = logger
	}
}

func (l *loader) parse(name, text string) ([][]string, error) {
	records, err := csvutil.Parse(text, l.sep, l.quote)
	if err != nil {
		return nil, errors.Wrap(name, err)
	}
	return records, nil
}

func (l *loader) parseTable(name, text string) (header []string, rows []diff.Row, err error) {
	records, err := l.parse(name, text)
	if err != nil {
		return
	}
	if len(records) == 0 {
		return []string{}, []diff.Row{}, nil
	}
	header = records[0]
	if s := slice.DuplicatedString(header); s != "" {
		l.logger.Info("duplicated column name, the rightmost field wins", "input", name, "column", s)
	}
	rows = ToRows(header, records[1:])
	l.logger.V(1).Info("loaded table", "input", name, "columns", len(header), "rows", len(rows))
	return header, rows, nil
}

// Load tokenizes the key specification (its first record) and both
// versions of the table. Tokenizer errors are wrapped with the name of the
// failing input.
func Load(keySpecText, previousText, currentText string, opts ...LoadOption) (*Input, error) {
	l := &loader{
		sep:    csvutil.Comma,
		quote:  csvutil.DoubleQuote,
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	keyRecords, err := l.parse(InputKeyColumns, keySpecText)
	if err != nil {
		return nil, err
	}
	in := &Input{Keys: []string{}}
	if len(keyRecords) > 0 {
		in.Keys = keyRecords[0]
	}
	in.PreviousHeader, in.Previous, err = l.parseTable(InputPrevious, previousText)
	if err != nil {
		return nil, err
	}
	in.CurrentHeader, in.Current, err = l.parseTable(InputCurrent, currentText)
	if err != nil {
		return nil, err
	}
	in.Columns = UnionColumns(in.PreviousHeader, in.CurrentHeader)
	if l.checkDuplicate {
		if err := CheckDuplicateKeys(in.Keys, in.Previous); err != nil {
			return nil, errors.Wrap(InputPrevious, err)
		}
		if err := CheckDuplicateKeys(in.Keys, in.Current); err != nil {
			return nil, errors.Wrap(InputCurrent, err)
		}
	}
	return in, nil
}

// UnionColumns returns every column name once, in order of first
// appearance across headers.
func UnionColumns(headers ...[]string) []string {
	cols := []string{}
	for _, h := range headers {
		cols = slice.AppendUnique(cols, h...)
	}
	return cols
}

// ToRows zips header with each record. Fields beyond the header are
// ignored and columns beyond a short record are absent. When a header
// repeats a name, the rightmost position decides the value.
func ToRows(header []string, records [][]string) []diff.Row {
	rows := make([]diff.Row, len(records))
	for i, rec := range records {
		r := make(diff.Row, len(header))
		for j, c := range header {
			if j < len(rec) {
				r[c] = rec[j]
			} else {
				delete(r, c)
			}
		}
		rows[i] = r
	}
	return rows
}

// Diff runs the diff engine over the loaded input.
func (in *Input) Diff(opts ...diff.Option) *diff.Table {
	return diff.Diff(in.Columns, in.Keys, in.Previous, in.Current, opts...)
}
