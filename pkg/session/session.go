// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package session holds the state of one interactive diff session. State
// is a value: every action produces a new State and never modifies the one
// it was given.
package session

import (
	"github.com/go-logr/logr"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/csvutil"
	"github.com/wrgl/devtools/pkg/diff"
	"github.com/wrgl/devtools/pkg/table"
)

type State struct {
	KeyColumns string
	Previous   string
	Current    string

	Separator  rune
	Quote      rune
	Duplicates conf.DuplicatePolicy

	// Table is the result of the last successful CalculateDiff.
	Table *diff.Table

	// Columns lists columns found in only one of the two headers, as of the
	// last successful CalculateDiff.
	Columns diff.ColumnChanges

	// Err is the error of the last failed action, cleared by the next
	// successful CalculateDiff.
	Err error

	ShowOnlyDiff bool
}

func New() State {
	return State{
		Separator:  csvutil.Comma,
		Quote:      csvutil.DoubleQuote,
		Duplicates: conf.DPLast,
	}
}

// VisibleRows returns the rows of the current table that should be
// displayed, or nil if no diff has been calculated yet.
func (s State) VisibleRows() []*diff.AnnotatedRow {
	if s.Table == nil {
		return nil
	}
	return s.Table.Filter(s.ShowOnlyDiff)
}

type Action interface {
	apply(s State) State
}

func Reduce(s State, a Action) State {
	return a.apply(s)
}

type SetKeyColumns struct {
	Text string
}

func (a SetKeyColumns) apply(s State) State {
	s.KeyColumns = a.Text
	return s
}

type SetPrevious struct {
	Text string
}

func (a SetPrevious) apply(s State) State {
	s.Previous = a.Text
	return s
}

type SetCurrent struct {
	Text string
}

func (a SetCurrent) apply(s State) State {
	s.Current = a.Text
	return s
}

// convertTexts re-serializes all three texts, leaving the state untouched
// except for Err when any of them fails to parse.
func convertTexts(s State, sep, quote rune) State {
	texts := []*string{&s.KeyColumns, &s.Previous, &s.Current}
	res := make([]string, len(texts))
	for i, t := range texts {
		out, err := csvutil.Convert(*t, s.Separator, s.Quote, sep, quote)
		if err != nil {
			s.Err = err
			return s
		}
		res[i] = out
	}
	for i, t := range texts {
		*t = res[i]
	}
	s.Separator = sep
	s.Quote = quote
	return s
}

// SetSeparator changes the separator and re-serializes all three texts
// with it.
type SetSeparator struct {
	Separator rune
}

func (a SetSeparator) apply(s State) State {
	if a.Separator == s.Separator {
		return s
	}
	return convertTexts(s, a.Separator, s.Quote)
}

type SetQuote struct {
	Quote rune
}

func (a SetQuote) apply(s State) State {
	if a.Quote == s.Quote {
		return s
	}
	return convertTexts(s, s.Separator, a.Quote)
}

type SetDuplicatePolicy struct {
	Policy conf.DuplicatePolicy
}

func (a SetDuplicatePolicy) apply(s State) State {
	s.Duplicates = a.Policy
	return s
}

// CalculateDiff loads the texts and replaces Table with a freshly computed
// annotated table. On failure the previous Table is kept and Err is set.
type CalculateDiff struct {
	Logger logr.Logger
}

func (a CalculateDiff) apply(s State) State {
	logger := a.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	t, cols, err := Calculate(s.KeyColumns, s.Previous, s.Current, s.Separator, s.Quote, s.Duplicates, logger)
	if err != nil {
		s.Err = err
		return s
	}
	s.Table = t
	s.Columns = cols
	s.Err = nil
	return s
}

type ToggleShowOnlyDiff struct{}

func (a ToggleShowOnlyDiff) apply(s State) State {
	s.ShowOnlyDiff = !s.ShowOnlyDiff
	return s
}

// Calculate loads the three texts and diffs them under the given duplicate
// keys policy.
func Calculate(keyColumns, previous, current string, sep, quote rune, policy conf.DuplicatePolicy, logger logr.Logger) (*diff.Table, diff.ColumnChanges, error) {
	loadOpts := []table.LoadOption{
		table.WithSeparator(sep),
		table.WithQuote(quote),
		table.WithLogger(logger),
	}
	diffOpts := []diff.Option{diff.WithLogger(logger)}
	switch policy {
	case conf.DPError:
		loadOpts = append(loadOpts, table.WithDuplicateCheck())
	case conf.DPFirst:
		diffOpts = append(diffOpts, diff.WithDuplicatePolicy(diff.FirstWins))
	}
	in, err := table.Load(keyColumns, previous, current, loadOpts...)
	if err != nil {
		return nil, diff.ColumnChanges{}, err
	}
	return in.Diff(diffOpts...), diff.CompareColumns(in.PreviousHeader, in.CurrentHeader), nil
}
