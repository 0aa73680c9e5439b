// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package csvutil tokenizes and serializes delimiter separated text with a
// configurable separator and quote character.
package csvutil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	ErrInvalidSeparator  = errors.New("invalid separator")
	ErrInvalidQuote      = errors.New("invalid quote")
)

// ParseError is returned for malformed input. Line and column numbers are
// 1-based, columns count runes.
type ParseError struct {
	StartLine int
	Line      int
	Column    int
	Err       error
}

func (e *ParseError) Error() string {
	if e.StartLine != e.Line {
		return fmt.Sprintf("record on line %d; parse error on line %d, column %d: %v", e.StartLine, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type parser struct {
	text      []rune
	sep       rune
	quote     rune
	off       int
	line      int
	col       int
	startLine int
	field     strings.Builder
	record    []string
	rows      [][]string
}

// Parse splits text into records of fields. Records end at "\n", "\r\n" or
// "\r"; a trailing line break does not produce an extra record. Rows may
// have different lengths.
func Parse(text string, sep, quote rune) ([][]string, error) {
	p := &parser{
		text:      []rune(text),
		sep:       sep,
		quote:     quote,
		line:      1,
		startLine: 1,
		rows:      [][]string{},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.rows, nil
}

func (p *parser) endField() {
	p.record = append(p.record, p.field.String())
	p.field.Reset()
}

func (p *parser) endRecord() {
	p.endField()
	p.rows = append(p.rows, p.record)
	p.record = nil
}

func (p *parser) readQuoted() error {
	line, col := p.line, p.col+1
	p.off++
	p.col++
	n := len(p.text)
	for p.off < n {
		r := p.text[p.off]
		if r == p.quote {
			if p.off+1 < n && p.text[p.off+1] == p.quote {
				p.field.WriteRune(p.quote)
				p.off += 2
				p.col += 2
				continue
			}
			p.off++
			p.col++
			return nil
		}
		if r == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
		p.field.WriteRune(r)
		p.off++
	}
	return &ParseError{
		StartLine: p.startLine,
		Line:      line,
		Column:    col,
		Err:       ErrUnterminatedQuote,
	}
}

func (p *parser) parse() error {
	n := len(p.text)
	atFieldStart := true
	for p.off < n {
		r := p.text[p.off]
		if atFieldStart && r == p.quote {
			if err := p.readQuoted(); err != nil {
				return err
			}
			atFieldStart = false
			continue
		}
		atFieldStart = false
		switch r {
		case p.sep:
			p.endField()
			atFieldStart = true
			p.off++
			p.col++
		case '\r', '\n':
			p.endRecord()
			if r == '\r' && p.off+1 < n && p.text[p.off+1] == '\n' {
				p.off++
			}
			p.off++
			p.line++
			p.col = 0
			p.startLine = p.line
			atFieldStart = true
		default:
			p.field.WriteRune(r)
			p.off++
			p.col++
		}
	}
	if p.record != nil || p.field.Len() > 0 || !atFieldStart {
		p.endRecord()
	}
	return nil
}

func needsQuotes(field string, sep, quote rune) bool {
	return strings.ContainsRune(field, sep) ||
		strings.ContainsRune(field, quote) ||
		strings.ContainsAny(field, "\r\n")
}

// Stringify serializes rows, quoting only the fields that need it. Every
// record including the last one is terminated with "\n".
func Stringify(rows [][]string, sep, quote rune) string {
	sb := &strings.Builder{}
	q := string(quote)
	for _, row := range rows {
		for j, field := range row {
			if j > 0 {
				sb.WriteRune(sep)
			}
			if needsQuotes(field, sep, quote) {
				sb.WriteString(q)
				sb.WriteString(strings.ReplaceAll(field, q, q+q))
				sb.WriteString(q)
			} else {
				sb.WriteString(field)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Convert re-serializes text from one separator/quote pair to another.
func Convert(text string, oldSep, oldQuote, newSep, newQuote rune) (string, error) {
	rows, err := Parse(text, oldSep, oldQuote)
	if err != nil {
		return "", err
	}
	return Stringify(rows, newSep, newQuote), nil
}
