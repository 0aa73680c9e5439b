// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package payload

import (
	"errors"

	"github.com/wrgl/devtools/pkg/csvutil"
	apperrors "github.com/wrgl/devtools/pkg/errors"
)

// CSVLocation is where parsing failed. Lines and columns are 1-based,
// columns count runes.
type CSVLocation struct {
	StartLine int `json:"startLine"`
	Line      int `json:"line"`
	Column    int `json:"column"`
}

type Error struct {
	Message string `json:"message"`

	// Input names the input that failed to parse: "key columns", "previous"
	// or "current".
	Input string `json:"input,omitempty"`

	// CSV appears when the error is a CSV parsing error
	CSV *CSVLocation `json:"csv,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds an Error from err, filling Input and CSV when err wraps
// a named input or a *csvutil.ParseError.
func NewError(err error) *Error {
	res := &Error{Message: err.Error()}
	res.Input = apperrors.InputOf(err)
	var perr *csvutil.ParseError
	if errors.As(err, &perr) {
		res.CSV = &CSVLocation{
			StartLine: perr.StartLine,
			Line:      perr.Line,
			Column:    perr.Column,
		}
	}
	return res
}
