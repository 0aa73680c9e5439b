// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package errors tags errors with the name of the input that caused them.
package errors

import (
	"errors"
	"fmt"
)

// Error wraps an error raised while reading one named input, such as
// "previous" or "key columns".
type Error struct {
	input string
	err   error
}

// Wrap tags err with input. It returns nil if err is nil.
func Wrap(input string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{input: input, err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.input, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Input() string {
	return e.input
}

// InputOf returns the outermost input name err is tagged with, or an empty
// string.
func InputOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.input
	}
	return ""
}
