// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvutil

import (
	"fmt"
	"strings"
)

const (
	Comma       rune = ','
	Tab         rune = '\t'
	DoubleQuote rune = '"'
	SingleQuote rune = '\''
)

// ParseSeparator accepts either the separator itself or its name.
func ParseSeparator(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", ",", "comma":
		return Comma, nil
	case "\t", "tab", `\t`:
		return Tab, nil
	}
	return 0, fmt.Errorf("%w %q: valid options are \"comma\" and \"tab\"", ErrInvalidSeparator, s)
}

// ParseQuote accepts either the quote character itself or its name.
func ParseQuote(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", `"`, "double":
		return DoubleQuote, nil
	case "'", "single":
		return SingleQuote, nil
	}
	return 0, fmt.Errorf("%w %q: valid options are \"double\" and \"single\"", ErrInvalidQuote, s)
}

func SeparatorName(r rune) string {
	if r == Tab {
		return "tab"
	}
	return "comma"
}

func QuoteName(r rune) string {
	if r == SingleQuote {
		return "single"
	}
	return "double"
}
