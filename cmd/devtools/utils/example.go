// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"strings"
)

type Example struct {
	Comment string
	Line    string
}

// CombineExamples formats examples for cobra's Example field.
func CombineExamples(sl []Example) string {
	lines := make([]string, 0, len(sl)*3)
	for i, ex := range sl {
		if i > 0 {
			lines = append(lines, "")
		}
		if ex.Comment != "" {
			lines = append(lines, "  # "+ex.Comment)
		}
		lines = append(lines, "  "+ex.Line)
	}
	return strings.Join(lines, "\n")
}
