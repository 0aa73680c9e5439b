// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package table

import (
	"fmt"

	"github.com/wrgl/devtools/pkg/diff"
)

type DuplicateKeyError struct {
	// Key is the serialized row key
	Key string

	// Rows holds 1-based positions of the two data rows sharing Key
	Rows [2]int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %s in rows %d and %d", e.Key, e.Rows[0], e.Rows[1])
}

// CheckDuplicateKeys returns a *DuplicateKeyError for the first key that
// repeats within rows.
func CheckDuplicateKeys(keys []string, rows []diff.Row) error {
	m := make(map[string]int, len(rows))
	for i, r := range rows {
		k := diff.RowKey(keys, r)
		if j, ok := m[k]; ok {
			return &DuplicateKeyError{Key: k, Rows: [2]int{j + 1, i + 1}}
		}
		m[k] = i
	}
	return nil
}
