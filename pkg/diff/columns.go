// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package diff

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/wrgl/devtools/pkg/slice"
)

// ColumnChanges lists columns that only exist in one of the two headers,
// and common columns whose relative position changed.
type ColumnChanges struct {
	Added   []string `json:"added,omitempty"`
	Removed []string `json:"removed,omitempty"`
	Moved   []string `json:"moved,omitempty"`
}

func (c ColumnChanges) HasChanges() bool {
	return len(c.Added) > 0 || len(c.Removed) > 0 || len(c.Moved) > 0
}

func CompareColumns(previous, current []string) ColumnChanges {
	_, added, removed := slice.CompareStringSlices(current, previous)
	return ColumnChanges{
		Added:   added,
		Removed: removed,
		Moved:   movedColumns(previous, current),
	}
}

// VisibleColumns returns indices of columns whose names match none of the
// given glob patterns. Key columns are always visible.
func (t *Table) VisibleColumns(hidePatterns []string) ([]int, error) {
	globs := make([]glob.Glob, len(hidePatterns))
	for i, p := range hidePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid column pattern %q: %v", p, err)
		}
		globs[i] = g
	}
	indices := make([]int, 0, len(t.Header))
mainLoop:
	for i, h := range t.Header {
		if !h.IsKey {
			for _, g := range globs {
				if g.Match(h.Name) {
					continue mainLoop
				}
			}
		}
		indices = append(indices, i)
	}
	return indices, nil
}
