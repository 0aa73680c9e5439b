// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package payload

import "github.com/wrgl/devtools/pkg/diff"

type DiffRequest struct {
	// KeyColumns is a single delimited row of key column names
	KeyColumns string `json:"keyColumns"`

	// Previous is the delimited text of the previous version, header first
	Previous string `json:"previous"`

	// Current is the delimited text of the current version, header first
	Current string `json:"current"`

	// Separator is "comma" (default) or "tab"
	Separator string `json:"separator,omitempty"`

	// Quote is "double" (default) or "single"
	Quote string `json:"quote,omitempty"`

	// DuplicateKeys is "last" (default), "first" or "error"
	DuplicateKeys string `json:"duplicateKeys,omitempty"`

	// OnlyDiff drops rows without differences from the response
	OnlyDiff bool `json:"onlyDiff,omitempty"`
}

type DiffResponse struct {
	// Sum is the checksum of the request inputs, also sent as ETag
	Sum     *Hex               `json:"sum"`
	Table   *diff.Table        `json:"table"`
	Summary diff.Summary       `json:"summary"`
	Columns diff.ColumnChanges `json:"columns"`
}
