// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package diff

import "fmt"

// ChangeKind marks how a single cell changed.
type ChangeKind int

const (
	None ChangeKind = iota
	Added
	Changed
	Deleted
)

var changeKindNames = map[ChangeKind]string{
	None:    "none",
	Added:   "added",
	Changed: "changed",
	Deleted: "deleted",
}

func (k ChangeKind) String() string {
	return changeKindNames[k]
}

func (k ChangeKind) MarshalText() ([]byte, error) {
	if s, ok := changeKindNames[k]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown change kind %d", int(k))
}

func (k *ChangeKind) UnmarshalText(b []byte) error {
	for v, s := range changeKindNames {
		if s == string(b) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown change kind %q", string(b))
}

// RowKind classifies a whole row.
type RowKind int

const (
	Unchanged RowKind = iota
	Modified
	AddedRow
	DeletedRow
)

var rowKindNames = map[RowKind]string{
	Unchanged:  "unchanged",
	Modified:   "modified",
	AddedRow:   "added",
	DeletedRow: "deleted",
}

func (k RowKind) String() string {
	return rowKindNames[k]
}

func (k RowKind) MarshalText() ([]byte, error) {
	if s, ok := rowKindNames[k]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown row kind %d", int(k))
}

func (k *RowKind) UnmarshalText(b []byte) error {
	for v, s := range rowKindNames {
		if s == string(b) {
			*k = v
			return nil
		}
	}
	return fmt.Errorf("unknown row kind %q", string(b))
}
