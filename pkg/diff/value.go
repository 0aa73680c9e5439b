// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package diff

import (
	"encoding/json"
)

// Value is a cell value that may be absent. A column missing from a
// version's header is absent (Valid is false), which is different from a
// present but empty cell.
type Value struct {
	S     string
	Valid bool
}

func String(s string) Value {
	return Value{S: s, Valid: true}
}

func (v Value) String() string {
	return v.S
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.S)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}
		return nil
	}
	if err := json.Unmarshal(b, &v.S); err != nil {
		return err
	}
	v.Valid = true
	return nil
}

// Row maps column names to cell values. Columns outside the header of the
// version the row came from are simply not in the map.
type Row map[string]string

func (r Row) Get(col string) Value {
	if s, ok := r[col]; ok {
		return String(s)
	}
	return Value{}
}

// RowKey serializes the values of keys in row as a JSON array, absent
// values becoming null, so that distinct key tuples never share a string.
func RowKey(keys []string, row Row) string {
	vals := make([]Value, len(keys))
	for i, k := range keys {
		vals[i] = row.Get(k)
	}
	b, err := json.Marshal(vals)
	if err != nil {
		panic(err)
	}
	return string(b)
}
