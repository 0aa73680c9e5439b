// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package slice

// DuplicatedString returns the first string that appears more than once.
func DuplicatedString(s []string) string {
	m := map[string]struct{}{}
	for _, k := range s {
		if _, ok := m[k]; ok {
			return k
		}
		m[k] = struct{}{}
	}
	return ""
}

// AppendUnique appends strings from src that are not yet in dst, keeping
// their order of first appearance.
func AppendUnique(dst []string, src ...string) []string {
	m := make(map[string]struct{}, len(dst)+len(src))
	for _, s := range dst {
		m[s] = struct{}{}
	}
	for _, s := range src {
		if _, ok := m[s]; ok {
			continue
		}
		m[s] = struct{}{}
		dst = append(dst, s)
	}
	return dst
}

func StringSliceContains(sl []string, s string) bool {
	for _, v := range sl {
		if v == s {
			return true
		}
	}
	return false
}

// CompareStringSlices reports strings of slice that are also in oldSlice
// (unchanged), only in slice (added) and only in oldSlice (removed).
func CompareStringSlices(slice, oldSlice []string) (unchanged, added, removed []string) {
	m := map[string]struct{}{}
	for _, col := range slice {
		m[col] = struct{}{}
	}
	oldM := map[string]struct{}{}
	for _, col := range oldSlice {
		oldM[col] = struct{}{}
	}
	for _, col := range slice {
		if _, ok := oldM[col]; !ok {
			added = append(added, col)
		} else {
			unchanged = append(unchanged, col)
		}
	}
	for _, col := range oldSlice {
		if _, ok := m[col]; !ok {
			removed = append(removed, col)
		}
	}
	return
}
