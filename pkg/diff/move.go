// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package diff

import "sort"

// longestIncreasing marks the elements of the longest strictly increasing
// subsequence of sl.
func longestIncreasing(sl []int) []bool {
	tails := []int{}
	prev := make([]int, len(sl))
	for i, v := range sl {
		j := sort.Search(len(tails), func(k int) bool { return sl[tails[k]] >= v })
		prev[i] = -1
		if j > 0 {
			prev[i] = tails[j-1]
		}
		if j == len(tails) {
			tails = append(tails, i)
		} else {
			tails[j] = i
		}
	}
	in := make([]bool, len(sl))
	if len(tails) == 0 {
		return in
	}
	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		in[i] = true
	}
	return in
}

// movedColumns returns the fewest common columns, in current order, that
// must move to turn the previous column order into the current one.
func movedColumns(previous, current []string) []string {
	prevInd := make(map[string]int, len(previous))
	for i, s := range previous {
		prevInd[s] = i
	}
	names := []string{}
	seq := []int{}
	for _, s := range current {
		if i, ok := prevInd[s]; ok {
			names = append(names, s)
			seq = append(seq, i)
		}
	}
	var moved []string
	for i, anchored := range longestIncreasing(seq) {
		if !anchored {
			moved = append(moved, names[i])
		}
	}
	return moved
}
