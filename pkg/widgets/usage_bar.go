// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

var (
	errCombinedColumnWidths = fmt.Errorf("combined column widths greater than total width")
)

// KeyUsage describes what a key does.
type KeyUsage struct {
	Key         string
	Description string
}

// UsageBar lays out key usages in as many columns as the width allows.
type UsageBar struct {
	*tview.TextView
	strs           []string
	widths         []int
	margin         int
	colWidths      []int
	lastTotalWidth int
	height         int
}

func NewUsageBar(entries []KeyUsage, margin int) *UsageBar {
	n := len(entries)
	u := &UsageBar{
		TextView: tview.NewTextView().
			SetDynamicColors(true),
		strs:      make([]string, n),
		widths:    make([]int, n),
		margin:    margin,
		colWidths: []int{},
	}
	for i, a := range entries {
		u.strs[i] = fmt.Sprintf("[black:white] %s [white:black] %s", a.Key, a.Description)
		u.widths[i] = runewidth.StringWidth(a.Key) + runewidth.StringWidth(a.Description) + 3
	}
	return u
}

// fits reports whether entries laid out in n columns fit into totalWidth.
// Column widths are recorded as a side effect.
func (b *UsageBar) fits(n, totalWidth int) bool {
	b.colWidths = make([]int, n)
	for i, w := range b.widths {
		if col := i % n; b.colWidths[col] < w {
			b.colWidths[col] = w
		}
	}
	sum := (n - 1) * b.margin
	for _, w := range b.colWidths {
		sum += w
	}
	return sum <= totalWidth
}

func (b *UsageBar) computeColumnWidths(totalWidth int) {
	n := len(b.widths)
	for ; n > 1; n-- {
		if b.fits(n, totalWidth) {
			return
		}
	}
	b.fits(1, totalWidth)
}

func (b *UsageBar) printRows(totalWidth int) {
	b.TextView.Clear()
	b.height = 0
	if len(b.strs) == 0 {
		return
	}
	b.computeColumnWidths(totalWidth)
	lines := []string{}
	row := []string{}
	for i, s := range b.strs {
		col := i % len(b.colWidths)
		if col == 0 && len(row) > 0 {
			lines = append(lines, strings.Join(row, strings.Repeat(" ", b.margin)))
			row = row[:0]
		}
		row = append(row, s+strings.Repeat(" ", b.colWidths[col]-b.widths[i]))
	}
	lines = append(lines, strings.Join(row, strings.Repeat(" ", b.margin)))
	fmt.Fprint(b.TextView, strings.Join(lines, "\n\n"))
	b.height = len(lines)*2 - 1
}

// BeforeDraw re-flows entries when the width changed and resizes the bar
// inside flex accordingly.
func (b *UsageBar) BeforeDraw(screen tcell.Screen, flex *tview.Flex) {
	_, _, width, _ := b.GetInnerRect()
	if width != b.lastTotalWidth {
		b.printRows(width)
		b.lastTotalWidth = width
	}
	flex.ResizeItem(b, b.height, 1)
}
