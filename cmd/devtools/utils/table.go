// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"
)

// TableCell is a cell of a text table. Color is a colorstring code such as
// "green" or "bold"; empty means no color.
type TableCell struct {
	Text  string
	Color string
}

// Truncate shortens s to at most width display columns, cutting between
// grapheme clusters and ending with "…" when anything was cut.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	sb := &strings.Builder{}
	n := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if n+w > width-1 {
			break
		}
		sb.WriteString(cluster)
		n += w
	}
	sb.WriteString("…")
	return sb.String()
}

// PrintTable prints rows as aligned columns. Cell text wider than maxWidth
// is truncated and line breaks are shown as "⏎".
func PrintTable(w io.Writer, rows [][]TableCell, maxWidth int, colorize *colorstring.Colorize) {
	widths := []int{}
	texts := make([][]string, len(rows))
	for i, row := range rows {
		texts[i] = make([]string, len(row))
		for j, cell := range row {
			s := Truncate(strings.NewReplacer("\r\n", "⏎", "\n", "⏎", "\r", "⏎").Replace(cell.Text), maxWidth)
			texts[i][j] = s
			n := runewidth.StringWidth(s)
			if j >= len(widths) {
				widths = append(widths, n)
			} else if widths[j] < n {
				widths[j] = n
			}
		}
	}
	for i, row := range rows {
		sb := &strings.Builder{}
		for j, cell := range row {
			sb.WriteString(Paint(colorize, cell.Color, texts[i][j]))
			if j < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(texts[i][j])+1))
			}
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}

// NewColorize returns a colorizer that emits no escape codes when disabled.
func NewColorize(disable bool) *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: disable,
	}
}

// Paint wraps text in the color code. text itself is never parsed for
// color codes.
func Paint(colorize *colorstring.Colorize, code, text string) string {
	if code == "" {
		return text
	}
	return colorize.Color("["+code+"]") + text + colorize.Color("[reset]")
}
