// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/diff"
)

var (
	columnStyle = tcell.StyleDefault.Foreground(tcell.ColorAzure).Bold(true)
	cellStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	absentStyle = cellStyle.Foreground(tcell.ColorGray).Italic(true)
)

// Palette holds the colors used to highlight changes.
type Palette struct {
	Added   tcell.Color
	Changed tcell.Color
	Deleted tcell.Color
	Key     tcell.Color
}

func NewPalette(c conf.Colors) (*Palette, error) {
	p := &Palette{}
	for _, v := range []struct {
		s   string
		dst *tcell.Color
	}{
		{c.Added, &p.Added},
		{c.Changed, &p.Changed},
		{c.Deleted, &p.Deleted},
		{c.Key, &p.Key},
	} {
		color, err := conf.TcellColor(v.s)
		if err != nil {
			return nil, err
		}
		*v.dst = color
	}
	return p, nil
}

func (p *Palette) headerStyle(h diff.HeaderCell) tcell.Style {
	if h.IsKey {
		return columnStyle.Foreground(p.Key)
	}
	return columnStyle
}

func (p *Palette) cellStyle(c diff.Cell) tcell.Style {
	var st tcell.Style
	switch c.Change {
	case diff.Added:
		st = cellStyle.Background(p.Added)
	case diff.Changed:
		st = cellStyle.Background(p.Changed)
	case diff.Deleted:
		st = cellStyle.Background(p.Deleted)
	default:
		if !c.Text.Valid {
			return absentStyle
		}
		return cellStyle
	}
	return st.Foreground(tcell.ColorBlack)
}
