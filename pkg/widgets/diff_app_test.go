// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/devtools/pkg/session"
)

func TestDiffAppToggleOnlyDiff(t *testing.T) {
	app := NewDiffApp("prev.csv -> curr.csv", testPalette(t), testState(t), nil)
	assert.Len(t, app.VisibleRows(), 4)
	assert.Contains(t, app.titleBar.GetText(true), "rows: +1/-1/m1")

	ev := app.ProcessInput(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	assert.Nil(t, ev)
	assert.True(t, app.State().ShowOnlyDiff)
	assert.Len(t, app.VisibleRows(), 3)
	assert.Contains(t, app.titleBar.GetText(true), "(only diffs)")

	app.ProcessInput(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	assert.False(t, app.State().ShowOnlyDiff)
	assert.Len(t, app.VisibleRows(), 4)
}

func TestDiffAppPassThroughKeys(t *testing.T) {
	app := NewDiffApp("diff", testPalette(t), testState(t), nil)
	ev := tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)
	assert.Equal(t, ev, app.ProcessInput(ev))
	ev = tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Equal(t, ev, app.ProcessInput(ev))
	assert.Nil(t, app.ProcessInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}

func TestDiffAppWithoutTable(t *testing.T) {
	app := NewDiffApp("empty", testPalette(t), session.New(), nil)
	assert.Empty(t, app.VisibleRows())
	assert.Contains(t, app.titleBar.GetText(true), "(no diff)")
}

func TestDiffAppStatusLine(t *testing.T) {
	app := NewDiffApp("diff", testPalette(t), testState(t), []string{"n*"})
	require.Len(t, app.VisibleRows(), 4)
	assert.Equal(t, `id: "1"`, app.status.GetText(true))

	app = NewDiffApp("diff", testPalette(t), testState(t), nil)
	app.table.Select(1, 1)
	assert.Equal(t, `name: "a" -> "x"`, app.status.GetText(true))
}

func TestDiffAppRefreshKeepsToggle(t *testing.T) {
	app := NewDiffApp("diff", testPalette(t), testState(t), nil)
	app.ProcessInput(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	require.True(t, app.State().ShowOnlyDiff)

	st := session.Reduce(testState(t), session.SetCurrent{Text: "id,name\n1,a\n2,b\n3,c\n5,e\n"})
	st = session.Reduce(st, session.CalculateDiff{})
	require.NoError(t, st.Err)
	require.False(t, st.ShowOnlyDiff)
	app.applyRefresh(st, nil)
	assert.True(t, app.State().ShowOnlyDiff)
	assert.Same(t, st.Table, app.State().Table)
	assert.Len(t, app.VisibleRows(), 1)

	app.applyRefresh(session.State{}, errors.New("current: file removed"))
	assert.Same(t, st.Table, app.State().Table)
	assert.True(t, app.State().ShowOnlyDiff)
	assert.EqualError(t, app.State().Err, "current: file removed")
	assert.Contains(t, app.titleBar.GetText(true), "current: file removed")
	assert.Len(t, app.VisibleRows(), 1)
}
