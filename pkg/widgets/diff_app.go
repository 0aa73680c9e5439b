// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package widgets

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/wrgl/devtools/pkg/diff"
	"github.com/wrgl/devtools/pkg/session"
)

var diffAppUsage = []KeyUsage{
	{"d", "Toggle only diffs"},
	{"↑↓←→", "Move"},
	{"g", "Scroll to begin"},
	{"G", "Scroll to end"},
	{"q", "Quit"},
}

// DiffApp is the interactive viewer of a diff session. The session state
// is only read and replaced on the tview event loop.
type DiffApp struct {
	App      *tview.Application
	Flex     *tview.Flex
	table    *DiffTable
	titleBar *tview.TextView
	status   *tview.TextView
	usageBar *UsageBar

	mu          sync.Mutex
	title       string
	state       session.State
	hidePattern []string
}

// NewDiffApp creates the viewer. Columns matching any of hidePatterns are
// left out of the table; the patterns must already be valid globs.
func NewDiffApp(title string, palette *Palette, st session.State, hidePatterns []string) *DiffApp {
	a := &DiffApp{
		App:         tview.NewApplication(),
		table:       NewDiffTable(palette),
		titleBar:    tview.NewTextView().SetDynamicColors(true),
		status:      tview.NewTextView().SetDynamicColors(true),
		usageBar:    NewUsageBar(diffAppUsage, 2),
		title:       title,
		hidePattern: hidePatterns,
	}
	a.table.SetSelectedFunc(func(msg string) {
		a.status.SetText(tview.Escape(msg))
	})
	a.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.titleBar, 1, 1, false).
		AddItem(a.table, 0, 1, true).
		AddItem(a.status, 1, 1, false).
		AddItem(a.usageBar, 1, 1, false)
	a.App.SetRoot(a.Flex, true).
		SetFocus(a.table).
		SetInputCapture(a.ProcessInput).
		SetBeforeDrawFunc(func(screen tcell.Screen) bool {
			a.usageBar.BeforeDraw(screen, a.Flex)
			return false
		})
	a.setState(st)
	return a
}

func (a *DiffApp) State() session.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *DiffApp) setState(st session.State) {
	a.mu.Lock()
	a.state = st
	a.mu.Unlock()
	a.render()
}

func (a *DiffApp) render() {
	st := a.State()
	a.titleBar.Clear()
	if st.Table == nil {
		fmt.Fprintf(a.titleBar, "[yellow]%s[white] (no diff)", tview.Escape(a.title))
		return
	}
	fmt.Fprintf(a.titleBar, "[yellow]%s[white]  rows: %s", tview.Escape(a.title), st.Table.Summary())
	if st.ShowOnlyDiff {
		fmt.Fprint(a.titleBar, "  [aqua](only diffs)[white]")
	}
	if st.Err != nil {
		fmt.Fprintf(a.titleBar, "  [red]%s[white]", tview.Escape(st.Err.Error()))
	}
	columns, err := st.Table.VisibleColumns(a.hidePattern)
	if err != nil {
		columns = nil
	}
	a.table.SetRows(st.Table.Header, st.VisibleRows(), columns)
	row, col := a.table.GetSelection()
	a.status.SetText(tview.Escape(a.table.Describe(row, col)))
}

// Dispatch applies action to the current state and redraws.
func (a *DiffApp) Dispatch(action session.Action) {
	a.mu.Lock()
	st := session.Reduce(a.state, action)
	a.mu.Unlock()
	a.setState(st)
}

// Refresh swaps in a recomputed state from another goroutine. The merge
// with the displayed state happens on the event loop so that key presses
// made in the meantime are kept.
func (a *DiffApp) Refresh(st session.State, err error) {
	a.App.QueueUpdateDraw(func() {
		a.applyRefresh(st, err)
	})
}

// applyRefresh keeps the current view toggles. On err the last good table
// stays on screen next to the error.
func (a *DiffApp) applyRefresh(st session.State, err error) {
	cur := a.State()
	if err != nil {
		cur.Err = err
		a.setState(cur)
		return
	}
	st.ShowOnlyDiff = cur.ShowOnlyDiff
	a.setState(st)
}

func (a *DiffApp) ProcessInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		a.App.Stop()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			a.App.Stop()
			return nil
		case 'd':
			a.Dispatch(session.ToggleShowOnlyDiff{})
			return nil
		}
	}
	return event
}

// VisibleRows returns the rows currently on screen.
func (a *DiffApp) VisibleRows() []*diff.AnnotatedRow {
	return a.table.rows
}

func (a *DiffApp) Run() error {
	return a.App.Run()
}
