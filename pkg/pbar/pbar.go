// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package pbar renders byte progress bars on a terminal.
package pbar

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Bar interface {
	IncrBy(n int)
	Done()
	Abort()
}

type noopBar struct{}

func (noopBar) IncrBy(n int) {}
func (noopBar) Done()        {}
func (noopBar) Abort()       {}

type bar struct {
	b *mpb.Bar
}

func (b *bar) IncrBy(n int) {
	b.b.IncrBy(n)
}

func (b *bar) Done() {
	if b.b.IsRunning() {
		b.b.SetTotal(-1, true)
		b.b.Wait()
	}
}

func (b *bar) Abort() {
	if b.b.IsRunning() {
		b.b.Abort(true)
		b.b.Wait()
	}
}

// Container groups bars that render to the same writer. A quiet container
// only hands out bars that render nothing.
type Container struct {
	p     *mpb.Progress
	out   io.Writer
	quiet bool
}

func NewContainer(out io.Writer, quiet bool) *Container {
	return &Container{out: out, quiet: quiet}
}

// NewBar adds a bar counting total bytes.
func (c *Container) NewBar(total int64, name string) Bar {
	if c.quiet {
		return noopBar{}
	}
	if c.p == nil {
		c.p = mpb.New(mpb.WithOutput(c.out))
	}
	b := c.p.New(total,
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DidentRight}),
			decor.Counters(decor.UnitKiB, "% .2f / % .2f"),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{W: 5, C: decor.DidentRight}),
			decor.Elapsed(decor.ET_STYLE_GO),
		),
		mpb.BarRemoveOnComplete(),
	)
	b.EnableTriggerComplete()
	return &bar{b: b}
}

// Wait blocks until every bar is done or aborted.
func (c *Container) Wait() {
	if c.p == nil {
		return
	}
	c.p.Wait()
	c.p = nil
}

type writer struct {
	bar Bar
	w   io.Writer
}

func (w *writer) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	if n > 0 {
		w.bar.IncrBy(n)
	}
	return n, err
}

// NewWriter advances bar by the number of bytes written to w.
func NewWriter(bar Bar, w io.Writer) io.Writer {
	return &writer{bar: bar, w: w}
}
