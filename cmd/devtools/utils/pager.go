// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package utils

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func startPager(cmd *cobra.Command) (*exec.Cmd, io.WriteCloser, error) {
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less -R"
	}
	args := strings.Fields(pager)
	p := exec.Command(args[0], args[1:]...)
	in, err := p.StdinPipe()
	if err != nil {
		return nil, nil, err
	}
	p.Stdout = cmd.OutOrStdout()
	p.Stderr = cmd.ErrOrStderr()
	if err := p.Start(); err != nil {
		return nil, nil, err
	}
	return p, in, nil
}

// PagerOrOut returns a writer piping into $PAGER unless --no-pager is set or
// the command output is not a terminal.
func PagerOrOut(cmd *cobra.Command) (io.Writer, func(), error) {
	noPager, err := cmd.Flags().GetBool("no-pager")
	if err != nil {
		return nil, nil, err
	}
	if noPager || !IsTerminal(cmd.OutOrStdout()) {
		return cmd.OutOrStdout(), func() {}, nil
	}
	pager, w, err := startPager(cmd)
	if err != nil {
		return nil, nil, err
	}
	return w, func() {
		w.Close()
		pager.Wait()
	}, nil
}
