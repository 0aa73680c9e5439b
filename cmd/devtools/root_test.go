// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	confhelpers "github.com/wrgl/devtools/pkg/conf/helpers"
)

func rootCmd(t *testing.T) *cobra.Command {
	t.Helper()
	confhelpers.MockGlobalConf(t)
	confhelpers.MockSystemConf(t)
	cmd := RootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fp := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fp, []byte(content), 0644))
	return fp
}

func assertCmdOutput(t *testing.T, cmd *cobra.Command, output string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, output, buf.String())
}

func assertCmdFailed(t *testing.T, cmd *cobra.Command, output string, errMsg string) {
	t.Helper()
	buf := bytes.NewBufferString("")
	cmd.SetOut(buf)
	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, errMsg, err.Error())
	assert.Equal(t, output, buf.String())
}

func TestVersionCmd(t *testing.T) {
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"version"})
	assertCmdOutput(t, cmd, "devtools v"+strings.TrimSpace(version)+"\n")

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"version", "-v"})
	assertCmdOutput(t, cmd, strings.Join([]string{
		"devtools v" + strings.TrimSpace(version),
		"go: " + runtime.Version(),
		"platform: " + runtime.GOOS + "/" + runtime.GOARCH,
		"",
	}, "\n"))
}
