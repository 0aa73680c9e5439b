// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/devtools/pkg/api/payload"
	apiserver "github.com/wrgl/devtools/pkg/api/server"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/diff"
)

const (
	prevCSV = "id,name,age\n1,alice,30\n2,bob,25\n3,carol,40\n"
	currCSV = "id,name,age\n1,alice,31\n3,carol,40\n4,dave,22\n"
)

func diffFiles(t *testing.T) (string, string) {
	t.Helper()
	return writeFile(t, "prev.csv", prevCSV), writeFile(t, "curr.csv", currCSV)
}

func TestDiffCmdText(t *testing.T) {
	prev, curr := diffFiles(t)
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "text", "--no-color"})
	assertCmdOutput(t, cmd, strings.Join([]string{
		"id name  age",
		"1  alice 30 -> 31",
		"3  carol 40",
		"4  dave  22",
		"2  bob   25",
		"",
		"rows: +1/-1/m1",
		"",
	}, "\n"))

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "text", "--no-color", "--only-diff"})
	assertCmdOutput(t, cmd, strings.Join([]string{
		"id name  age",
		"1  alice 30 -> 31",
		"4  dave  22",
		"2  bob   25",
		"",
		"rows: +1/-1/m1",
		"",
	}, "\n"))
}

func TestDiffCmdDefaultsToText(t *testing.T) {
	prev := writeFile(t, "prev.csv", "id,a\n1,x\n")
	curr := writeFile(t, "curr.csv", "id,a,b\n1,x,y\n")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "--keys-text", "id", "--no-color"})
	assertCmdOutput(t, cmd, "id a b\n1  x y\n\ncolumns: +1; rows: m1\n")
}

func TestDiffCmdMovedColumns(t *testing.T) {
	prev := writeFile(t, "prev.csv", "id,a,b\n1,x,y\n")
	curr := writeFile(t, "curr.csv", "id,b,a\n1,y,x\n")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "text", "--no-color"})
	assertCmdOutput(t, cmd, "id a b\n1  x y\n\ncolumns: moved 1; rows: no changes\n")
}

func TestDiffCmdCSV(t *testing.T) {
	prev, curr := diffFiles(t)
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "csv"})
	assertCmdOutput(t, cmd, strings.Join([]string{
		",id,name,age",
		"BASE ROW,1,alice,30",
		"MODIFIED,1,alice,31",
		",3,carol,40",
		"ADDED,4,dave,22",
		"REMOVED,2,bob,25",
		"",
	}, "\n"))

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "csv", "--only-diff", "--hide-columns", "a*"})
	assertCmdOutput(t, cmd, strings.Join([]string{
		",id,name",
		"BASE ROW,1,alice",
		"MODIFIED,1,alice",
		"ADDED,4,dave",
		"REMOVED,2,bob",
		"",
	}, "\n"))
}

func TestDiffCmdTabSeparatorFromConfig(t *testing.T) {
	prev := writeFile(t, "prev.tsv", "id\tname\n1\ta,b\n")
	curr := writeFile(t, "curr.tsv", "id\tname\n1\tc\n")
	confFile := writeFile(t, "config.yaml", "diff:\n  separator: tab\n")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "csv", "--config", confFile})
	assertCmdOutput(t, cmd, "\tid\tname\nBASE ROW\t1\ta,b\nMODIFIED\t1\tc\n")
}

func TestDiffCmdJSON(t *testing.T) {
	prev, curr := diffFiles(t)
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "json", "--only-diff"})
	buf := bytes.NewBuffer(nil)
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())

	resp := &payload.DiffResponse{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), resp))
	assert.NotNil(t, resp.Sum)
	assert.Equal(t, diff.Summary{Added: 1, Deleted: 1, Modified: 1, Unchanged: 1}, resp.Summary)
	assert.Equal(t, []string{"id", "name", "age"}, resp.Table.Columns())
	assert.Equal(t, []string{"id"}, resp.Table.Keys())
	require.Len(t, resp.Table.Rows, 3)
	assert.Equal(t, diff.Cell{Text: diff.String("31"), OldText: diff.String("30"), Change: diff.Changed}, resp.Table.Rows[0].Cells[2])
	assert.Equal(t, diff.DeletedRow, resp.Table.Rows[2].Kind)
}

func TestDiffCmdServer(t *testing.T) {
	ts := httptest.NewServer(apiserver.NewHandler(&conf.Config{}, logr.Discard()))
	defer ts.Close()
	prev, curr := diffFiles(t)
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"diff", prev, curr, "-k", "id", "--format", "csv", "--only-diff", "--server", ts.URL})
	assertCmdOutput(t, cmd, strings.Join([]string{
		",id,name,age",
		"BASE ROW,1,alice,30",
		"MODIFIED,1,alice,31",
		"ADDED,4,dave,22",
		"REMOVED,2,bob,25",
		"",
	}, "\n"))
}

func TestDiffCmdErrors(t *testing.T) {
	prev, curr := diffFiles(t)
	broken := writeFile(t, "broken.csv", "id,a\n1,\"x\n")
	dup := writeFile(t, "dup.csv", "id\n1\n1\n")
	for i, c := range []struct {
		args []string
		err  string
	}{
		{
			[]string{broken, curr, "-k", "id", "--format", "text"},
			"previous: parse error on line 2, column 3: unterminated quoted field",
		},
		{
			[]string{dup, curr, "-k", "id", "--format", "text", "--duplicate-keys", "error"},
			`previous: duplicate key ["1"] in rows 1 and 2`,
		},
		{
			[]string{prev, curr, "-k", "id", "--format", "yaml"},
			`invalid format "yaml": valid options are "tui", "text", "csv" and "json"`,
		},
		{
			[]string{prev, curr, "-k", "id", "--format", "text", "--watch"},
			"--watch is only supported with the tui format",
		},
		{
			[]string{prev, "missing.csv", "-k", "id"},
			"can't find file missing.csv",
		},
		{
			[]string{prev, curr, "-k", "id", "--format", "csv", "--hide-columns", "[a"},
			"",
		},
	} {
		cmd := rootCmd(t)
		cmd.SetArgs(append([]string{"diff"}, c.args...))
		err := cmd.Execute()
		require.Error(t, err, "case %d", i)
		if c.err != "" {
			assert.Equal(t, c.err, err.Error(), "case %d", i)
		}
	}
}
