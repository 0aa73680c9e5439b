// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package devtools

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCmd(t *testing.T) {
	fp := writeFile(t, "data.csv", "a,b\n\"x\ty\",z\n")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"convert", fp, "--to", "tab"})
	assertCmdOutput(t, cmd, "a\tb\n\"x\ty\"\tz\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader("a,\"b,c\"\n"))
	cmd.SetArgs([]string{"convert", "--to-quote", "single"})
	assertCmdOutput(t, cmd, "a,'b,c'\n")

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"convert", fp, "--to", "pipe"})
	assert.Error(t, cmd.Execute())
}

func TestJSONCmd(t *testing.T) {
	cmd := rootCmd(t)
	cmd.SetIn(strings.NewReader(`{"b":1,"a":[1,2]}`))
	cmd.SetArgs([]string{"json"})
	assertCmdOutput(t, cmd, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2\n  ]\n}\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader(`{"a":1}`))
	cmd.SetArgs([]string{"json", "--indent", "4"})
	assertCmdOutput(t, cmd, "{\n    \"a\": 1\n}\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader(`{"a":1}`))
	cmd.SetArgs([]string{"json", "--indent", "0"})
	assert.Error(t, cmd.Execute())

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader(`{"a":`))
	cmd.SetArgs([]string{"json"})
	assert.Error(t, cmd.Execute())
}

func TestRegexCmd(t *testing.T) {
	fp := writeFile(t, "settings.txt", "a=1 b=2\nc=x,y\n")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"regex", `(\w+)=(\S+)`, fp})
	assertCmdOutput(t, cmd, "a,1\nb,2\nc,\"x,y\"\n")

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"regex", `(\w+)=(\S+)`, fp, "--separator", "tab"})
	assertCmdOutput(t, cmd, "a\t1\nb\t2\nc\tx,y\n")

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"regex", `(\w+`, fp})
	assert.Error(t, cmd.Execute())
}

func TestBase64Cmd(t *testing.T) {
	cmd := rootCmd(t)
	cmd.SetIn(strings.NewReader("hello"))
	cmd.SetArgs([]string{"base64", "encode"})
	assertCmdOutput(t, cmd, "aGVsbG8=\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader(" aGVsbG8\n"))
	cmd.SetArgs([]string{"base64", "decode"})
	assertCmdOutput(t, cmd, "hello")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader("!!!"))
	cmd.SetArgs([]string{"base64", "decode"})
	assert.Error(t, cmd.Execute())
}

func TestBase64DecodeToFile(t *testing.T) {
	dir := t.TempDir()
	fp := writeFile(t, "encoded.txt", "aGVsbG8=")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"base64", "decode", fp, "--to-file", "--dir", dir})
	buf := &strings.Builder{}
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())

	m := regexp.MustCompile(`^Saved 5 bytes to (.+decoded-base64-\d{14}\.bin)\n$`).FindStringSubmatch(buf.String())
	require.NotNil(t, m, buf.String())
	assert.Equal(t, dir, filepath.Dir(m[1]))
	b, err := os.ReadFile(m[1])
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

func TestURLEncodeCmd(t *testing.T) {
	cmd := rootCmd(t)
	cmd.SetIn(strings.NewReader("a b&c/é\n"))
	cmd.SetArgs([]string{"urlencode", "encode"})
	assertCmdOutput(t, cmd, "a%20b%26c%2F%C3%A9\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader("a\n"))
	cmd.SetArgs([]string{"urlencode", "encode", "--keep-newline"})
	assertCmdOutput(t, cmd, "a%0A\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader("a%20b+c\n"))
	cmd.SetArgs([]string{"urlencode", "decode"})
	assertCmdOutput(t, cmd, "a b+c\n")

	cmd = rootCmd(t)
	cmd.SetIn(strings.NewReader("%E0%A4%A"))
	cmd.SetArgs([]string{"urlencode", "decode"})
	assert.Error(t, cmd.Execute())
}

func TestDataURICmd(t *testing.T) {
	fp := writeFile(t, "note.txt", "hi")
	cmd := rootCmd(t)
	cmd.SetArgs([]string{"datauri", fp})
	assertCmdOutput(t, cmd, "data:text/plain;base64,aGk=\n")

	cmd = rootCmd(t)
	cmd.SetArgs([]string{"datauri"})
	assert.Error(t, cmd.Execute())
}
