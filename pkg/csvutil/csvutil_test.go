// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for i, c := range []struct {
		Text  string
		Sep   rune
		Quote rune
		Rows  [][]string
	}{
		{"", Comma, DoubleQuote, [][]string{}},
		{"a,b,c", Comma, DoubleQuote, [][]string{{"a", "b", "c"}}},
		{"a,b\n1,2\n", Comma, DoubleQuote, [][]string{{"a", "b"}, {"1", "2"}}},
		{"a,b\r\n1,2\r\n3\r4", Comma, DoubleQuote, [][]string{{"a", "b"}, {"1", "2"}, {"3"}, {"4"}}},
		{"a,\n,b", Comma, DoubleQuote, [][]string{{"a", ""}, {"", "b"}}},
		{`"a,b","c""d"`, Comma, DoubleQuote, [][]string{{"a,b", `c"d`}}},
		{"\"multi\nline\",x\ny,z", Comma, DoubleQuote, [][]string{{"multi\nline", "x"}, {"y", "z"}}},
		{`""`, Comma, DoubleQuote, [][]string{{""}}},
		{"a\tb,c\n1\t2", Tab, DoubleQuote, [][]string{{"a", "b,c"}, {"1", "2"}}},
		{`'a''b',"c"`, Comma, SingleQuote, [][]string{{"a'b", `"c"`}}},
		{`a"b,c`, Comma, DoubleQuote, [][]string{{`a"b`, "c"}}},
		{"\"ab\"cd,e", Comma, DoubleQuote, [][]string{{"abcd", "e"}}},
		{"\n", Comma, DoubleQuote, [][]string{{""}}},
	} {
		rows, err := Parse(c.Text, c.Sep, c.Quote)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, c.Rows, rows, "case %d", i)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	_, err := Parse("a,b\n1,\"2\n3,4", Comma, DoubleQuote)
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.StartLine)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 3, pe.Column)
	assert.True(t, errors.Is(err, ErrUnterminatedQuote))
	assert.Equal(t, "parse error on line 2, column 3: unterminated quoted field", err.Error())
}

func TestStringify(t *testing.T) {
	for i, c := range []struct {
		Rows  [][]string
		Sep   rune
		Quote rune
		Text  string
	}{
		{[][]string{{"a", "b"}, {"1", "2"}}, Comma, DoubleQuote, "a,b\n1,2\n"},
		{[][]string{{"a,b", `c"d`, "e\nf"}}, Comma, DoubleQuote, "\"a,b\",\"c\"\"d\",\"e\nf\"\n"},
		{[][]string{{"a,b", "c\td"}}, Tab, DoubleQuote, "a,b\t\"c\td\"\n"},
		{[][]string{{"it's", `"q"`}}, Comma, SingleQuote, "'it''s',\"q\"\n"},
	} {
		assert.Equal(t, c.Text, Stringify(c.Rows, c.Sep, c.Quote), "case %d", i)
	}
}

func TestStringifyParseRoundTrip(t *testing.T) {
	rows := [][]string{
		{"key1", "key2", "value"},
		{"a,b", "it's", "x\"y"},
		{"", "line\nbreak", "\t"},
	}
	for _, sep := range []rune{Comma, Tab} {
		for _, quote := range []rune{DoubleQuote, SingleQuote} {
			parsed, err := Parse(Stringify(rows, sep, quote), sep, quote)
			require.NoError(t, err)
			assert.Equal(t, rows, parsed)
		}
	}
}

func TestConvert(t *testing.T) {
	s, err := Convert("key1,key2\n\"a\tb\",c\n", Comma, DoubleQuote, Tab, DoubleQuote)
	require.NoError(t, err)
	assert.Equal(t, "key1\tkey2\n\"a\tb\"\tc\n", s)

	s, err = Convert("a\t\"b,c\"\n", Tab, DoubleQuote, Comma, SingleQuote)
	require.NoError(t, err)
	assert.Equal(t, "a,'b,c'\n", s)

	_, err = Convert(`"abc`, Comma, DoubleQuote, Tab, DoubleQuote)
	assert.True(t, errors.Is(err, ErrUnterminatedQuote))
}

func TestParseSeparatorAndQuote(t *testing.T) {
	for s, r := range map[string]rune{"": Comma, ",": Comma, "comma": Comma, "TAB": Tab, "\t": Tab, `\t`: Tab} {
		v, err := ParseSeparator(s)
		require.NoError(t, err)
		assert.Equal(t, r, v, "separator %q", s)
	}
	_, err := ParseSeparator(";")
	assert.True(t, errors.Is(err, ErrInvalidSeparator))

	for s, r := range map[string]rune{"": DoubleQuote, `"`: DoubleQuote, "double": DoubleQuote, "'": SingleQuote, "single": SingleQuote} {
		v, err := ParseQuote(s)
		require.NoError(t, err)
		assert.Equal(t, r, v, "quote %q", s)
	}
	_, err = ParseQuote("`")
	assert.True(t, errors.Is(err, ErrInvalidQuote))

	assert.Equal(t, "tab", SeparatorName(Tab))
	assert.Equal(t, "comma", SeparatorName(Comma))
	assert.Equal(t, "single", QuoteName(SingleQuote))
	assert.Equal(t, "double", QuoteName(DoubleQuote))
}
