// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package csvmod

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// KeyColumn is the name of the first column of generated tables. It holds
// unique integers starting from 1.
const KeyColumn = "id"

type column struct {
	name  string
	value func(f *gofakeit.Faker) string
}

var columnPool = []column{
	{"name", func(f *gofakeit.Faker) string { return f.Name() }},
	{"email", func(f *gofakeit.Faker) string { return f.Email() }},
	{"city", func(f *gofakeit.Faker) string { return f.City() }},
	{"country", func(f *gofakeit.Faker) string { return f.Country() }},
	{"company", func(f *gofakeit.Faker) string { return f.Company() }},
	{"job_title", func(f *gofakeit.Faker) string { return f.JobTitle() }},
	{"phone", func(f *gofakeit.Faker) string { return f.Phone() }},
	{"username", func(f *gofakeit.Faker) string { return f.Username() }},
	{"birth_date", func(f *gofakeit.Faker) string { return f.Date().Format("2006-01-02") }},
	{"score", func(f *gofakeit.Faker) string { return strconv.Itoa(f.Number(0, 1000)) }},
	{"active", func(f *gofakeit.Faker) string { return strconv.FormatBool(f.Bool()) }},
	{"note", func(f *gofakeit.Faker) string { return f.Sentence(6) }},
}

// columnName returns the name of the i-th non-key column.
func columnName(i int) string {
	c := columnPool[i%len(columnPool)]
	if n := i / len(columnPool); n > 0 {
		return fmt.Sprintf("%s_%d", c.name, n+1)
	}
	return c.name
}

// fakeValue returns a fake value fitting the column name. Unknown columns
// get a random word.
func fakeValue(f *gofakeit.Faker, name string) string {
	for _, c := range columnPool {
		if name == c.name || strings.HasPrefix(name, c.name+"_") {
			return c.value(f)
		}
	}
	return f.Word()
}

// Generate returns a header plus nRows rows of nCols columns. nCols
// includes the key column.
func Generate(f *gofakeit.Faker, nRows, nCols int) [][]string {
	if nCols < 1 {
		nCols = 1
	}
	rows := make([][]string, nRows+1)
	rows[0] = make([]string, nCols)
	rows[0][0] = KeyColumn
	for j := 1; j < nCols; j++ {
		rows[0][j] = columnName(j - 1)
	}
	for i := 1; i <= nRows; i++ {
		row := make([]string, nCols)
		row[0] = strconv.Itoa(i)
		for j := 1; j < nCols; j++ {
			row[j] = fakeValue(f, rows[0][j])
		}
		rows[i] = row
	}
	return rows
}
