// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiclient "github.com/wrgl/devtools/pkg/api/client"
	"github.com/wrgl/devtools/pkg/api/payload"
	apiserver "github.com/wrgl/devtools/pkg/api/server"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/diff"
)

func newClient(t *testing.T) *apiclient.Client {
	t.Helper()
	ts := httptest.NewServer(apiserver.NewHandler(&conf.Config{}, logr.Discard()))
	t.Cleanup(ts.Close)
	c, err := apiclient.NewClient(ts.URL+"/", logr.Discard())
	require.NoError(t, err)
	return c
}

func TestClientDiff(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()
	dr, err := c.Diff(ctx, &payload.DiffRequest{
		KeyColumns: "id",
		Previous:   "id,v\n1,a\n",
		Current:    "id,v\n1,b\n2,c\n",
	})
	require.NoError(t, err)
	assert.Equal(t, diff.Summary{Added: 1, Modified: 1}, dr.Summary)
	assert.NotNil(t, dr.Sum)

	_, err = c.Diff(ctx, &payload.DiffRequest{Previous: "\"a"})
	var httpErr *apiclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	require.NotNil(t, httpErr.Body)
	assert.Equal(t, "previous", httpErr.Body.Input)
	assert.Equal(t, &payload.CSVLocation{StartLine: 1, Line: 1, Column: 1}, httpErr.Body.CSV)
}

func TestClientTextTools(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	tr, err := c.Tools(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tr.Tools)

	res, err := c.Convert(ctx, &payload.ConvertRequest{Text: "a,b\n", To: "tab"})
	require.NoError(t, err)
	assert.Equal(t, "a\tb\n", res.Result)

	res, err = c.PrettifyJSON(ctx, &payload.JSONRequest{Text: `[1]`, Indent: 1})
	require.NoError(t, err)
	assert.Equal(t, "[\n 1\n]", res.Result)

	res, err = c.PullByRegex(ctx, &payload.RegexRequest{Pattern: `(\d+)`, Text: "a1b22"})
	require.NoError(t, err)
	assert.Equal(t, "1\n22\n", res.Result)

	res, err = c.Base64Encode(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, "aGk=", res.Result)

	res, err = c.Base64Decode(ctx, "aGk=")
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Result)
	assert.Regexp(t, `^decoded-base64-\d{14}\.bin$`, res.Filename)

	res, err = c.URLEncode(ctx, "a b")
	require.NoError(t, err)
	assert.Equal(t, "a%20b", res.Result)

	res, err = c.URLDecode(ctx, "a%20b")
	require.NoError(t, err)
	assert.Equal(t, "a b", res.Result)

	res, err = c.DataURI(ctx, "x.json", []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, "data:application/json;base64,e30=", res.Result)

	_, err = c.URLDecode(ctx, "%")
	assert.Error(t, err)
}
