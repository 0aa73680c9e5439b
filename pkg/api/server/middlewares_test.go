// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"bytes"
	"compress/gzip"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-logr/stdr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrgl/devtools/pkg/api"
	"github.com/wrgl/devtools/pkg/api/payload"
	"github.com/wrgl/devtools/pkg/conf"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	id := rec.Header().Get(api.HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(api.HeaderRequestID, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(api.HeaderRequestID))
	assert.Equal(t, "abc", seen)
}

func TestLoggingAndRecoveryMiddlewares(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := stdr.New(log.New(buf, "", 0))
	h := ApplyMiddlewares(
		http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			panic("boom")
		}),
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		RequestIDMiddleware,
	)
	req := httptest.NewRequest(http.MethodGet, "/panic/", nil)
	req.Header.Set(api.HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	obj := &payload.Error{}
	decodeResponse(t, rec.Result(), http.StatusInternalServerError, obj)
	assert.Equal(t, "Internal Server Error", obj.Message)

	out := buf.String()
	assert.Contains(t, out, "panic (recovered)")
	assert.Contains(t, out, `"status"=500`)
	assert.Contains(t, out, `"path"="/panic/"`)
	assert.Contains(t, out, `"requestID"="req-1"`)
}

func TestGzipHandler(t *testing.T) {
	h := NewHandler(&conf.Config{}, stdr.New(log.New(io.Discard, "", 0)))
	req := httptest.NewRequest(http.MethodPost, "/base64/encode/", strings.NewReader(
		`{"text":"`+strings.Repeat("abcdefgh", 1000)+`"}`,
	))
	req.Header.Set("Content-Type", api.CTJSON)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.NotEmpty(t, rec.Header().Get(api.HeaderRequestID))
	gzr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	b, err := io.ReadAll(gzr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), `{"result":"YWJjZGVmZ2`))

	no := false
	h = NewHandler(&conf.Config{Server: &conf.Server{Gzip: &no}}, stdr.New(log.New(io.Discard, "", 0)))
	req = httptest.NewRequest(http.MethodPost, "/base64/encode/", strings.NewReader(
		`{"text":"`+strings.Repeat("abcdefgh", 1000)+`"}`,
	))
	req.Header.Set("Content-Type", api.CTJSON)
	req.Header.Set("Accept-Encoding", "gzip")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
}
