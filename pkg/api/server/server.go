// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/wrgl/devtools/pkg/api"
	"github.com/wrgl/devtools/pkg/api/payload"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/router"
)

var tools = []payload.Tool{
	{Name: "diff", Method: http.MethodPost, Path: api.PathDiff, Description: "Compare two versions of a CSV table by key columns"},
	{Name: "convert", Method: http.MethodPost, Path: api.PathConvert, Description: "Change the separator and quote of a CSV text"},
	{Name: "json", Method: http.MethodPost, Path: api.PathJSON, Description: "Prettify a JSON document"},
	{Name: "regex", Method: http.MethodPost, Path: api.PathRegex, Description: "Pull regex capture groups into CSV"},
	{Name: "base64-encode", Method: http.MethodPost, Path: api.PathBase64Encode, Description: "Encode text to base64"},
	{Name: "base64-decode", Method: http.MethodPost, Path: api.PathBase64Decode, Description: "Decode base64 text"},
	{Name: "urlencode-encode", Method: http.MethodPost, Path: api.PathURLEncode, Description: "Percent-encode a URI component"},
	{Name: "urlencode-decode", Method: http.MethodPost, Path: api.PathURLDecode, Description: "Decode a percent-encoded URI component"},
	{Name: "datauri", Method: http.MethodPost, Path: api.PathDataURI, Description: "Turn a file into a data URI"},
}

type ServerOption func(s *Server)

func WithLogger(logger logr.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock replaces the clock used to name decoded files.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		s.now = now
	}
}

// Server serves every text tool over HTTP. It holds no per-request state,
// so a single instance can serve concurrent requests.
type Server struct {
	c      *conf.Config
	router *router.Router
	logger logr.Logger
	now    func() time.Time
}

func NewServer(c *conf.Config, opts ...ServerOption) *Server {
	if c == nil {
		c = &conf.Config{}
	}
	s := &Server{
		c:      c,
		logger: logr.Discard(),
		now:    time.Now,
	}
	handlers := map[string]http.HandlerFunc{
		api.PathDiff:         s.handleDiff,
		api.PathConvert:      s.handleConvert,
		api.PathJSON:         s.handleJSON,
		api.PathRegex:        s.handleRegex,
		api.PathBase64Encode: s.handleBase64Encode,
		api.PathBase64Decode: s.handleBase64Decode,
		api.PathURLEncode:    s.handleURLEncode,
		api.PathURLDecode:    s.handleURLDecode,
		api.PathDataURI:      s.handleDataURI,
	}
	s.router = router.New()
	s.router.Handle(http.MethodGet, api.PathTools, s.handleTools)
	for _, t := range tools {
		s.router.Handle(t.Method, t.Path, handlers[t.Path])
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithName("apiserver")
	return s
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

func (s *Server) handleTools(rw http.ResponseWriter, r *http.Request) {
	WriteJSON(rw, &payload.ToolsResponse{Tools: tools})
}
