// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"net/http"

	"github.com/wrgl/devtools/pkg/api"
	"github.com/wrgl/devtools/pkg/api/payload"
	"github.com/wrgl/devtools/pkg/codec"
	"github.com/wrgl/devtools/pkg/csvutil"
)

func (s *Server) handleConvert(rw http.ResponseWriter, r *http.Request) {
	req := &payload.ConvertRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	fromSep, fromQuote, err := s.csvOptions(req.From, req.FromQuote)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	toSep, toQuote, err := s.csvOptions(req.To, req.ToQuote)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	res, err := csvutil.Convert(req.Text, fromSep, fromQuote, toSep, toQuote)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: res})
}

func (s *Server) handleJSON(rw http.ResponseWriter, r *http.Request) {
	req := &payload.JSONRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	if req.Indent == 0 {
		req.Indent = api.DefaultJSONIndent
	}
	res, err := codec.PrettifyJSON(req.Text, req.Indent)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: res})
}

func (s *Server) handleRegex(rw http.ResponseWriter, r *http.Request) {
	req := &payload.RegexRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	sep, quote, err := s.csvOptions(req.Separator, req.Quote)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	rows, err := codec.PullByRegex(req.Pattern, req.Text)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: csvutil.Stringify(rows, sep, quote)})
}

func (s *Server) handleBase64Encode(rw http.ResponseWriter, r *http.Request) {
	req := &payload.TextRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: codec.Base64Encode([]byte(req.Text))})
}

func (s *Server) handleBase64Decode(rw http.ResponseWriter, r *http.Request) {
	req := &payload.TextRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	b, err := codec.Base64Decode(req.Text)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	WriteJSON(rw, &payload.TextResponse{
		Result:   string(b),
		Filename: codec.DecodedFilename(s.now()),
	})
}

func (s *Server) handleURLEncode(rw http.ResponseWriter, r *http.Request) {
	req := &payload.TextRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: codec.URIComponentEncode(req.Text)})
}

func (s *Server) handleURLDecode(rw http.ResponseWriter, r *http.Request) {
	req := &payload.TextRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	res, err := codec.URIComponentDecode(req.Text)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: res})
}

// handleDataURI reads the raw file from the request body. Query parameter
// "name" gives the file name used to guess the media type.
func (s *Server) handleDataURI(rw http.ResponseWriter, r *http.Request) {
	b, ok := readBody(rw, r)
	if !ok {
		return
	}
	WriteJSON(rw, &payload.TextResponse{Result: codec.DataURI(r.URL.Query().Get("name"), b)})
}
