// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"net/http"
	"strconv"

	"github.com/wrgl/devtools/pkg/api/payload"
	"github.com/wrgl/devtools/pkg/conf"
	"github.com/wrgl/devtools/pkg/csvutil"
	"github.com/wrgl/devtools/pkg/diff"
	"github.com/wrgl/devtools/pkg/session"
)

// csvOptions parses separator and quote names, falling back to the
// configured defaults for empty names.
func (s *Server) csvOptions(sepName, quoteName string) (sep, quote rune, err error) {
	if sepName == "" {
		sepName = s.c.DiffSeparator()
	}
	if quoteName == "" {
		quoteName = s.c.DiffQuote()
	}
	if sep, err = csvutil.ParseSeparator(sepName); err != nil {
		return
	}
	quote, err = csvutil.ParseQuote(quoteName)
	return
}

func (s *Server) duplicatePolicy(name string) (conf.DuplicatePolicy, error) {
	if name == "" {
		return s.c.DuplicateKeys(), nil
	}
	return conf.ParseDuplicatePolicy(name)
}

func (s *Server) handleDiff(rw http.ResponseWriter, r *http.Request) {
	req := &payload.DiffRequest{}
	if !readJSON(rw, r, req) {
		return
	}
	sep, quote, err := s.csvOptions(req.Separator, req.Quote)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	policy, err := s.duplicatePolicy(req.DuplicateKeys)
	if err != nil {
		SendBadRequest(rw, err)
		return
	}
	sum := payload.Checksum(
		req.KeyColumns, req.Previous, req.Current,
		string(sep), string(quote), policy.String(), strconv.FormatBool(req.OnlyDiff),
	)
	etag := strconv.Quote(sum.String())
	if r.Header.Get("If-None-Match") == etag {
		rw.Header().Set("ETag", etag)
		rw.WriteHeader(http.StatusNotModified)
		return
	}

	st := session.State{Separator: sep, Quote: quote, Duplicates: policy}
	for _, a := range []session.Action{
		session.SetKeyColumns{Text: req.KeyColumns},
		session.SetPrevious{Text: req.Previous},
		session.SetCurrent{Text: req.Current},
		session.CalculateDiff{Logger: s.logger},
	} {
		st = session.Reduce(st, a)
	}
	if st.Err != nil {
		SendBadRequest(rw, st.Err)
		return
	}
	if req.OnlyDiff {
		st = session.Reduce(st, session.ToggleShowOnlyDiff{})
	}
	rw.Header().Set("ETag", etag)
	WriteJSON(rw, &payload.DiffResponse{
		Sum: sum,
		Table: &diff.Table{
			Header: st.Table.Header,
			Rows:   st.VisibleRows(),
		},
		Summary: st.Table.Summary(),
		Columns: st.Columns,
	})
}
