// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

// Package router dispatches requests by exact path and method.
package router

import (
	"net/http"
	"sort"
	"strings"
)

// Router matches paths that end with a slash. A request for the same path
// without the trailing slash is redirected.
type Router struct {
	routes map[string]map[string]http.HandlerFunc
}

func New() *Router {
	return &Router{routes: map[string]map[string]http.HandlerFunc{}}
}

func normalize(path string) string {
	if !strings.HasSuffix(path, "/") {
		return path + "/"
	}
	return path
}

// Handle registers h for method and path. It panics if the pair is
// already taken.
func (router *Router) Handle(method, path string, h http.HandlerFunc) {
	path = normalize(path)
	m, ok := router.routes[path]
	if !ok {
		m = map[string]http.HandlerFunc{}
		router.routes[path] = m
	}
	if _, ok := m[method]; ok {
		panic("router: duplicate route " + method + " " + path)
	}
	m[method] = h
}

func methodNotAllowed(rw http.ResponseWriter, m map[string]http.HandlerFunc) {
	allowed := make([]string, 0, len(m))
	for k := range m {
		allowed = append(allowed, k)
	}
	sort.Strings(allowed)
	rw.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(rw, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (router *Router) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	path := normalize(r.URL.Path)
	m, ok := router.routes[path]
	if !ok {
		http.NotFound(rw, r)
		return
	}
	if path != r.URL.Path {
		u := *r.URL
		u.Path = path
		http.Redirect(rw, r, u.String(), http.StatusMovedPermanently)
		return
	}
	h, ok := m[r.Method]
	if !ok {
		methodNotAllowed(rw, m)
		return
	}
	h(rw, r)
}
