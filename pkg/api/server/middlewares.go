// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/wrgl/devtools/pkg/api"
)

type Middleware func(h http.Handler) http.Handler

func ApplyMiddlewares(handler http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		handler = m(handler)
	}
	return handler
}

type requestIDKey struct{}

func SetRequestID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
}

func GetRequestID(r *http.Request) string {
	if v := r.Context().Value(requestIDKey{}); v != nil {
		return v.(string)
	}
	return ""
}

// RequestIDMiddleware assigns a random id to each request unless the
// client already sent one, and echoes it in the response headers.
func RequestIDMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(api.HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		rw.Header().Set(api.HeaderRequestID, id)
		handler.ServeHTTP(rw, SetRequestID(r, id))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

type loggingMiddleware struct {
	handler http.Handler
	logger  logr.Logger
}

func (h *loggingMiddleware) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
	h.handler.ServeHTTP(rec, r)
	h.logger.Info("request",
		"method", r.Method,
		"path", r.URL.RequestURI(),
		"status", rec.status,
		"duration", time.Since(start).String(),
		"requestID", GetRequestID(r),
	)
}

func LoggingMiddleware(logger logr.Logger) Middleware {
	return func(handler http.Handler) http.Handler {
		return &loggingMiddleware{handler: handler, logger: logger}
	}
}

type recoveryMiddleware struct {
	handler http.Handler
	logger  logr.Logger
}

func (h *recoveryMiddleware) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	defer func() {
		if v := recover(); v != nil {
			h.logger.Error(fmt.Errorf("%v", v), "panic (recovered)",
				"requestID", GetRequestID(r),
				"stack", string(debug.Stack()),
			)
			SendHTTPError(rw, http.StatusInternalServerError)
		}
	}()
	h.handler.ServeHTTP(rw, r)
}

func RecoveryMiddleware(logger logr.Logger) Middleware {
	return func(handler http.Handler) http.Handler {
		return &recoveryMiddleware{handler: handler, logger: logger}
	}
}

// GzipMiddleware compresses responses for clients that accept gzip.
func GzipMiddleware(handler http.Handler) http.Handler {
	return gzhttp.GzipHandler(handler)
}
