// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package apiserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/wrgl/devtools/pkg/conf"
)

// HTTPServer wraps Server with the middleware stack and the timeouts from
// config.
type HTTPServer struct {
	srv    *http.Server
	logger logr.Logger
}

func NewHandler(c *conf.Config, logger logr.Logger) http.Handler {
	middlewares := []Middleware{
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
	}
	if c.ServerGzip() {
		middlewares = append([]Middleware{GzipMiddleware}, middlewares...)
	}
	middlewares = append(middlewares, RequestIDMiddleware)
	return ApplyMiddlewares(NewServer(c, WithLogger(logger)), middlewares...)
}

func NewHTTPServer(c *conf.Config, logger logr.Logger) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Handler:      NewHandler(c, logger),
			ReadTimeout:  c.ServerReadTimeout(),
			WriteTimeout: c.ServerWriteTimeout(),
		},
		logger: logger,
	}
}

func (s *HTTPServer) Start(addr string) error {
	s.srv.Addr = addr
	s.logger.Info("server started", "addr", addr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *HTTPServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
