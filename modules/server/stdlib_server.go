// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

const maxTCPPort = 1 << 16 // ports are a 16-bit field

// shutdownGrace bounds how long in-flight downstream calls may finish once
// the stop signal arrives.
const shutdownGrace = 10 * time.Second

type (
	Server struct {
		server *http.Server
		mux    *http.ServeMux
		addr   string

		// global middleware chain applied around the mux
		middlewares []func(http.Handler) http.Handler

		// registrable services that mount routes and provide their own middlewares
		services []RegistrableService
	}

	ServerOptions func(*Server)
)

func WithWriteTimeout(t time.Duration) ServerOptions {
	return func(s *Server) {
		if t != 0 {
			s.server.WriteTimeout = t
		} else {
			s.server.WriteTimeout = 10 * time.Second
		}
	}
}

func WithReadTimeout(t time.Duration) ServerOptions {
	return func(s *Server) {
		if t != 0 {
			s.server.ReadTimeout = t
		} else {
			s.server.ReadTimeout = 10 * time.Second
		}
	}
}

// WithServices registers a collection of self-contained, registrable services.
func WithServices(svcs ...RegistrableService) ServerOptions {
	return func(s *Server) {
		if len(svcs) > 0 {
			s.services = append(s.services, svcs...)
		}
	}
}

// WithGlobalMiddlewares registers global middlewares wrapping the entire
// server mux, applied in the order provided. Service-required middlewares
// (the gateway's request validation) are appended after these, so recovery
// and metrics registered here see validation rejections too.
func WithGlobalMiddlewares(mw ...func(http.Handler) http.Handler) ServerOptions {
	return func(s *Server) {
		if len(mw) == 0 {
			return
		}
		s.middlewares = append(s.middlewares, mw...)
	}
}

// New builds the gateway's HTTP server: a plain ServeMux with the services'
// routes mounted and the middleware chain composed around it.
func New(host string, port int, opts ...ServerOptions) (*Server, error) {
	if len(host) == 0 {
		slog.Warn("empty host, binding to all interfaces")
		host = "0.0.0.0"
	}
	if port <= 0 || port > maxTCPPort {
		return nil, fmt.Errorf("bad port %d", port)
	}

	s := &Server{addr: net.JoinHostPort(host, strconv.Itoa(port))}
	s.server = &http.Server{Addr: s.addr}
	// Allocate the mux before applying options so options can register routes.
	s.mux = http.NewServeMux()

	for _, opt := range opts {
		opt(s)
	}

	for _, svc := range s.services {
		svc.Register(s.mux)
		s.middlewares = append(s.middlewares, svc.Middlewares()...)
		slog.Info("mounted service", slog.String("type", fmt.Sprintf("%T", svc)))
	}

	// Middlewares wrap the mux in declaration order: the first registered
	// middleware sees the request first.
	handler := http.Handler(s.mux)
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		handler = s.middlewares[i](handler)
	}
	s.server.Handler = handler

	return s, nil
}

// Run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests. The drain deadline runs on a fresh context because
// ctx is already cancelled on the shutdown path.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "gateway listening", slog.String("addr", s.addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		slog.ErrorContext(ctx, "server error", slog.Any("error", err))
		return err
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down gateway", slog.Duration("grace", shutdownGrace))
	dCtx, dCancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer dCancel()
	return s.server.Shutdown(dCtx)
}
