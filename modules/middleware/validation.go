// Copyright 2025 Nguyen Nhat Nguyen
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

package middleware

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	nethttpmiddleware "github.com/oapi-codegen/nethttp-middleware"

	"app/modules/api/serde"
)

// loadSpec parses and caches an embedded OpenAPI document. The cache is
// keyed per call site via sync.OnceValues, so each service loads its spec
// exactly once.
func loadSpec(specFS fs.FS, path string) func() (*openapi3.T, error) {
	return sync.OnceValues(func() (*openapi3.T, error) {
		raw, err := fs.ReadFile(specFS, path)
		if err != nil {
			return nil, err
		}
		loader := openapi3.NewLoader()
		return loader.LoadFromData(raw)
	})
}

// Validation validates incoming requests against an embedded OpenAPI
// document before any handler runs. Validation rejections are written in
// the {error, respuesta} envelope the rest of the API speaks. Bearer
// tokens are deliberately not checked here; the downstream security
// service owns authentication, so the filter runs with a noop
// authenticator.
func Validation(specFS fs.FS, path string) func(http.Handler) http.Handler {
	load := loadSpec(specFS, path)
	spec, err := load()
	if err != nil {
		slog.Error("openapi spec unusable, refusing traffic", slog.Any("error", err))
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeValidationError(w, http.StatusInternalServerError, "Error interno del servidor")
			})
		}
	}

	opts := &nethttpmiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		DoNotValidateServers:  true,
		SilenceServersWarning: true,
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, eopts nethttpmiddleware.ErrorHandlerOpts) {
			status := eopts.StatusCode
			if status == 0 {
				status = http.StatusBadRequest
			}
			slog.DebugContext(ctx, "request validation rejected",
				slog.String("path", r.URL.Path), slog.Any("error", err))
			writeValidationError(w, status, "Cuerpo de la petición inválido")
		},
	}

	return nethttpmiddleware.OapiRequestValidatorWithOptions(spec, opts)
}

func writeValidationError(w http.ResponseWriter, status int, msg string) {
	serde.WriteJSON(w, status, map[string]any{
		"error":     true,
		"respuesta": msg,
	})
}
