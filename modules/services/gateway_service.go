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

package services

import (
	"io/fs"
	"net/http"

	"app/core/gateway/adapters/rest"
	"app/modules/middleware"
	"app/modules/server"
)

var _ server.RegistrableService = (*GatewayAPIService)(nil)

// GatewayAPIService mounts the gateway routes and the request validation
// middleware that guards them.
type GatewayAPIService struct {
	api      *rest.GatewayAPI
	specFS   fs.FS
	specPath string
}

func NewGatewayAPIService(api *rest.GatewayAPI, specFS fs.FS, specPath string) *GatewayAPIService {
	return &GatewayAPIService{api: api, specFS: specFS, specPath: specPath}
}

func (s *GatewayAPIService) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/registro", s.api.Register)
	mux.HandleFunc("POST /api/v1/auth/login", s.api.Login)
	mux.HandleFunc("DELETE /api/v1/auth/usuarios/{usuario}", s.api.DeleteAccount)

	mux.HandleFunc("GET /api/v1/usuarios/{usuario}", s.api.FetchUser)
	mux.HandleFunc("PUT /api/v1/usuarios/{usuario}", s.api.UpdateUser)
	mux.HandleFunc("DELETE /api/v1/usuarios/{usuario}", s.api.DeleteUser)

	mux.HandleFunc("GET /health", s.api.Health)
}

// Middlewares returns the OpenAPI validation layer required by the gateway
// routes.
func (s *GatewayAPIService) Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.Validation(s.specFS, s.specPath),
	}
}
