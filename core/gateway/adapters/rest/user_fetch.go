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

package rest

import (
	"log/slog"
	"net/http"

	"app/modules/api/serde"
)

// FetchUser handles GET /api/v1/usuarios/{usuario}: the composite view of a
// user. Both sub-fetches are best effort, so this endpoint always answers
// 200 once the token check passes; a failed side is simply absent from the
// response body.
func (g *GatewayAPI) FetchUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.PathValue("usuario")
	slog.InfoContext(ctx, "gateway: composite user fetch", slog.String("usuario", username))

	token, ok := bearerToken(r)
	if !ok {
		unauthorized(w)
		return
	}

	result := g.app.FetchUser(ctx, username, token)

	resp := map[string]any{"usuario": result.Username}
	if result.Security != nil {
		resp["datosSeguridad"] = result.Security
	}
	if result.Profile != nil {
		resp["perfil"] = result.Profile
	}
	serde.WriteJSON(w, http.StatusOK, resp)
}
