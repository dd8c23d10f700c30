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

	"app/core/gateway/domain"
	"app/modules/api/serde"
)

// Register handles POST /api/v1/auth/registro: composite registration of the
// security record plus an optional best-effort profile. Always 201 once the
// security registration committed, whatever happened to the profile.
func (g *GatewayAPI) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slog.InfoContext(ctx, "gateway: user registration")

	var body domain.Payload
	if err := serde.ParseJsonBody(r.Body, &body); err != nil {
		envelope(w, http.StatusBadRequest, true, msgBadBody)
		return
	}

	result, err := g.app.RegisterUser(ctx, body)
	if err != nil {
		status, msg := remoteFailure(err, msgRegisterFailed)
		envelope(w, status, true, msg)
		return
	}

	if !result.ProfileAttempted {
		// Plain security registration: the downstream body passes through.
		serde.WriteJSON(w, http.StatusCreated, result.Security)
		return
	}

	resp := map[string]any{
		"error":          false,
		"respuesta":      result.Message,
		"datosSeguridad": result.Security,
	}
	if result.Profile != nil {
		resp["datosPerfil"] = result.Profile
	}
	serde.WriteJSON(w, http.StatusCreated, resp)
}
