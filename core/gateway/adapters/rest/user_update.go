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

// UpdateUser handles PUT /api/v1/usuarios/{usuario}: a combined partial
// update routed to one or both downstream services depending on which
// fields the body carries. Security failures abort the whole operation,
// profile failures after a committed security update degrade to a partial
// success.
func (g *GatewayAPI) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.PathValue("usuario")
	slog.InfoContext(ctx, "gateway: composite user update", slog.String("usuario", username))

	token, ok := bearerToken(r)
	if !ok {
		unauthorized(w)
		return
	}

	var body domain.Payload
	if err := serde.ParseJsonBody(r.Body, &body); err != nil {
		envelope(w, http.StatusBadRequest, true, msgBadBody)
		return
	}

	result, err := g.app.UpdateUser(ctx, username, body, token)
	if err != nil {
		slog.ErrorContext(ctx, "composite update failed",
			slog.String("usuario", username), slog.Any("error", err))
		status, msg := remoteFailure(err, msgUpdateFailed)
		envelope(w, status, true, msg)
		return
	}

	// All three keys are always present; untouched sides are empty maps.
	serde.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje":        result.Message,
		"datosSeguridad": result.Security,
		"datosPerfil":    result.Profile,
	})
}
