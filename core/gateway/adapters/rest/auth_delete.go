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
)

// DeleteAccount handles DELETE /api/v1/auth/usuarios/{usuario}: removal of
// the security record only, no profile, no event. Authorization decisions
// (who may delete whom) belong entirely to the security service; the
// gateway just remaps its 403/404 answers onto fixed messages.
func (g *GatewayAPI) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.PathValue("usuario")
	slog.InfoContext(ctx, "gateway: account deletion", slog.String("usuario", username))

	token, ok := bearerToken(r)
	if !ok {
		unauthorized(w)
		return
	}

	record, err := g.accounts.DeleteByUsername(ctx, username, token)
	if err != nil {
		slog.ErrorContext(ctx, "account deletion failed",
			slog.String("usuario", username), slog.Any("error", err))
		writeDeleteFailure(w, err)
		return
	}

	envelope(w, http.StatusOK, false, record)
}

// writeDeleteFailure maps delete-flow downstream failures: 403 and 404 keep
// their status with fixed messages, everything else is a 500.
func writeDeleteFailure(w http.ResponseWriter, err error) {
	switch domain.RemoteStatus(err) {
	case http.StatusForbidden:
		envelope(w, http.StatusForbidden, true, msgDeleteNoPerms)
	case http.StatusNotFound:
		envelope(w, http.StatusNotFound, true, msgUserNotFound)
	default:
		envelope(w, http.StatusInternalServerError, true, msgDeleteFailed)
	}
}
