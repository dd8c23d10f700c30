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
)

// DeleteUser handles DELETE /api/v1/usuarios/{usuario}: the full removal
// flow covering security record, profile and the deletion event. The error
// mapping matches the security-only endpoint; once the security deletion
// committed the operation reports success regardless of the profile side.
func (g *GatewayAPI) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := r.PathValue("usuario")
	slog.InfoContext(ctx, "gateway: composite user deletion", slog.String("usuario", username))

	token, ok := bearerToken(r)
	if !ok {
		unauthorized(w)
		return
	}

	if err := g.app.DeleteUser(ctx, username, token); err != nil {
		slog.ErrorContext(ctx, "composite deletion failed",
			slog.String("usuario", username), slog.Any("error", err))
		writeDeleteFailure(w, err)
		return
	}

	envelope(w, http.StatusOK, false, msgUserDeleted)
}
