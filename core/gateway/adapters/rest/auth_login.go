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

// Login handles POST /api/v1/auth/login. The gateway only proxies: any
// downstream failure, typed or not, is an authentication failure. Typed
// failures keep the downstream status, everything else is a 401.
func (g *GatewayAPI) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slog.InfoContext(ctx, "gateway: user authentication")

	var credentials domain.Payload
	if err := serde.ParseJsonBody(r.Body, &credentials); err != nil {
		envelope(w, http.StatusBadRequest, true, msgBadBody)
		return
	}

	resp, err := g.accounts.Authenticate(ctx, credentials)
	if err != nil {
		slog.ErrorContext(ctx, "authentication failed", slog.Any("error", err))
		if status := domain.RemoteStatus(err); status != 0 {
			_, msg := remoteFailure(err, msgBadCredentials)
			envelope(w, status, true, msg)
			return
		}
		envelope(w, http.StatusUnauthorized, true, msgBadCredentials)
		return
	}

	serde.WriteJSON(w, http.StatusOK, resp)
}
