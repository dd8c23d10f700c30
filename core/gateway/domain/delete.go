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

package domain

import (
	"context"
	"log/slog"
)

// DeleteUser removes the security record first (the authoritative delete),
// then the profile best-effort, then publishes the deletion event. The
// event goes out once per attempt regardless of outcome: with the email
// extracted from the security response on success, with an empty email when
// the security delete failed. A profile 404 means the profile never existed
// and is an acceptable end state, not an error.
func (app *Application) DeleteUser(ctx context.Context, username, token string) error {
	securityResp, err := app.accounts.DeleteByUsername(ctx, username, token)
	if err != nil {
		slog.ErrorContext(ctx, "security delete failed",
			slog.String("usuario", username), slog.Any("error", err))
		app.events.PublishDeletion(ctx, username, "")
		return err
	}

	if err := app.profiles.DeleteProfile(ctx, username); err != nil {
		if IsRemoteNotFound(err) {
			slog.InfoContext(ctx, "no profile to delete", slog.String("usuario", username))
		} else {
			// The security record is already gone, which is the source of
			// truth; the leftover profile is logged, not surfaced.
			slog.WarnContext(ctx, "profile delete failed",
				slog.String("usuario", username), slog.Any("error", err))
		}
	}

	app.events.PublishDeletion(ctx, username, ExtractEmail(securityResp))
	return nil
}

// ExtractEmail pulls the account email out of a security-service response.
// Historical response shapes put it either at the top level or nested under
// a "respuesta" wrapper; both are tried, falling back to the empty string.
func ExtractEmail(securityResp Payload) string {
	if wrapped, ok := securityResp["respuesta"].(map[string]any); ok {
		if correo, ok := wrapped["correo"].(string); ok {
			return correo
		}
	}
	if correo, ok := securityResp["correo"].(string); ok {
		return correo
	}
	return ""
}
