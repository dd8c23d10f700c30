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

// UpdateUser partitions body into security and profile sub-payloads and
// applies them in order. Security fields are authoritative: their update
// runs first and its failure aborts the operation before the profile is
// touched. Once the security update succeeded, a profile failure only
// downgrades the result to a partial update.
//
// When only profile fields are present, the actor's permission over username
// is verified through an authenticated account fetch first, because the
// profile service performs no authorization of its own.
func (app *Application) UpdateUser(ctx context.Context, username string, body Payload, token string) (*UpdateResult, error) {
	securityPayload, profilePayload := Partition(body)

	if len(securityPayload) == 0 && len(profilePayload) == 0 {
		return &UpdateResult{
			Message:  MsgNothingToUpdate,
			Security: Payload{},
			Profile:  Payload{},
		}, nil
	}

	securityResp := Payload{}
	if len(securityPayload) > 0 {
		resp, err := app.accounts.UpdateByUsername(ctx, username, securityPayload, token)
		if err != nil {
			slog.ErrorContext(ctx, "security update failed",
				slog.String("usuario", username), slog.Any("error", err))
			return nil, err
		}
		securityResp = resp
		slog.InfoContext(ctx, "security update succeeded", slog.String("usuario", username))
	} else {
		// Profile-only update: the account fetch doubles as the permission
		// check, the security service rejects it with 403/404 when the token
		// has no rights over username.
		if _, err := app.accounts.FetchByUsername(ctx, username, token); err != nil {
			slog.ErrorContext(ctx, "permission check failed before profile update",
				slog.String("usuario", username), slog.Any("error", err))
			return nil, err
		}
	}

	if len(profilePayload) == 0 {
		return &UpdateResult{
			Message:  MsgUpdated,
			Security: securityResp,
			Profile:  Payload{},
		}, nil
	}

	profileResp, err := app.profiles.UpdateProfile(ctx, username, profilePayload)
	if err != nil {
		if len(securityPayload) == 0 {
			// Nothing was committed, so the failure is the outcome.
			slog.ErrorContext(ctx, "profile update failed",
				slog.String("usuario", username), slog.Any("error", err))
			return nil, err
		}
		// The security update already stands; report a partial success.
		slog.WarnContext(ctx, "profile update failed after security update",
			slog.String("usuario", username), slog.Any("error", err))
		return &UpdateResult{
			Message:  MsgPartiallyUpdated,
			Security: securityResp,
			Profile:  Payload{},
		}, nil
	}

	return &UpdateResult{
		Message:  MsgUpdated,
		Security: securityResp,
		Profile:  profileResp,
	}, nil
}
