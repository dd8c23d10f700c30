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

// RegisterUser registers the security record and, when profile fields were
// supplied, creates the profile best-effort. The security registration is
// authoritative: its failure aborts the whole operation and the profile is
// never touched. A profile-creation failure after a committed registration
// still counts as overall success; the caller is told the profile can be
// created later.
func (app *Application) RegisterUser(ctx context.Context, body Payload) (*RegisterResult, error) {
	securityPayload := Payload{
		"usuario":        body["usuario"],
		"correo":         body["correo"],
		"clave":          body["clave"],
		"numeroTelefono": body["numeroTelefono"],
	}
	profilePayload := ProfileSubset(body)
	username, _ := body["usuario"].(string)

	securityResp, err := app.accounts.Register(ctx, securityPayload)
	if err != nil {
		slog.ErrorContext(ctx, "security registration failed", slog.Any("error", err))
		return nil, err
	}

	if len(profilePayload) == 0 || username == "" {
		return &RegisterResult{Security: securityResp}, nil
	}

	slog.InfoContext(ctx, "creating profile", slog.String("usuario", username))
	profileResp, err := app.profiles.CreateProfile(ctx, username, profilePayload)
	if err != nil {
		// The account already exists; the profile can be retried later.
		slog.WarnContext(ctx, "user registered but profile creation failed",
			slog.String("usuario", username), slog.Any("error", err))
		return &RegisterResult{
			Security:         securityResp,
			ProfileAttempted: true,
			Message:          MsgRegisteredNoProfile,
		}, nil
	}

	return &RegisterResult{
		Security:         securityResp,
		Profile:          profileResp,
		ProfileAttempted: true,
		Message:          MsgRegistered,
	}, nil
}
