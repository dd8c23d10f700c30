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

import "context"

type (
	// AccountService is the outbound port to the security/identity service.
	// All methods surface downstream HTTP failures as *RemoteError so callers
	// can branch on the status code; transport failures come back as plain
	// errors. No method retries.
	AccountService interface {
		// Register creates the security record. The downstream response is
		// returned as-is (normalized out of any wrapper shape by the adapter).
		Register(ctx context.Context, payload Payload) (Payload, error)

		// Authenticate exchanges credentials for a token-bearing response.
		Authenticate(ctx context.Context, credentials Payload) (Payload, error)

		// DeleteByUsername removes the security record.
		DeleteByUsername(ctx context.Context, username, token string) (Payload, error)

		// FetchByUsername resolves a single security record. The upstream
		// service only exposes a list endpoint, so the adapter extracts the
		// matching record and reports a 404 RemoteError when it is absent.
		FetchByUsername(ctx context.Context, username, token string) (Payload, error)

		// UpdateByUsername applies a partial update; only the fields present
		// in partial are forwarded.
		UpdateByUsername(ctx context.Context, username string, partial Payload, token string) (Payload, error)
	}

	// ProfileService is the outbound port to the profile service.
	ProfileService interface {
		CreateProfile(ctx context.Context, username string, payload Payload) (Payload, error)
		FetchProfile(ctx context.Context, username string) (Payload, error)

		// UpdateProfile has PUT semantics: full replace, not merge.
		UpdateProfile(ctx context.Context, username string, payload Payload) (Payload, error)
		DeleteProfile(ctx context.Context, username string) error
	}

	// EventPublisher is the best-effort outbound port to the message bus.
	// Implementations must never fail the caller: publish errors are logged
	// and swallowed.
	EventPublisher interface {
		PublishDeletion(ctx context.Context, username, email string)
	}
)
