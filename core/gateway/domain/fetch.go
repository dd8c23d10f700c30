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
	"sync"
)

// FetchUser fetches the security record and the profile concurrently, each
// with its own error isolation, and merges them. A failed sub-fetch only
// omits its side of the result; the operation itself never fails.
func (app *Application) FetchUser(ctx context.Context, username, token string) *FetchResult {
	var (
		wg       sync.WaitGroup
		security Payload
		profile  Payload
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		resp, err := app.accounts.FetchByUsername(ctx, username, token)
		if err != nil {
			slog.WarnContext(ctx, "security fetch failed",
				slog.String("usuario", username), slog.Any("error", err))
			return
		}
		security = resp
	}()
	go func() {
		defer wg.Done()
		resp, err := app.profiles.FetchProfile(ctx, username)
		if err != nil {
			slog.WarnContext(ctx, "profile fetch failed",
				slog.String("usuario", username), slog.Any("error", err))
			return
		}
		if len(resp) > 0 {
			profile = resp
		}
	}()
	wg.Wait()

	return &FetchResult{
		Username: username,
		Security: security,
		Profile:  profile,
	}
}
