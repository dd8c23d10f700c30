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

package downstream

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"app/core/gateway/domain"
)

// ProfileClient talks to the profile service. Profiles are addressed by
// username directly under the base path.
type ProfileClient struct {
	rest restClient
}

var _ domain.ProfileService = (*ProfileClient)(nil)

func NewProfileClient(cfg Config) *ProfileClient {
	return &ProfileClient{rest: newRestClient(cfg)}
}

func (c *ProfileClient) CreateProfile(ctx context.Context, username string, payload domain.Payload) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: create profile", slog.String("usuario", username))
	return c.rest.do(ctx, http.MethodPost, "/"+url.PathEscape(username), nil, "", payload)
}

func (c *ProfileClient) FetchProfile(ctx context.Context, username string) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: fetch profile", slog.String("usuario", username))
	return c.rest.do(ctx, http.MethodGet, "/"+url.PathEscape(username), nil, "", nil)
}

// UpdateProfile has PUT semantics downstream: the payload replaces the
// stored profile, it is not merged into it.
func (c *ProfileClient) UpdateProfile(ctx context.Context, username string, payload domain.Payload) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: update profile", slog.String("usuario", username))
	return c.rest.do(ctx, http.MethodPut, "/"+url.PathEscape(username), nil, "", payload)
}

func (c *ProfileClient) DeleteProfile(ctx context.Context, username string) error {
	slog.InfoContext(ctx, "proxy: delete profile", slog.String("usuario", username))
	_, err := c.rest.do(ctx, http.MethodDelete, "/"+url.PathEscape(username), nil, "", nil)
	return err
}
