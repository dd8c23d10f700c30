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

// AccountClient talks to the security/identity service.
type AccountClient struct {
	rest restClient
}

var _ domain.AccountService = (*AccountClient)(nil)

func NewAccountClient(cfg Config) *AccountClient {
	return &AccountClient{rest: newRestClient(cfg)}
}

func (c *AccountClient) Register(ctx context.Context, payload domain.Payload) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: register account")
	return c.rest.do(ctx, http.MethodPost, "/usuarios", nil, "", payload)
}

func (c *AccountClient) Authenticate(ctx context.Context, credentials domain.Payload) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: authenticate")
	return c.rest.do(ctx, http.MethodPost, "/sesiones", nil, "", credentials)
}

func (c *AccountClient) DeleteByUsername(ctx context.Context, username, token string) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: delete account", slog.String("usuario", username))
	resp, err := c.rest.do(ctx, http.MethodDelete, "/usuarios/"+url.PathEscape(username), nil, token, nil)
	if err != nil {
		return nil, err
	}
	return unwrapRecord(resp), nil
}

// FetchByUsername resolves one account record. The security service has no
// single-resource GET yet, only a paginated list, so the first page is
// requested and the matching record extracted here; the raw page never
// leaves this client. An absent record is reported as a 404 RemoteError.
func (c *AccountClient) FetchByUsername(ctx context.Context, username, token string) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: fetch account", slog.String("usuario", username))
	page, err := c.rest.do(ctx, http.MethodGet, "/usuarios", url.Values{"pagina": {"0"}}, token, nil)
	if err != nil {
		return nil, err
	}
	if record, ok := findRecord(page, username); ok {
		return record, nil
	}
	return nil, &domain.RemoteError{Status: http.StatusNotFound}
}

func (c *AccountClient) UpdateByUsername(ctx context.Context, username string, partial domain.Payload, token string) (domain.Payload, error) {
	slog.InfoContext(ctx, "proxy: update account", slog.String("usuario", username))
	resp, err := c.rest.do(ctx, http.MethodPatch, "/usuarios/"+url.PathEscape(username), nil, token, partial)
	if err != nil {
		return nil, err
	}
	return unwrapRecord(resp), nil
}

// findRecord locates the record for username inside a list-endpoint page.
// The page shape varies: the user list may sit under "respuesta" or
// "usuarios", and a single-record response may be the page itself.
func findRecord(page domain.Payload, username string) (domain.Payload, bool) {
	for _, key := range []string{"respuesta", "usuarios"} {
		list, ok := page[key].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if name, _ := record["usuario"].(string); name == username {
				return domain.Payload(record), true
			}
		}
	}
	if name, _ := unwrapRecord(page)["usuario"].(string); name == username {
		return unwrapRecord(page), true
	}
	return nil, false
}
