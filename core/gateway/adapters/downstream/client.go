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

// Package downstream holds the outbound HTTP adapters for the two services
// the gateway composes: the security/identity service and the profile
// service. Downstream 4xx/5xx responses come back as *domain.RemoteError
// with the raw body attached; there are no retries.
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"app/core/gateway/domain"
)

// Config describes one downstream service endpoint.
type Config struct {
	URL      string `env:"URL,required"`
	BasePath string `env:"BASE_PATH"`

	// Timeout bounds every single call to this service. The zero value is
	// replaced with a 10s default rather than an unbounded client.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type restClient struct {
	http *http.Client
	base string
}

func newRestClient(cfg Config) restClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return restClient{
		http: &http.Client{Timeout: timeout},
		base: strings.TrimRight(cfg.URL, "/") + cfg.BasePath,
	}
}

// do performs one JSON round trip. A nil body sends no payload. The token,
// when non-empty, goes out as a bearer Authorization header. Responses with
// an empty body decode to an empty Payload.
func (c restClient) do(ctx context.Context, method, path string, query url.Values, token string, body any) (domain.Payload, error) {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &domain.RemoteError{Status: resp.StatusCode, Body: raw}
	}

	payload := domain.Payload{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	return payload, nil
}

// unwrapRecord normalizes the historical response-shape variants of the
// security service. Records sometimes arrive nested under a "respuesta"
// wrapper; callers above this boundary always see the inner object.
func unwrapRecord(resp domain.Payload) domain.Payload {
	if inner, ok := resp["respuesta"].(map[string]any); ok {
		return domain.Payload(inner)
	}
	return resp
}
