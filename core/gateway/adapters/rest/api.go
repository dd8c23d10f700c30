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

import "app/core/gateway/domain"

// GatewayAPI implements the HTTP handlers of the gateway. It translates
// requests into orchestrator operations and maps outcomes back onto the
// legacy {error, respuesta} envelope.
type GatewayAPI struct {
	app      *domain.Application
	accounts domain.AccountService
}

// NewGatewayAPI creates the handler set. The account port is taken
// separately because login and the security-only delete proxy it directly,
// without going through a composite operation.
func NewGatewayAPI(app *domain.Application, accounts domain.AccountService) *GatewayAPI {
	return &GatewayAPI{app: app, accounts: accounts}
}
