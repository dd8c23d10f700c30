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

// Package appconfig assembles the process configuration from the
// environment.
package appconfig

import (
	"github.com/caarlos0/env/v11"

	"app/core/gateway/adapters/downstream"
	"app/core/gateway/adapters/messaging"
	"app/modules/server"
	"app/modules/telemetry"
)

type Config struct {
	Env string `env:"ENV" envDefault:"dev"`

	Server server.Config `envPrefix:"SERVER_"`

	// --- downstream services ----
	Accounts downstream.Config `envPrefix:"DOMAIN_SERVICE_"`
	Profiles downstream.Config `envPrefix:"PROFILE_SERVICE_"`

	// --- message bus ----
	Events messaging.Config `envPrefix:"NATS_"`

	// --- otel ----
	// since it has special naming conventions, we do not use prefix here
	Otel telemetry.Config
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
