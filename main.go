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

package main

import (
	"context"
	"embed"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"app/core/gateway/adapters/downstream"
	"app/core/gateway/adapters/messaging"
	"app/core/gateway/adapters/rest"
	"app/core/gateway/domain"
	"app/modules/api/serde"
	"app/modules/appconfig"
	"app/modules/clock"
	"app/modules/middleware"
	"app/modules/server"
	"app/modules/services"
	"app/modules/telemetry"
)

// OpenAPI spec for request validation at runtime
//
//go:embed modules/oapi/*.yaml
var validationSpecFS embed.FS

func main() {
	exitCode := 0
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	// cancel the context when these signals occur
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	// manual dependency injections, imo there's no need to over-engineer with DI frameworks like Fx or Wire
	slog.SetLogLoggerLevel(slog.LevelDebug)

	clk := clock.RealClock{}

	// --- application config ----
	appConfig, err := appconfig.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	// --- infrastructure ---

	otelShutdown, err := telemetry.Init(ctx, appConfig.Otel)
	if err != nil {
		slog.ErrorContext(ctx, "telemetry not properly configured", slog.Any("error", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := otelShutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// Event publication is best effort, so a dead broker must not keep the
	// gateway from serving traffic.
	natsConn, err := messaging.Connect(appConfig.Events)
	if err != nil {
		slog.WarnContext(ctx, "message bus unavailable, deletion events will be dropped",
			slog.Any("error", err))
	}
	defer func() {
		if natsConn != nil {
			natsConn.Close()
		}
	}()

	accounts := downstream.NewAccountClient(appConfig.Accounts)
	profiles := downstream.NewProfileClient(appConfig.Profiles)
	events := messaging.NewPublisher(messaging.Wrap(natsConn), appConfig.Events.Subject, clk)

	// --- application layer ---

	app := domain.NewApp(accounts, profiles, events)
	api := rest.NewGatewayAPI(app, accounts)

	httpMetrics, err := telemetry.NewHTTPMetrics(appConfig.Otel.ServiceName)
	if err != nil {
		slog.WarnContext(ctx, "failed to initialize HTTP metrics, continuing without metrics", slog.Any("error", err))
		httpMetrics = nil
	}

	gatewaySvc := services.NewGatewayAPIService(
		api,
		validationSpecFS,
		"modules/oapi/openapi-gateway.yaml",
	)

	srv, err := server.New(
		appConfig.Server.Host, appConfig.Server.Port,
		server.WithReadTimeout(appConfig.Server.ReadTimeout),
		server.WithWriteTimeout(appConfig.Server.WriteTimeout),
		server.WithServices(gatewaySvc),
		server.WithGlobalMiddlewares(
			middleware.Telemetry(httpMetrics),
			middleware.Recovery(func(w http.ResponseWriter, r *http.Request, recovered any) {
				serde.WriteJSON(w, http.StatusInternalServerError, map[string]any{
					"error":     true,
					"respuesta": "Error interno del servidor",
				})
			}),
		),
	)
	if err != nil {
		slog.ErrorContext(ctx, "init server error", slog.Any("error", err))
		exitCode = 1
		return
	}

	if err := srv.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "running server error", slog.Any("error", err))
		exitCode = 1
		return
	}
}
