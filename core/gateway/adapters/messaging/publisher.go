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

// Package messaging publishes domain events to the message bus. Publication
// is strictly best-effort: no error ever reaches the caller, the enclosing
// operation's outcome must not depend on the bus being up.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"app/core/gateway/domain"
	"app/modules/clock"

	"github.com/gofrs/uuid/v5"
	"github.com/nats-io/nats.go"
)

const ActionUserDeleted = "ELIMINACION_USUARIO"

type Config struct {
	URL string `env:"URL" envDefault:"nats://127.0.0.1:4222"`

	// Subject carries the historical exchange name and routing key of the
	// deletion event ("dominio.events" + "auth.deleted").
	Subject string `env:"SUBJECT" envDefault:"dominio.events.auth.deleted"`
}

// Connect opens the bus connection. Callers may treat a failure as
// non-fatal and hand the Publisher a nil connection; it degrades to
// logging.
func Connect(cfg Config) (*nats.Conn, error) {
	return nats.Connect(cfg.URL, nats.Name("user-gateway"))
}

// Conn is the slice of *nats.Conn the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
	IsConnected() bool
}

// Wrap adapts a concrete NATS connection for NewPublisher. A nil *nats.Conn
// maps to a nil Conn; storing the nil pointer inside the interface would
// defeat the publisher's connection guard and panic on IsConnected.
func Wrap(nc *nats.Conn) Conn {
	if nc == nil {
		return nil
	}
	return nc
}

type (
	// DeletionEvent is the wire shape of the user-deletion notification.
	DeletionEvent struct {
		ID         string       `json:"id"`
		ActionType string       `json:"tipoAccion"`
		CreatedAt  time.Time    `json:"fechaCreacion"`
		Data       DeletionData `json:"datos"`
	}

	DeletionData struct {
		Username  string    `json:"usuario"`
		Email     string    `json:"correo"`
		DeletedAt time.Time `json:"fechaEliminacion"`
	}
)

type Publisher struct {
	conn    Conn
	subject string
	clock   clock.Clock
}

var _ domain.EventPublisher = (*Publisher)(nil)

func NewPublisher(conn Conn, subject string, clk clock.Clock) *Publisher {
	if subject == "" {
		subject = "dominio.events.auth.deleted"
	}
	return &Publisher{conn: conn, subject: subject, clock: clk}
}

// PublishDeletion emits a fresh deletion event for username. Every failure
// mode, from a down connection to a marshalling error, is logged and
// swallowed.
func (p *Publisher) PublishDeletion(ctx context.Context, username, email string) {
	event := p.newDeletionEvent(username, email)

	if p.conn == nil || !p.conn.IsConnected() {
		slog.WarnContext(ctx, "bus connection not established, dropping deletion event",
			slog.String("usuario", username))
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		slog.ErrorContext(ctx, "encoding deletion event failed",
			slog.String("usuario", username), slog.Any("error", err))
		return
	}

	if err := p.conn.Publish(p.subject, data); err != nil {
		slog.ErrorContext(ctx, "publishing deletion event failed",
			slog.String("usuario", username), slog.Any("error", err))
		return
	}

	slog.InfoContext(ctx, "deletion event published",
		slog.String("usuario", username), slog.String("subject", p.subject))
}

func (p *Publisher) newDeletionEvent(username, email string) DeletionEvent {
	now := p.clock.Now().UTC()
	var id string
	if uid, err := uuid.NewV4(); err == nil {
		id = uid.String()
	}
	return DeletionEvent{
		ID:         id,
		ActionType: ActionUserDeleted,
		CreatedAt:  now,
		Data: DeletionData{
			Username:  username,
			Email:     email,
			DeletedAt: now,
		},
	}
}
