package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	connected bool
	err       error

	subjects []string
	payloads [][]byte
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return f.err
}

func (f *fakeConn) IsConnected() bool { return f.connected }

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func TestPublishDeletionEventShape(t *testing.T) {
	conn := &fakeConn{connected: true}
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pub := NewPublisher(conn, "dominio.events.auth.deleted", fixedClock{at: at})

	pub.PublishDeletion(context.Background(), "bob", "bob@example.com")

	require.Len(t, conn.payloads, 1)
	assert.Equal(t, "dominio.events.auth.deleted", conn.subjects[0])

	var event DeletionEvent
	require.NoError(t, json.Unmarshal(conn.payloads[0], &event))
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, ActionUserDeleted, event.ActionType)
	assert.Equal(t, at, event.CreatedAt)
	assert.Equal(t, "bob", event.Data.Username)
	assert.Equal(t, "bob@example.com", event.Data.Email)
	assert.Equal(t, at, event.Data.DeletedAt)
}

func TestPublishDeletionFreshIDPerAttempt(t *testing.T) {
	conn := &fakeConn{connected: true}
	pub := NewPublisher(conn, "", fixedClock{at: time.Now()})

	pub.PublishDeletion(context.Background(), "bob", "")
	pub.PublishDeletion(context.Background(), "bob", "")

	require.Len(t, conn.payloads, 2)
	var first, second DeletionEvent
	require.NoError(t, json.Unmarshal(conn.payloads[0], &first))
	require.NoError(t, json.Unmarshal(conn.payloads[1], &second))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestPublishDeletionSwallowsPublishError(t *testing.T) {
	conn := &fakeConn{connected: true, err: errors.New("bus down")}
	pub := NewPublisher(conn, "", fixedClock{at: time.Now()})

	assert.NotPanics(t, func() {
		pub.PublishDeletion(context.Background(), "bob", "")
	})
	assert.Len(t, conn.payloads, 1)
}

func TestPublishDeletionSkipsWhenDisconnected(t *testing.T) {
	conn := &fakeConn{connected: false}
	pub := NewPublisher(conn, "", fixedClock{at: time.Now()})

	pub.PublishDeletion(context.Background(), "bob", "")

	assert.Empty(t, conn.payloads)
}

func TestPublishDeletionNilConn(t *testing.T) {
	pub := NewPublisher(nil, "", fixedClock{at: time.Now()})

	assert.NotPanics(t, func() {
		pub.PublishDeletion(context.Background(), "bob", "")
	})
}

func TestPublishDeletionNilNATSConnection(t *testing.T) {
	// A failed Connect leaves the caller with a nil *nats.Conn. Wrapping it
	// must yield a nil Conn, not an interface holding a nil pointer, so the
	// publisher stays on its degraded logging path instead of panicking.
	pub := NewPublisher(Wrap(nil), "", fixedClock{at: time.Now()})

	assert.NotPanics(t, func() {
		pub.PublishDeletion(context.Background(), "bob", "")
	})
}
