package downstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/core/gateway/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountClient(t *testing.T, handler http.HandlerFunc) *AccountClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAccountClient(Config{URL: srv.URL, BasePath: "/api/v1", Timeout: 2 * time.Second})
}

func TestAccountRegisterForwardsPayload(t *testing.T) {
	var got map[string]any
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/usuarios", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"usuario": "john_doe"})
	})

	resp, err := client.Register(context.Background(), domain.Payload{"usuario": "john_doe", "clave": "s"})

	require.NoError(t, err)
	assert.Equal(t, "john_doe", got["usuario"])
	assert.Equal(t, domain.Payload{"usuario": "john_doe"}, resp)
}

func TestAccountRegisterConflictIsTyped(t *testing.T) {
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":true,"respuesta":"El usuario ya existe en el sistema"}`))
	})

	_, err := client.Register(context.Background(), domain.Payload{"usuario": "john_doe"})

	require.Error(t, err)
	var rerr *domain.RemoteError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusConflict, rerr.Status)
	assert.Equal(t, "El usuario ya existe en el sistema", rerr.Message())
}

func TestAccountDeleteSendsBearerAndUnwraps(t *testing.T) {
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/usuarios/bob", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":     false,
			"respuesta": map[string]any{"usuario": "bob", "correo": "bob@example.com"},
		})
	})

	resp, err := client.DeleteByUsername(context.Background(), "bob", "tok-123")

	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", resp["correo"], "wrapper shape must be normalized at the boundary")
}

func TestAccountDeleteForbidden(t *testing.T) {
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":true,"respuesta":"El rol del token no es válido para esta operación"}`))
	})

	_, err := client.DeleteByUsername(context.Background(), "bob", "tok")

	assert.Equal(t, http.StatusForbidden, domain.RemoteStatus(err))
}

func TestAccountFetchFiltersListPage(t *testing.T) {
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/usuarios", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("pagina"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"respuesta": []any{
				map[string]any{"usuario": "alice", "correo": "a@b.com"},
				map[string]any{"usuario": "bob", "correo": "bob@example.com"},
			},
		})
	})

	record, err := client.FetchByUsername(context.Background(), "bob", "tok")

	require.NoError(t, err)
	assert.Equal(t, domain.Payload{"usuario": "bob", "correo": "bob@example.com"}, record)
}

func TestAccountFetchMissingUserIs404(t *testing.T) {
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"respuesta": []any{}})
	})

	_, err := client.FetchByUsername(context.Background(), "ghost", "tok")

	assert.True(t, domain.IsRemoteNotFound(err))
}

func TestAccountFetchSingleRecordPage(t *testing.T) {
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"usuario": "bob", "correo": "bob@example.com"})
	})

	record, err := client.FetchByUsername(context.Background(), "bob", "tok")

	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", record["correo"])
}

func TestAccountUpdateUsesPatch(t *testing.T) {
	var got map[string]any
	client := newAccountClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/usuarios/alice", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{"usuario": "alice", "correo": "new@b.com"})
	})

	resp, err := client.UpdateByUsername(context.Background(), "alice", domain.Payload{"correo": "new@b.com"}, "tok")

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"correo": "new@b.com"}, got, "only present fields are forwarded")
	assert.Equal(t, "new@b.com", resp["correo"])
}

func TestAccountTransportErrorIsNotRemote(t *testing.T) {
	client := NewAccountClient(Config{URL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	_, err := client.Authenticate(context.Background(), domain.Payload{"usuario": "x"})

	require.Error(t, err)
	assert.Equal(t, 0, domain.RemoteStatus(err), "transport failures carry no downstream status")
}
