package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"citabot-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeEnvelope(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: code < 400,
		Message: message,
		Data:    data,
	})
}

func TestGatewayRefreshesOnceAndRetries(t *testing.T) {
	var meCalls, refreshCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case mePath:
			meCalls++
			if meCalls == 1 {
				writeEnvelope(w, http.StatusUnauthorized, "Su sesión ha expirado", nil)
				return
			}
			writeEnvelope(w, http.StatusOK, "Perfil obtenido", responses.Me{
				User: perfilDePrueba(),
			})
		case refreshPath:
			refreshCalls++
			writeEnvelope(w, http.StatusOK, "Sesión renovada", nil)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	expired := false
	gateway := NewHTTPGateway(server.URL, zap.NewNop(), func() { expired = true })

	user, err := gateway.Me(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "dra.gomez", user.Usuario.Username)
	assert.Equal(t, 2, meCalls, "original request retried exactly once")
	assert.Equal(t, 1, refreshCalls, "refresh attempted exactly once")
	assert.False(t, expired)
}

func TestGatewayExpiresWhenRefreshFails(t *testing.T) {
	var meCalls, refreshCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case mePath:
			meCalls++
			writeEnvelope(w, http.StatusUnauthorized, "Su sesión ha expirado", nil)
		case refreshPath:
			refreshCalls++
			writeEnvelope(w, http.StatusUnauthorized, "Su sesión ha expirado", nil)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	expired := false
	gateway := NewHTTPGateway(server.URL, zap.NewNop(), func() { expired = true })

	_, err := gateway.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, meCalls, "no retry when the refresh itself fails")
	assert.Equal(t, 1, refreshCalls)
	assert.True(t, expired, "the expired callback must fire")
}

func TestGatewayExpiresWhenRetryStillUnauthorized(t *testing.T) {
	var meCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case mePath:
			meCalls++
			writeEnvelope(w, http.StatusUnauthorized, "Su sesión ha expirado", nil)
		case refreshPath:
			writeEnvelope(w, http.StatusOK, "Sesión renovada", nil)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	expired := false
	gateway := NewHTTPGateway(server.URL, zap.NewNop(), func() { expired = true })

	_, err := gateway.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, meCalls, "exactly one retry, never a loop")
	assert.True(t, expired)
}

func TestGatewayLoginDoesNotTriggerRefresh(t *testing.T) {
	var refreshCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case loginPath:
			writeEnvelope(w, http.StatusUnauthorized, "Usuario o contraseña inválidos", nil)
		case refreshPath:
			refreshCalls++
			writeEnvelope(w, http.StatusOK, "Sesión renovada", nil)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, zap.NewNop(), nil)

	_, err := gateway.Login(context.Background(), "dra.gomez", "mala")
	require.Error(t, err)
	assert.Equal(t, 0, refreshCalls, "bad credentials are not an expired session")
}

func TestGatewaySurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "Usuario o contraseña inválidos", nil)
	}))
	defer server.Close()

	gateway := NewHTTPGateway(server.URL, zap.NewNop(), nil)

	_, err := gateway.Login(context.Background(), "dra.gomez", "mala")
	require.Error(t, err)
	assert.Contains(t, clientMessage(err), "Usuario o contraseña inválidos")
}
