package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venha/invitations-api/internal/core/domain"
)

const (
	testKey           = "test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func jsonServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogle_Resolve_Success(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{
		"status": "OK",
		"results": [{
			"formatted_address": "R. das Flores, 123 - Centro, Rio de Janeiro - RJ",
			"geometry": {"location": {"lat": -22.9068, "lng": -43.1729}}
		}]
	}`, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Rua das Flores, 123", q.Get("address"))
		assert.Equal(t, "br", q.Get("region"))
		assert.Equal(t, testKey, q.Get("key"))
	})

	g := NewGoogle(testKey, srv.URL, 5*time.Second, zerolog.Nop())
	coords, err := g.Resolve(context.Background(), "Rua das Flores, 123")
	require.NoError(t, err)
	assert.Equal(t, -22.9068, coords.Lat)
	assert.Equal(t, -43.1729, coords.Lng)
}

func TestGoogle_Available(t *testing.T) {
	assert.True(t, NewGoogle(testKey, "", time.Second, zerolog.Nop()).Available())
	assert.False(t, NewGoogle("", "", time.Second, zerolog.Nop()).Available())
	assert.False(t, NewGoogle("SUA_CHAVE_AQUI", "", time.Second, zerolog.Nop()).Available())
	assert.Equal(t, "google", NewGoogle("", "", time.Second, zerolog.Nop()).Name())
}

func TestGoogle_Resolve_Unavailable(t *testing.T) {
	called := false
	srv := jsonServer(t, http.StatusOK, `{}`, func(*http.Request) { called = true })

	g := NewGoogle("", srv.URL, time.Second, zerolog.Nop())
	_, err := g.Resolve(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.False(t, called)
}

func TestGoogle_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"zero results", http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`, domain.ErrNoResults},
		{"ok but empty", http.StatusOK, `{"status":"OK","results":[]}`, domain.ErrNoResults},
		{"denied", http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"bad key"}`, domain.ErrUnexpectedResponse},
		{"http error", http.StatusInternalServerError, `oops`, domain.ErrUnexpectedResponse},
		{"malformed", http.StatusOK, `{not json`, domain.ErrUnexpectedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, tt.status, tt.body, nil)
			g := NewGoogle(testKey, srv.URL, time.Second, zerolog.Nop())

			_, err := g.Resolve(context.Background(), "Rua X, 1")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGoogle_Resolve_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	g := NewGoogle(testKey, srv.URL, 50*time.Millisecond, zerolog.Nop())
	_, err := g.Resolve(context.Background(), "Rua X, 1")
	assert.Error(t, err)
}
