package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenpay/admin-gateway/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return New(&config.UpstreamConfig{BaseURL: server.URL, TimeoutSeconds: 2}, zerolog.Nop())
}

func TestClient_BearerToken(t *testing.T) {
	t.Run("token from context is forwarded", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(AdminProfile{ID: 1, Username: "admin"})
		}))

		ctx := WithToken(context.Background(), "secret-token")
		_, err := client.Auth.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", gotAuth)
	})

	t.Run("no token means no header", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(AdminProfile{})
		}))

		_, err := client.Auth.Me(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("detail field is decoded", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Slug already taken"})
		}))

		_, err := client.Auth.Me(context.Background())
		require.Error(t, err)
		assert.Equal(t, "Slug already taken", Detail(err, "fallback"))
		assert.False(t, IsUnauthorized(err))
		assert.False(t, IsNotFound(err))
	})

	t.Run("non-json error body keeps status", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))

		_, err := client.Auth.Me(context.Background())
		require.Error(t, err)

		var ue *Error
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusBadGateway, ue.StatusCode)
		assert.Equal(t, "fallback", Detail(err, "fallback"))
	})

	t.Run("404 helper", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Bot not found"})
		}))

		_, err := client.Bots.Get(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestClient_UnauthorizedHook(t *testing.T) {
	t.Run("fires on 401 with the request context", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
		}))

		var hookToken string
		client.SetUnauthorizedHook(func(ctx context.Context) {
			hookToken = TokenFromContext(ctx)
		})

		ctx := WithToken(context.Background(), "expired-token")
		_, err := client.Auth.Me(ctx)
		require.Error(t, err)
		assert.True(t, IsUnauthorized(err))
		assert.Equal(t, "expired-token", hookToken)
	})

	t.Run("does not fire on other statuses", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		fired := false
		client.SetUnauthorizedHook(func(ctx context.Context) { fired = true })

		_, err := client.Auth.Me(context.Background())
		require.Error(t, err)
		assert.False(t, fired)
	})
}

func TestClient_Timeout(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	client.http.Timeout = 50 * time.Millisecond

	_, err := client.Auth.Me(context.Background())
	require.Error(t, err)
}

func TestClient_Download(t *testing.T) {
	t.Run("returns payload and content type", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			_, _ = w.Write([]byte("id,username\n1,alice\n"))
		}))

		data, contentType, err := client.Subscribers.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "text/csv; charset=utf-8", contentType)
		assert.Contains(t, string(data), "alice")
	})

	t.Run("missing content type defaults to csv", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header()["Content-Type"] = nil
			_, _ = w.Write([]byte("id\n1\n"))
		}))

		_, contentType, err := client.Subscribers.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "text/csv", contentType)
	})
}
