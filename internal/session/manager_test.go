package session

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenpay/admin-gateway/internal/testutil"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

func newTestManager(t *testing.T, backend *testutil.Backend) (*Manager, *Store) {
	t.Helper()

	client, _, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	store := NewStore(client, time.Hour)
	return NewManager(store, backend.Client(t), "test-secret", 24, zerolog.Nop()), store
}

func stubLogin(backend *testutil.Backend) {
	backend.RespondJSON("/auth/login", http.StatusOK, upstream.TokenResponse{
		AccessToken: "upstream-token",
		TokenType:   "bearer",
		ExpiresIn:   3600,
	})
	backend.Handle("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer upstream-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
			return
		}
		_ = json.NewEncoder(w).Encode(upstream.AdminProfile{ID: 7, Username: "admin", IsActive: true})
	})
}

func TestManager_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success persists session and mints a resolvable token", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		stubLogin(backend)
		manager, store := newTestManager(t, backend)

		sess, token, err := manager.Login(ctx, "admin", "password")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "upstream-token", sess.UpstreamToken)
		assert.Equal(t, int64(7), sess.User.ID)

		// session survives in the store independently of the manager
		stored, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.User.Username, stored.User.Username)

		resolved, err := manager.Resolve(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, resolved.ID)
	})

	t.Run("invalid credentials persist nothing", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.RespondJSON("/auth/login", http.StatusUnauthorized, map[string]string{
			"detail": "Incorrect username or password",
		})
		manager, _ := newTestManager(t, backend)

		_, _, err := manager.Login(ctx, "admin", "wrong")
		require.Error(t, err)
		assert.True(t, upstream.IsUnauthorized(err))
		assert.Equal(t, "Incorrect username or password", upstream.Detail(err, ""))
		assert.Equal(t, 0, backend.Calls(http.MethodGet, "/auth/me"))
	})

	t.Run("profile fetch failure aborts login", func(t *testing.T) {
		backend := testutil.NewBackend(t)
		backend.RespondJSON("/auth/login", http.StatusOK, upstream.TokenResponse{AccessToken: "tok"})
		backend.RespondJSON("/auth/me", http.StatusInternalServerError, map[string]string{
			"detail": "boom",
		})
		manager, _ := newTestManager(t, backend)

		_, _, err := manager.Login(ctx, "admin", "password")
		require.Error(t, err)
	})
}

func TestManager_Resolve(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewBackend(t)
	stubLogin(backend)
	manager, _ := newTestManager(t, backend)

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Resolve(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("valid token after logout", func(t *testing.T) {
		sess, token, err := manager.Login(ctx, "admin", "password")
		require.NoError(t, err)

		require.NoError(t, manager.Logout(ctx, sess.ID))

		_, err = manager.Resolve(ctx, token)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestManager_UnauthorizedHookDropsSession(t *testing.T) {
	ctx := context.Background()
	backend := testutil.NewBackend(t)

	var revoked atomic.Bool
	backend.RespondJSON("/auth/login", http.StatusOK, upstream.TokenResponse{AccessToken: "upstream-token"})
	backend.Handle("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if revoked.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Token revoked"})
			return
		}
		_ = json.NewEncoder(w).Encode(upstream.AdminProfile{ID: 7, Username: "admin"})
	})

	manager, store := newTestManager(t, backend)

	sess, token, err := manager.Login(ctx, "admin", "password")
	require.NoError(t, err)

	// the upstream revokes the token; the next profile fetch hits a 401 and
	// the hook clears the persisted session
	revoked.Store(true)

	_, err = manager.RefreshProfile(ctx, sess)
	require.Error(t, err)
	assert.True(t, upstream.IsUnauthorized(err))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = manager.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
