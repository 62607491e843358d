package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/pkg/response"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/session"
	"github.com/lumenpay/admin-gateway/internal/testutil"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// handlerEnv is a full gateway test stack minus the network: fake upstream,
// miniredis sessions, local-only cache and an in-memory audit database.
type handlerEnv struct {
	backend  *testutil.Backend
	client   *upstream.Client
	sessions *session.Manager
	store    *cache.Store
	audit    *repository.AuditRepository
}

func setupHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	backend := testutil.NewBackend(t)
	client := backend.Client(t)

	sessionStore := session.NewStore(rdb, time.Hour)
	sessions := session.NewManager(sessionStore, client, "test-secret-key", 24, zerolog.Nop())

	return &handlerEnv{
		backend:  backend,
		client:   client,
		sessions: sessions,
		store:    cache.NewStore(time.Minute, zerolog.Nop()),
		audit:    repository.NewAuditRepository(db),
	}
}

// stubAuth wires the upstream login flow and returns a logged-in gateway token.
func (e *handlerEnv) stubAuth(t *testing.T) string {
	t.Helper()

	e.backend.RespondJSON("/auth/login", http.StatusOK, upstream.TokenResponse{AccessToken: "upstream-token"})
	e.backend.RespondJSON("/auth/me", http.StatusOK, upstream.AdminProfile{ID: 7, Username: "admin", IsActive: true})

	_, token, err := e.sessions.Login(testContext(), "admin", "password")
	require.NoError(t, err)
	return token
}

func testContext() context.Context {
	return context.Background()
}

func performRequest(r http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}
