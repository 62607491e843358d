package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/config"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

// Backend is a stand-in for the LumenPay API. Tests register routes with
// fixed JSON payloads and assert on how many times each was hit.
type Backend struct {
	Server *httptest.Server
	mux    *http.ServeMux

	mu    sync.Mutex
	calls map[string]int
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		mux:   http.NewServeMux(),
		calls: make(map[string]int),
	}
	b.Server = httptest.NewServer(b.mux)
	t.Cleanup(b.Server.Close)

	return b
}

// Handle registers a raw handler, counting calls under method+" "+pattern.
func (b *Backend) Handle(pattern string, handler http.HandlerFunc) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.Method+" "+pattern]++
		b.mu.Unlock()
		handler(w, r)
	})
}

// RespondJSON registers a handler that always returns status with body.
func (b *Backend) RespondJSON(pattern string, status int, body interface{}) {
	b.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

// Calls reports how many requests hit method+" "+pattern.
func (b *Backend) Calls(method, pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+pattern]
}

// TotalCalls reports requests across all registered routes.
func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for _, n := range b.calls {
		total += n
	}
	return total
}

// Client builds an upstream client pointed at this backend.
func (b *Backend) Client(t *testing.T) *upstream.Client {
	t.Helper()

	cfg := &config.UpstreamConfig{BaseURL: b.Server.URL, TimeoutSeconds: 5}
	return upstream.New(cfg, zerolog.Nop())
}
