package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/testutil"
)

// testEnv wires a service test: fake upstream, local cache with a
// local-only invalidator, and an in-memory audit database.
type testEnv struct {
	backend     *testutil.Backend
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.CleanupTestDB(t, db) })

	store := cache.NewStore(time.Minute, zerolog.Nop())
	return &testEnv{
		backend:     testutil.NewBackend(t),
		store:       store,
		invalidator: cache.NewInvalidator(store, nil, zerolog.Nop()),
		audit:       repository.NewAuditRepository(db),
	}
}

// warmCache plants a settled entry for resource so a test can observe
// which resources a mutation drops.
func (e *testEnv) warmCache(t *testing.T, resource cache.Resource) {
	t.Helper()

	_, err := e.store.Do(context.Background(), cache.NewKey(resource), func(ctx context.Context) (interface{}, error) {
		return "warm", nil
	})
	if err != nil {
		t.Fatalf("Failed to warm cache for %s: %v", resource, err)
	}
}

func testActor() Actor {
	return Actor{ID: 7, Username: "admin"}
}
