package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

func newSubscriberService(t *testing.T) (*SubscriberService, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	svc := NewSubscriberService(env.backend.Client(t), env.store, env.invalidator, env.audit, zerolog.Nop())
	return svc, env
}

func TestSubscriberService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("telegram id is mandatory", func(t *testing.T) {
		svc, env := newSubscriberService(t)

		_, err := svc.Create(ctx, testActor(), &upstream.SubscriberCreateRequest{})
		assert.ErrorIs(t, err, ErrTelegramIDRequired)
		assert.Equal(t, 0, env.backend.TotalCalls())
	})

	t.Run("subscription days must be positive", func(t *testing.T) {
		svc, env := newSubscriberService(t)

		days := 0
		_, err := svc.Create(ctx, testActor(), &upstream.SubscriberCreateRequest{
			TelegramID:       12345,
			SubscriptionDays: &days,
		})
		assert.ErrorIs(t, err, ErrInvalidDays)
		assert.Equal(t, 0, env.backend.TotalCalls())
	})

	t.Run("success invalidates subscribers and dashboard", func(t *testing.T) {
		svc, env := newSubscriberService(t)
		env.backend.RespondJSON("/subscribers", http.StatusOK, upstream.Subscriber{ID: 9, Status: "active"})

		// warm caches that the mutation must drop
		env.warmCache(t, "subscribers")
		env.warmCache(t, "dashboard")
		env.warmCache(t, "payments")

		_, err := svc.Create(ctx, testActor(), &upstream.SubscriberCreateRequest{TelegramID: 12345})
		require.NoError(t, err)

		// payments entry survives
		assert.Equal(t, 1, env.store.Len())
	})
}

func TestSubscriberService_Extend(t *testing.T) {
	ctx := context.Background()

	t.Run("days below one never reach the upstream", func(t *testing.T) {
		svc, env := newSubscriberService(t)

		for _, days := range []int{0, -5} {
			_, err := svc.Extend(ctx, testActor(), 9, &upstream.ExtendRequest{Days: days})
			assert.ErrorIs(t, err, ErrInvalidDays)
		}
		assert.Equal(t, 0, env.backend.TotalCalls())
	})

	t.Run("success audits the extension", func(t *testing.T) {
		svc, env := newSubscriberService(t)
		env.backend.RespondJSON("/subscribers/9/extend", http.StatusOK, upstream.Subscriber{ID: 9, Status: "active"})

		sub, err := svc.Extend(ctx, testActor(), 9, &upstream.ExtendRequest{Days: 30})
		require.NoError(t, err)
		assert.Equal(t, int64(9), sub.ID)

		entries, total, err := env.audit.ListByResource("subscribers", 1, 10)
		require.NoError(t, err)
		require.Equal(t, int64(1), total)
		assert.Equal(t, model.ActionExtend, entries[0].Action)
		assert.Contains(t, entries[0].Detail, "30 days")
	})
}

func TestSubscriberService_CancelSubscription(t *testing.T) {
	ctx := context.Background()
	svc, env := newSubscriberService(t)

	env.backend.RespondJSON("/subscribers/9/subscriptions/4", http.StatusOK, upstream.Subscriber{ID: 9, Status: "inactive"})

	sub, err := svc.CancelSubscription(ctx, testActor(), 9, 4)
	require.NoError(t, err)
	assert.Equal(t, "inactive", sub.Status)

	entries, _, err := env.audit.ListByResource("subscribers", 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionCancel, entries[0].Action)
}

func TestSubscriberService_List_Caches(t *testing.T) {
	ctx := context.Background()
	svc, env := newSubscriberService(t)

	env.backend.RespondJSON("/subscribers", http.StatusOK, upstream.Paginated[upstream.Subscriber]{
		Total: 1, Page: 1, Size: 50,
		Items: []upstream.Subscriber{{ID: 9}},
	})

	first, err := svc.List(ctx, 1, 50)
	require.NoError(t, err)
	second, err := svc.List(ctx, 1, 50)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, env.backend.Calls(http.MethodGet, "/subscribers"))
}
