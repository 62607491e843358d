package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type DashboardService struct {
	client *upstream.Client
	store  *cache.Store
	logger zerolog.Logger
}

func NewDashboardService(client *upstream.Client, store *cache.Store, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		client: client,
		store:  store,
		logger: logger,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*upstream.DashboardSummary, error) {
	key := cache.NewKey(cache.ResourceDashboard, cache.Param("section", "summary"))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.DashboardSummary, error) {
		return s.client.Dashboard.Summary(ctx)
	})
}
