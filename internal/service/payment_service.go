package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

// PaymentService is read-only from the admin panel's point of view.
type PaymentService struct {
	client *upstream.Client
	store  *cache.Store
	logger zerolog.Logger
}

func NewPaymentService(client *upstream.Client, store *cache.Store, logger zerolog.Logger) *PaymentService {
	return &PaymentService{
		client: client,
		store:  store,
		logger: logger,
	}
}

func (s *PaymentService) List(ctx context.Context, page, size int) (*upstream.Paginated[upstream.Payment], error) {
	key := cache.NewKey(cache.ResourcePayments, cache.Param("page", page), cache.Param("size", size))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.Paginated[upstream.Payment], error) {
		return s.client.Payments.List(ctx, page, size)
	})
}

func (s *PaymentService) Export(ctx context.Context) ([]byte, string, error) {
	return s.client.Payments.Export(ctx)
}
