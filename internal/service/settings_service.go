package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type SettingsService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	logger      zerolog.Logger
}

func NewSettingsService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *SettingsService) GetYooKassa(ctx context.Context) (*upstream.YooKassaSettings, error) {
	key := cache.NewKey(cache.ResourceSettings, cache.Param("section", "yookassa"))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.YooKassaSettings, error) {
		return s.client.Settings.GetYooKassa(ctx)
	})
}

func (s *SettingsService) UpdateYooKassa(ctx context.Context, actor Actor, req *upstream.YooKassaUpdateRequest) (*upstream.YooKassaSettings, error) {
	if req.ShopID == "" {
		return nil, ErrShopIDRequired
	}

	settings, err := s.client.Settings.UpdateYooKassa(ctx, req)
	if err != nil {
		return nil, err
	}

	// the API key never goes into the audit trail
	recordAudit(s.audit, s.logger, actor, string(cache.ResourceSettings), model.ActionUpdate, 0, "updated yookassa settings")
	s.invalidator.Invalidate(ctx, cache.ResourceSettings)
	return settings, nil
}
