package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type BotService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	logger      zerolog.Logger
}

func NewBotService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, logger zerolog.Logger) *BotService {
	return &BotService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *BotService) List(ctx context.Context) ([]upstream.BotSummary, error) {
	key := cache.NewKey(cache.ResourceBots)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) ([]upstream.BotSummary, error) {
		return s.client.Bots.List(ctx)
	})
}

func (s *BotService) Get(ctx context.Context, botID int64) (*upstream.BotDetails, error) {
	key := cache.NewKey(cache.ResourceBots, cache.Param("id", botID))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.BotDetails, error) {
		return s.client.Bots.Get(ctx, botID)
	})
}

func (s *BotService) Create(ctx context.Context, actor Actor, req *upstream.BotCreateRequest) (*upstream.BotDetails, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Slug == "" {
		return nil, ErrSlugRequired
	}

	bot, err := s.client.Bots.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBots), model.ActionCreate, bot.ID, fmt.Sprintf("created bot %q", bot.Name))
	s.invalidator.Invalidate(ctx, cache.ResourceBots)
	return bot, nil
}

func (s *BotService) Update(ctx context.Context, actor Actor, botID int64, req *upstream.BotUpdateRequest) (*upstream.BotDetails, error) {
	bot, err := s.client.Bots.Update(ctx, botID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBots), model.ActionUpdate, botID, fmt.Sprintf("updated bot %q", bot.Name))
	s.invalidator.Invalidate(ctx, cache.ResourceBots)
	return bot, nil
}

func (s *BotService) UpdateToken(ctx context.Context, actor Actor, botID int64, req *upstream.BotTokenUpdateRequest) (*upstream.BotDetails, error) {
	if req.Token == "" {
		return nil, ErrTokenRequired
	}

	bot, err := s.client.Bots.UpdateToken(ctx, botID, req)
	if err != nil {
		return nil, err
	}

	// the token itself never goes into the audit trail
	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBots), model.ActionUpdate, botID, "replaced bot token")
	s.invalidator.Invalidate(ctx, cache.ResourceBots)
	return bot, nil
}

func (s *BotService) Delete(ctx context.Context, actor Actor, botID int64) error {
	if err := s.client.Bots.Delete(ctx, botID); err != nil {
		return err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBots), model.ActionDelete, botID, "deleted bot")
	// everything scoped to a bot is suspect once the bot is gone
	s.invalidator.Invalidate(ctx, cache.ResourceBots, cache.ResourceChannels, cache.ResourcePlans, cache.ResourceBroadcasts, cache.ResourcePromoCodes)
	return nil
}
