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

type ChannelService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	logger      zerolog.Logger
}

func NewChannelService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, logger zerolog.Logger) *ChannelService {
	return &ChannelService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *ChannelService) List(ctx context.Context, page, size int, botID *int64) (*upstream.Paginated[upstream.Channel], error) {
	params := []string{cache.Param("page", page), cache.Param("size", size)}
	if botID != nil {
		params = append(params, cache.Param("bot_id", *botID))
	}
	key := cache.NewKey(cache.ResourceChannels, params...)

	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.Paginated[upstream.Channel], error) {
		return s.client.Channels.List(ctx, page, size, botID)
	})
}

func (s *ChannelService) Create(ctx context.Context, actor Actor, req *upstream.ChannelCreateRequest) (*upstream.Channel, error) {
	// bot scoping must be explicit: no first-bot defaulting
	if req.BotID <= 0 {
		return nil, ErrBotRequired
	}
	if req.ChannelID == "" {
		return nil, ErrChannelIDRequired
	}
	if req.ChannelName == "" {
		return nil, ErrNameRequired
	}

	channel, err := s.client.Channels.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceChannels), model.ActionCreate, channel.ID, fmt.Sprintf("created channel %q", channel.ChannelName))
	// plans embed their channels, so a channel change stales them too
	s.invalidator.Invalidate(ctx, cache.ResourceChannels, cache.ResourcePlans)
	return channel, nil
}

func (s *ChannelService) Update(ctx context.Context, actor Actor, channelID int64, req *upstream.ChannelUpdateRequest) (*upstream.Channel, error) {
	channel, err := s.client.Channels.Update(ctx, channelID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceChannels), model.ActionUpdate, channelID, fmt.Sprintf("updated channel %q", channel.ChannelName))
	s.invalidator.Invalidate(ctx, cache.ResourceChannels, cache.ResourcePlans)
	return channel, nil
}

func (s *ChannelService) Delete(ctx context.Context, actor Actor, channelID int64) error {
	if err := s.client.Channels.Delete(ctx, channelID); err != nil {
		return err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceChannels), model.ActionDelete, channelID, "deleted channel")
	s.invalidator.Invalidate(ctx, cache.ResourceChannels, cache.ResourcePlans)
	return nil
}
