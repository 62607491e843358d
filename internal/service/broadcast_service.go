package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/pkg/ws"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

// Target audiences a broadcast can address.
var validAudiences = map[string]struct{}{
	"all":           {},
	"active":        {},
	"expired":       {},
	"expiring_soon": {},
	"birthday":      {},
	"custom":        {},
}

type BroadcastService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	hub         *ws.Hub
	logger      zerolog.Logger
}

func NewBroadcastService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, hub *ws.Hub, logger zerolog.Logger) *BroadcastService {
	return &BroadcastService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		hub:         hub,
		logger:      logger,
	}
}

func (s *BroadcastService) List(ctx context.Context, page, size int, botID *int64) (*upstream.Paginated[upstream.Broadcast], error) {
	params := []string{cache.Param("page", page), cache.Param("size", size)}
	if botID != nil {
		params = append(params, cache.Param("bot_id", *botID))
	}
	key := cache.NewKey(cache.ResourceBroadcasts, params...)

	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.Paginated[upstream.Broadcast], error) {
		return s.client.Broadcasts.List(ctx, page, size, botID)
	})
}

func (s *BroadcastService) Get(ctx context.Context, broadcastID int64) (*upstream.Broadcast, error) {
	key := cache.NewKey(cache.ResourceBroadcasts, cache.Param("id", broadcastID))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.Broadcast, error) {
		return s.client.Broadcasts.Get(ctx, broadcastID)
	})
}

func (s *BroadcastService) Create(ctx context.Context, actor Actor, req *upstream.BroadcastCreateRequest) (*upstream.Broadcast, error) {
	if req.BotID <= 0 {
		return nil, ErrBotRequired
	}
	if req.MessageText == "" {
		return nil, ErrMessageTextRequired
	}
	if err := validateAudience(req.TargetAudience, req.UserIDs); err != nil {
		return nil, err
	}

	bc, err := s.client.Broadcasts.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBroadcasts), model.ActionCreate, bc.ID, fmt.Sprintf("created broadcast for audience %q", bc.TargetAudience))
	s.invalidator.Invalidate(ctx, cache.ResourceBroadcasts)
	return bc, nil
}

func (s *BroadcastService) Update(ctx context.Context, actor Actor, broadcastID int64, req *upstream.BroadcastUpdateRequest) (*upstream.Broadcast, error) {
	if req.MessageText != nil && *req.MessageText == "" {
		return nil, ErrMessageTextRequired
	}
	if req.TargetAudience != nil {
		if err := validateAudience(*req.TargetAudience, req.UserIDs); err != nil {
			return nil, err
		}
	}

	bc, err := s.client.Broadcasts.Update(ctx, broadcastID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBroadcasts), model.ActionUpdate, broadcastID, "updated broadcast")
	s.invalidator.Invalidate(ctx, cache.ResourceBroadcasts)
	return bc, nil
}

func (s *BroadcastService) Delete(ctx context.Context, actor Actor, broadcastID int64) error {
	if err := s.client.Broadcasts.Delete(ctx, broadcastID); err != nil {
		return err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBroadcasts), model.ActionDelete, broadcastID, "deleted broadcast")
	s.invalidator.Invalidate(ctx, cache.ResourceBroadcasts)
	return nil
}

// RecipientsCount is a preview; it is not cached because the audience can
// shift under it between keystrokes in the edit form.
func (s *BroadcastService) RecipientsCount(ctx context.Context, broadcastID int64) (*upstream.RecipientsCount, error) {
	return s.client.Broadcasts.RecipientsCount(ctx, broadcastID)
}

func (s *BroadcastService) SendNow(ctx context.Context, actor Actor, broadcastID int64) (*upstream.SendResult, error) {
	result, err := s.client.Broadcasts.SendNow(ctx, broadcastID)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceBroadcasts), model.ActionSend, broadcastID, fmt.Sprintf("sent broadcast: %d ok, %d failed", result.Sent, result.Failed))
	s.invalidator.Invalidate(ctx, cache.ResourceBroadcasts, cache.ResourceDashboard)

	if s.hub != nil {
		if err := s.hub.Broadcast(&ws.Message{
			Type: ws.TypeBroadcastFinished,
			Data: map[string]interface{}{
				"broadcast_id": broadcastID,
				"sent":         result.Sent,
				"failed":       result.Failed,
				"total":        result.Total,
			},
		}); err != nil {
			s.logger.Warn().Err(err).Int64("broadcast_id", broadcastID).Msg("failed to push broadcast result")
		}
	}

	return result, nil
}

func validateAudience(audience string, userIDs []int64) error {
	if _, ok := validAudiences[audience]; !ok {
		return ErrInvalidAudience
	}
	if audience == "custom" && len(userIDs) == 0 {
		return ErrUserIDsRequired
	}
	return nil
}
