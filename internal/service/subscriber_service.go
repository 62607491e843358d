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

type SubscriberService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	logger      zerolog.Logger
}

func NewSubscriberService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, logger zerolog.Logger) *SubscriberService {
	return &SubscriberService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *SubscriberService) List(ctx context.Context, page, size int) (*upstream.Paginated[upstream.Subscriber], error) {
	key := cache.NewKey(cache.ResourceSubscribers, cache.Param("page", page), cache.Param("size", size))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.Paginated[upstream.Subscriber], error) {
		return s.client.Subscribers.List(ctx, page, size)
	})
}

func (s *SubscriberService) Create(ctx context.Context, actor Actor, req *upstream.SubscriberCreateRequest) (*upstream.Subscriber, error) {
	if req.TelegramID <= 0 {
		return nil, ErrTelegramIDRequired
	}
	if req.SubscriptionDays != nil && *req.SubscriptionDays < 1 {
		return nil, ErrInvalidDays
	}

	sub, err := s.client.Subscribers.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceSubscribers), model.ActionCreate, sub.ID, fmt.Sprintf("created subscriber tg=%d", req.TelegramID))
	// granting a subscription moves the dashboard numbers too
	s.invalidator.Invalidate(ctx, cache.ResourceSubscribers, cache.ResourceDashboard)
	return sub, nil
}

func (s *SubscriberService) Update(ctx context.Context, actor Actor, subscriberID int64, req *upstream.SubscriberUpdateRequest) (*upstream.Subscriber, error) {
	sub, err := s.client.Subscribers.Update(ctx, subscriberID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceSubscribers), model.ActionUpdate, subscriberID, "updated subscriber")
	s.invalidator.Invalidate(ctx, cache.ResourceSubscribers)
	return sub, nil
}

// Extend forwards days to the upstream; whether the extension counts from
// now or from the current expiry is the upstream's call.
func (s *SubscriberService) Extend(ctx context.Context, actor Actor, subscriberID int64, req *upstream.ExtendRequest) (*upstream.Subscriber, error) {
	if req.Days < 1 {
		return nil, ErrInvalidDays
	}

	sub, err := s.client.Subscribers.Extend(ctx, subscriberID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceSubscribers), model.ActionExtend, subscriberID, fmt.Sprintf("extended subscription by %d days", req.Days))
	s.invalidator.Invalidate(ctx, cache.ResourceSubscribers, cache.ResourceDashboard)
	return sub, nil
}

func (s *SubscriberService) CancelSubscription(ctx context.Context, actor Actor, subscriberID, subscriptionID int64) (*upstream.Subscriber, error) {
	sub, err := s.client.Subscribers.CancelSubscription(ctx, subscriberID, subscriptionID)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceSubscribers), model.ActionCancel, subscriberID, fmt.Sprintf("canceled subscription %d", subscriptionID))
	s.invalidator.Invalidate(ctx, cache.ResourceSubscribers, cache.ResourceDashboard)
	return sub, nil
}

func (s *SubscriberService) Delete(ctx context.Context, actor Actor, subscriberID int64) error {
	if err := s.client.Subscribers.Delete(ctx, subscriberID); err != nil {
		return err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourceSubscribers), model.ActionDelete, subscriberID, "deleted subscriber")
	s.invalidator.Invalidate(ctx, cache.ResourceSubscribers, cache.ResourceDashboard)
	return nil
}

// Export streams the upstream CSV as-is; exports are never cached.
func (s *SubscriberService) Export(ctx context.Context) ([]byte, string, error) {
	return s.client.Subscribers.Export(ctx)
}
