package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/cache"
	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/repository"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

type PlanService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	logger      zerolog.Logger
}

func NewPlanService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, logger zerolog.Logger) *PlanService {
	return &PlanService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *PlanService) List(ctx context.Context) ([]upstream.Plan, error) {
	key := cache.NewKey(cache.ResourcePlans)
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) ([]upstream.Plan, error) {
		return s.client.Plans.List(ctx)
	})
}

func (s *PlanService) Create(ctx context.Context, actor Actor, req *upstream.PlanCreateRequest) (*upstream.Plan, error) {
	if req.BotID <= 0 {
		return nil, ErrBotRequired
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Slug == "" {
		return nil, ErrSlugRequired
	}
	if req.DurationDays < 1 {
		return nil, ErrInvalidDuration
	}
	if err := validatePositiveAmount(req.PriceAmount); err != nil {
		return nil, err
	}

	plan, err := s.client.Plans.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourcePlans), model.ActionCreate, plan.ID, fmt.Sprintf("created plan %q", plan.Name))
	s.invalidator.Invalidate(ctx, cache.ResourcePlans)
	return plan, nil
}

func (s *PlanService) Update(ctx context.Context, actor Actor, planID int64, req *upstream.PlanUpdateRequest) (*upstream.Plan, error) {
	if req.DurationDays != nil && *req.DurationDays < 1 {
		return nil, ErrInvalidDuration
	}
	if req.PriceAmount != nil {
		if err := validatePositiveAmount(*req.PriceAmount); err != nil {
			return nil, err
		}
	}

	plan, err := s.client.Plans.Update(ctx, planID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourcePlans), model.ActionUpdate, planID, fmt.Sprintf("updated plan %q", plan.Name))
	s.invalidator.Invalidate(ctx, cache.ResourcePlans)
	return plan, nil
}

func (s *PlanService) Delete(ctx context.Context, actor Actor, planID int64) error {
	if err := s.client.Plans.Delete(ctx, planID); err != nil {
		return err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourcePlans), model.ActionDelete, planID, "deleted plan")
	s.invalidator.Invalidate(ctx, cache.ResourcePlans)
	return nil
}

func validatePositiveAmount(amount string) error {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || value <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
