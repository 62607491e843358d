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

type PromoCodeService struct {
	client      *upstream.Client
	store       *cache.Store
	invalidator *cache.Invalidator
	audit       *repository.AuditRepository
	logger      zerolog.Logger
}

func NewPromoCodeService(client *upstream.Client, store *cache.Store, invalidator *cache.Invalidator, audit *repository.AuditRepository, logger zerolog.Logger) *PromoCodeService {
	return &PromoCodeService{
		client:      client,
		store:       store,
		invalidator: invalidator,
		audit:       audit,
		logger:      logger,
	}
}

func (s *PromoCodeService) List(ctx context.Context, botID *int64) ([]upstream.PromoCode, error) {
	params := []string{}
	if botID != nil {
		params = append(params, cache.Param("bot_id", *botID))
	}
	key := cache.NewKey(cache.ResourcePromoCodes, params...)

	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) ([]upstream.PromoCode, error) {
		return s.client.PromoCodes.List(ctx, botID)
	})
}

func (s *PromoCodeService) Get(ctx context.Context, promoCodeID int64) (*upstream.PromoCode, error) {
	key := cache.NewKey(cache.ResourcePromoCodes, cache.Param("id", promoCodeID))
	return cache.Fetch(ctx, s.store, key, func(ctx context.Context) (*upstream.PromoCode, error) {
		return s.client.PromoCodes.Get(ctx, promoCodeID)
	})
}

func (s *PromoCodeService) Create(ctx context.Context, actor Actor, req *upstream.PromoCodeCreateRequest) (*upstream.PromoCode, error) {
	if req.BotID <= 0 {
		return nil, ErrBotRequired
	}
	if req.Code == "" {
		return nil, ErrCodeRequired
	}
	if err := validateDiscount(req.DiscountType, req.DiscountValue); err != nil {
		return nil, err
	}

	code, err := s.client.PromoCodes.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourcePromoCodes), model.ActionCreate, code.ID, fmt.Sprintf("created promo code %q", code.Code))
	s.invalidator.Invalidate(ctx, cache.ResourcePromoCodes)
	return code, nil
}

func (s *PromoCodeService) Update(ctx context.Context, actor Actor, promoCodeID int64, req *upstream.PromoCodeUpdateRequest) (*upstream.PromoCode, error) {
	if req.DiscountType != nil || req.DiscountValue != nil {
		// a partial update still has to make sense against the stored half,
		// so require both when either changes
		if req.DiscountType == nil || req.DiscountValue == nil {
			return nil, ErrInvalidDiscount
		}
		if err := validateDiscount(*req.DiscountType, *req.DiscountValue); err != nil {
			return nil, err
		}
	}

	code, err := s.client.PromoCodes.Update(ctx, promoCodeID, req)
	if err != nil {
		return nil, err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourcePromoCodes), model.ActionUpdate, promoCodeID, fmt.Sprintf("updated promo code %q", code.Code))
	s.invalidator.Invalidate(ctx, cache.ResourcePromoCodes)
	return code, nil
}

func (s *PromoCodeService) Delete(ctx context.Context, actor Actor, promoCodeID int64) error {
	if err := s.client.PromoCodes.Delete(ctx, promoCodeID); err != nil {
		return err
	}

	recordAudit(s.audit, s.logger, actor, string(cache.ResourcePromoCodes), model.ActionDelete, promoCodeID, "deleted promo code")
	s.invalidator.Invalidate(ctx, cache.ResourcePromoCodes)
	return nil
}

// validateDiscount rejects bad discounts before any upstream call: the type
// must be known, the value positive, and a percentage can never exceed 100.
func validateDiscount(discountType, discountValue string) error {
	if discountType != upstream.DiscountPercentage && discountType != upstream.DiscountFixed {
		return ErrInvalidDiscountType
	}

	value, err := strconv.ParseFloat(discountValue, 64)
	if err != nil || value <= 0 {
		return ErrInvalidDiscount
	}

	if discountType == upstream.DiscountPercentage && value > 100 {
		return ErrPercentOutOfRange
	}
	return nil
}
