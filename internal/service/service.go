package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/model"
	"github.com/lumenpay/admin-gateway/internal/repository"
)

// Validation failures raised before any upstream call.
var (
	ErrBotRequired         = errors.New("bot_id is required")
	ErrNameRequired        = errors.New("name is required")
	ErrSlugRequired        = errors.New("slug is required")
	ErrTelegramIDRequired  = errors.New("telegram_id is required")
	ErrChannelIDRequired   = errors.New("channel_id is required")
	ErrCodeRequired        = errors.New("code is required")
	ErrMessageTextRequired = errors.New("message_text is required")
	ErrTokenRequired       = errors.New("token is required")
	ErrShopIDRequired      = errors.New("shop_id is required")
	ErrInvalidDays         = errors.New("days must be at least 1")
	ErrInvalidDuration     = errors.New("duration_days must be at least 1")
	ErrInvalidPrice        = errors.New("price_amount must be a positive number")
	ErrInvalidDiscountType = errors.New("discount_type must be percentage or fixed")
	ErrInvalidDiscount     = errors.New("discount_value must be a positive number")
	ErrPercentOutOfRange   = errors.New("percentage discount cannot exceed 100")
	ErrInvalidAudience     = errors.New("unknown target_audience")
	ErrUserIDsRequired     = errors.New("custom audience requires user_ids")
)

// Actor identifies the admin performing a mutation, for the audit trail.
type Actor struct {
	ID       int64
	Username string
}

// recordAudit is best-effort: a failed audit write is logged, never
// surfaced — the mutation already succeeded upstream.
func recordAudit(repo *repository.AuditRepository, logger zerolog.Logger, actor Actor, resource, action string, entityID int64, detail string) {
	if repo == nil {
		return
	}
	entry := &model.AuditEntry{
		AdminID:  actor.ID,
		Username: actor.Username,
		Resource: resource,
		Action:   action,
		EntityID: entityID,
		Detail:   detail,
	}
	if err := repo.Create(entry); err != nil {
		logger.Warn().Err(err).
			Str("resource", resource).
			Str("action", action).
			Msg("failed to write audit entry")
	}
}
