package upstream

import "encoding/json"

// Paginated is the list envelope every paginated upstream endpoint returns.
type Paginated[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AdminProfile struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	IsActive    bool    `json:"is_active"`
	TelegramID  *int64  `json:"telegram_id,omitempty"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
}

type BotSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
	HasToken bool   `json:"has_token"`
}

type BotDetails struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
	IsActive bool   `json:"is_active"`
	HasToken bool   `json:"has_token"`
}

type BotCreateRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Timezone *string `json:"timezone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// BotUpdateRequest deliberately has no slug: it is immutable after creation.
type BotUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type BotTokenUpdateRequest struct {
	Token string `json:"token"`
}

type Channel struct {
	ID                   int64   `json:"id"`
	BotID                int64   `json:"bot_id"`
	ChannelID            string  `json:"channel_id"`
	ChannelName          string  `json:"channel_name"`
	ChannelUsername      *string `json:"channel_username"`
	InviteLink           *string `json:"invite_link"`
	Description          *string `json:"description"`
	IsActive             bool    `json:"is_active"`
	RequiresSubscription bool    `json:"requires_subscription"`
	MemberCount          *int64  `json:"member_count"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

type ChannelCreateRequest struct {
	BotID                int64   `json:"bot_id"`
	ChannelID            string  `json:"channel_id"`
	ChannelName          string  `json:"channel_name"`
	ChannelUsername      *string `json:"channel_username,omitempty"`
	InviteLink           *string `json:"invite_link,omitempty"`
	Description          *string `json:"description,omitempty"`
	IsActive             *bool   `json:"is_active,omitempty"`
	RequiresSubscription *bool   `json:"requires_subscription,omitempty"`
	MemberCount          *int64  `json:"member_count,omitempty"`
}

type ChannelUpdateRequest struct {
	ChannelName          *string `json:"channel_name,omitempty"`
	ChannelUsername      *string `json:"channel_username,omitempty"`
	InviteLink           *string `json:"invite_link,omitempty"`
	Description          *string `json:"description,omitempty"`
	IsActive             *bool   `json:"is_active,omitempty"`
	RequiresSubscription *bool   `json:"requires_subscription,omitempty"`
	MemberCount          *int64  `json:"member_count,omitempty"`
}

type Plan struct {
	ID            int64     `json:"id"`
	BotID         int64     `json:"bot_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   *string   `json:"description"`
	PriceAmount   string    `json:"price_amount"`
	PriceCurrency string    `json:"price_currency"`
	DurationDays  int       `json:"duration_days"`
	IsActive      bool      `json:"is_active"`
	IsRecommended bool      `json:"is_recommended"`
	Channels      []Channel `json:"channels"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

type PlanCreateRequest struct {
	BotID         int64   `json:"bot_id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   *string `json:"description,omitempty"`
	PriceAmount   string  `json:"price_amount"`
	PriceCurrency string  `json:"price_currency,omitempty"`
	DurationDays  int     `json:"duration_days"`
	IsActive      *bool   `json:"is_active,omitempty"`
	IsRecommended *bool   `json:"is_recommended,omitempty"`
	ChannelIDs    []int64 `json:"channel_ids,omitempty"`
}

type PlanUpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	Description   *string `json:"description,omitempty"`
	PriceAmount   *string `json:"price_amount,omitempty"`
	PriceCurrency *string `json:"price_currency,omitempty"`
	DurationDays  *int    `json:"duration_days,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	IsRecommended *bool   `json:"is_recommended,omitempty"`
	ChannelIDs    []int64 `json:"channel_ids,omitempty"`
}

type Subscriber struct {
	ID                   int64   `json:"id"`
	BotID                int64   `json:"bot_id"`
	TelegramID           *int64  `json:"telegram_id"`
	Username             *string `json:"username"`
	FirstName            *string `json:"first_name"`
	LastName             *string `json:"last_name"`
	FullName             string  `json:"full_name"`
	PhoneNumber          *string `json:"phone_number"`
	Tariff               *string `json:"tariff"`
	ExpiresAt            *string `json:"expires_at"`
	Status               string  `json:"status"`
	IsBlocked            bool    `json:"is_blocked"`
	ActiveSubscriptionID *int64  `json:"active_subscription_id,omitempty"`
}

type SubscriberCreateRequest struct {
	BotID                   *int64  `json:"bot_id,omitempty"`
	TelegramID              int64   `json:"telegram_id"`
	Username                *string `json:"username,omitempty"`
	FirstName               *string `json:"first_name,omitempty"`
	LastName                *string `json:"last_name,omitempty"`
	PhoneNumber             *string `json:"phone_number,omitempty"`
	IsBlocked               *bool   `json:"is_blocked,omitempty"`
	SubscriptionDays        *int    `json:"subscription_days,omitempty"`
	SubscriptionAmount      *string `json:"subscription_amount,omitempty"`
	SubscriptionDescription *string `json:"subscription_description,omitempty"`
}

type SubscriberUpdateRequest struct {
	Username    *string `json:"username,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IsBlocked   *bool   `json:"is_blocked,omitempty"`
}

// ExtendRequest forwards days only; the base-date policy lives upstream.
type ExtendRequest struct {
	Days        int     `json:"days"`
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Payment struct {
	ID        int64   `json:"id"`
	Invoice   string  `json:"invoice"`
	Member    string  `json:"member"`
	Amount    string  `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	Plan      *string `json:"plan,omitempty"`
	Provider  *string `json:"provider,omitempty"`
	PaidAt    *string `json:"paid_at,omitempty"`
}

// Promo code discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type PromoCode struct {
	ID            int64   `json:"id"`
	BotID         int64   `json:"bot_id"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue string  `json:"discount_value"`
	MaxUses       *int    `json:"max_uses"`
	UsedCount     int     `json:"used_count"`
	IsActive      bool    `json:"is_active"`
	ValidFrom     *string `json:"valid_from"`
	ValidUntil    *string `json:"valid_until"`
	Description   *string `json:"description"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type PromoCodeCreateRequest struct {
	BotID         int64   `json:"bot_id"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue string  `json:"discount_value"`
	MaxUses       *int    `json:"max_uses,omitempty"`
	ValidFrom     *string `json:"valid_from,omitempty"`
	ValidUntil    *string `json:"valid_until,omitempty"`
	Description   *string `json:"description,omitempty"`
}

/// PromoCodeUpdateRequest has no code field: codes are immutable once issued.
type PromoCodeUpdateRequest struct {
	DiscountType  *string `json:"discount_type,omitempty"`
	DiscountValue *string `json:"discount_value,omitempty"`
	MaxUses       *int    `json:"max_uses,omitempty"`
	ValidFrom     *string `json:"valid_from,omitempty"`
	ValidUntil    *string `json:"valid_until,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	Description   *string `json:"description,omitempty"`
}

// Broadcast statuses follow the upstream lifecycle:
// draft -> pending -> sending -> completed/canceled.
const (
	BroadcastStatusDraft     = "draft"
	BroadcastStatusPending   = "pending"
	BroadcastStatusSending   = "sending"
	BroadcastStatusCompleted = "completed"
	BroadcastStatusCanceled  = "canceled"
)

type Broadcast struct {
	ID             int64           `json:"id"`
	BotID          int64           `json:"bot_id"`
	ChannelID      *int64          `json:"channel_id"`
	MessageTitle   *string         `json:"message_title"`
	MessageText    string          `json:"message_text"`
	ParseMode      *string         `json:"parse_mode"`
	TargetAudience string          `json:"target_audience"`
	UserIDs        []int64         `json:"user_ids"`
	BirthdayOnly   bool            `json:"birthday_only"`
	MediaFiles     json.RawMessage `json:"media_files"`
	ScheduledAt    *string         `json:"scheduled_at"`
	SentAt         *string         `json:"sent_at"`
	Status         string          `json:"status"`
	Stats          json.RawMessage `json:"stats"`
	Buttons        json.RawMessage `json:"buttons"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type BroadcastCreateRequest struct {
	BotID          int64           `json:"bot_id"`
	ChannelID      *int64          `json:"channel_id,omitempty"`
	MessageTitle   *string         `json:"message_title,omitempty"`
	MessageText    string          `json:"message_text"`
	ParseMode      *string         `json:"parse_mode,omitempty"`
	TargetAudience string          `json:"target_audience"`
	UserIDs        []int64         `json:"user_ids,omitempty"`
	BirthdayOnly   *bool           `json:"birthday_only,omitempty"`
	MediaFiles     json.RawMessage `json:"media_files,omitempty"`
	ScheduledAt    *string         `json:"scheduled_at,omitempty"`
	Status         *string         `json:"status,omitempty"`
	Buttons        json.RawMessage `json:"buttons,omitempty"`
}

type BroadcastUpdateRequest struct {
	ChannelID      *int64          `json:"channel_id,omitempty"`
	MessageTitle   *string         `json:"message_title,omitempty"`
	MessageText    *string         `json:"message_text,omitempty"`
	ParseMode      *string         `json:"parse_mode,omitempty"`
	TargetAudience *string         `json:"target_audience,omitempty"`
	UserIDs        []int64         `json:"user_ids,omitempty"`
	BirthdayOnly   *bool           `json:"birthday_only,omitempty"`
	MediaFiles     json.RawMessage `json:"media_files,omitempty"`
	ScheduledAt    *string         `json:"scheduled_at,omitempty"`
	Status         *string         `json:"status,omitempty"`
	Buttons        json.RawMessage `json:"buttons,omitempty"`
}

type RecipientsCount struct {
	Count int64 `json:"count"`
}

type SendResult struct {
	Sent   int64 `json:"sent"`
	Failed int64 `json:"failed"`
	Total  int64 `json:"total"`
}

type YooKassaSettings struct {
	ShopID       *string `json:"shop_id"`
	IsConfigured bool    `json:"is_configured"`
	HasAPIKey    bool    `json:"has_api_key"`
}

type YooKassaUpdateRequest struct {
	ShopID string  `json:"shop_id"`
	APIKey *string `json:"api_key,omitempty"`
}

type DashboardMetric struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Value  string  `json:"value"`
	Change *string `json:"change,omitempty"`
	Icon   string  `json:"icon"`
}

type RevenuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ActivityItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type DashboardSummary struct {
	Metrics        []DashboardMetric `json:"metrics"`
	RevenueTrend   []RevenuePoint    `json:"revenue_trend"`
	RecentActivity []ActivityItem    `json:"recent_activity"`
}
