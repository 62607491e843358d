package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type PromoCodesAPI struct {
	c *Client
}

func (a *PromoCodesAPI) List(ctx context.Context, botID *int64) ([]PromoCode, error) {
	query := url.Values{}
	if botID != nil {
		query.Set("bot_id", strconv.FormatInt(*botID, 10))
	}

	var codes []PromoCode
	if err := a.c.get(ctx, "/promo-codes", query, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (a *PromoCodesAPI) Get(ctx context.Context, promoCodeID int64) (*PromoCode, error) {
	var code PromoCode
	if err := a.c.get(ctx, fmt.Sprintf("/promo-codes/%d", promoCodeID), nil, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (a *PromoCodesAPI) Create(ctx context.Context, req *PromoCodeCreateRequest) (*PromoCode, error) {
	var code PromoCode
	if err := a.c.post(ctx, "/promo-codes", req, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (a *PromoCodesAPI) Update(ctx context.Context, promoCodeID int64, req *PromoCodeUpdateRequest) (*PromoCode, error) {
	var code PromoCode
	if err := a.c.put(ctx, fmt.Sprintf("/promo-codes/%d", promoCodeID), req, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (a *PromoCodesAPI) Delete(ctx context.Context, promoCodeID int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/promo-codes/%d", promoCodeID), nil)
}
