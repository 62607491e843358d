package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type BroadcastsAPI struct {
	c *Client
}

func (a *BroadcastsAPI) List(ctx context.Context, page, size int, botID *int64) (*Paginated[Broadcast], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if botID != nil {
		query.Set("bot_id", strconv.FormatInt(*botID, 10))
	}

	var resp Paginated[Broadcast]
	if err := a.c.get(ctx, "/broadcasts", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *BroadcastsAPI) Get(ctx context.Context, broadcastID int64) (*Broadcast, error) {
	var bc Broadcast
	if err := a.c.get(ctx, fmt.Sprintf("/broadcasts/%d", broadcastID), nil, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (a *BroadcastsAPI) Create(ctx context.Context, req *BroadcastCreateRequest) (*Broadcast, error) {
	var bc Broadcast
	if err := a.c.post(ctx, "/broadcasts", req, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (a *BroadcastsAPI) Update(ctx context.Context, broadcastID int64, req *BroadcastUpdateRequest) (*Broadcast, error) {
	var bc Broadcast
	if err := a.c.put(ctx, fmt.Sprintf("/broadcasts/%d", broadcastID), req, &bc); err != nil {
		return nil, err
	}
	return &bc, nil
}

func (a *BroadcastsAPI) Delete(ctx context.Context, broadcastID int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/broadcasts/%d", broadcastID), nil)
}

func (a *BroadcastsAPI) RecipientsCount(ctx context.Context, broadcastID int64) (*RecipientsCount, error) {
	var count RecipientsCount
	if err := a.c.get(ctx, fmt.Sprintf("/broadcasts/%d/recipients/count", broadcastID), nil, &count); err != nil {
		return nil, err
	}
	return &count, nil
}

func (a *BroadcastsAPI) SendNow(ctx context.Context, broadcastID int64) (*SendResult, error) {
	var result SendResult
	if err := a.c.post(ctx, fmt.Sprintf("/broadcasts/%d/send", broadcastID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
