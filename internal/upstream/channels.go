package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type ChannelsAPI struct {
	c *Client
}

func (a *ChannelsAPI) List(ctx context.Context, page, size int, botID *int64) (*Paginated[Channel], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	if botID != nil {
		query.Set("bot_id", strconv.FormatInt(*botID, 10))
	}

	var resp Paginated[Channel]
	if err := a.c.get(ctx, "/channels", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *ChannelsAPI) Create(ctx context.Context, req *ChannelCreateRequest) (*Channel, error) {
	var channel Channel
	if err := a.c.post(ctx, "/channels", req, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

func (a *ChannelsAPI) Update(ctx context.Context, channelID int64, req *ChannelUpdateRequest) (*Channel, error) {
	var channel Channel
	if err := a.c.put(ctx, fmt.Sprintf("/channels/%d", channelID), req, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

func (a *ChannelsAPI) Delete(ctx context.Context, channelID int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/channels/%d", channelID), nil)
}
