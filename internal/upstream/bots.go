package upstream

import (
	"context"
	"fmt"
)

type BotsAPI struct {
	c *Client
}

func (a *BotsAPI) List(ctx context.Context) ([]BotSummary, error) {
	var bots []BotSummary
	if err := a.c.get(ctx, "/bots", nil, &bots); err != nil {
		return nil, err
	}
	return bots, nil
}

func (a *BotsAPI) Get(ctx context.Context, botID int64) (*BotDetails, error) {
	var bot BotDetails
	if err := a.c.get(ctx, fmt.Sprintf("/bots/%d", botID), nil, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

func (a *BotsAPI) Create(ctx context.Context, req *BotCreateRequest) (*BotDetails, error) {
	var bot BotDetails
	if err := a.c.post(ctx, "/bots", req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

func (a *BotsAPI) Update(ctx context.Context, botID int64, req *BotUpdateRequest) (*BotDetails, error) {
	var bot BotDetails
	if err := a.c.put(ctx, fmt.Sprintf("/bots/%d", botID), req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

func (a *BotsAPI) UpdateToken(ctx context.Context, botID int64, req *BotTokenUpdateRequest) (*BotDetails, error) {
	var bot BotDetails
	if err := a.c.put(ctx, fmt.Sprintf("/bots/%d/token", botID), req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

func (a *BotsAPI) Delete(ctx context.Context, botID int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/bots/%d", botID), nil)
}
