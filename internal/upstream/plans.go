package upstream

import (
	"context"
	"fmt"
)

type PlansAPI struct {
	c *Client
}

func (a *PlansAPI) List(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	if err := a.c.get(ctx, "/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (a *PlansAPI) Create(ctx context.Context, req *PlanCreateRequest) (*Plan, error) {
	if req.PriceCurrency == "" {
		req.PriceCurrency = "RUB"
	}

	var plan Plan
	if err := a.c.post(ctx, "/plans", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (a *PlansAPI) Update(ctx context.Context, planID int64, req *PlanUpdateRequest) (*Plan, error) {
	var plan Plan
	if err := a.c.put(ctx, fmt.Sprintf("/plans/%d", planID), req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (a *PlansAPI) Delete(ctx context.Context, planID int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/plans/%d", planID), nil)
}
