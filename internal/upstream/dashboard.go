package upstream

import "context"

type DashboardAPI struct {
	c *Client
}

func (a *DashboardAPI) Summary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := a.c.get(ctx, "/dashboard/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
