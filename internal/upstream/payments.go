package upstream

import (
	"context"
	"net/url"
	"strconv"
)

type PaymentsAPI struct {
	c *Client
}

func (a *PaymentsAPI) List(ctx context.Context, page, size int) (*Paginated[Payment], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp Paginated[Payment]
	if err := a.c.get(ctx, "/payments", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *PaymentsAPI) Export(ctx context.Context) ([]byte, string, error) {
	return a.c.download(ctx, "/payments/export")
}
