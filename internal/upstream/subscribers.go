package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

type SubscribersAPI struct {
	c *Client
}

func (a *SubscribersAPI) List(ctx context.Context, page, size int) (*Paginated[Subscriber], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var resp Paginated[Subscriber]
	if err := a.c.get(ctx, "/subscribers", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *SubscribersAPI) Create(ctx context.Context, req *SubscriberCreateRequest) (*Subscriber, error) {
	var sub Subscriber
	if err := a.c.post(ctx, "/subscribers", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (a *SubscribersAPI) Update(ctx context.Context, subscriberID int64, req *SubscriberUpdateRequest) (*Subscriber, error) {
	var sub Subscriber
	if err := a.c.put(ctx, fmt.Sprintf("/subscribers/%d", subscriberID), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (a *SubscribersAPI) Extend(ctx context.Context, subscriberID int64, req *ExtendRequest) (*Subscriber, error) {
	var sub Subscriber
	if err := a.c.post(ctx, fmt.Sprintf("/subscribers/%d/extend", subscriberID), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (a *SubscribersAPI) CancelSubscription(ctx context.Context, subscriberID, subscriptionID int64) (*Subscriber, error) {
	var sub Subscriber
	path := fmt.Sprintf("/subscribers/%d/subscriptions/%d", subscriberID, subscriptionID)
	if err := a.c.delete(ctx, path, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (a *SubscribersAPI) Delete(ctx context.Context, subscriberID int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/subscribers/%d", subscriberID), nil)
}

func (a *SubscribersAPI) Export(ctx context.Context) ([]byte, string, error) {
	return a.c.download(ctx, "/subscribers/export")
}
