package upstream

import "context"

type SettingsAPI struct {
	c *Client
}

func (a *SettingsAPI) GetYooKassa(ctx context.Context) (*YooKassaSettings, error) {
	var settings YooKassaSettings
	if err := a.c.get(ctx, "/settings/yookassa", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (a *SettingsAPI) UpdateYooKassa(ctx context.Context, req *YooKassaUpdateRequest) (*YooKassaSettings, error) {
	var settings YooKassaSettings
	if err := a.c.put(ctx, "/settings/yookassa", req, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
