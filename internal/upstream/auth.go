package upstream

import "context"

type AuthAPI struct {
	c *Client
}

func (a *AuthAPI) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := a.c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Me(ctx context.Context) (*AdminProfile, error) {
	var profile AdminProfile
	if err := a.c.get(ctx, "/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
