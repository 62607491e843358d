package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/config"
)

// Error carries the upstream HTTP status and its detail message so handlers
// can surface validation text verbatim.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("upstream %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}

// Detail returns the upstream detail message when present, else fallback.
func Detail(err error, fallback string) string {
	var ue *Error
	if errors.As(err, &ue) && ue.Detail != "" {
		return ue.Detail
	}
	return fallback
}

type tokenKey struct{}

// WithToken attaches the upstream bearer token to ctx. The route guard sets
// it once per request; everything below treats it as read-only.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// UnauthorizedHook runs on every upstream 401 before the error propagates.
type UnauthorizedHook func(ctx context.Context)

// Client is the single configured HTTP client for the LumenPay backend.
type Client struct {
	baseURL        string
	http           *http.Client
	logger         zerolog.Logger
	onUnauthorized UnauthorizedHook

	Auth        *AuthAPI
	Bots        *BotsAPI
	Channels    *ChannelsAPI
	Plans       *PlansAPI
	Subscribers *SubscribersAPI
	Payments    *PaymentsAPI
	PromoCodes  *PromoCodesAPI
	Broadcasts  *BroadcastsAPI
	Settings    *SettingsAPI
	Dashboard   *DashboardAPI
}

func New(cfg *config.UpstreamConfig, logger zerolog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: cfg.Timeout(),
		},
		logger: logger,
	}

	c.Auth = &AuthAPI{c: c}
	c.Bots = &BotsAPI{c: c}
	c.Channels = &ChannelsAPI{c: c}
	c.Plans = &PlansAPI{c: c}
	c.Subscribers = &SubscribersAPI{c: c}
	c.Payments = &PaymentsAPI{c: c}
	c.PromoCodes = &PromoCodesAPI{c: c}
	c.Broadcasts = &BroadcastsAPI{c: c}
	c.Settings = &SettingsAPI{c: c}
	c.Dashboard = &DashboardAPI{c: c}

	return c
}

// SetUnauthorizedHook registers the single 401 handler. Only the session
// manager should call this.
func (c *Client) SetUnauthorizedHook(hook UnauthorizedHook) {
	c.onUnauthorized = hook
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(ctx, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// download fetches a binary payload (CSV exports) as-is.
func (c *Client) download(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", c.errorFromResponse(ctx, resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read export payload: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "text/csv"
	}
	return data, contentType, nil
}

func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	// decode failures leave Detail empty, which is fine
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload)

	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Str("url", resp.Request.URL.Path).
		Str("detail", payload.Detail).
		Msg("upstream error response")

	return &Error{StatusCode: resp.StatusCode, Detail: payload.Detail}
}
