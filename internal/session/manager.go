package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lumenpay/admin-gateway/internal/pkg/jwt"
	"github.com/lumenpay/admin-gateway/internal/upstream"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type sessionIDKey struct{}

// WithSessionID tags ctx with the resolved session, so the upstream 401
// hook knows which session to invalidate.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// Manager owns the session lifecycle:
// unauthenticated -> loading (login + profile fetch in flight)
// -> authenticated -> unauthenticated again on logout, profile failure,
// or any upstream 401.
type Manager struct {
	store          *Store
	client         *upstream.Client
	jwtSecret      string
	jwtExpireHours int
	logger         zerolog.Logger
}

func NewManager(store *Store, client *upstream.Client, jwtSecret string, jwtExpireHours int, logger zerolog.Logger) *Manager {
	m := &Manager{
		store:          store,
		client:         client,
		jwtSecret:      jwtSecret,
		jwtExpireHours: jwtExpireHours,
		logger:         logger,
	}

	// The 401 interceptor and Logout must clear the same state: both end in
	// store.Delete on the same key prefix.
	client.SetUnauthorizedHook(func(ctx context.Context) {
		sid := SessionIDFromContext(ctx)
		if sid == "" {
			return
		}
		if err := m.store.Delete(context.Background(), sid); err != nil {
			m.logger.Warn().Err(err).Str("session_id", sid).Msg("failed to drop session after upstream 401")
		} else {
			m.logger.Info().Str("session_id", sid).Msg("session dropped after upstream 401")
		}
	})

	return m
}

// Login authenticates against the upstream, fetches the admin profile and
// persists the session. Any failure leaves nothing behind and returns the
// error untouched.
func (m *Manager) Login(ctx context.Context, username, password string) (*Session, string, error) {
	tokenResp, err := m.client.Auth.Login(ctx, &upstream.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, "", err
	}

	profile, err := m.client.Auth.Me(upstream.WithToken(ctx, tokenResp.AccessToken))
	if err != nil {
		return nil, "", err
	}

	sess := &Session{
		ID:            uuid.NewString(),
		UpstreamToken: tokenResp.AccessToken,
		User:          *profile,
		CreatedAt:     time.Now(),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, "", err
	}

	token, err := jwt.GenerateToken(sess.ID, profile.ID, m.jwtSecret, m.jwtExpireHours)
	if err != nil {
		// roll back so no half-created session lingers
		_ = m.store.Delete(ctx, sess.ID)
		return nil, "", err
	}

	m.logger.Info().Int64("admin_id", profile.ID).Str("username", profile.Username).Msg("admin logged in")
	return sess, token, nil
}

// Resolve maps a gateway token to its persisted session. Any failure is
// reported as ErrNotAuthenticated; the route guard does not distinguish.
func (m *Manager) Resolve(ctx context.Context, gatewayToken string) (*Session, error) {
	claims, err := jwt.ParseToken(gatewayToken, m.jwtSecret)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	sess, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, ErrNotAuthenticated
	}
	return sess, nil
}

// Logout drops the persisted session. The upstream is not called.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// RefreshProfile re-fetches the admin profile and updates the persisted
// session. An upstream 401 has already dropped the session via the hook by
// the time the error reaches the caller.
func (m *Manager) RefreshProfile(ctx context.Context, sess *Session) (*upstream.AdminProfile, error) {
	ctx = upstream.WithToken(WithSessionID(ctx, sess.ID), sess.UpstreamToken)

	profile, err := m.client.Auth.Me(ctx)
	if err != nil {
		return nil, err
	}

	sess.User = *profile
	if err := m.store.Save(ctx, sess); err != nil {
		m.logger.Warn().Err(err).Str("session_id", sess.ID).Msg("failed to persist refreshed profile")
	}
	return profile, nil
}
