package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/lumenpay/admin-gateway/internal/upstream"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "lumenpay:session:"

// Session is the persisted record of one logged-in admin: the upstream
// bearer token plus the profile fetched at login.
type Session struct {
	ID            string                `json:"id"`
	UpstreamToken string                `json:"upstream_token"`
	User          upstream.AdminProfile `json:"user"`
	CreatedAt     time.Time             `json:"created_at"`
}

// Store persists sessions in Redis so a gateway restart keeps admins
// logged in.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, keyPrefix+sess.ID, data, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
