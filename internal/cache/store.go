package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FetchFunc loads a value from upstream when the cache cannot serve it.
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value     interface{}
	err       error
	expiresAt time.Time
	done      chan struct{} // closed once the fetch settles
}

func (e *entry) settled() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// Store caches upstream reads per query key. Invariants:
//   - at most one in-flight fetch per key; concurrent readers share it;
//   - a settled value is served without a network call until its TTL passes
//     or its resource is invalidated;
//   - fetch errors are shared with the waiters of that flight but never
//     cached beyond it.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	ttl     time.Duration
	logger  zerolog.Logger
}

func NewStore(ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		entries: make(map[Key]*entry),
		ttl:     ttl,
		logger:  logger,
	}
}

// Do returns the cached value for key or runs fetch, deduplicating
// concurrent callers.
func (s *Store) Do(ctx context.Context, key Key, fetch FetchFunc) (interface{}, error) {
	s.mu.Lock()

	if e, ok := s.entries[key]; ok {
		if !e.settled() {
			// share the in-flight fetch
			s.mu.Unlock()
			return waitEntry(ctx, e)
		}
		if e.err == nil && time.Now().Before(e.expiresAt) {
			s.mu.Unlock()
			return e.value, nil
		}
		// stale or failed: fall through and refetch
		delete(s.entries, key)
	}

	e := &entry{done: make(chan struct{})}
	s.entries[key] = e
	s.mu.Unlock()

	value, err := fetch(ctx)

	s.mu.Lock()
	if err != nil {
		// never cache an error past its own flight
		if s.entries[key] == e {
			delete(s.entries, key)
		}
		e.err = err
	} else {
		e.value = value
		e.expiresAt = time.Now().Add(s.ttl)
	}
	close(e.done)
	s.mu.Unlock()

	return value, err
}

func waitEntry(ctx context.Context, e *entry) (interface{}, error) {
	select {
	case <-e.done:
		return e.value, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops every entry of the given resources. In-flight fetches
// are left to finish; their result lands in a fresh entry and will simply
// be refetched by the next reader after it expires.
func (s *Store) Invalidate(resources ...Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		for _, r := range resources {
			if key.Resource == r {
				delete(s.entries, key)
				break
			}
		}
	}
}

// Sweep removes expired settled entries and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, e := range s.entries {
		if e.settled() && now.After(e.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len reports the number of cached entries, in-flight included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Fetch is the typed front door to a Store.
func Fetch[T any](ctx context.Context, s *Store, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	value, err := s.Do(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: unexpected value type %T for key %s", value, key)
	}
	return typed, nil
}
