package cache

import (
	"context"

	"github.com/rs/zerolog"
)

// Invalidator is what mutations call after success: drop local entries
// immediately, then tell the other replicas. A publish failure is logged
// but never fails the mutation; remote replicas converge on TTL expiry.
type Invalidator struct {
	store  *Store
	bus    *Bus
	logger zerolog.Logger
}

func NewInvalidator(store *Store, bus *Bus, logger zerolog.Logger) *Invalidator {
	return &Invalidator{
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

func (i *Invalidator) Invalidate(ctx context.Context, resources ...Resource) {
	if len(resources) == 0 {
		return
	}

	i.store.Invalidate(resources...)

	if i.bus == nil {
		return
	}
	if err := i.bus.Publish(ctx, resources...); err != nil {
		i.logger.Warn().Err(err).Msg("failed to publish cache invalidation")
	}
}
