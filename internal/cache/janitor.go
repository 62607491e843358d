package cache

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Janitor sweeps expired cache entries on a schedule so an idle gateway
// does not hold stale projections forever.
type Janitor struct {
	cron   *cron.Cron
	logger zerolog.Logger
}

func NewJanitor(store *Store, spec string, logger zerolog.Logger) (*Janitor, error) {
	if spec == "" {
		spec = "@every 1m"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if removed := store.Sweep(); removed > 0 {
			logger.Debug().Int("removed", removed).Msg("cache sweep")
		}
	})
	if err != nil {
		return nil, err
	}

	return &Janitor{cron: c, logger: logger}, nil
}

func (j *Janitor) Start() {
	j.cron.Start()
}

func (j *Janitor) Stop() {
	j.cron.Stop()
}
