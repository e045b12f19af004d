package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 30 * time.Second

// Refresher reloads a Cache on a cron schedule.
type Refresher struct {
	cache *Cache
	cron  *cron.Cron
}

// NewRefresher schedules cache reloads. spec accepts the standard cron
// syntax and descriptors such as "@every 10m". Overlapping runs are skipped.
func NewRefresher(cache *Cache, spec string) (*Refresher, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	r := &Refresher{cache: cache, cron: c}
	if _, err := c.AddFunc(spec, r.refresh); err != nil {
		return nil, fmt.Errorf("lookup refresh schedule %q: %w", spec, err)
	}
	return r, nil
}

// Start runs the scheduler in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop halts the scheduler and waits for a running refresh to finish
// or ctx to expire.
func (r *Refresher) Stop(ctx context.Context) {
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (r *Refresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := r.cache.Load(ctx); err != nil {
		r.cache.log.Warn("lookup refresh failed, keeping previous snapshot", slog.String("error", err.Error()))
	}
}
