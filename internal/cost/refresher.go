package cost

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/robfig/cron/v3"
)

// Refresher pre-warms cost data on a cron schedule so the dashboard's cost
// tab never pays the full aggregation latency on first open.
type Refresher struct {
	schedule cron.Schedule
	refresh  func(ctx context.Context) error
	log      logr.Logger
}

// NewRefresher parses a five-field cron expression and wraps the refresh
// callback. The callback runs at each scheduled tick until the context ends.
func NewRefresher(spec string, refresh func(ctx context.Context) error, log logr.Logger) (*Refresher, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return &Refresher{schedule: sched, refresh: refresh, log: log}, nil
}

// Run fires the refresh callback at each scheduled time. A failed refresh is
// logged and the schedule continues; the next tick retries.
func (r *Refresher) Run(ctx context.Context) {
	for {
		next := r.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := r.refresh(ctx); err != nil {
			r.log.Error(err, "cost refresh failed", "scheduledAt", next)
			continue
		}
		r.log.V(1).Info("cost snapshot refreshed", "scheduledAt", next)
	}
}
