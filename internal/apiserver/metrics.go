package apiserver

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/promquery"
	"github.com/altairalabs/omnia-console/internal/query"
)

// --- Metrics and cost views ---

func parseWindow(r *http.Request, fallback time.Duration) (time.Duration, error) {
	raw := r.URL.Query().Get("window")
	if raw == "" {
		return fallback, nil
	}
	window, err := time.ParseDuration(raw)
	if err != nil || window <= 0 {
		return 0, fmt.Errorf("invalid window %q", raw)
	}
	return window, nil
}

func (s *Server) getMetrics(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = "requests"
	}
	window, err := parseWindow(r, time.Hour)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := query.Key("metrics", ws, metric, window.String())
	s.cached(w, r, key, func(ctx context.Context) (any, error) {
		if s.prom == nil {
			return demoFrame(metric, window), nil
		}
		q, label, err := promquery.MetricQuery(metric, ws)
		if err != nil {
			return nil, err
		}
		return s.prom.Range(ctx, q, window, label)
	})
}

// demoFrame produces a deterministic two-series frame so the metrics views
// render without a Prometheus.
func demoFrame(metric string, window time.Duration) *promquery.Frame {
	step := promquery.StepFor(window)
	end := time.Now().UTC().Truncate(step)
	start := end.Add(-window)

	// The metric name seeds the base level so each chart looks distinct.
	base := float64(20 + 10*len(metric))

	series := []string{"support-bot", "triage"}
	frame := &promquery.Frame{Series: series}
	i := 0
	for ts := start; !ts.After(end); ts = ts.Add(step) {
		values := map[string]float64{
			series[0]: math.Round(base + base/3*math.Sin(float64(i)/8)),
			series[1]: math.Round(base/4 + base/8*math.Sin(float64(i)/8+2)),
		}
		frame.Buckets = append(frame.Buckets, promquery.Bucket{Timestamp: ts, Values: values})
		i++
	}
	return frame
}

func (s *Server) getCost(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	groupBy := r.URL.Query().Get("by")
	if groupBy == "" {
		groupBy = "runtime"
	}
	window, err := parseWindow(r, s.config().Cost.DefaultWindow.Std())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := query.Key("cost", ws, groupBy, window.String())
	s.cached(w, r, key, func(ctx context.Context) (any, error) {
		return s.costReport(ctx, ws, groupBy, window)
	})
}

func (s *Server) costReport(ctx context.Context, workspace, groupBy string, window time.Duration) (*cost.Report, error) {
	usages, err := s.data.Usage(ctx, workspace, window)
	if err != nil {
		return nil, err
	}

	providers, err := s.data.SharedProviders(ctx)
	if err != nil {
		return nil, err
	}
	pricing := make(map[string]cost.Pricing, len(providers))
	for _, p := range providers {
		parsed, err := cost.ParsePricing(p.Spec.Pricing)
		if err != nil {
			s.log.Error(err, "skipping provider with bad pricing", "provider", p.Name)
			continue
		}
		pricing[p.Name] = parsed
	}

	return cost.BuildReport(usages, pricing, groupBy, window)
}

// WarmCost pre-computes the default cost reports for every workspace. The
// cron refresher calls this so the cost tab opens from cache.
func (s *Server) WarmCost(ctx context.Context) error {
	workspaces, err := s.data.Workspaces(ctx)
	if err != nil {
		return err
	}

	cfg := s.config()
	window := cfg.Cost.DefaultWindow.Std()
	ttl := cfg.CacheTTL.Std()
	for _, ws := range workspaces {
		for _, groupBy := range []string{"runtime", "provider"} {
			key := query.Key("cost", ws.Name, groupBy, window.String())
			s.cache.Invalidate(key)
			if _, err := s.cache.GetTTL(ctx, key, ttl, func(ctx context.Context) (any, error) {
				return s.costReport(ctx, ws.Name, groupBy, window)
			}); err != nil {
				return fmt.Errorf("warming cost for %s: %w", ws.Name, err)
			}
		}
	}
	return nil
}
