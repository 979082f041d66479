// Package promquery wraps the Prometheus HTTP API for the console's
// metrics views and shapes multi-series range results into unified time
// buckets the frontend can chart directly.
package promquery

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// Client queries a Prometheus server.
type Client struct {
	api v1.API
}

// NewClient creates a client for the Prometheus server at baseURL.
func NewClient(baseURL string) (*Client, error) {
	c, err := api.NewClient(api.Config{Address: baseURL})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	return &Client{api: v1.NewAPI(c)}, nil
}

// Range runs a range query over the trailing window ending now and shapes
// the result. seriesLabel names the label whose value identifies each
// series in the shaped frame.
func (c *Client) Range(ctx context.Context, query string, window time.Duration, seriesLabel string) (*Frame, error) {
	end := time.Now()
	r := v1.Range{
		Start: end.Add(-window),
		End:   end,
		Step:  StepFor(window),
	}

	val, _, err := c.api.QueryRange(ctx, query, r)
	if err != nil {
		return nil, fmt.Errorf("querying prometheus: %w", err)
	}

	matrix, ok := val.(model.Matrix)
	if !ok {
		return nil, fmt.Errorf("unexpected result type %s (want matrix)", val.Type())
	}
	return Shape(matrix, seriesLabel), nil
}

// StepFor derives a query step from the window, targeting about 200
// samples per series with a 15 second floor.
func StepFor(window time.Duration) time.Duration {
	step := window / 200
	if step < 15*time.Second {
		return 15 * time.Second
	}
	return step.Truncate(time.Second)
}

// knownMetrics maps console metric names to PromQL templates. %s is the
// workspace (namespace).
var knownMetrics = map[string]struct {
	query string
	label string
}{
	"requests": {
		query: `sum by (runtime) (rate(omnia_facade_requests_total{namespace=%q}[5m]))`,
		label: "runtime",
	},
	"connections": {
		query: `sum by (runtime) (omnia_facade_connections{namespace=%q})`,
		label: "runtime",
	},
	"tokens": {
		query: `sum by (runtime) (rate(omnia_llm_tokens_total{namespace=%q}[5m]))`,
		label: "runtime",
	},
	"token_cost": {
		query: `sum by (provider) (rate(omnia_llm_token_cost_dollars{namespace=%q}[5m]))`,
		label: "provider",
	},
	"latency": {
		query: `histogram_quantile(0.95, sum by (runtime, le) (rate(omnia_llm_request_duration_seconds_bucket{namespace=%q}[5m])))`,
		label: "runtime",
	},
}

// MetricQuery resolves a console metric name to its PromQL for a
// workspace. Only the known set is allowed; raw PromQL never comes from
// the frontend.
func MetricQuery(metric, workspace string) (query, seriesLabel string, err error) {
	m, ok := knownMetrics[metric]
	if !ok {
		return "", "", fmt.Errorf("unknown metric %q", metric)
	}
	return fmt.Sprintf(m.query, workspace), m.label, nil
}
