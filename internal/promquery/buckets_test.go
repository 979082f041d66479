package promquery

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/common/model"
)

func stream(label, value string, samples ...model.SamplePair) *model.SampleStream {
	return &model.SampleStream{
		Metric: model.Metric{model.LabelName(label): model.LabelValue(value)},
		Values: samples,
	}
}

func pair(ms int64, v float64) model.SamplePair {
	return model.SamplePair{Timestamp: model.Time(ms), Value: model.SampleValue(v)}
}

func TestShapeUnifiesTimestamps(t *testing.T) {
	matrix := model.Matrix{
		stream("runtime", "support-bot", pair(1000, 1), pair(2000, 2)),
		stream("runtime", "billing-bot", pair(2000, 5), pair(3000, 6)),
	}

	f := Shape(matrix, "runtime")

	if len(f.Series) != 2 || f.Series[0] != "billing-bot" || f.Series[1] != "support-bot" {
		t.Fatalf("series = %v", f.Series)
	}
	if len(f.Buckets) != 3 {
		t.Fatalf("bucket count = %d, want 3", len(f.Buckets))
	}
	if !f.Buckets[0].Timestamp.Equal(time.UnixMilli(1000).UTC()) {
		t.Errorf("first bucket at %v", f.Buckets[0].Timestamp)
	}
}

func TestShapeZeroFillsMissingSamples(t *testing.T) {
	matrix := model.Matrix{
		stream("runtime", "a", pair(1000, 1)),
		stream("runtime", "b", pair(2000, 5)),
	}

	f := Shape(matrix, "runtime")

	if got := f.Buckets[0].Values["b"]; got != 0 {
		t.Errorf("bucket[0][b] = %v, want 0", got)
	}
	if got := f.Buckets[1].Values["a"]; got != 0 {
		t.Errorf("bucket[1][a] = %v, want 0", got)
	}
	if got := f.Buckets[0].Values["a"]; got != 1 {
		t.Errorf("bucket[0][a] = %v, want 1", got)
	}
}

func TestShapeFallsBackToMetricString(t *testing.T) {
	matrix := model.Matrix{
		stream("instance", "node-1", pair(1000, 1)),
	}

	f := Shape(matrix, "runtime")
	if len(f.Series) != 1 || !strings.Contains(f.Series[0], "node-1") {
		t.Errorf("series = %v, want metric-string fallback", f.Series)
	}
}

func TestShapeEmptyMatrix(t *testing.T) {
	f := Shape(model.Matrix{}, "runtime")
	if len(f.Series) != 0 || len(f.Buckets) != 0 {
		t.Errorf("empty matrix shaped to %+v", f)
	}
}

func TestTotals(t *testing.T) {
	matrix := model.Matrix{
		stream("runtime", "a", pair(1000, 1), pair(2000, 2)),
		stream("runtime", "b", pair(1000, 10)),
	}

	totals := Shape(matrix, "runtime").Totals()
	if totals["a"] != 3 {
		t.Errorf("totals[a] = %v, want 3", totals["a"])
	}
	if totals["b"] != 10 {
		t.Errorf("totals[b] = %v, want 10", totals["b"])
	}
}

func TestStepFor(t *testing.T) {
	cases := []struct {
		window time.Duration
		want   time.Duration
	}{
		{time.Hour, 18 * time.Second},
		{10 * time.Minute, 15 * time.Second},
		{24 * time.Hour, 432 * time.Second},
	}
	for _, tc := range cases {
		if got := StepFor(tc.window); got != tc.want {
			t.Errorf("StepFor(%v) = %v, want %v", tc.window, got, tc.want)
		}
	}
}

func TestMetricQuery(t *testing.T) {
	q, label, err := MetricQuery("requests", "team-a")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(q, `namespace="team-a"`) {
		t.Errorf("query missing workspace: %s", q)
	}
	if label != "runtime" {
		t.Errorf("label = %q", label)
	}

	if _, _, err := MetricQuery("cpu_flamegraph", "team-a"); err == nil {
		t.Error("unknown metric should error")
	}
}
