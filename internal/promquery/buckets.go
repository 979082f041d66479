package promquery

import (
	"sort"
	"time"

	"github.com/prometheus/common/model"
)

// Bucket is one unified time slot across every series in a frame.
type Bucket struct {
	Timestamp time.Time          `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
}

// Frame is a shaped range-query result: one bucket per distinct sample
// timestamp, one value per series per bucket, zero-filled where a series
// has no sample at that timestamp.
type Frame struct {
	Series  []string `json:"series"`
	Buckets []Bucket `json:"buckets"`
}

// Shape folds a Prometheus matrix into a Frame. Series are named by the
// value of seriesLabel on each stream; streams missing the label fall back
// to the full metric string. Buckets are ordered by timestamp and series
// names are sorted for stable output.
func Shape(matrix model.Matrix, seriesLabel string) *Frame {
	names := make([]string, 0, len(matrix))
	seen := make(map[string]bool)
	byTime := make(map[int64]map[string]float64)

	for _, stream := range matrix {
		name := string(stream.Metric[model.LabelName(seriesLabel)])
		if name == "" {
			name = stream.Metric.String()
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}

		for _, sample := range stream.Values {
			ts := int64(sample.Timestamp)
			if byTime[ts] == nil {
				byTime[ts] = make(map[string]float64)
			}
			// Last sample wins if a series repeats a timestamp.
			byTime[ts][name] = float64(sample.Value)
		}
	}
	sort.Strings(names)

	stamps := make([]int64, 0, len(byTime))
	for ts := range byTime {
		stamps = append(stamps, ts)
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i] < stamps[j] })

	buckets := make([]Bucket, len(stamps))
	for i, ts := range stamps {
		values := make(map[string]float64, len(names))
		for _, name := range names {
			values[name] = byTime[ts][name]
		}
		buckets[i] = Bucket{
			Timestamp: time.UnixMilli(ts).UTC(),
			Values:    values,
		}
	}

	return &Frame{Series: names, Buckets: buckets}
}

// Totals sums each series across the frame's buckets.
func (f *Frame) Totals() map[string]float64 {
	totals := make(map[string]float64, len(f.Series))
	for _, b := range f.Buckets {
		for name, v := range b.Values {
			totals[name] += v
		}
	}
	return totals
}
