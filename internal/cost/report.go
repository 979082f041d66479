// Package cost turns token usage into spend using per-provider pricing
// and aggregates it into the dashboard's cost views.
package cost

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
)

// Pricing is a provider's token pricing in dollars per 1000 tokens.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
	CachedPer1K float64
}

// ParsePricing converts the decimal-string pricing on a Provider resource.
// A nil pricing block means the provider tracks no cost and prices at zero.
func ParsePricing(p *v1alpha1.ProviderPricing) (Pricing, error) {
	if p == nil {
		return Pricing{}, nil
	}

	parse := func(field, s string) (float64, error) {
		if s == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing %s %q: %w", field, s, err)
		}
		return v, nil
	}

	var out Pricing
	var err error
	if out.InputPer1K, err = parse("inputCostPer1K", p.InputCostPer1K); err != nil {
		return Pricing{}, err
	}
	if out.OutputPer1K, err = parse("outputCostPer1K", p.OutputCostPer1K); err != nil {
		return Pricing{}, err
	}
	if out.CachedPer1K, err = parse("cachedCostPer1K", p.CachedCostPer1K); err != nil {
		return Pricing{}, err
	}
	return out, nil
}

// Usage is the token consumption attributed to one runtime over a window.
type Usage struct {
	Runtime      string  `json:"runtime"`
	Provider     string  `json:"provider"`
	InputTokens  float64 `json:"inputTokens"`
	OutputTokens float64 `json:"outputTokens"`
	CachedTokens float64 `json:"cachedTokens"`
}

// Spend prices a usage record.
func Spend(u Usage, p Pricing) float64 {
	return u.InputTokens/1000*p.InputPer1K +
		u.OutputTokens/1000*p.OutputPer1K +
		u.CachedTokens/1000*p.CachedPer1K
}

// Item is one row of a cost report.
type Item struct {
	Key          string  `json:"key"`
	InputTokens  float64 `json:"inputTokens"`
	OutputTokens float64 `json:"outputTokens"`
	CachedTokens float64 `json:"cachedTokens"`
	Cost         float64 `json:"cost"`
}

// Report is a cost view over a window, grouped by runtime or provider.
type Report struct {
	Window    time.Duration `json:"windowNanos"`
	GroupBy   string        `json:"groupBy"`
	Items     []Item        `json:"items"`
	TotalCost float64       `json:"totalCost"`
}

// BuildReport aggregates usage into a report. groupBy is "runtime" or
// "provider". Usage from providers with no pricing entry costs zero; the
// tokens still show so the gap is visible.
func BuildReport(usages []Usage, pricing map[string]Pricing, groupBy string, window time.Duration) (*Report, error) {
	if groupBy != "runtime" && groupBy != "provider" {
		return nil, fmt.Errorf("invalid groupBy %q (want runtime or provider)", groupBy)
	}

	byKey := make(map[string]*Item)
	report := &Report{Window: window, GroupBy: groupBy}

	for _, u := range usages {
		key := u.Runtime
		if groupBy == "provider" {
			key = u.Provider
		}

		item := byKey[key]
		if item == nil {
			item = &Item{Key: key}
			byKey[key] = item
		}

		spend := Spend(u, pricing[u.Provider])
		item.InputTokens += u.InputTokens
		item.OutputTokens += u.OutputTokens
		item.CachedTokens += u.CachedTokens
		item.Cost += spend
		report.TotalCost += spend
	}

	report.Items = make([]Item, 0, len(byKey))
	for _, item := range byKey {
		report.Items = append(report.Items, *item)
	}
	// Most expensive first; stable name order for ties.
	sort.Slice(report.Items, func(i, j int) bool {
		if report.Items[i].Cost != report.Items[j].Cost {
			return report.Items[i].Cost > report.Items[j].Cost
		}
		return report.Items[i].Key < report.Items[j].Key
	})

	return report, nil
}
