// Package aggregate folds filtered result sets into summary statistics.
//
// Sums are accumulated as decimals so the result does not depend on the order
// of the input rows.
package aggregate

import (
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	"github.com/shopspring/decimal"
)

type bucket struct {
	count int
	total decimal.Decimal
}

// Summarize computes total, count, average and a per-group breakdown of items.
// The average of an empty input is 0.
func Summarize[T any](items []T, value func(T) float64, group func(T) string) model.Summary {
	total := decimal.Zero
	buckets := make(map[string]*bucket)

	for _, it := range items {
		v := decimal.NewFromFloat(value(it))
		total = total.Add(v)

		key := group(it)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[key] = b
		}
		b.count++
		b.total = b.total.Add(v)
	}

	summary := model.Summary{
		Total:   total.InexactFloat64(),
		Count:   len(items),
		ByGroup: make(map[string]model.GroupTotal, len(buckets)),
	}
	if summary.Count > 0 {
		summary.Average = total.Div(decimal.NewFromInt(int64(summary.Count))).InexactFloat64()
	}
	for key, b := range buckets {
		summary.ByGroup[key] = model.GroupTotal{Count: b.count, Total: b.total.InexactFloat64()}
	}
	return summary
}

// Activities sums carbon values grouped by activity type.
func Activities(activities []model.Activity) model.Summary {
	return Summarize(activities,
		func(a model.Activity) float64 { return a.CarbonValue },
		func(a model.Activity) string { return string(a.Type) },
	)
}

// Goals sums progress grouped by category; goals without a category count as OTHER.
func Goals(goals []model.Goal) model.GoalSummary {
	summary := model.GoalSummary{
		Summary: Summarize(goals,
			func(g model.Goal) float64 { return g.CurrentValue },
			func(g model.Goal) string {
				if g.Category == "" {
					return string(constant.GoalCategoryOther)
				}
				return string(g.Category)
			},
		),
	}
	for _, g := range goals {
		if g.IsActive {
			summary.ActiveGoals++
		}
		if g.CompletionDate != nil {
			summary.CompletedGoals++
		}
	}
	return summary
}
