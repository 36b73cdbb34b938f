package aggregate_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/utils/aggregate"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	carbon float64
	kind   string
}

func summarize(items []sample) model.Summary {
	return aggregate.Summarize(items,
		func(s sample) float64 { return s.carbon },
		func(s sample) string { return s.kind },
	)
}

func TestSummarize_Empty(t *testing.T) {
	got := summarize(nil)

	assert.Equal(t, 0, got.Count)
	assert.Equal(t, 0.0, got.Total)
	assert.Equal(t, 0.0, got.Average)
	assert.NotNil(t, got.ByGroup)
	assert.Empty(t, got.ByGroup)
}

func TestSummarize_KnownInput(t *testing.T) {
	want := model.Summary{
		Total:   15,
		Count:   2,
		Average: 7.5,
		ByGroup: map[string]model.GroupTotal{
			"A": {Count: 1, Total: 10},
			"B": {Count: 1, Total: 5},
		},
	}

	assert.Equal(t, want, summarize([]sample{{10, "A"}, {5, "B"}}))
	assert.Equal(t, want, summarize([]sample{{5, "B"}, {10, "A"}}))
}

func TestSummarize_OrderIndependent(t *testing.T) {
	items := []sample{{0.1, "A"}, {0.2, "B"}, {0.3, "A"}, {1e-9, "C"}, {12345.678, "B"}, {0.7, "A"}}
	reversed := make([]sample, len(items))
	for i, it := range items {
		reversed[len(items)-1-i] = it
	}
	rotated := append(append([]sample{}, items[3:]...), items[:3]...)

	base := summarize(items)
	assert.Equal(t, base, summarize(reversed))
	assert.Equal(t, base, summarize(rotated))
	assert.Equal(t, 1.1, base.ByGroup["A"].Total)
}

func TestActivities(t *testing.T) {
	got := aggregate.Activities([]model.Activity{
		{Type: constant.ActivityTypeTransportation, CarbonValue: 4},
		{Type: constant.ActivityTypeFood, CarbonValue: 2},
		{Type: constant.ActivityTypeTransportation, CarbonValue: 6},
	})

	assert.Equal(t, 12.0, got.Total)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 4.0, got.Average)
	assert.Equal(t, model.GroupTotal{Count: 2, Total: 10}, got.ByGroup["TRANSPORTATION"])
}

func TestGoals(t *testing.T) {
	done := time.Now()
	got := aggregate.Goals([]model.Goal{
		{Category: constant.GoalCategoryEnergy, CurrentValue: 3, IsActive: true},
		{CurrentValue: 2, IsActive: false, CompletionDate: &done},
		{Category: constant.GoalCategoryEnergy, CurrentValue: 1, IsActive: true},
	})

	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 6.0, got.Total)
	assert.Equal(t, 2, got.ActiveGoals)
	assert.Equal(t, 1, got.CompletedGoals)
	assert.Equal(t, model.GroupTotal{Count: 1, Total: 2}, got.ByGroup["OTHER"])
	assert.Equal(t, model.GroupTotal{Count: 2, Total: 4}, got.ByGroup["ENERGY"])
}
