package model

import "time"

type GroupTotal struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Summary is derived on every request from the filtered rows; never stored.
type Summary struct {
	Total   float64               `json:"total"`
	Count   int                   `json:"count"`
	Average float64               `json:"average"`
	ByGroup map[string]GroupTotal `json:"byGroup"`
}

type GoalSummary struct {
	Summary
	ActiveGoals    int `json:"activeGoals"`
	CompletedGoals int `json:"completedGoals"`
}

type MonthlyStats struct {
	TotalCarbon   float64 `json:"totalCarbon"`
	ActivityCount int     `json:"activityCount"`
}

type Dashboard struct {
	User             *UserEntity  `json:"user"`
	RecentActivities []Activity   `json:"recentActivities"`
	ActiveGoals      []Goal       `json:"activeGoals"`
	MonthlyStats     MonthlyStats `json:"monthlyStats"`
}

type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Stats struct {
	Activities Summary     `json:"activities"`
	Goals      GoalSummary `json:"goals"`
	DateRange  DateRange   `json:"dateRange"`
}
