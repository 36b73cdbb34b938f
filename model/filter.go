package model

import "time"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ListFilter is the set of optional constraints accepted by every list endpoint.
// Nil pointers and empty values mean "no constraint".
type ListFilter struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	MinValue  *float64
	MaxValue  *float64
	Tags      Tags
	IsPublic  *bool
	Page      int
	Limit     int
}

// Normalize applies the pagination defaults and caps limit at MaxPageLimit.
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	return f
}

// Offset is the number of rows skipped for the current page.
func (f ListFilter) Offset() int {
	return f.Page * f.Limit
}

// GoalFilter adds the goal specific constraints.
type GoalFilter struct {
	ListFilter
	IsActive  *bool
	Recurring string
}

// Pagination accompanies every paged listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func NewPagination(filter ListFilter, total int64) *Pagination {
	filter = filter.Normalize()
	return &Pagination{Page: filter.Page, Limit: filter.Limit, Total: total}
}
