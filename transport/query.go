package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/utils/errors"
)

const dateOnly = "2006-01-02"

// queryParser collects every malformed parameter so the client sees them all at once.
type queryParser struct {
	values url.Values
	errs   []string
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return errors.SetValidationError(p.errs...)
}

func (p *queryParser) fail(format string, args ...any) {
	p.errs = append(p.errs, fmt.Sprintf(format, args...))
}

func (p *queryParser) first(names ...string) (string, string) {
	for _, name := range names {
		if v := strings.TrimSpace(p.values.Get(name)); v != "" {
			return name, v
		}
	}
	return "", ""
}

// date accepts RFC3339 or YYYY-MM-DD. A bare date used as an upper bound
// covers the whole day.
func (p *queryParser) date(name string, endOfDay bool) *time.Time {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		p.fail("%s must be an RFC3339 timestamp or a YYYY-MM-DD date", name)
		return nil
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t
}

func (p *queryParser) number(names ...string) *float64 {
	name, raw := p.first(names...)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.fail("%s must be a number", name)
		return nil
	}
	return &v
}

func (p *queryParser) flag(name string) *bool {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail("%s must be true or false", name)
		return nil
	}
	return &v
}

func (p *queryParser) integer(name string) int {
	raw := strings.TrimSpace(p.values.Get(name))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		p.fail("%s must be a non-negative integer", name)
		return 0
	}
	return v
}

func (p *queryParser) listFilter(typeNames, minNames, maxNames []string) model.ListFilter {
	_, typ := p.first(typeNames...)
	filter := model.ListFilter{
		Type:      strings.ToUpper(typ),
		StartDate: p.date("startDate", false),
		EndDate:   p.date("endDate", true),
		MinValue:  p.number(minNames...),
		MaxValue:  p.number(maxNames...),
		Tags:      model.ParseTags(p.values.Get("tags")),
		IsPublic:  p.flag("isPublic"),
		Page:      p.integer("page"),
		Limit:     p.integer("limit"),
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		p.fail("endDate must not be before startDate")
	}
	if filter.MinValue != nil && filter.MaxValue != nil && *filter.MaxValue < *filter.MinValue {
		p.fail("%s must not be less than %s", maxNames[0], minNames[0])
	}
	return filter
}

// parseListFilter reads the activity and post filter parameters.
func parseListFilter(values url.Values) (model.ListFilter, error) {
	p := newQueryParser(values)
	filter := p.listFilter([]string{"type"}, []string{"minCarbonValue"}, []string{"maxCarbonValue"})
	return filter, p.err()
}

// parseGoalFilter reads the goal filter parameters; category and the target
// value bounds are accepted as aliases of the generic names.
func parseGoalFilter(values url.Values) (model.GoalFilter, error) {
	p := newQueryParser(values)
	filter := model.GoalFilter{
		ListFilter: p.listFilter(
			[]string{"category", "type"},
			[]string{"minTargetValue", "minCarbonValue"},
			[]string{"maxTargetValue", "maxCarbonValue"},
		),
		IsActive:  p.flag("isActive"),
		Recurring: strings.ToUpper(strings.TrimSpace(values.Get("recurring"))),
	}
	return filter, p.err()
}

func parseDateRange(values url.Values) (start, end *time.Time, err error) {
	p := newQueryParser(values)
	start = p.date("startDate", false)
	end = p.date("endDate", true)
	return start, end, p.err()
}
