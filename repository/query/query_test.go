package query_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/repository/query"
	"github.com/stretchr/testify/assert"
)

var activitySchema = query.Schema{
	IDColumn:      "a.id",
	OwnerColumn:   "a.user_id",
	DeletedColumn: "a.deleted_at",
	TypeColumn:    "a.type",
	DateColumn:    "a.date",
	ValueColumn:   "a.carbon_value",
	TagsColumn:    "a.tags",
	PublicColumn:  "a.is_public",
}

func ptr[T any](v T) *T { return &v }

func TestBuild(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		scope     query.Scope
		filter    model.ListFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "owner scope without filters",
			scope:     query.ScopeOwner,
			filter:    model.ListFilter{},
			wantQuery: "SELECT * FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?",
			wantArgs:  []any{uint64(7), 10, 0},
		},
		{
			name:      "public scope ignores owner",
			scope:     query.ScopePublic,
			filter:    model.ListFilter{Page: 2, Limit: 5},
			wantQuery: "SELECT * FROM activities a WHERE a.deleted_at IS NULL AND a.is_public = TRUE ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?",
			wantArgs:  []any{5, 10},
		},
		{
			name:  "every rule combined",
			scope: query.ScopeOwner,
			filter: model.ListFilter{
				Type:      "TRANSPORTATION",
				StartDate: &start,
				EndDate:   &end,
				MinValue:  ptr(1.5),
				MaxValue:  ptr(10.0),
				Tags:      model.Tags{"bike"},
				IsPublic:  ptr(false),
				Limit:     20,
			},
			wantQuery: "SELECT * FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? AND a.type = ? " +
				"AND a.date >= ? AND a.date <= ? AND a.carbon_value >= ? AND a.carbon_value <= ? " +
				"AND JSON_OVERLAPS(a.tags, CAST(? AS JSON)) AND a.is_public = ? " +
				"ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?",
			wantArgs: []any{uint64(7), "TRANSPORTATION", start, end, 1.5, 10.0, model.Tags{"bike"}, false, 20, 0},
		},
		{
			name:      "limit is capped",
			scope:     query.ScopeOwner,
			filter:    model.ListFilter{Limit: 5000},
			wantQuery: "SELECT * FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?",
			wantArgs:  []any{uint64(7), model.MaxPageLimit, 0},
		},
		{
			name:      "multiple tags match any",
			scope:     query.ScopePublic,
			filter:    model.ListFilter{Tags: model.Tags{"bike", "bus"}},
			wantQuery: "SELECT * FROM activities a WHERE a.deleted_at IS NULL AND a.is_public = TRUE AND JSON_OVERLAPS(a.tags, CAST(? AS JSON)) ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?",
			wantArgs:  []any{model.Tags{"bike", "bus"}, 10, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := query.Build(activitySchema, tt.scope, 7, tt.filter)
			q, args := p.Select("SELECT * FROM activities a")
			assert.Equal(t, tt.wantQuery, q)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPredicate_AlwaysExcludesDeleted(t *testing.T) {
	filters := []model.ListFilter{
		{},
		{IsPublic: ptr(true)},
		{Tags: model.Tags{"x"}, Type: "FOOD"},
	}
	for _, f := range filters {
		for _, scope := range []query.Scope{query.ScopeOwner, query.ScopePublic} {
			p := query.Build(activitySchema, scope, 1, f)
			assert.Contains(t, p.Where(), "a.deleted_at IS NULL")
		}
	}
}

func TestPredicate_CountAndAnd(t *testing.T) {
	p := query.Build(activitySchema, query.ScopeOwner, 3, model.ListFilter{Type: "FOOD"})
	extended := p.And("a.verification_status = ?", "VERIFIED")

	q, args := extended.Count("SELECT COUNT(*) FROM activities a")
	assert.Equal(t, "SELECT COUNT(*) FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? AND a.type = ? AND a.verification_status = ?", q)
	assert.Equal(t, []any{uint64(3), "FOOD", "VERIFIED"}, args)

	// the original predicate is untouched
	q, args = p.Count("SELECT COUNT(*) FROM activities a")
	assert.Equal(t, "SELECT COUNT(*) FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? AND a.type = ?", q)
	assert.Equal(t, []any{uint64(3), "FOOD"}, args)
}

func TestBuild_OrderColumn(t *testing.T) {
	schema := query.Schema{
		IDColumn:      "g.id",
		OwnerColumn:   "g.user_id",
		DeletedColumn: "g.deleted_at",
		DateColumn:    "g.deadline",
		OrderColumn:   "g.created_at",
	}
	q, _ := query.Build(schema, query.ScopeOwner, 1, model.ListFilter{}).Select("SELECT * FROM goals g")
	assert.Equal(t, "SELECT * FROM goals g WHERE g.deleted_at IS NULL AND g.user_id = ? ORDER BY g.created_at DESC, g.id DESC LIMIT ? OFFSET ?", q)
}

func TestPredicate_All(t *testing.T) {
	p := query.Build(query.Schema{IDColumn: "id", OwnerColumn: "author_id", DeletedColumn: "deleted_at", DateColumn: "created_at"},
		query.ScopeOwner, 9, model.ListFilter{})
	q, args := p.All("SELECT id FROM posts")
	assert.Equal(t, "SELECT id FROM posts WHERE deleted_at IS NULL AND author_id = ? ORDER BY created_at DESC, id DESC", q)
	assert.Equal(t, []any{uint64(9)}, args)
}
