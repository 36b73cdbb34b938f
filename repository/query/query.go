// Package query translates a model.ListFilter into the WHERE, ORDER BY and
// LIMIT clauses shared by every list endpoint.
package query

import (
	"strings"

	"github.com/muhammadheryan/green-footprint/model"
)

// Scope selects which rows a listing may see.
type Scope int

const (
	// ScopeOwner restricts rows to the caller.
	ScopeOwner Scope = iota
	// ScopePublic restricts rows to those flagged public.
	ScopePublic
)

// Schema maps the generic filter onto the columns of one table. Empty columns
// disable the matching rule.
type Schema struct {
	IDColumn      string
	OwnerColumn   string
	DeletedColumn string
	TypeColumn    string
	DateColumn    string
	ValueColumn   string
	TagsColumn    string
	PublicColumn  string
	// OrderColumn defaults to DateColumn.
	OrderColumn string
}

// Predicate is a built WHERE clause with its positional arguments.
type Predicate struct {
	conds   []string
	args    []any
	orderBy string
	limit   int
	offset  int
}

// Build combines every rule present in filter with AND. Soft-deleted rows are
// always excluded.
func Build(schema Schema, scope Scope, ownerID uint64, filter model.ListFilter) Predicate {
	filter = filter.Normalize()

	p := Predicate{
		limit:  filter.Limit,
		offset: filter.Offset(),
	}

	if schema.DeletedColumn != "" {
		p.conds = append(p.conds, schema.DeletedColumn+" IS NULL")
	}

	switch scope {
	case ScopePublic:
		p = p.And(schema.PublicColumn + " = TRUE")
	default:
		p = p.And(schema.OwnerColumn+" = ?", ownerID)
	}

	if filter.Type != "" && schema.TypeColumn != "" {
		p = p.And(schema.TypeColumn+" = ?", filter.Type)
	}
	if schema.DateColumn != "" {
		if filter.StartDate != nil {
			p = p.And(schema.DateColumn+" >= ?", *filter.StartDate)
		}
		if filter.EndDate != nil {
			p = p.And(schema.DateColumn+" <= ?", *filter.EndDate)
		}
	}
	if schema.ValueColumn != "" {
		if filter.MinValue != nil {
			p = p.And(schema.ValueColumn+" >= ?", *filter.MinValue)
		}
		if filter.MaxValue != nil {
			p = p.And(schema.ValueColumn+" <= ?", *filter.MaxValue)
		}
	}
	if len(filter.Tags) > 0 && schema.TagsColumn != "" {
		// model.Tags is a driver.Valuer and binds as a JSON array
		p = p.And("JSON_OVERLAPS("+schema.TagsColumn+", CAST(? AS JSON))", filter.Tags)
	}
	if filter.IsPublic != nil && scope == ScopeOwner && schema.PublicColumn != "" {
		p = p.And(schema.PublicColumn+" = ?", *filter.IsPublic)
	}

	order := schema.OrderColumn
	if order == "" {
		order = schema.DateColumn
	}
	if order != "" {
		p.orderBy = order + " DESC, " + schema.IDColumn + " DESC"
	} else {
		p.orderBy = schema.IDColumn + " DESC"
	}

	return p
}

// And returns a copy of p with one more condition.
func (p Predicate) And(cond string, args ...any) Predicate {
	conds := make([]string, len(p.conds), len(p.conds)+1)
	copy(conds, p.conds)
	p.conds = append(conds, cond)

	all := make([]any, len(p.args), len(p.args)+len(args))
	copy(all, p.args)
	p.args = append(all, args...)
	return p
}

// Where renders the conditions, "TRUE" when there are none.
func (p Predicate) Where() string {
	if len(p.conds) == 0 {
		return "TRUE"
	}
	return strings.Join(p.conds, " AND ")
}

func (p Predicate) Args() []any {
	out := make([]any, len(p.args))
	copy(out, p.args)
	return out
}

// Select appends the conditions, ordering and pagination to base, which must
// end before its WHERE keyword.
func (p Predicate) Select(base string) (string, []any) {
	q := base + " WHERE " + p.Where() + " ORDER BY " + p.orderBy + " LIMIT ? OFFSET ?"
	return q, append(p.Args(), p.limit, p.offset)
}

// All is Select without pagination, used by summaries.
func (p Predicate) All(base string) (string, []any) {
	return base + " WHERE " + p.Where() + " ORDER BY " + p.orderBy, p.Args()
}

// Count appends only the conditions to base.
func (p Predicate) Count(base string) (string, []any) {
	return base + " WHERE " + p.Where(), p.Args()
}
