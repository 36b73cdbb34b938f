package activity

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/repository/query"
)

type SQL struct {
	conn *sqlx.DB
}

type ActivityRepository interface {
	Create(ctx context.Context, data *model.Activity) (*model.Activity, error)
	// Get returns nil when the activity does not exist or was deleted.
	Get(ctx context.Context, id uint64) (*model.Activity, error)
	List(ctx context.Context, userID uint64, filter model.ListFilter) ([]model.Activity, int64, error)
	ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Activity, int64, error)
	// ListAll is List without pagination, used for summaries.
	ListAll(ctx context.Context, userID uint64, filter model.ListFilter) ([]model.Activity, error)
	Update(ctx context.Context, data *model.Activity) (bool, error)
	Delete(ctx context.Context, id, userID uint64) (bool, error)
	UpdateVerification(ctx context.Context, id uint64, status constant.VerificationStatus) (bool, error)
}

func NewActivityRepository(conn *sqlx.DB) ActivityRepository {
	return &SQL{conn: conn}
}

var schema = query.Schema{
	IDColumn:      "a.id",
	OwnerColumn:   "a.user_id",
	DeletedColumn: "a.deleted_at",
	TypeColumn:    "a.type",
	DateColumn:    "a.date",
	ValueColumn:   "a.carbon_value",
	TagsColumn:    "a.tags",
	PublicColumn:  "a.is_public",
}

const (
	columns = `a.id, a.user_id, a.type, a.custom_type, a.description, a.carbon_value, a.date, a.location, a.source, a.tags, ` +
		`a.verification_status, a.media_url, a.notes, a.is_public, a.deleted_at, a.created_at, a.updated_at`
	authorColumns = `u.id AS author_user_id, u.first_name AS author_first_name, u.last_name AS author_last_name`

	selectQuery       = `SELECT ` + columns + ` FROM activities a`
	selectPublicQuery = `SELECT ` + columns + `, ` + authorColumns + ` FROM activities a JOIN users u ON u.id = a.user_id`
	countQuery        = `SELECT COUNT(*) FROM activities a`

	insertQuery = `INSERT INTO activities (user_id, type, custom_type, description, carbon_value, date, location, source, tags, ` +
		`verification_status, media_url, notes, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updateQuery = `UPDATE activities SET type = ?, custom_type = ?, description = ?, carbon_value = ?, date = ?, location = ?, ` +
		`source = ?, tags = ?, media_url = ?, notes = ?, is_public = ?, updated_at = ? WHERE id = ? AND user_id = ? AND deleted_at IS NULL`
	deleteQuery       = `UPDATE activities SET deleted_at = NOW() WHERE id = ? AND user_id = ? AND deleted_at IS NULL`
	verificationQuery = `UPDATE activities SET verification_status = ?, updated_at = NOW() WHERE id = ? AND deleted_at IS NULL`
)

type publicRow struct {
	model.Activity
	model.Author
}

func (s *SQL) Create(ctx context.Context, data *model.Activity) (*model.Activity, error) {
	res, err := s.conn.ExecContext(ctx, insertQuery,
		data.UserID, data.Type, data.CustomType, data.Description, data.CarbonValue, data.Date, data.Location, data.Source,
		data.Tags, data.VerificationStatus, data.MediaURL, data.Notes, data.IsPublic, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, id uint64) (*model.Activity, error) {
	var entity model.Activity
	q := selectQuery + " WHERE a.id = ? AND a.deleted_at IS NULL"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, userID uint64, filter model.ListFilter) ([]model.Activity, int64, error) {
	p := query.Build(schema, query.ScopeOwner, userID, filter)

	total, err := s.count(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	q, args := p.Select(selectQuery)
	items := make([]model.Activity, 0)
	if err := s.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Activity, int64, error) {
	p := query.Build(schema, query.ScopePublic, 0, filter)

	total, err := s.count(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	q, args := p.Select(selectPublicQuery)
	rows := make([]publicRow, 0)
	if err := s.conn.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Activity, 0, len(rows))
	for i := range rows {
		item := rows[i].Activity
		author := rows[i].Author
		item.User = &author
		items = append(items, item)
	}
	return items, total, nil
}

func (s *SQL) ListAll(ctx context.Context, userID uint64, filter model.ListFilter) ([]model.Activity, error) {
	q, args := query.Build(schema, query.ScopeOwner, userID, filter).All(selectQuery)

	items := make([]model.Activity, 0)
	if err := s.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Activity) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateQuery,
		data.Type, data.CustomType, data.Description, data.CarbonValue, data.Date, data.Location, data.Source,
		data.Tags, data.MediaURL, data.Notes, data.IsPublic, data.UpdatedAt, data.ID, data.UserID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *SQL) Delete(ctx context.Context, id, userID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteQuery, id, userID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *SQL) UpdateVerification(ctx context.Context, id uint64, status constant.VerificationStatus) (bool, error) {
	res, err := s.conn.ExecContext(ctx, verificationQuery, status, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *SQL) count(ctx context.Context, p query.Predicate) (int64, error) {
	q, args := p.Count(countQuery)
	var total int64
	if err := s.conn.GetContext(ctx, &total, q, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
