package goal

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/repository/query"
)

type SQL struct {
	conn *sqlx.DB
}

type GoalRepository interface {
	Create(ctx context.Context, data *model.Goal) (*model.Goal, error)
	// Get returns nil when the goal does not exist or was deleted.
	Get(ctx context.Context, id uint64) (*model.Goal, error)
	List(ctx context.Context, userID uint64, filter model.GoalFilter) ([]model.Goal, int64, error)
	ListPublic(ctx context.Context, filter model.GoalFilter) ([]model.Goal, int64, error)
	ListAll(ctx context.Context, userID uint64, filter model.GoalFilter) ([]model.Goal, error)
	// ListActive returns active goals ordered by nearest deadline.
	ListActive(ctx context.Context, userID uint64, limit int) ([]model.Goal, error)
	Update(ctx context.Context, data *model.Goal) (bool, error)
	Delete(ctx context.Context, id, userID uint64) (bool, error)
	// Deactivate turns off an active, uncompleted goal whose deadline is at or before now.
	Deactivate(ctx context.Context, id uint64, now time.Time) (bool, error)
	ListProgress(ctx context.Context, goalID uint64, limit int) ([]model.GoalProgress, error)

	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id, userID uint64) (*model.Goal, error)
	InsertProgressTx(ctx context.Context, tx *sqlx.Tx, data *model.GoalProgress) (uint64, error)
	UpdateProgressTx(ctx context.Context, tx *sqlx.Tx, id uint64, data *model.GoalProgressUpdate) error
}

func NewGoalRepository(conn *sqlx.DB) GoalRepository {
	return &SQL{conn: conn}
}

var schema = query.Schema{
	IDColumn:      "g.id",
	OwnerColumn:   "g.user_id",
	DeletedColumn: "g.deleted_at",
	TypeColumn:    "g.category",
	DateColumn:    "g.deadline",
	ValueColumn:   "g.target_value",
	TagsColumn:    "g.tags",
	PublicColumn:  "g.is_public",
	OrderColumn:   "g.created_at",
}

const (
	columns = `g.id, g.user_id, g.title, g.description, g.category, g.target_value, g.current_value, g.deadline, g.is_active, ` +
		`g.notes, g.recurring, g.completion_date, g.tags, g.is_public, g.deleted_at, g.created_at, g.updated_at`
	authorColumns = `u.id AS author_user_id, u.first_name AS author_first_name, u.last_name AS author_last_name`

	selectQuery       = `SELECT ` + columns + ` FROM goals g`
	selectPublicQuery = `SELECT ` + columns + `, ` + authorColumns + ` FROM goals g JOIN users u ON u.id = g.user_id`
	countQuery        = `SELECT COUNT(*) FROM goals g`

	insertQuery = `INSERT INTO goals (user_id, title, description, category, target_value, current_value, deadline, is_active, ` +
		`notes, recurring, tags, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	updateQuery = `UPDATE goals SET title = ?, description = ?, category = ?, target_value = ?, deadline = ?, is_active = ?, ` +
		`notes = ?, recurring = ?, tags = ?, is_public = ?, updated_at = ? WHERE id = ? AND user_id = ? AND deleted_at IS NULL`
	deleteQuery     = `UPDATE goals SET deleted_at = NOW() WHERE id = ? AND user_id = ? AND deleted_at IS NULL`
	deactivateQuery = `UPDATE goals SET is_active = FALSE, updated_at = ? ` +
		`WHERE id = ? AND is_active = TRUE AND completion_date IS NULL AND deadline <= ? AND deleted_at IS NULL`
	activeQuery = selectQuery + ` WHERE g.user_id = ? AND g.is_active = TRUE AND g.deleted_at IS NULL ORDER BY g.deadline ASC, g.id ASC LIMIT ?`

	progressColumns     = `id, goal_id, value, date, created_at`
	listProgressQuery   = `SELECT ` + progressColumns + ` FROM goal_progress WHERE goal_id = ? ORDER BY date DESC, id DESC`
	insertProgressQuery = `INSERT INTO goal_progress (goal_id, value, date, created_at) VALUES (?, ?, ?, ?)`
	updateProgressQuery = `UPDATE goals SET current_value = ?, completion_date = ?, updated_at = NOW() WHERE id = ?`
	lockQuery           = selectQuery + ` WHERE g.id = ? AND g.user_id = ? AND g.deleted_at IS NULL FOR UPDATE`
)

type publicRow struct {
	model.Goal
	model.Author
}

func build(scope query.Scope, userID uint64, filter model.GoalFilter) query.Predicate {
	p := query.Build(schema, scope, userID, filter.ListFilter)
	if filter.IsActive != nil {
		p = p.And("g.is_active = ?", *filter.IsActive)
	}
	if filter.Recurring != "" {
		p = p.And("g.recurring = ?", filter.Recurring)
	}
	return p
}

func (s *SQL) Create(ctx context.Context, data *model.Goal) (*model.Goal, error) {
	res, err := s.conn.ExecContext(ctx, insertQuery,
		data.UserID, data.Title, data.Description, data.Category, data.TargetValue, data.CurrentValue, data.Deadline,
		data.IsActive, data.Notes, data.Recurring, data.Tags, data.IsPublic, data.CreatedAt, data.UpdatedAt)
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

func (s *SQL) Get(ctx context.Context, id uint64) (*model.Goal, error) {
	var entity model.Goal
	q := selectQuery + " WHERE g.id = ? AND g.deleted_at IS NULL"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, userID uint64, filter model.GoalFilter) ([]model.Goal, int64, error) {
	p := build(query.ScopeOwner, userID, filter)

	total, err := s.count(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	q, args := p.Select(selectQuery)
	items := make([]model.Goal, 0)
	if err := s.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) ListPublic(ctx context.Context, filter model.GoalFilter) ([]model.Goal, int64, error) {
	p := build(query.ScopePublic, 0, filter)

	total, err := s.count(ctx, p)
	if err != nil {
		return nil, 0, err
	}

	q, args := p.Select(selectPublicQuery)
	rows := make([]publicRow, 0)
	if err := s.conn.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Goal, 0, len(rows))
	for i := range rows {
		item := rows[i].Goal
		author := rows[i].Author
		item.User = &author
		items = append(items, item)
	}
	return items, total, nil
}

func (s *SQL) ListAll(ctx context.Context, userID uint64, filter model.GoalFilter) ([]model.Goal, error) {
	q, args := build(query.ScopeOwner, userID, filter).All(selectQuery)

	items := make([]model.Goal, 0)
	if err := s.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListActive(ctx context.Context, userID uint64, limit int) ([]model.Goal, error) {
	items := make([]model.Goal, 0)
	if err := s.conn.SelectContext(ctx, &items, activeQuery, userID, limit); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Goal) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateQuery,
		data.Title, data.Description, data.Category, data.TargetValue, data.Deadline, data.IsActive,
		data.Notes, data.Recurring, data.Tags, data.IsPublic, data.UpdatedAt, data.ID, data.UserID)
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

func (s *SQL) Deactivate(ctx context.Context, id uint64, now time.Time) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deactivateQuery, now, id, now)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *SQL) ListProgress(ctx context.Context, goalID uint64, limit int) ([]model.GoalProgress, error) {
	q := listProgressQuery
	args := []any{goalID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	items := make([]model.GoalProgress, 0)
	if err := s.conn.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id, userID uint64) (*model.Goal, error) {
	var entity model.Goal
	if err := tx.QueryRowxContext(ctx, lockQuery, id, userID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) InsertProgressTx(ctx context.Context, tx *sqlx.Tx, data *model.GoalProgress) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertProgressQuery, data.GoalID, data.Value, data.Date, data.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) UpdateProgressTx(ctx context.Context, tx *sqlx.Tx, id uint64, data *model.GoalProgressUpdate) error {
	_, err := tx.ExecContext(ctx, updateProgressQuery, data.CurrentValue, data.CompletionDate, id)
	return err
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
