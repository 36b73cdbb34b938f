package post

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/model"
	"github.com/muhammadheryan/green-footprint/repository/query"
)

type SQL struct {
	conn *sqlx.DB
}

type PostRepository interface {
	Create(ctx context.Context, data *model.Post) (*model.Post, error)
	// Get returns nil when the post does not exist or was deleted.
	Get(ctx context.Context, id uint64) (*model.Post, error)
	List(ctx context.Context, authorID uint64, filter model.ListFilter) ([]model.Post, int64, error)
	ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Post, int64, error)
	Update(ctx context.Context, data *model.Post) (bool, error)
	Delete(ctx context.Context, id, authorID uint64) (bool, error)
}

func NewPostRepository(conn *sqlx.DB) PostRepository {
	return &SQL{conn: conn}
}

var schema = query.Schema{
	IDColumn:      "p.id",
	OwnerColumn:   "p.author_id",
	DeletedColumn: "p.deleted_at",
	DateColumn:    "p.created_at",
	TagsColumn:    "p.tags",
	PublicColumn:  "p.is_public",
}

const (
	columns     = `p.id, p.author_id, p.title, p.content, p.tags, p.is_public, p.deleted_at, p.created_at, p.updated_at`
	selectQuery = `SELECT ` + columns + `, u.id AS author_user_id, u.first_name AS author_first_name, u.last_name AS author_last_name ` +
		`FROM posts p JOIN users u ON u.id = p.author_id`
	countQuery = `SELECT COUNT(*) FROM posts p`

	insertQuery = `INSERT INTO posts (author_id, title, content, tags, is_public, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateQuery = `UPDATE posts SET title = ?, content = ?, tags = ?, is_public = ?, updated_at = ? ` +
		`WHERE id = ? AND author_id = ? AND deleted_at IS NULL`
	deleteQuery = `UPDATE posts SET deleted_at = NOW() WHERE id = ? AND author_id = ? AND deleted_at IS NULL`
)

type row struct {
	model.Post
	model.Author
}

func (r row) toPost() model.Post {
	p := r.Post
	author := r.Author
	p.Author = &author
	return p
}

func (s *SQL) Create(ctx context.Context, data *model.Post) (*model.Post, error) {
	res, err := s.conn.ExecContext(ctx, insertQuery,
		data.AuthorID, data.Title, data.Content, data.Tags, data.IsPublic, data.CreatedAt, data.UpdatedAt)
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

func (s *SQL) Get(ctx context.Context, id uint64) (*model.Post, error) {
	var r row
	q := selectQuery + " WHERE p.id = ? AND p.deleted_at IS NULL"
	if err := s.conn.QueryRowxContext(ctx, q, id).StructScan(&r); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	p := r.toPost()
	return &p, nil
}

func (s *SQL) List(ctx context.Context, authorID uint64, filter model.ListFilter) ([]model.Post, int64, error) {
	return s.list(ctx, query.Build(schema, query.ScopeOwner, authorID, filter))
}

func (s *SQL) ListPublic(ctx context.Context, filter model.ListFilter) ([]model.Post, int64, error) {
	return s.list(ctx, query.Build(schema, query.ScopePublic, 0, filter))
}

func (s *SQL) list(ctx context.Context, p query.Predicate) ([]model.Post, int64, error) {
	cq, cargs := p.Count(countQuery)
	var total int64
	if err := s.conn.GetContext(ctx, &total, cq, cargs...); err != nil {
		return nil, 0, err
	}

	q, args := p.Select(selectQuery)
	rows := make([]row, 0)
	if err := s.conn.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, 0, err
	}

	items := make([]model.Post, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toPost())
	}
	return items, total, nil
}

func (s *SQL) Update(ctx context.Context, data *model.Post) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateQuery,
		data.Title, data.Content, data.Tags, data.IsPublic, data.UpdatedAt, data.ID, data.AuthorID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Delete(ctx context.Context, id, authorID uint64) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteQuery, id, authorID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
