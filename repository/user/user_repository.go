package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/model"
)

// ErrDuplicateEmail is returned by Create when the unique email index rejects the row.
var ErrDuplicateEmail = errors.New("email already exists")

const mysqlDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, id uint64, data *model.UserProfileUpdate) (bool, error)
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) (bool, error)
	GetPublicProfile(ctx context.Context, id uint64) (*model.PublicProfile, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery       = `INSERT INTO users (email, password_hash, first_name, last_name, bio, role, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	getUserBase           = `SELECT id, email, password_hash, first_name, last_name, bio, role, created_at, updated_at FROM users WHERE true`
	updateProfileQuery    = `UPDATE users SET first_name = COALESCE(?, first_name), last_name = COALESCE(?, last_name), bio = COALESCE(?, bio), updated_at = NOW() WHERE id = ?`
	updatePasswordQuery   = `UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?`
	getPublicProfileQuery = `SELECT id, first_name, last_name, bio FROM users WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Bio, data.Role, data.CreatedAt)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, id uint64, data *model.UserProfileUpdate) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateProfileQuery, data.FirstName, data.LastName, data.Bio, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updatePasswordQuery, passwordHash, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *SQL) GetPublicProfile(ctx context.Context, id uint64) (*model.PublicProfile, error) {
	var profile model.PublicProfile
	if err := s.conn.QueryRowxContext(ctx, getPublicProfileQuery, id).StructScan(&profile); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
