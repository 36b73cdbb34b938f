package user_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/model"
	userrepo "github.com/muhammadheryan/green-footprint/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (userrepo.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return userrepo.NewUserRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Create(t *testing.T) {
	insert := regexp.QuoteMeta(`INSERT INTO users (email, password_hash, first_name, last_name, bio, role, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`)

	tests := []struct {
		name     string
		mockCall func(m sqlmock.Sqlmock)
		wantID   uint64
		wantErr  error
	}{
		{
			name: "success",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).
					WithArgs("alice@example.com", "hash", "Alice", "", "", "user", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "duplicate email",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).
					WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			wantErr: userrepo.ErrDuplicateEmail,
		},
		{
			name: "other error is passed through",
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insert).WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMock(t)
			tt.mockCall(mock)

			got, err := repo.Create(context.Background(), &model.UserEntity{
				Email:        "alice@example.com",
				PasswordHash: "hash",
				FirstName:    "Alice",
				Role:         "user",
				CreatedAt:    time.Now(),
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_Get(t *testing.T) {
	base := `SELECT id, email, password_hash, first_name, last_name, bio, role, created_at, updated_at FROM users WHERE true`
	cols := []string{"id", "email", "password_hash", "first_name", "last_name", "bio", "role", "created_at", "updated_at"}
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("by email", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(base + " AND email = ?")).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "alice@example.com", "hash", "Alice", "", "", "user", now, nil))

		got, err := repo.Get(context.Background(), &model.UserFilter{Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got.ID)
		assert.Equal(t, "Alice", got.FirstName)
		assert.Nil(t, got.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(base + " AND id = ?")).
			WithArgs(uint64(9)).
			WillReturnRows(sqlmock.NewRows(cols))

		got, err := repo.Get(context.Background(), &model.UserFilter{ID: 9})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSQL_UpdateProfile(t *testing.T) {
	q := regexp.QuoteMeta(`UPDATE users SET first_name = COALESCE(?, first_name), last_name = COALESCE(?, last_name), bio = COALESCE(?, bio), updated_at = NOW() WHERE id = ?`)
	first := "Alice"

	repo, mock := newMock(t)
	mock.ExpectExec(q).WithArgs("Alice", nil, nil, uint64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("Alice", nil, nil, uint64(2)).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.UpdateProfile(context.Background(), 1, &model.UserProfileUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateProfile(context.Background(), 2, &model.UserProfileUpdate{FirstName: &first})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_UpdatePassword(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?`)).
		WithArgs("new-hash", uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdatePassword(context.Background(), 1, "new-hash")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetPublicProfile(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name, last_name, bio FROM users WHERE id = ?`)).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "bio"}).AddRow(3, "Bob", "Green", "cyclist"))

	got, err := repo.GetPublicProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &model.PublicProfile{ID: 3, FirstName: "Bob", LastName: "Green", Bio: "cyclist"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
