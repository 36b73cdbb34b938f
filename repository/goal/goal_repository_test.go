package goal_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/model"
	goalrepo "github.com/muhammadheryan/green-footprint/repository/goal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rowColumns = []string{"id", "user_id", "title", "description", "category", "target_value", "current_value", "deadline", "is_active",
	"notes", "recurring", "completion_date", "tags", "is_public", "deleted_at", "created_at", "updated_at"}

func newMock(t *testing.T) (goalrepo.GoalRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	conn := sqlx.NewDb(db, "mysql")
	return goalrepo.NewGoalRepository(conn), conn, mock
}

func TestSQL_List_GoalFilters(t *testing.T) {
	repo, _, mock := newMock(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	active := true

	where := "WHERE g.deleted_at IS NULL AND g.user_id = ? AND g.category = ? AND g.is_active = ? AND g.recurring = ?"
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM goals g " + where)).
		WithArgs(uint64(2), "ENERGY", true, "WEEKLY").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(where + " ORDER BY g.created_at DESC, g.id DESC LIMIT ? OFFSET ?")).
		WithArgs(uint64(2), "ENERGY", true, "WEEKLY", 10, 0).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 2, "Less heating", "", "ENERGY", 100.0, 20.0, now, true, "", "WEEKLY", nil, []byte(`[]`), false, nil, now, now))

	items, total, err := repo.List(context.Background(), 2, model.GoalFilter{
		ListFilter: model.ListFilter{Type: "ENERGY"},
		IsActive:   &active,
		Recurring:  "WEEKLY",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Less heating", items[0].Title)
	assert.Nil(t, items[0].CompletionDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Deactivate(t *testing.T) {
	repo, _, mock := newMock(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET is_active = FALSE, updated_at = ? WHERE id = ? AND is_active = TRUE AND completion_date IS NULL AND deadline <= ? AND deleted_at IS NULL")).
		WithArgs(now, uint64(8), now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Deactivate(context.Background(), 8, now)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListProgress(t *testing.T) {
	repo, _, mock := newMock(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, goal_id, value, date, created_at FROM goal_progress WHERE goal_id = ? ORDER BY date DESC, id DESC LIMIT ?")).
		WithArgs(uint64(1), 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "goal_id", "value", "date", "created_at"}).
			AddRow(2, 1, 5.0, now, now).
			AddRow(1, 1, 3.0, now.Add(-time.Hour), now))

	items, err := repo.ListProgress(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 5.0, items[0].Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ProgressTx(t *testing.T) {
	repo, conn, mock := newMock(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE g.id = ? AND g.user_id = ? AND g.deleted_at IS NULL FOR UPDATE")).
		WithArgs(uint64(1), uint64(2)).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 2, "Walk more", "", "TRANSPORT", 10.0, 8.0, now, true, "", "NONE", nil, []byte(`[]`), false, nil, now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO goal_progress (goal_id, value, date, created_at) VALUES (?, ?, ?, ?)")).
		WithArgs(uint64(1), 2.0, now, now).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE goals SET current_value = ?, completion_date = ?, updated_at = NOW() WHERE id = ?")).
		WithArgs(10.0, now, uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)

	g, err := repo.GetForUpdateTx(ctx, tx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 8.0, g.CurrentValue)

	id, err := repo.InsertProgressTx(ctx, tx, &model.GoalProgress{GoalID: 1, Value: 2, Date: now, CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)

	require.NoError(t, repo.UpdateProgressTx(ctx, tx, 1, &model.GoalProgressUpdate{CurrentValue: 10, CompletionDate: &now}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
