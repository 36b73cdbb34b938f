package activity_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/green-footprint/constant"
	"github.com/muhammadheryan/green-footprint/model"
	activityrepo "github.com/muhammadheryan/green-footprint/repository/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const columns = `a.id, a.user_id, a.type, a.custom_type, a.description, a.carbon_value, a.date, a.location, a.source, a.tags, ` +
	`a.verification_status, a.media_url, a.notes, a.is_public, a.deleted_at, a.created_at, a.updated_at`

var rowColumns = []string{"id", "user_id", "type", "custom_type", "description", "carbon_value", "date", "location", "source", "tags",
	"verification_status", "media_url", "notes", "is_public", "deleted_at", "created_at", "updated_at"}

func newMock(t *testing.T) (activityrepo.ActivityRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return activityrepo.NewActivityRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestSQL_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO activities")).
		WithArgs(uint64(5), "TRANSPORTATION", "", "", 12.5, now, "", "", `["bike"]`, "PENDING", "", "", true, now, now).
		WillReturnResult(sqlmock.NewResult(11, 1))

	got, err := repo.Create(context.Background(), &model.Activity{
		UserID:             5,
		Type:               constant.ActivityTypeTransportation,
		CarbonValue:        12.5,
		Date:               now,
		Tags:               model.Tags{"bike"},
		VerificationStatus: constant.VerificationPending,
		IsPublic:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Get(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	q := regexp.QuoteMeta("SELECT " + columns + " FROM activities a WHERE a.id = ? AND a.deleted_at IS NULL")

	t.Run("found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(q).WithArgs(uint64(1)).WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 5, "FOOD", "", "lunch", 3.2, now, "", "", []byte(`["vegan"]`), "PENDING", "", "", true, nil, now, now))

		got, err := repo.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, constant.ActivityTypeFood, got.Type)
		assert.Equal(t, model.Tags{"vegan"}, got.Tags)
		assert.Nil(t, got.DeletedAt)
	})

	t.Run("soft deleted or missing", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(q).WithArgs(uint64(2)).WillReturnRows(sqlmock.NewRows(rowColumns))

		got, err := repo.Get(context.Background(), 2)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSQL_List(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? AND JSON_OVERLAPS(a.tags, CAST(? AS JSON))")).
		WithArgs(uint64(5), `["bike"]`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+columns+" FROM activities a WHERE a.deleted_at IS NULL AND a.user_id = ? AND JSON_OVERLAPS(a.tags, CAST(? AS JSON)) ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?")).
		WithArgs(uint64(5), `["bike"]`, 10, 0).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(1, 5, "TRANSPORTATION", "", "", 2.0, now, "", "", []byte(`["bike","city"]`), "PENDING", "", "", false, nil, now, now))

	items, total, err := repo.List(context.Background(), 5, model.ListFilter{Tags: model.Tags{"bike"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, model.Tags{"bike", "city"}, items[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_ListPublic(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	cols := append(append([]string{}, rowColumns...), "author_user_id", "author_first_name", "author_last_name")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM activities a WHERE a.deleted_at IS NULL AND a.is_public = TRUE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("JOIN users u ON u.id = a.user_id WHERE a.deleted_at IS NULL AND a.is_public = TRUE ORDER BY a.date DESC, a.id DESC LIMIT ? OFFSET ?")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(3, 7, "ENERGY", "", "", 4.0, now, "", "", []byte(`[]`), "VERIFIED", "", "", true, nil, now, now, 7, "Bob", "Green"))

	items, total, err := repo.ListPublic(context.Background(), model.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].User)
	assert.Equal(t, model.Author{ID: 7, FirstName: "Bob", LastName: "Green"}, *items[0].User)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Delete(t *testing.T) {
	repo, mock := newMock(t)
	q := regexp.QuoteMeta("UPDATE activities SET deleted_at = NOW() WHERE id = ? AND user_id = ? AND deleted_at IS NULL")
	mock.ExpectExec(q).WithArgs(uint64(1), uint64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs(uint64(1), uint64(6)).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 1, 6)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_UpdateVerification(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE activities SET verification_status = ?, updated_at = NOW() WHERE id = ? AND deleted_at IS NULL")).
		WithArgs("VERIFIED", uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.UpdateVerification(context.Background(), 4, constant.VerificationVerified)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
