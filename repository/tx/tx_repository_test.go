package tx_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	txrepo "github.com/muhammadheryan/green-footprint/repository/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRepository_CommitThenRollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := txrepo.NewTxRepository(sqlx.NewDb(db, "mysql"))
	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.CommitTx(tx))
	assert.NoError(t, repo.RollbackTx(tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRepository_Rollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := txrepo.NewTxRepository(sqlx.NewDb(db, "mysql"))
	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.RollbackTx(tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
