package leave_test

import (
	"context"
	"testing"

	"github.com/tech1210/empthics-backend/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Two separate mock connections: the pool behind the gorm handle and the one
// owning the transaction. A statement that bypassed the tx would land on the
// pool and fail its (empty) expectations.
func TestRepositoryWithTxRunsOnTransaction(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	require.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: poolDB}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txDB.Close()

	orgID := uuid.New().String()
	empID := uuid.New().String()
	typeID := uuid.New().String()

	txMock.ExpectBegin()
	txMock.ExpectExec("UPDATE leave_balances").
		WithArgs(0, 3, -3, orgID, empID, typeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	tx, err := txDB.Begin()
	require.NoError(t, err)

	repo := leave.NewRepository(gormDB).WithTx(tx)
	require.NoError(t, repo.AdjustBalance(context.Background(), orgID, empID, typeID, 0, 3, -3))
	require.NoError(t, tx.Commit())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestRepositoryWithTxRollbackDiscardsAdjustment(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	require.NoError(t, err)
	defer poolDB.Close()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: poolDB}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txDB.Close()

	orgID := uuid.New().String()
	empID := uuid.New().String()
	typeID := uuid.New().String()

	txMock.ExpectBegin()
	txMock.ExpectExec("UPDATE leave_balances").
		WithArgs(0, 3, -3, orgID, empID, typeID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	tx, err := txDB.Begin()
	require.NoError(t, err)

	repo := leave.NewRepository(gormDB).WithTx(tx)
	require.NoError(t, repo.AdjustBalance(context.Background(), orgID, empID, typeID, 0, 3, -3))
	require.NoError(t, tx.Rollback())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
