package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
		busyRetries:        2,
		busyBackoff:        time.Millisecond,
	}, mock
}

func TestEnqueue_RetriesBusyDatabase(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO mutation_queue").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO mutation_queue").
		WithArgs("create", "bill", "b1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	id, err := repo.Enqueue(context.Background(), mustOp(t)(models.NewCreate(models.Bill{ID: "b1"})))
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueue_GivesUpAfterRetries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO mutation_queue").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})
		mock.ExpectRollback()
	}

	_, err := repo.Enqueue(context.Background(), mustOp(t)(models.NewCreate(models.Bill{ID: "b1"})))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueue_NonRetryableFailsOnce(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO mutation_queue").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := repo.Enqueue(context.Background(), mustOp(t)(models.NewCreate(models.Bill{ID: "b1"})))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnqueue_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("connection closed"))

	_, err := repo.Enqueue(context.Background(), mustOp(t)(models.NewDelete(models.KindItem, "i1")))
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestPendingFor_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM mutation_queue").
		WithArgs("item", 0).
		WillReturnError(errors.New("boom"))

	_, err := repo.PendingFor(context.Background(), models.KindItem)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingFor_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)
	mock.ExpectQuery("SELECT (.+) FROM mutation_queue").WillReturnRows(rows)

	_, err := repo.PendingFor(context.Background(), models.KindItem)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestMarkSynced_ExecError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMutationQueueRepository(db, logger.Nop())

	mock.ExpectExec("UPDATE mutation_queue SET synced").
		WillReturnError(errors.New("readonly database"))

	_, err := repo.MarkSynced(context.Background(), []int64{1, 2}, time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestApplySnapshots_RollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntityRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE items").WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ApplySnapshots(context.Background(), models.KindItem, []models.RemoteEntitySnapshot{
		{Kind: models.KindItem, EntityID: "i1", ServerUpdatedAt: time.Now()},
		{Kind: models.KindItem, EntityID: "i2", ServerUpdatedAt: time.Now()},
	}, time.Now())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit_RollsBackRowWhenQueueInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEntityRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO categories").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO mutation_queue").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Commit(context.Background(), mustOp(t)(models.NewCreate(models.Category{ID: "c1", Name: "A"})))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryAppend_EvictsInSameTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncHistoryRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE").WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(500)))
	mock.ExpectExec("INSERT INTO sync_history").
		WithArgs(int64(501), sqlmock.AnyArg(), sqlmock.AnyArg(), "sync").
		WillReturnResult(sqlmock.NewResult(501, 1))
	mock.ExpectExec("DELETE FROM sync_history").WithArgs(20).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec, err := repo.Append(context.Background(), models.SyncPassRecord{ID: 10, OccurredAt: time.Now()}, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(501), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSetting_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT value FROM settings").WillReturnError(sql.ErrConnDone)

	_, err := repo.GetSetting(context.Background(), SettingDeviceID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrSettingNotFound)
}
