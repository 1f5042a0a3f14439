// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // goose talks to the DB on its own, every call is unexpected

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil)
	require.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Migrate(ctx, db))

	for _, table := range []string{"mutation_queue", "sync_history", "settings", "categories", "items", "bills"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}

	version, err := Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))
}

func TestMigrate_QueueChecksKind(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db))

	_, err := db.ExecContext(ctx,
		`INSERT INTO mutation_queue (op_type, entity_kind, entity_id, enqueued_at) VALUES ('create', 'invoice', 'x', 1)`)
	assert.Error(t, err)
}
