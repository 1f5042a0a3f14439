// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// qb builds SQLite statements with "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	queueTable   = "mutation_queue"
	historyTable = "sync_history"
)

var queueColumns = []string{
	"id",
	"op_type",
	"entity_kind",
	"entity_id",
	"payload",
	"enqueued_at",
	"retry_count",
	"last_error",
	"synced",
	"synced_at",
}

var entityColumns = []string{
	"id",
	"payload",
	"updated_at",
	"server_updated_at",
	"image_url",
	"synced_at",
}

var historyColumns = []string{
	"id",
	"occurred_at",
	"counts",
	"source",
}

// entityTables maps every entity kind to its local table. Table names are
// only ever taken from this map.
var entityTables = map[models.EntityKind]string{
	models.KindCategory: "categories",
	models.KindItem:     "items",
	models.KindBill:     "bills",
}

// pendingForEntity matches unsynced queue rows of one entity. Its arguments
// are the entity kind and id.
const pendingForEntity = `EXISTS (SELECT 1 FROM mutation_queue WHERE entity_kind = ? AND entity_id = ? AND synced = 0)`

const (
	insertMutation = `
		INSERT INTO mutation_queue (
			op_type,
			entity_kind,
			entity_id,
			payload,
			enqueued_at
		) VALUES (?, ?, ?, ?, ?);`

	selectMaxHistoryID = `SELECT COALESCE(MAX(id), 0) FROM sync_history;`

	insertHistory = `
		INSERT INTO sync_history (
			id,
			occurred_at,
			counts,
			source
		) VALUES (?, ?, ?, ?);`

	evictHistory = `
		DELETE FROM sync_history
		WHERE id NOT IN (SELECT id FROM sync_history ORDER BY id DESC LIMIT ?);`

	getSetting = `SELECT value FROM settings WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deleteSetting = `DELETE FROM settings WHERE key = ?;`

	// upsertDownloadedTemplate takes the table name. A row is skipped while
	// the entity has unsynced local mutations.
	upsertDownloadedTemplate = `
		INSERT INTO %s (id, payload, updated_at, server_updated_at, image_url, synced_at)
		SELECT ?, ?, ?, ?, ?, ?
		WHERE NOT ` + pendingForEntity + `
		ON CONFLICT (id) DO UPDATE SET
			payload           = excluded.payload,
			updated_at        = excluded.updated_at,
			server_updated_at = excluded.server_updated_at,
			image_url         = excluded.image_url,
			synced_at         = excluded.synced_at;`
)

func tableFor(kind models.EntityKind) (string, error) {
	table, ok := entityTables[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return table, nil
}

func buildPendingQuery(kind models.EntityKind) (string, []any, error) {
	return qb.Select(queueColumns...).
		From(queueTable).
		Where(sq.Eq{"entity_kind": string(kind), "synced": 0}).
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
}

func buildPendingCountQuery(kind *models.EntityKind) (string, []any, error) {
	query := qb.Select("COUNT(*)").
		From(queueTable).
		Where(sq.Eq{"synced": 0})
	if kind != nil {
		query = query.Where(sq.Eq{"entity_kind": string(*kind)})
	}
	return query.ToSql()
}

func buildMarkSyncedQuery(ids []int64, at time.Time) (string, []any, error) {
	return qb.Update(queueTable).
		Set("synced", 1).
		Set("synced_at", at.UnixNano()).
		Where(sq.Eq{"id": ids, "synced": 0}).
		ToSql()
}

func buildRecordFailureQuery(ids []int64, msg string) (string, []any, error) {
	return qb.Update(queueTable).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("last_error", msg).
		Where(sq.Eq{"id": ids, "synced": 0}).
		ToSql()
}

func buildStuckQuery(maxRetries int) (string, []any, error) {
	return qb.Select(queueColumns...).
		From(queueTable).
		Where(sq.Eq{"synced": 0}).
		Where(sq.GtOrEq{"retry_count": maxRetries}).
		OrderBy("enqueued_at ASC", "id ASC").
		ToSql()
}

func buildPruneSyncedQuery(before time.Time) (string, []any, error) {
	return qb.Delete(queueTable).
		Where(sq.Eq{"synced": 1}).
		Where(sq.Lt{"synced_at": before.UnixNano()}).
		ToSql()
}

func buildHistoryListQuery(limit int) (string, []any, error) {
	query := qb.Select(historyColumns...).
		From(historyTable).
		OrderBy("id DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return query.ToSql()
}

func buildUpsertEntityQuery(table, id string, payload []byte, at time.Time) (string, []any, error) {
	return qb.Insert(table).
		Columns("id", "payload", "updated_at").
		Values(id, string(payload), at.UnixNano()).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at, synced_at = NULL").
		ToSql()
}

func buildDeleteEntityQuery(table, id string) (string, []any, error) {
	return qb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetEntityQuery(table, id string) (string, []any, error) {
	return qb.Select(entityColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListEntitiesQuery(table string) (string, []any, error) {
	return qb.Select(entityColumns...).
		From(table).
		OrderBy("id ASC").
		ToSql()
}

func buildCountEntitiesQuery(table string) (string, []any, error) {
	return qb.Select("COUNT(*)").From(table).ToSql()
}

// buildApplySnapshotQuery overwrites only server-derived fields. synced_at is
// left alone while the entity still has unsynced mutations.
func buildApplySnapshotQuery(table string, kind models.EntityKind, snap models.RemoteEntitySnapshot, at time.Time) (string, []any, error) {
	return qb.Update(table).
		Set("server_updated_at", sq.Expr("COALESCE(?, server_updated_at)", nullUnixNano(snap.ServerUpdatedAt))).
		Set("image_url", sq.Expr("COALESCE(?, image_url)", nullString(snap.ImageURL))).
		Set("synced_at", sq.Expr("CASE WHEN "+pendingForEntity+" THEN synced_at ELSE ? END", string(kind), snap.EntityID, at.UnixNano())).
		Where(sq.Eq{"id": snap.EntityID}).
		ToSql()
}

// buildApplyDeletedSnapshotQuery removes a row the server reports deleted,
// unless a newer local mutation is still pending for it.
func buildApplyDeletedSnapshotQuery(table string, kind models.EntityKind, id string) (string, []any, error) {
	return qb.Delete(table).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("NOT "+pendingForEntity, string(kind), id)).
		ToSql()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullUnixNano(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromUnixNano(n.Int64)
	return &t
}

func fromUnixNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
