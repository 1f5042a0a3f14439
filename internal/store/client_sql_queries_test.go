// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

func Test_buildPendingQuery_OrdersByEnqueueTimeThenID(t *testing.T) {
	query, args, err := buildPendingQuery(models.KindBill)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from mutation_queue")
	require.Contains(t, q, "order by enqueued_at asc, id asc")
	require.NotContains(t, query, "$1", "sqlite uses ? placeholders")

	// squirrel sorts Eq keys: entity_kind, synced
	assert.Equal(t, []any{"bill", 0}, args)
}

func Test_buildPendingCountQuery(t *testing.T) {
	tests := []struct {
		name     string
		kind     *models.EntityKind
		wantArgs int
	}{
		{name: "all kinds", kind: nil, wantArgs: 1},
		{name: "one kind", kind: func() *models.EntityKind { k := models.KindItem; return &k }(), wantArgs: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildPendingCountQuery(tt.kind)
			require.NoError(t, err)
			assert.Contains(t, query, "COUNT(*)")
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func Test_buildMarkSyncedQuery_OnlyUnsynced(t *testing.T) {
	now := time.Unix(0, 42)

	query, args, err := buildMarkSyncedQuery([]int64{3, 4, 5}, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update mutation_queue set synced = ?, synced_at = ?")
	// squirrel generates IN (?,?,?) for a slice.
	require.Contains(t, q, "id in (?,?,?)")
	require.Contains(t, q, "synced = ?")
	assert.Equal(t, []any{1, int64(42), int64(3), int64(4), int64(5), 0}, args)
}

func Test_buildRecordFailureQuery_IncrementsRetryCount(t *testing.T) {
	query, args, err := buildRecordFailureQuery([]int64{9}, "timeout")
	require.NoError(t, err)

	require.Contains(t, query, "retry_count = retry_count + 1")
	assert.Equal(t, []any{"timeout", int64(9), 0}, args)
}

func Test_buildApplySnapshotQuery_KeepsSyncedAtWhilePending(t *testing.T) {
	snap := models.RemoteEntitySnapshot{Kind: models.KindItem, EntityID: "i1", ServerUpdatedAt: time.Unix(0, 7)}

	query, args, err := buildApplySnapshotQuery("items", models.KindItem, snap, time.Unix(0, 8))
	require.NoError(t, err)

	require.Contains(t, query, "UPDATE items")
	require.Contains(t, query, "CASE WHEN EXISTS")
	require.NotContains(t, query, "payload", "user-authored payload is never overwritten")
	assert.Contains(t, args, "item")
	assert.Contains(t, args, int64(8))
}

func Test_buildHistoryListQuery_Limit(t *testing.T) {
	query, _, err := buildHistoryListQuery(5)
	require.NoError(t, err)
	assert.Contains(t, query, "ORDER BY id DESC LIMIT 5")

	query, _, err = buildHistoryListQuery(0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}

func Test_tableFor(t *testing.T) {
	table, err := tableFor(models.KindBill)
	require.NoError(t, err)
	assert.Equal(t, "bills", table)

	_, err = tableFor("invoice")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
