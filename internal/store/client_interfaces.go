package store

import (
	"context"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MutationQueueRepository is the durable FIFO of local mutations awaiting
// upload, partitioned by entity kind.
type MutationQueueRepository interface {
	// Enqueue persists op and returns its queue id. The operation is durable
	// once Enqueue returns.
	Enqueue(ctx context.Context, op models.MutationOperation) (int64, error)
	// PendingFor returns the unsynced operations of kind ordered by
	// enqueue time, then id.
	PendingFor(ctx context.Context, kind models.EntityKind) ([]models.MutationOperation, error)
	// PendingCount counts unsynced operations of kind, or of every kind when
	// kind is nil.
	PendingCount(ctx context.Context, kind *models.EntityKind) (int, error)
	// MarkSynced flips the given unsynced operations to synced. Already
	// synced ids are left untouched. Returns the number of rows flipped.
	MarkSynced(ctx context.Context, ids []int64, at time.Time) (int64, error)
	// RecordFailure increments the retry counter of the given unsynced
	// operations and stores msg as their last error.
	RecordFailure(ctx context.Context, ids []int64, msg string) error
	// Stuck returns unsynced operations whose retry counter reached maxRetries.
	Stuck(ctx context.Context, maxRetries int) ([]models.MutationOperation, error)
	// PruneSynced physically removes synced operations confirmed before the
	// given time. Returns the number of rows removed.
	PruneSynced(ctx context.Context, before time.Time) (int64, error)
}

// SyncHistoryRepository stores the bounded audit log of sync passes.
type SyncHistoryRepository interface {
	// Append inserts rec and evicts the oldest records beyond limit in the
	// same transaction. The stored record is returned with its final id.
	Append(ctx context.Context, rec models.SyncPassRecord, limit int) (models.SyncPassRecord, error)
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]models.SyncPassRecord, error)
}

// EntityRepository is the local row store of categories, items and bills.
type EntityRepository interface {
	// Commit applies op to the local row and enqueues it in one transaction.
	Commit(ctx context.Context, op models.MutationOperation) (int64, error)
	Get(ctx context.Context, kind models.EntityKind, id string) (models.EntityRow, error)
	List(ctx context.Context, kind models.EntityKind) ([]models.EntityRow, error)
	Count(ctx context.Context, kind models.EntityKind) (int, error)
	// ApplySnapshots writes the server-derived fields of snapshots to their
	// local rows in a single transaction.
	ApplySnapshots(ctx context.Context, kind models.EntityKind, snapshots []models.RemoteEntitySnapshot, at time.Time) error
	// UpsertDownloaded stores full snapshots as already synced rows, skipping
	// rows with pending local mutations. Returns the number of rows written.
	UpsertDownloaded(ctx context.Context, kind models.EntityKind, snapshots []models.RemoteEntitySnapshot, at time.Time) (int, error)
}

// SettingsRepository is a small key/value store for engine scalars.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
