package service

import (
	"context"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// MutationQueue is the service-level view of the durable queue of local
// mutations. It stamps operations with the engine clock and maps storage
// errors to [ErrStorageFailure] and [ErrInvalidOperation].
type MutationQueue interface {
	// Enqueue validates and durably persists op, returning its queue id.
	// It never touches the network.
	Enqueue(ctx context.Context, op models.MutationOperation) (int64, error)

	// PendingFor returns all unsynced operations of kind in enqueue order.
	PendingFor(ctx context.Context, kind models.EntityKind) ([]models.MutationOperation, error)

	// PendingCount counts unsynced operations of kind, or of all kinds when
	// kind is nil. Used for "N items pending sync" badges.
	PendingCount(ctx context.Context, kind *models.EntityKind) (int, error)

	// MarkSynced marks the given operations as acknowledged by the remote.
	// Calling it again for the same ids is a no-op.
	MarkSynced(ctx context.Context, ids []int64) error

	// RecordFailure increments the retry counter of the given operations and
	// stores msg as their last error. Synced operations are left untouched.
	RecordFailure(ctx context.Context, ids []int64, msg string) error

	// Stuck lists unsynced operations that reached the configured retry
	// limit. They keep being retried; the list is for a human to act on.
	Stuck(ctx context.Context) ([]models.MutationOperation, error)

	// Prune removes synced operations older than the retention horizon.
	Prune(ctx context.Context) (int64, error)
}

// EntityReconciler drains the queue partition of one entity kind.
type EntityReconciler interface {
	// Kind returns the entity kind this reconciler owns.
	Kind() models.EntityKind

	// SyncKind uploads every pending operation of the kind in one batch and
	// applies the returned snapshots. Failures are reported in the result,
	// never returned.
	SyncKind(ctx context.Context) models.KindResult
}

// SyncOrchestrator sequences the reconcilers for a full sync pass. All sync
// triggers funnel through it.
type SyncOrchestrator interface {
	// RunFullSync runs one full pass, or joins the pass already in flight
	// and returns its result. The error is non-nil only for
	// [ErrStorageFailure]. Cancelling ctx does not abort a started pass.
	RunFullSync(ctx context.Context) (models.SyncResult, error)

	// RequestSync schedules a pass in the background and returns at once.
	// When the request lands during a pass in flight, one trailing pass
	// follows it.
	RequestSync(ctx context.Context)

	// SyncNow cancels a pending reconnect trigger and runs a pass.
	SyncNow(ctx context.Context) (models.SyncResult, error)

	// Wait blocks until every pass started by RequestSync has finished.
	Wait()

	// Exclusive runs fn while no sync pass is in flight. Passes triggered
	// meanwhile wait until fn returns.
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

// SyncHistory is the bounded audit log of sync passes.
type SyncHistory interface {
	// Append stores rec and evicts the oldest records beyond the limit.
	Append(ctx context.Context, rec models.SyncPassRecord) (models.SyncPassRecord, error)

	// List returns the retained records, newest first.
	List(ctx context.Context) ([]models.SyncPassRecord, error)

	// RecordSuccessfulSync stores the time of the last successful full pass.
	RecordSuccessfulSync(ctx context.Context, at time.Time) error

	// LastSuccessfulSync returns the time stored by RecordSuccessfulSync.
	// ok is false when no pass has succeeded yet.
	LastSuccessfulSync(ctx context.Context) (at time.Time, ok bool, err error)
}

// Bootstrapper performs the one-shot full download of the catalog.
type Bootstrapper interface {
	// Bootstrap downloads categories and items whose local table is empty,
	// or every bootstrap kind when force is set, and stores them as synced
	// rows without queue entries.
	Bootstrap(ctx context.Context, force bool) (models.BootstrapResult, error)
}

// SessionService exposes the locally stored session token.
type SessionService interface {
	// Activate loads the stored token, checks that it has not expired and
	// hands it to the remote client. Returns [ErrUnauthorized] otherwise.
	Activate(ctx context.Context) (models.Session, error)

	// Current returns the stored session without validating it.
	Current(ctx context.Context) (models.Session, error)

	// Set parses and stores token.
	Set(ctx context.Context, token string) (models.Session, error)

	// Clear removes the stored token.
	Clear(ctx context.Context) error
}

// DeviceIdentity resolves the identity sent with every batch.
type DeviceIdentity interface {
	// DeviceID returns the configured device id, or the id persisted in the
	// local store, generating and persisting one on first use.
	DeviceID(ctx context.Context) (string, error)
}

// ClientEntityService is the CRUD entry point used by the POS screens. Each
// call commits the local row together with its queue entry and schedules a
// sync pass when the device is online.
type ClientEntityService interface {
	// SaveCategory creates or updates c. An empty ID is assigned.
	SaveCategory(ctx context.Context, c models.Category) (models.Category, error)

	// SaveItem creates or updates item. An empty ID is assigned.
	SaveItem(ctx context.Context, item models.Item) (models.Item, error)

	// SaveBill creates or updates bill. An empty ID is assigned.
	SaveBill(ctx context.Context, bill models.Bill) (models.Bill, error)

	// Delete removes the local row and enqueues its deletion.
	Delete(ctx context.Context, kind models.EntityKind, id string) error

	// Get returns one local row with its sync metadata.
	Get(ctx context.Context, kind models.EntityKind, id string) (models.EntityRow, error)

	// List returns all local rows of kind.
	List(ctx context.Context, kind models.EntityKind) ([]models.EntityRow, error)

	// Enqueue queues an already built operation and schedules a sync pass
	// when online.
	Enqueue(ctx context.Context, op models.MutationOperation) (int64, error)
}

// Job is a background task repeated on a fixed interval.
type Job interface {
	// Start launches the job. Any previously running instance is stopped
	// first. A non-positive interval selects the job default.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the job to exit and blocks until it has terminated.
	Stop()
}

// ConnectivityMonitor is the subset of the network monitor used by the
// services.
type ConnectivityMonitor interface {
	CurrentlyOnline() bool
	CancelPending() bool
}
