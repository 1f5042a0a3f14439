package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type entityReconciler struct {
	kind models.EntityKind

	queue    MutationQueue
	entities store.EntityRepository
	remote   adapter.RemoteSyncClient
	monitor  ConnectivityMonitor
	devices  DeviceIdentity
	clock    network.Clock

	// timeout bounds the remote batch call. Zero means no bound beyond ctx.
	timeout time.Duration

	logger *logger.Logger
}

// NewEntityReconciler returns the reconciler owning the queue partition of
// kind.
func NewEntityReconciler(
	kind models.EntityKind,
	queue MutationQueue,
	entities store.EntityRepository,
	remote adapter.RemoteSyncClient,
	monitor ConnectivityMonitor,
	devices DeviceIdentity,
	clock network.Clock,
	timeout time.Duration,
	logger *logger.Logger,
) EntityReconciler {
	return &entityReconciler{
		kind:     kind,
		queue:    queue,
		entities: entities,
		remote:   remote,
		monitor:  monitor,
		devices:  devices,
		clock:    clock,
		timeout:  timeout,
		logger:   logger,
	}
}

func (r *entityReconciler) Kind() models.EntityKind {
	return r.kind
}

// SyncKind sends the whole pending partition as one batch. The remote call is
// all-or-nothing: on failure every operation gets a failed attempt recorded
// and nothing is marked synced. Local bookkeeping after the remote call runs
// detached from ctx cancellation so that an acknowledged batch is always
// marked.
func (r *entityReconciler) SyncKind(ctx context.Context) models.KindResult {
	result := models.KindResult{Kind: r.kind}
	log := r.logger.With().Str("func", "entityReconciler.SyncKind").Str("kind", r.kind.String()).Logger()

	if !r.monitor.CurrentlyOnline() {
		result.Err = ErrNetworkUnavailable
		return result
	}

	ops, err := r.queue.PendingFor(ctx, r.kind)
	if err != nil {
		result.Err = fmt.Errorf("read pending %s operations: %w", r.kind, err)
		return result
	}
	if len(ops) == 0 {
		return result
	}

	deviceID, err := r.devices.DeviceID(ctx)
	if err != nil {
		result.Err = fmt.Errorf("resolve device id: %w", err)
		return result
	}

	ids := models.OperationIDs(ops)
	req := models.NewSyncBatchRequest(deviceID, r.kind, ops)

	resp, err := r.syncBatch(ctx, req)
	bookkeeping := context.WithoutCancel(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		log.Warn().Err(err).Int("operations", len(ops)).Msg("sync batch failed")

		if ferr := r.queue.RecordFailure(bookkeeping, ids, err.Error()); ferr != nil {
			result.Err = errors.Join(mapped, fmt.Errorf("record %s failures: %w", r.kind, ferr))
			return result
		}
		result.Err = mapped
		return result
	}

	if err = r.queue.MarkSynced(bookkeeping, ids); err != nil {
		result.Err = fmt.Errorf("mark %s operations synced: %w", r.kind, err)
		return result
	}

	if err = r.entities.ApplySnapshots(bookkeeping, r.kind, resp.Snapshots, r.clock.Now()); err != nil {
		result.Err = fmt.Errorf("apply %s snapshots: %w", r.kind, mapStoreError(err))
		return result
	}

	if resp.AcceptedCount != len(ops) {
		log.Warn().
			Int("operations", len(ops)).
			Int("accepted", resp.AcceptedCount).
			Msg("remote accepted count differs from batch size")
	}

	result.Synced = len(ops)
	log.Info().Int("synced", result.Synced).Int("snapshots", len(resp.Snapshots)).Msg("kind reconciled")
	return result
}

func (r *entityReconciler) syncBatch(ctx context.Context, req models.SyncBatchRequest) (models.SyncBatchResponse, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	return r.remote.SyncBatch(ctx, req)
}
