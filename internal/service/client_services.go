package service

import (
	"context"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/config"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/utils"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/validators"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// ClientServices groups the sync engine services of one device.
type ClientServices struct {
	Queue        MutationQueue
	History      SyncHistory
	Sessions     SessionService
	Devices      DeviceIdentity
	Reconcilers  []EntityReconciler
	Orchestrator SyncOrchestrator
	Bootstrapper Bootstrapper
	Entities     ClientEntityService
	SyncJob      Job
	RetentionJob Job
}

// NewClientServices wires the engine over storages and remote. The monitor's
// reconnect callback is pointed at the orchestrator.
func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteSyncClient,
	monitor *network.Monitor,
	clock network.Clock,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *ClientServices {
	ids := utils.NewUUIDGenerator()

	queue := NewMutationQueue(storages.MutationQueue, clock, cfg.Sync.MaxRetries, cfg.Sync.RetentionHorizon, logger)
	history := NewSyncHistory(storages.SyncHistory, storages.Settings, cfg.Sync.HistoryLimit)
	sessions := NewSessionService(storages.Settings, remote, clock, logger)
	devices := NewDeviceIdentity(storages.Settings, cfg.App.DeviceID, ids)

	reconcilers := make([]EntityReconciler, 0, len(models.SyncOrder))
	for _, kind := range models.SyncOrder {
		reconcilers = append(reconcilers, NewEntityReconciler(
			kind, queue, storages.Entities, remote, monitor, devices, clock, cfg.Sync.RemoteTimeout, logger,
		))
	}

	orchestrator := NewSyncOrchestrator(reconcilers, history, sessions, monitor, clock, logger)
	monitor.OnReconnect(func() {
		orchestrator.RequestSync(utils.WithTrigger(context.Background(), utils.TriggerReconnect))
	})

	return &ClientServices{
		Queue:        queue,
		History:      history,
		Sessions:     sessions,
		Devices:      devices,
		Reconcilers:  reconcilers,
		Orchestrator: orchestrator,
		Bootstrapper: NewBootstrapper(
			orchestrator, storages.Entities, storages.Settings, history, sessions, remote, monitor, clock, cfg.Sync.RemoteTimeout, logger,
		),
		Entities: NewClientEntityService(
			storages.Entities, queue, orchestrator, monitor, validators.NewEntityValidator(), ids, clock, logger,
		),
		SyncJob:      NewSyncJob(orchestrator, logger),
		RetentionJob: NewRetentionJob(queue, logger),
	}
}
