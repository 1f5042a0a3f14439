package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/config"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/service"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/workers"
)

// App owns every component of one sync client process.
type App struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	storages *store.ClientStorages
	remote   adapter.RemoteSyncClient
	monitor  *network.Monitor
	prober   *network.Prober
	services *service.ClientServices
}

var _ Client = (*App)(nil)

// NewApp opens local storage and wires the engine from cfg.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteSyncClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create remote sync client: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return newApp(cfg, storages, remote, network.SystemClock{}, log), nil
}

func newApp(cfg *config.StructuredConfig, storages *store.ClientStorages, remote adapter.RemoteSyncClient, clock network.Clock, log *logger.Logger) *App {
	monitor := network.NewMonitor(clock, cfg.Sync.ReconnectDebounce, log)
	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		remote:   remote,
		monitor:  monitor,
		prober:   network.NewProber(remote, monitor, cfg.Adapter.RequestTimeout, log),
		services: service.NewClientServices(storages, remote, monitor, clock, cfg, log),
	}
}

// Services returns the engine services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Monitor returns the connectivity monitor.
func (a *App) Monitor() *network.Monitor {
	return a.monitor
}

// Probe checks the remote once and updates the connectivity state.
func (a *App) Probe(ctx context.Context) bool {
	return a.prober.Probe(ctx)
}

// Run keeps the device in sync until ctx is cancelled. An empty catalog is
// bootstrapped first when the remote is reachable.
func (a *App) Run(ctx context.Context) error {
	log := a.logger.With().Str("func", "App.Run").Logger()

	if a.Probe(ctx) {
		if _, err := a.services.Bootstrapper.Bootstrap(ctx, false); err != nil {
			log.Warn().Err(err).Msg("initial bootstrap failed")
		}
	}

	group := workers.NewWorkers(
		workers.NewProberWorker(a.prober, a.cfg.Sync.ProbeInterval, a.logger),
		workers.NewConnectivityLogWorker(a.monitor, a.logger),
		workers.NewJobWorker("sync", a.services.SyncJob, a.cfg.Sync.Interval, a.logger),
		workers.NewJobWorker("retention", a.services.RetentionJob, a.cfg.Sync.RetentionInterval, a.logger),
	)

	log.Info().Str("address", a.cfg.Adapter.HTTPAddress).Msg("sync client started")
	err := group.Run(ctx)

	a.monitor.Stop()
	a.services.Orchestrator.Wait()
	log.Info().Msg("sync client stopped")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close disarms the reconnect trigger, waits for background sync passes and
// then releases local storage.
func (a *App) Close() error {
	a.monitor.Stop()
	a.services.Orchestrator.Wait()
	return a.storages.Close()
}
