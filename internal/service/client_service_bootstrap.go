package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type bootstrapper struct {
	orchestrator SyncOrchestrator
	entities     store.EntityRepository
	settings     store.SettingsRepository
	history      SyncHistory
	sessions     SessionService
	remote       adapter.RemoteSyncClient
	monitor      ConnectivityMonitor
	clock        network.Clock

	timeout time.Duration
	logger  *logger.Logger
}

// NewBootstrapper returns the initial catalog downloader. It runs inside
// orchestrator's exclusive section so that no sync pass overlaps it. timeout
// bounds each per-kind download.
func NewBootstrapper(
	orchestrator SyncOrchestrator,
	entities store.EntityRepository,
	settings store.SettingsRepository,
	history SyncHistory,
	sessions SessionService,
	remote adapter.RemoteSyncClient,
	monitor ConnectivityMonitor,
	clock network.Clock,
	timeout time.Duration,
	logger *logger.Logger,
) Bootstrapper {
	return &bootstrapper{
		orchestrator: orchestrator,
		entities:     entities,
		settings:     settings,
		history:      history,
		sessions:     sessions,
		remote:       remote,
		monitor:      monitor,
		clock:        clock,
		timeout:      timeout,
		logger:       logger,
	}
}

// Bootstrap downloads the selected kinds concurrently and stores them in
// [models.BootstrapKinds] order. Nothing is written unless every download
// succeeded. Rows with pending local mutations keep their local payload.
func (b *bootstrapper) Bootstrap(ctx context.Context, force bool) (models.BootstrapResult, error) {
	result := models.BootstrapResult{Downloaded: make(map[models.EntityKind]int, len(models.BootstrapKinds))}

	if !b.monitor.CurrentlyOnline() {
		return result, ErrOffline
	}
	err := b.orchestrator.Exclusive(ctx, func(ctx context.Context) error {
		return b.bootstrap(ctx, force, &result)
	})
	return result, err
}

func (b *bootstrapper) bootstrap(ctx context.Context, force bool, result *models.BootstrapResult) error {
	log := b.logger.With().Str("func", "bootstrapper.Bootstrap").Bool("force", force).Logger()

	if _, err := b.sessions.Activate(ctx); err != nil {
		return err
	}

	kinds := make([]models.EntityKind, 0, len(models.BootstrapKinds))
	for _, kind := range models.BootstrapKinds {
		n, err := b.entities.Count(ctx, kind)
		if err != nil {
			return fmt.Errorf("count local %s rows: %w", kind, mapStoreError(err))
		}
		if n > 0 && !force {
			result.Skipped = append(result.Skipped, kind)
			continue
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		log.Debug().Msg("local catalog already populated")
		return nil
	}

	started := b.clock.Now()
	downloads := make([][]models.RemoteEntitySnapshot, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			fetchCtx := gctx
			if b.timeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(gctx, b.timeout)
				defer cancel()
			}

			snaps, err := b.remote.FetchAll(fetchCtx, kind)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", kind, mapAdapterError(err))
			}
			downloads[i] = snaps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Msg("bootstrap download failed")
		return err
	}

	for i, kind := range kinds {
		result.Downloaded[kind] = 0
		n, err := b.entities.UpsertDownloaded(ctx, kind, downloads[i], b.clock.Now())
		if err != nil {
			return fmt.Errorf("store downloaded %s: %w", kind, mapStoreError(err))
		}
		result.Downloaded[kind] = n
	}

	now := b.clock.Now()
	if err := b.settings.SetSetting(ctx, store.SettingBootstrapCompletedAt, now.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("record bootstrap completion: %w", mapStoreError(err))
	}

	if result.Total() > 0 {
		rec := models.SyncPassRecord{
			ID:         started.UnixNano(),
			OccurredAt: now,
			Counts:     result.Downloaded,
			Source:     models.SourceBootstrap,
		}
		if _, err := b.history.Append(ctx, rec); err != nil {
			return fmt.Errorf("append bootstrap history: %w", err)
		}
	}

	log.Info().Int("downloaded", result.Total()).Interface("skipped", result.Skipped).Msg("bootstrap completed")
	return nil
}
