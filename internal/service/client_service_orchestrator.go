// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/utils"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

const fullSyncKey = "full-sync"

type syncOrchestrator struct {
	reconcilers []EntityReconciler
	history     SyncHistory
	sessions    SessionService
	monitor     ConnectivityMonitor
	clock       network.Clock

	group singleflight.Group
	wg    sync.WaitGroup

	// exclusive is held by a running pass or an Exclusive section.
	exclusive chan struct{}
	// dirty is set by RequestSync and cleared when a pass starts.
	dirty atomic.Bool

	logger *logger.Logger
}

// NewSyncOrchestrator returns an orchestrator running reconcilers in the
// given order. The order must follow [models.SyncOrder]: a kind is only
// uploaded after the kinds it references have committed.
func NewSyncOrchestrator(
	reconcilers []EntityReconciler,
	history SyncHistory,
	sessions SessionService,
	monitor ConnectivityMonitor,
	clock network.Clock,
	logger *logger.Logger,
) SyncOrchestrator {
	return &syncOrchestrator{
		reconcilers: reconcilers,
		history:     history,
		sessions:    sessions,
		monitor:     monitor,
		clock:       clock,
		exclusive:   make(chan struct{}, 1),
		logger:      logger,
	}
}

// RunFullSync coalesces concurrent callers onto one pass. The pass ignores
// the cancellation of the caller that started it, so joined callers never
// inherit a cancelled context; remote calls stay bounded by the reconciler
// timeout.
func (o *syncOrchestrator) RunFullSync(ctx context.Context) (models.SyncResult, error) {
	passCtx := context.WithoutCancel(ctx)
	v, err, shared := o.group.Do(fullSyncKey, func() (any, error) {
		o.exclusive <- struct{}{}
		defer func() { <-o.exclusive }()

		o.dirty.Store(false)
		return o.runPass(passCtx)
	})
	if shared {
		o.logger.Debug().Str("func", "syncOrchestrator.RunFullSync").Msg("joined sync pass in flight")
	}

	result, _ := v.(models.SyncResult)
	return result, err
}

func (o *syncOrchestrator) RequestSync(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if _, ok := utils.GetTriggerFromContext(ctx); !ok {
		ctx = utils.WithTrigger(ctx, utils.TriggerEnqueue)
	}

	o.dirty.Store(true)
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		// a joined pass may have read the partitions before this request
		for {
			if _, err := o.RunFullSync(ctx); err != nil {
				o.logger.Err(err).Str("func", "syncOrchestrator.RequestSync").Msg("background sync pass failed")
				return
			}
			if !o.dirty.Load() {
				return
			}
			o.logger.Debug().Str("func", "syncOrchestrator.RequestSync").Msg("running trailing sync pass")
		}
	}()
}

func (o *syncOrchestrator) SyncNow(ctx context.Context) (models.SyncResult, error) {
	if o.monitor.CancelPending() {
		o.logger.Debug().Str("func", "syncOrchestrator.SyncNow").Msg("pending reconnect trigger superseded")
	}
	if _, ok := utils.GetTriggerFromContext(ctx); !ok {
		ctx = utils.WithTrigger(ctx, utils.TriggerManual)
	}
	return o.RunFullSync(ctx)
}

func (o *syncOrchestrator) Wait() {
	o.wg.Wait()
}

func (o *syncOrchestrator) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	select {
	case o.exclusive <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-o.exclusive }()

	return fn(ctx)
}

func (o *syncOrchestrator) runPass(ctx context.Context) (models.SyncResult, error) {
	trigger, _ := utils.GetTriggerFromContext(ctx)
	log := o.logger.With().Str("func", "syncOrchestrator.runPass").Str("trigger", trigger).Logger()

	result := models.SyncResult{
		StartedAt: o.clock.Now(),
		PerKind:   make(map[models.EntityKind]models.KindResult, len(o.reconcilers)),
	}
	finish := func(status models.SyncStatus) models.SyncResult {
		result.Status = status
		result.FinishedAt = o.clock.Now()
		return result
	}

	if !o.monitor.CurrentlyOnline() {
		log.Debug().Msg("offline, sync pass skipped")
		return finish(models.StatusSkippedOffline), nil
	}

	if _, err := o.sessions.Activate(ctx); err != nil {
		if errors.Is(err, ErrStorageFailure) {
			return finish(models.StatusFailed), err
		}
		log.Warn().Err(err).Msg("no valid session, sync pass skipped")
		return finish(models.StatusUnauthorized), nil
	}

	failed := false
	for _, r := range o.reconcilers {
		kr := r.SyncKind(ctx)
		result.PerKind[kr.Kind] = kr

		switch {
		case kr.OK():
			continue
		case errors.Is(kr.Err, ErrStorageFailure):
			log.Error().Err(kr.Err).Str("kind", kr.Kind.String()).Msg("storage failure, sync pass aborted")
			return finish(models.StatusFailed), kr.Err
		case errors.Is(kr.Err, ErrUnauthorized):
			log.Warn().Err(kr.Err).Str("kind", kr.Kind.String()).Msg("session rejected, sync pass halted")
			return finish(models.StatusUnauthorized), nil
		default:
			log.Warn().Err(kr.Err).Str("kind", kr.Kind.String()).Msg("kind failed to reconcile")
			failed = true
		}
	}

	if failed {
		return finish(models.StatusFailed), nil
	}

	result = finish(models.StatusCompleted)
	if result.Total() == 0 {
		return result, nil
	}

	bookkeeping := context.WithoutCancel(ctx)
	rec := models.SyncPassRecord{
		ID:         result.StartedAt.UnixNano(),
		OccurredAt: result.FinishedAt,
		Counts:     result.Counts(),
		Source:     models.SourceSync,
	}
	if _, err := o.history.Append(bookkeeping, rec); err != nil {
		return result, fmt.Errorf("append sync history: %w", err)
	}
	if err := o.history.RecordSuccessfulSync(bookkeeping, result.FinishedAt); err != nil {
		return result, fmt.Errorf("record last successful sync: %w", err)
	}

	log.Info().Int("synced", result.Total()).Msg("sync pass completed")
	return result, nil
}
