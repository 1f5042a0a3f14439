package service

import (
	"context"
	"sync"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/utils"
)

type periodicJob struct {
	defaultInterval time.Duration
	tick            func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates the safety-net job that runs a full sync pass on a
// ticker, catching anything a missed trigger left behind. The default
// interval is 5 minutes.
func NewSyncJob(orchestrator SyncOrchestrator, logger *logger.Logger) Job {
	return &periodicJob{
		defaultInterval: 5 * time.Minute,
		tick: func(ctx context.Context) {
			result, err := orchestrator.RunFullSync(utils.WithTrigger(ctx, utils.TriggerPeriodic))
			if err != nil {
				logger.Err(err).Str("func", "syncJob.tick").Msg("periodic sync failed")
				return
			}
			logger.Debug().Str("func", "syncJob.tick").Str("status", string(result.Status)).Int("synced", result.Total()).Msg("periodic sync finished")
		},
	}
}

// NewRetentionJob creates the job pruning synced operations older than the
// retention horizon. The default interval is 1 hour.
func NewRetentionJob(queue MutationQueue, logger *logger.Logger) Job {
	return &periodicJob{
		defaultInterval: time.Hour,
		tick: func(ctx context.Context) {
			if _, err := queue.Prune(ctx); err != nil {
				logger.Err(err).Str("func", "retentionJob.tick").Msg("retention sweep failed")
			}
		},
	}
}

// Start implements Job. It stops any previously running instance, then
// launches a goroutine calling the job every interval. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *periodicJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = j.defaultInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop implements Job. Safe to call when the job is not running.
func (j *periodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
