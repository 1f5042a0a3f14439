package workers

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil entries are dropped.
func NewWorkers(ws ...Worker) *Workers {
	group := &Workers{workers: make([]Worker, 0, len(ws))}
	for _, w := range ws {
		if w != nil {
			group.workers = append(group.workers, w)
		}
	}
	return group
}

// Run starts every worker and blocks until all of them returned. The first
// error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil {
				return fmt.Errorf("%s: %w", workerName(worker), err)
			}
			return nil
		})
	}
	return g.Wait()
}

func workerName(w Worker) string {
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// ProberWorker probes the remote once at start and then every interval.
type ProberWorker struct {
	prober   Prober
	interval time.Duration
	logger   *logger.Logger
}

// NewProberWorker returns a worker driving prober. A non-positive interval
// selects 10 seconds.
func NewProberWorker(prober Prober, interval time.Duration, logger *logger.Logger) *ProberWorker {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &ProberWorker{prober: prober, interval: interval, logger: logger}
}

func (w *ProberWorker) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "ProberWorker.Run").Dur("interval", w.interval).Msg("connectivity probing started")

	w.prober.Probe(ctx)
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.prober.Probe(ctx)
		}
	}
}

// JobWorker keeps a ticker job running for the lifetime of Run.
type JobWorker struct {
	name     string
	job      Starter
	interval time.Duration
	logger   *logger.Logger
}

// NewJobWorker wraps job. interval is passed to Start unchanged, so zero
// selects the job's own default.
func NewJobWorker(name string, job Starter, interval time.Duration, logger *logger.Logger) *JobWorker {
	return &JobWorker{name: name, job: job, interval: interval, logger: logger}
}

func (w *JobWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.interval)
	w.logger.Info().Str("func", "JobWorker.Run").Str("job", w.name).Dur("interval", w.interval).Msg("job started")

	<-ctx.Done()
	w.job.Stop()

	w.logger.Info().Str("func", "JobWorker.Run").Str("job", w.name).Msg("job stopped")
	return nil
}

// ConnectivityLogWorker logs every online/offline transition.
type ConnectivityLogWorker struct {
	source EventSource
	logger *logger.Logger
}

func NewConnectivityLogWorker(source EventSource, logger *logger.Logger) *ConnectivityLogWorker {
	return &ConnectivityLogWorker{source: source, logger: logger}
}

func (w *ConnectivityLogWorker) Run(ctx context.Context) error {
	events, unsubscribe := w.source.Subscribe(8)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			state := "offline"
			if ev.Online {
				state = "online"
			}
			w.logger.Info().Str("func", "ConnectivityLogWorker.Run").Time("at", ev.At).Str("state", state).Msg("connectivity changed")
		}
	}
}
