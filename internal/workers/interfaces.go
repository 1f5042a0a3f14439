// Package workers provides the long-running background units of the sync
// client and a Workers aggregate that runs them together until shutdown.
package workers

import (
	"context"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. Returning nil after
// cancellation is the normal shutdown path.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// Prober checks reachability of the remote and updates the connectivity
// state. Implemented by [network.Prober].
type Prober interface {
	Probe(ctx context.Context) bool
}

// Starter is a job driven by its own ticker. Implemented by the service jobs.
type Starter interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// EventSource publishes connectivity transitions. Implemented by
// [network.Monitor].
type EventSource interface {
	Subscribe(buffer int) (<-chan network.Event, func())
}
