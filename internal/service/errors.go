package service

import "errors"

// Failure classes of the sync engine. Reconciler results and orchestrator
// errors match them with [errors.Is].
var (
	// ErrOffline is returned when an operation needing the remote is called
	// while the device is offline. Nothing is attempted and no state changes.
	ErrOffline = errors.New("device is offline")

	// ErrNetworkUnavailable is reported by a reconciler invoked while offline.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrTransportFailure covers timeouts, dropped connections and 5xx
	// answers. The batch is retried on the next pass.
	ErrTransportFailure = errors.New("transport failure")

	// ErrRemoteRejected is a validation failure reported by the remote. The
	// batch stays queued; its retry count is exposed for a human.
	ErrRemoteRejected = errors.New("remote rejected batch")

	// ErrUnauthorized means the session is missing or invalid. The pass halts
	// and is not retried silently.
	ErrUnauthorized = errors.New("session is not authorized")

	// ErrStorageFailure means the local store failed. It is fatal to the pass
	// and the only error returned by RunFullSync.
	ErrStorageFailure = errors.New("local storage failure")

	// ErrInvalidOperation is returned for a mutation that fails validation.
	ErrInvalidOperation = errors.New("invalid mutation operation")

	// ErrEntityNotFound is returned when a local row does not exist.
	ErrEntityNotFound = errors.New("entity not found")
)
