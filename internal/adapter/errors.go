package adapter

import (
	"errors"
	"fmt"
)

// Failure classes of a remote call. Every error returned by the adapter
// matches exactly one of them with [errors.Is].
var (
	// ErrUnauthorized is returned for 401 and 403 responses: the session is
	// missing, expired or revoked.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrRemoteRejected is returned for every other 4xx response. Retrying
	// the same request is unlikely to help.
	ErrRemoteRejected = errors.New("remote rejected request")

	// ErrTransport covers 5xx responses, timeouts and connection errors.
	ErrTransport = errors.New("remote transport failure")
)

// Status-specific errors, each wrapping its failure class.
var (
	ErrForbidden           = fmt.Errorf("%w: forbidden", ErrUnauthorized)
	ErrBadRequest          = fmt.Errorf("%w: bad request", ErrRemoteRejected)
	ErrNotFound            = fmt.Errorf("%w: not found", ErrRemoteRejected)
	ErrConflict            = fmt.Errorf("%w: conflict", ErrRemoteRejected)
	ErrInternalServerError = fmt.Errorf("%w: internal server error", ErrTransport)
	ErrBadGateway          = fmt.Errorf("%w: bad gateway", ErrTransport)

	// ErrBadResponse is returned when a 2xx body cannot be decoded. It is a
	// transport failure: nothing is known about what the server applied.
	ErrBadResponse = fmt.Errorf("%w: undecodable response", ErrTransport)
)
