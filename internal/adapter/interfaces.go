// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync engine and
// the remote POS service.
//
// The primary abstraction is [RemoteSyncClient], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPRemoteSyncClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling ([ErrUnauthorized], [ErrRemoteRejected], [ErrTransport]).
package adapter

import (
	"context"

	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_sync_client_mock.go -package=mock

// RemoteSyncClient defines the per-kind bulk RPC of the remote service.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RemoteSyncClient interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string.
	Token() string

	// SyncBatch uploads the queued operations of one kind in queue order and
	// returns what the server accepted together with the authoritative
	// snapshots of the touched entities.
	SyncBatch(ctx context.Context, req models.SyncBatchRequest) (models.SyncBatchResponse, error)

	// FetchAll downloads every entity of kind. Used by the initial bootstrap.
	FetchAll(ctx context.Context, kind models.EntityKind) ([]models.RemoteEntitySnapshot, error)

	// Ping checks that the remote service is reachable.
	Ping(ctx context.Context) error
}
