// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
)

// mapAdapterError translates an error of the remote client into a service
// failure class, keeping the original error in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, adapter.ErrRemoteRejected):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	// unknown errors are retried like transport failures
	return fmt.Errorf("%w: %w", ErrTransportFailure, err)
}

// mapStoreError translates a repository error into a service error.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrInvalidOperation), errors.Is(err, store.ErrUnknownKind):
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	case errors.Is(err, store.ErrEntityNotFound):
		return fmt.Errorf("%w: %w", ErrEntityNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
