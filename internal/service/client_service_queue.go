package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type mutationQueue struct {
	repo  store.MutationQueueRepository
	clock network.Clock

	maxRetries       int
	retentionHorizon time.Duration

	logger *logger.Logger
}

// NewMutationQueue wraps repo. Operations with maxRetries or more failed
// attempts are reported by Stuck; synced operations older than
// retentionHorizon are removed by Prune.
func NewMutationQueue(repo store.MutationQueueRepository, clock network.Clock, maxRetries int, retentionHorizon time.Duration, logger *logger.Logger) MutationQueue {
	return &mutationQueue{
		repo:             repo,
		clock:            clock,
		maxRetries:       maxRetries,
		retentionHorizon: retentionHorizon,
		logger:           logger,
	}
}

func (q *mutationQueue) Enqueue(ctx context.Context, op models.MutationOperation) (int64, error) {
	if err := op.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = q.clock.Now()
	}

	id, err := q.repo.Enqueue(ctx, op)
	if err != nil {
		return 0, mapStoreError(err)
	}

	q.logger.Debug().
		Str("func", "mutationQueue.Enqueue").
		Int64("id", id).
		Str("kind", op.Kind.String()).
		Str("op", string(op.Type)).
		Str("entity_id", op.EntityID).
		Msg("mutation enqueued")
	return id, nil
}

func (q *mutationQueue) PendingFor(ctx context.Context, kind models.EntityKind) ([]models.MutationOperation, error) {
	ops, err := q.repo.PendingFor(ctx, kind)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ops, nil
}

func (q *mutationQueue) PendingCount(ctx context.Context, kind *models.EntityKind) (int, error) {
	n, err := q.repo.PendingCount(ctx, kind)
	if err != nil {
		return 0, mapStoreError(err)
	}
	return n, nil
}

func (q *mutationQueue) MarkSynced(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := q.repo.MarkSynced(ctx, ids, q.clock.Now()); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (q *mutationQueue) RecordFailure(ctx context.Context, ids []int64, msg string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := q.repo.RecordFailure(ctx, ids, msg); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (q *mutationQueue) Stuck(ctx context.Context) ([]models.MutationOperation, error) {
	ops, err := q.repo.Stuck(ctx, q.maxRetries)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ops, nil
}

func (q *mutationQueue) Prune(ctx context.Context) (int64, error) {
	before := q.clock.Now().Add(-q.retentionHorizon)
	n, err := q.repo.PruneSynced(ctx, before)
	if err != nil {
		return 0, mapStoreError(err)
	}

	if n > 0 {
		q.logger.Info().
			Str("func", "mutationQueue.Prune").
			Int64("pruned", n).
			Time("before", before).
			Msg("pruned synced mutations")
	}
	return n, nil
}
