package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type mutationQueueRepository struct {
	*DB
	logger *logger.Logger
}

// NewMutationQueueRepository constructs the SQLite-backed [MutationQueueRepository].
func NewMutationQueueRepository(db *DB, logger *logger.Logger) MutationQueueRepository {
	return &mutationQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *mutationQueueRepository) Enqueue(ctx context.Context, op models.MutationOperation) (int64, error) {
	log := logger.FromContext(ctx)

	if err := op.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	var id int64
	err := m.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		id, err = insertOperation(ctx, tx, op)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.Enqueue").
			Str("kind", op.Kind.String()).
			Str("entity_id", op.EntityID).
			Msg("failed to enqueue mutation")
		return 0, err
	}

	return id, nil
}

func (m *mutationQueueRepository) PendingFor(ctx context.Context, kind models.EntityKind) ([]models.MutationOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPendingQuery(kind)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.PendingFor").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ops, err := m.queryOperations(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.PendingFor").
			Str("kind", kind.String()).
			Msg("failed to read pending mutations")
		return nil, err
	}

	return ops, nil
}

func (m *mutationQueueRepository) PendingCount(ctx context.Context, kind *models.EntityKind) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPendingCountQuery(kind)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.PendingCount").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = m.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.PendingCount").Msg("failed to count pending mutations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (m *mutationQueueRepository) MarkSynced(ctx context.Context, ids []int64, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSyncedQuery(ids, at)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.MarkSynced").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := m.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.MarkSynced").
			Int("ids", len(ids)).
			Msg("failed to mark mutations synced")
		return 0, err
	}

	return affected, nil
}

func (m *mutationQueueRepository) RecordFailure(ctx context.Context, ids []int64, msg string) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildRecordFailureQuery(ids, msg)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.RecordFailure").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = m.exec(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "mutationQueueRepository.RecordFailure").
			Int("ids", len(ids)).
			Msg("failed to record mutation failure")
		return err
	}

	return nil
}

func (m *mutationQueueRepository) Stuck(ctx context.Context, maxRetries int) ([]models.MutationOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStuckQuery(maxRetries)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.Stuck").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ops, err := m.queryOperations(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.Stuck").Msg("failed to read stuck mutations")
		return nil, err
	}

	return ops, nil
}

func (m *mutationQueueRepository) PruneSynced(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneSyncedQuery(before)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.PruneSynced").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	removed, err := m.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mutationQueueRepository.PruneSynced").Msg("failed to prune synced mutations")
		return 0, err
	}

	return removed, nil
}

func (m *mutationQueueRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := m.withRetry(ctx, func(ctx context.Context) error {
		result, err := m.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err = result.RowsAffected()
		return err
	})
	return affected, err
}

func (m *mutationQueueRepository) queryOperations(ctx context.Context, query string, args ...any) ([]models.MutationOperation, error) {
	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ops := make([]models.MutationOperation, 0, 16)
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		ops = append(ops, op)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ops, nil
}

// insertOperation writes op to the queue inside tx.
func insertOperation(ctx context.Context, tx *sql.Tx, op models.MutationOperation) (int64, error) {
	var payload sql.NullString
	if len(op.Payload) > 0 {
		payload = sql.NullString{String: string(op.Payload), Valid: true}
	}

	enqueuedAt := op.EnqueuedAt
	if enqueuedAt.IsZero() {
		enqueuedAt = time.Now()
	}

	result, err := tx.ExecContext(ctx, insertMutation,
		string(op.Type),
		string(op.Kind),
		op.EntityID,
		payload,
		enqueuedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func scanOperation(row rowScanner) (models.MutationOperation, error) {
	var (
		op         models.MutationOperation
		opType     string
		kind       string
		payload    sql.NullString
		enqueuedAt int64
		lastError  sql.NullString
		synced     int
		syncedAt   sql.NullInt64
	)

	err := row.Scan(
		&op.ID,
		&opType,
		&kind,
		&op.EntityID,
		&payload,
		&enqueuedAt,
		&op.RetryCount,
		&lastError,
		&synced,
		&syncedAt,
	)
	if err != nil {
		return models.MutationOperation{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	op.Type = models.OperationType(opType)
	op.Kind = models.EntityKind(kind)
	if payload.Valid {
		op.Payload = json.RawMessage(payload.String)
	}
	op.EnqueuedAt = fromUnixNano(enqueuedAt)
	op.LastError = stringPtr(lastError)
	op.Synced = synced != 0
	op.SyncedAt = timePtr(syncedAt)

	return op, nil
}
