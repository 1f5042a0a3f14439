package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type entityRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntityRepository constructs the SQLite-backed [EntityRepository].
func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

// Commit writes the local effect of op (upsert of the payload, or removal for
// a delete) and its queue entry atomically. An upsert clears synced_at since
// the row now differs from what the server confirmed.
func (e *entityRepository) Commit(ctx context.Context, op models.MutationOperation) (int64, error) {
	log := logger.FromContext(ctx)

	if err := op.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	table, err := tableFor(op.Kind)
	if err != nil {
		return 0, err
	}
	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = time.Now()
	}

	var query string
	var args []any
	if op.IsDelete() {
		query, args, err = buildDeleteEntityQuery(table, op.EntityID)
	} else {
		query, args, err = buildUpsertEntityQuery(table, op.EntityID, op.Payload, op.EnqueuedAt)
	}
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Commit").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = e.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var err error
		id, err = insertOperation(ctx, tx, op)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Commit").
			Str("kind", op.Kind.String()).
			Str("entity_id", op.EntityID).
			Str("op", string(op.Type)).
			Msg("failed to commit local mutation")
		return 0, err
	}

	return id, nil
}

func (e *entityRepository) Get(ctx context.Context, kind models.EntityKind, id string) (models.EntityRow, error) {
	log := logger.FromContext(ctx)

	table, err := tableFor(kind)
	if err != nil {
		return models.EntityRow{}, err
	}

	query, args, err := buildGetEntityQuery(table, id)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Get").Msg("failed to create query")
		return models.EntityRow{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanEntity(e.QueryRowContext(ctx, query, args...), kind)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EntityRow{}, fmt.Errorf("%w: %s %s", ErrEntityNotFound, kind, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Get").
			Str("kind", kind.String()).
			Str("entity_id", id).
			Msg("failed to read entity row")
		return models.EntityRow{}, err
	}

	return row, nil
}

func (e *entityRepository) List(ctx context.Context, kind models.EntityKind) ([]models.EntityRow, error) {
	log := logger.FromContext(ctx)

	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := buildListEntitiesQuery(table)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.List").Str("kind", kind.String()).Msg("failed to execute query for entity rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.EntityRow, 0, 50)
	for rows.Next() {
		row, scanErr := scanEntity(rows, kind)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "entityRepository.List").Msg("failed to scan entity row")
			return nil, scanErr
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "entityRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (e *entityRepository) Count(ctx context.Context, kind models.EntityKind) (int, error) {
	log := logger.FromContext(ctx)

	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query, args, err := buildCountEntitiesQuery(table)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = e.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "entityRepository.Count").Str("kind", kind.String()).Msg("failed to count entity rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ApplySnapshots is all-or-nothing: one failing snapshot rolls back the whole
// batch. Snapshots of another kind are ignored.
func (e *entityRepository) ApplySnapshots(ctx context.Context, kind models.EntityKind, snapshots []models.RemoteEntitySnapshot, at time.Time) error {
	if len(snapshots) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	err = e.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for i, snap := range snapshots {
			if snap.Kind != "" && snap.Kind != kind {
				continue
			}

			var query string
			var args []any
			var err error
			if snap.Deleted {
				query, args, err = buildApplyDeletedSnapshotQuery(table, kind, snap.EntityID)
			} else {
				query, args, err = buildApplySnapshotQuery(table, kind, snap, at)
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "entityRepository.ApplySnapshots").
					Int("iteration", i).
					Str("entity_id", snap.EntityID).
					Msg("failed to apply snapshot")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.ApplySnapshots").
			Str("kind", kind.String()).
			Int("snapshots", len(snapshots)).
			Msg("failed to apply snapshots")
		return err
	}

	return nil
}

// UpsertDownloaded stores bootstrap snapshots. Deleted snapshots, snapshots
// of another kind and snapshots without data are skipped.
func (e *entityRepository) UpsertDownloaded(ctx context.Context, kind models.EntityKind, snapshots []models.RemoteEntitySnapshot, at time.Time) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx)

	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf(upsertDownloadedTemplate, table)

	var written int
	err = e.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		written = 0
		for _, snap := range snapshots {
			if snap.Deleted || len(snap.Data) == 0 || (snap.Kind != "" && snap.Kind != kind) {
				continue
			}
			if !json.Valid(snap.Data) {
				return fmt.Errorf("%w: snapshot %s carries invalid json", ErrEncodingColumn, snap.EntityID)
			}

			result, err := tx.ExecContext(ctx, query,
				snap.EntityID,
				string(snap.Data),
				at.UnixNano(),
				nullUnixNano(snap.ServerUpdatedAt),
				nullString(snap.ImageURL),
				at.UnixNano(),
				string(kind),
				snap.EntityID,
			)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			written += int(affected)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.UpsertDownloaded").
			Str("kind", kind.String()).
			Int("snapshots", len(snapshots)).
			Msg("failed to store downloaded entities")
		return 0, err
	}

	return written, nil
}

func scanEntity(row rowScanner, kind models.EntityKind) (models.EntityRow, error) {
	var (
		entity          models.EntityRow
		payload         string
		updatedAt       int64
		serverUpdatedAt sql.NullInt64
		imageURL        sql.NullString
		syncedAt        sql.NullInt64
	)

	err := row.Scan(
		&entity.EntityID,
		&payload,
		&updatedAt,
		&serverUpdatedAt,
		&imageURL,
		&syncedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EntityRow{}, err
	}
	if err != nil {
		return models.EntityRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entity.Kind = kind
	entity.Payload = json.RawMessage(payload)
	entity.UpdatedAt = fromUnixNano(updatedAt)
	entity.ServerUpdatedAt = timePtr(serverUpdatedAt)
	entity.ImageURL = stringPtr(imageURL)
	entity.SyncedAt = timePtr(syncedAt)

	return entity, nil
}
