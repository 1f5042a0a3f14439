package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type syncHistoryRepository struct {
	*DB
	logger *logger.Logger
}

// NewSyncHistoryRepository constructs the SQLite-backed [SyncHistoryRepository].
func NewSyncHistoryRepository(db *DB, logger *logger.Logger) SyncHistoryRepository {
	return &syncHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

// Append stores rec. Its id is raised above the newest stored id when a clock
// step would otherwise break insertion order. A non-positive limit disables
// eviction.
func (s *syncHistoryRepository) Append(ctx context.Context, rec models.SyncPassRecord, limit int) (models.SyncPassRecord, error) {
	log := logger.FromContext(ctx)

	counts, err := json.Marshal(rec.Counts)
	if err != nil {
		log.Err(err).Str("func", "syncHistoryRepository.Append").Msg("failed to encode counts")
		return models.SyncPassRecord{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	source := rec.Source
	if source == "" {
		source = models.SourceSync
	}

	err = s.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var lastID int64
		if err := tx.QueryRowContext(ctx, selectMaxHistoryID).Scan(&lastID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if rec.ID <= lastID {
			rec.ID = lastID + 1
		}

		if _, err := tx.ExecContext(ctx, insertHistory, rec.ID, rec.OccurredAt.UnixNano(), string(counts), string(source)); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if limit > 0 {
			if _, err := tx.ExecContext(ctx, evictHistory, limit); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "syncHistoryRepository.Append").
			Int64("id", rec.ID).
			Msg("failed to append sync history record")
		return models.SyncPassRecord{}, err
	}

	rec.Source = source
	return rec, nil
}

func (s *syncHistoryRepository) List(ctx context.Context, limit int) ([]models.SyncPassRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildHistoryListQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "syncHistoryRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncHistoryRepository.List").Msg("failed to execute query for sync history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.SyncPassRecord, 0, 20)
	for rows.Next() {
		var (
			rec        models.SyncPassRecord
			occurredAt int64
			counts     string
			source     string
		)
		if err = rows.Scan(&rec.ID, &occurredAt, &counts, &source); err != nil {
			log.Err(err).Str("func", "syncHistoryRepository.List").Msg("failed to scan sync history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal([]byte(counts), &rec.Counts); err != nil {
			log.Err(err).Str("func", "syncHistoryRepository.List").Int64("id", rec.ID).Msg("failed to decode counts")
			return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		rec.OccurredAt = fromUnixNano(occurredAt)
		rec.Source = models.PassSource(source)

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "syncHistoryRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
