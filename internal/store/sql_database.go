package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/migrations"
)

const (
	defaultBusyRetries = 5
	defaultBusyBackoff = 20 * time.Millisecond
)

// DB wraps the SQLite connection pool shared by all client repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	busyRetries uint64
	busyBackoff time.Duration
}

// Migrate applies the embedded schema.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// withRetry runs fn and repeats it with exponential backoff while the error
// is classified as retryable (SQLITE_BUSY / SQLITE_LOCKED).
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := db.busyBackoff
	if backoff <= 0 {
		backoff = defaultBusyBackoff
	}
	b := retry.WithMaxRetries(db.busyRetries, retry.NewExponential(backoff))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "DB.withRetry").Msg("database is busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// inTx runs fn in a single transaction, retried as a whole on busy errors.
// The transaction is rolled back when fn fails.
func (db *DB) inTx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}

		if err = fn(ctx, tx); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}
