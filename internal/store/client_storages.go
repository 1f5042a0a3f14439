package store

import (
	"context"
	"fmt"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/config"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

// ClientStorages groups all client-side repositories over one SQLite
// database into a single value that can be passed around the service layer.
type ClientStorages struct {
	// MutationQueue is the durable queue of local mutations.
	MutationQueue MutationQueueRepository

	// SyncHistory is the bounded log of sync passes.
	SyncHistory SyncHistoryRepository

	// Entities is the local row store of categories, items and bills.
	Entities EntityRepository

	// Settings holds engine scalars such as the device id and the session
	// token.
	Settings SettingsRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		MutationQueue: NewMutationQueueRepository(db, logger),
		SyncHistory:   NewSyncHistoryRepository(db, logger),
		Entities:      NewEntityRepository(db, logger),
		Settings:      NewSettingsRepository(db, logger),
		db:            db,
	}
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
