package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/config"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

// defaultPragmas are applied to every DSN that does not set them itself.
// synchronous=FULL makes a committed transaction survive power loss.
var defaultPragmas = map[string]string{
	"_journal_mode": "WAL",
	"_synchronous":  "FULL",
	"_busy_timeout": "5000",
	"_foreign_keys": "on",
}

// NewConnectSQLite opens the local SQLite database described by cfg. The
// pool is limited to a single connection so the database has exactly one
// writer.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	path, dsn := sqliteDSN(cfg.DSN)

	// db will be in file
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
		busyRetries:        defaultBusyRetries,
		busyBackoff:        defaultBusyBackoff,
	}

	return db, nil
}

// sqliteDSN splits raw into the database file path and a DSN carrying the
// default pragmas for every parameter raw leaves unset.
func sqliteDSN(raw string) (path, dsn string) {
	base, rawQuery, _ := strings.Cut(raw, "?")
	path = strings.TrimPrefix(base, "file:")

	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		params = url.Values{}
	}
	for key, value := range defaultPragmas {
		if !params.Has(key) {
			params.Set(key, value)
		}
	}

	return path, base + "?" + params.Encode()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
