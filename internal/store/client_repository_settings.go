package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

// Settings keys used by the engine.
const (
	SettingLastFullSyncAt       = "last_full_sync_at"
	SettingDeviceID             = "device_id"
	SettingSessionToken         = "session_token"
	SettingBootstrapCompletedAt = "bootstrap_completed_at"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs the SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) GetSetting(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := s.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
	}
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.GetSetting").Str("key", key).Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	err := s.withRetry(ctx, func(ctx context.Context) error {
		if _, err := s.ExecContext(ctx, upsertSetting, key, value, time.Now().UnixNano()); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.SetSetting").Str("key", key).Msg("failed to write setting")
		return err
	}

	return nil
}

func (s *settingsRepository) DeleteSetting(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	err := s.withRetry(ctx, func(ctx context.Context) error {
		if _, err := s.ExecContext(ctx, deleteSetting, key); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.DeleteSetting").Str("key", key).Msg("failed to delete setting")
		return err
	}

	return nil
}
