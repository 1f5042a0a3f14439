package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

// DefaultHistoryLimit is the number of sync passes retained when no limit is
// configured.
const DefaultHistoryLimit = 20

type syncHistory struct {
	repo     store.SyncHistoryRepository
	settings store.SettingsRepository
	limit    int
}

// NewSyncHistory returns the history log bounded to limit records. A
// non-positive limit selects [DefaultHistoryLimit].
func NewSyncHistory(repo store.SyncHistoryRepository, settings store.SettingsRepository, limit int) SyncHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &syncHistory{repo: repo, settings: settings, limit: limit}
}

func (h *syncHistory) Append(ctx context.Context, rec models.SyncPassRecord) (models.SyncPassRecord, error) {
	stored, err := h.repo.Append(ctx, rec, h.limit)
	if err != nil {
		return models.SyncPassRecord{}, mapStoreError(err)
	}
	return stored, nil
}

func (h *syncHistory) List(ctx context.Context) ([]models.SyncPassRecord, error) {
	records, err := h.repo.List(ctx, h.limit)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return records, nil
}

func (h *syncHistory) RecordSuccessfulSync(ctx context.Context, at time.Time) error {
	if err := h.settings.SetSetting(ctx, store.SettingLastFullSyncAt, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (h *syncHistory) LastSuccessfulSync(ctx context.Context) (time.Time, bool, error) {
	raw, err := h.settings.GetSetting(ctx, store.SettingLastFullSyncAt)
	if errors.Is(err, store.ErrSettingNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, mapStoreError(err)
	}

	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: parse %s: %w", ErrStorageFailure, store.SettingLastFullSyncAt, err)
	}
	return at, true, nil
}
