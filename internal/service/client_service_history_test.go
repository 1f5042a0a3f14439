package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/mock"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

func TestSyncHistory_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncHistoryRepository(ctrl)
	h := NewSyncHistory(repo, mock.NewMockSettingsRepository(ctrl), 0)

	rec := models.SyncPassRecord{ID: 1, Counts: map[models.EntityKind]int{models.KindBill: 2}, Source: models.SourceSync}
	repo.EXPECT().Append(gomock.Any(), rec, DefaultHistoryLimit).Return(rec, nil)
	repo.EXPECT().List(gomock.Any(), DefaultHistoryLimit).Return([]models.SyncPassRecord{rec}, nil)

	_, err := h.Append(context.Background(), rec)
	require.NoError(t, err)

	records, err := h.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSyncHistory_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncHistoryRepository(ctrl)
	h := NewSyncHistory(repo, mock.NewMockSettingsRepository(ctrl), 5)

	repo.EXPECT().Append(gomock.Any(), gomock.Any(), 5).Return(models.SyncPassRecord{}, store.ErrCommitingTransaction)
	repo.EXPECT().List(gomock.Any(), 5).Return(nil, store.ErrScanningRow)

	_, err := h.Append(context.Background(), models.SyncPassRecord{})
	assert.ErrorIs(t, err, ErrStorageFailure)

	_, err = h.List(context.Background())
	assert.ErrorIs(t, err, ErrStorageFailure)
}

func TestSyncHistory_LastSuccessfulSync(t *testing.T) {
	h := newHarness(t, gomock.NewController(t))
	ctx := context.Background()

	_, ok, err := h.svc.History.LastSuccessfulSync(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2026, 3, 1, 12, 30, 0, 500, time.FixedZone("CET", 3600))
	require.NoError(t, h.svc.History.RecordSuccessfulSync(ctx, at))

	got, ok, err := h.svc.History.LastSuccessfulSync(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, at.Equal(got))
}

func TestSyncHistory_CorruptTimestamp(t *testing.T) {
	h := newHarness(t, gomock.NewController(t))
	ctx := context.Background()
	require.NoError(t, h.storages.Settings.SetSetting(ctx, store.SettingLastFullSyncAt, "yesterday"))

	_, _, err := h.svc.History.LastSuccessfulSync(ctx)
	assert.ErrorIs(t, err, ErrStorageFailure)
}
