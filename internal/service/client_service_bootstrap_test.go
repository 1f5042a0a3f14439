package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

func snapshotOf(t *testing.T, at time.Time, entity models.Entity) models.RemoteEntitySnapshot {
	t.Helper()
	return models.RemoteEntitySnapshot{
		Kind:            entity.Kind(),
		EntityID:        entity.EntityID(),
		ServerUpdatedAt: at,
		Data:            rawPayload(t, entity),
	}
}

func (h *harness) serveCatalog(t *testing.T, categories, items []models.RemoteEntitySnapshot) {
	t.Helper()
	h.remote.EXPECT().FetchAll(gomock.Any(), models.KindCategory).Return(categories, nil).AnyTimes()
	h.remote.EXPECT().FetchAll(gomock.Any(), models.KindItem).Return(items, nil).AnyTimes()
}

func TestBootstrapper_DownloadsCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	ctx := context.Background()
	h.login(t)
	h.monitor.SetOnline(true)

	now := h.clock.Now()
	h.serveCatalog(t,
		[]models.RemoteEntitySnapshot{
			snapshotOf(t, now, models.Category{ID: "cat-1", Name: "Drinks"}),
			snapshotOf(t, now, models.Category{ID: "cat-2", Name: "Food"}),
		},
		[]models.RemoteEntitySnapshot{
			snapshotOf(t, now, models.Item{ID: "item-1", CategoryID: "cat-1", Name: "Espresso", Price: 250}),
			{Kind: models.KindItem, EntityID: "item-gone", Deleted: true},
		},
	)

	result, err := h.svc.Bootstrapper.Bootstrap(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, map[models.EntityKind]int{models.KindCategory: 2, models.KindItem: 1}, result.Downloaded)
	assert.Empty(t, result.Skipped)

	row, err := h.svc.Entities.Get(ctx, models.KindItem, "item-1")
	require.NoError(t, err)
	require.NotNil(t, row.SyncedAt)
	var item models.Item
	require.NoError(t, json.Unmarshal(row.Payload, &item))
	assert.Equal(t, "Espresso", item.Name)

	records := h.history(t)
	require.Len(t, records, 1)
	assert.Equal(t, models.SourceBootstrap, records[0].Source)
	assert.Equal(t, 3, records[0].Total())

	_, err = h.storages.Settings.GetSetting(ctx, store.SettingBootstrapCompletedAt)
	assert.NoError(t, err)
	assert.Zero(t, h.pending(t, models.KindCategory), "downloaded rows are not uploaded back")
}

func TestBootstrapper_SkipsPopulatedKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	ctx := context.Background()
	h.login(t)

	_, err := h.svc.Entities.SaveCategory(ctx, models.Category{ID: "cat-local", Name: "Local"})
	require.NoError(t, err)
	h.monitor.SetOnline(true)

	h.remote.EXPECT().FetchAll(gomock.Any(), models.KindItem).
		Return([]models.RemoteEntitySnapshot{snapshotOf(t, h.clock.Now(), models.Item{ID: "item-1", Name: "Tea"})}, nil)

	result, err := h.svc.Bootstrapper.Bootstrap(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []models.EntityKind{models.KindCategory}, result.Skipped)
	assert.Equal(t, map[models.EntityKind]int{models.KindItem: 1}, result.Downloaded)
}

func TestBootstrapper_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	ctx := context.Background()
	h.login(t)

	_, err := h.svc.Entities.SaveCategory(ctx, models.Category{ID: "cat-1", Name: "Drinks"})
	require.NoError(t, err)
	_, err = h.svc.Entities.SaveItem(ctx, models.Item{ID: "item-1", Name: "Tea"})
	require.NoError(t, err)
	h.monitor.SetOnline(true)

	result, err := h.svc.Bootstrapper.Bootstrap(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, result.Total())
	assert.Len(t, result.Skipped, 2)
	assert.Empty(t, h.history(t))
}

func TestBootstrapper_ForceIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	ctx := context.Background()
	h.login(t)
	h.monitor.SetOnline(true)

	now := h.clock.Now()
	h.serveCatalog(t,
		[]models.RemoteEntitySnapshot{snapshotOf(t, now, models.Category{ID: "cat-1", Name: "Drinks"})},
		[]models.RemoteEntitySnapshot{snapshotOf(t, now, models.Item{ID: "item-1", Name: "Tea"})},
	)

	for range 2 {
		h.clock.Advance(time.Millisecond)
		result, err := h.svc.Bootstrapper.Bootstrap(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Total())
	}

	for _, kind := range models.BootstrapKinds {
		n, err := h.storages.Entities.Count(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, 1, n, kind)
	}
	assert.Len(t, h.history(t), 2)
}

func TestBootstrapper_KeepsPendingLocalRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	ctx := context.Background()
	h.login(t)

	_, err := h.svc.Entities.SaveCategory(ctx, models.Category{ID: "cat-1", Name: "Renamed offline"})
	require.NoError(t, err)
	h.monitor.SetOnline(true)

	now := h.clock.Now()
	h.serveCatalog(t,
		[]models.RemoteEntitySnapshot{
			snapshotOf(t, now, models.Category{ID: "cat-1", Name: "Server name"}),
			snapshotOf(t, now, models.Category{ID: "cat-2", Name: "Food"}),
		},
		nil,
	)

	result, err := h.svc.Bootstrapper.Bootstrap(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Downloaded[models.KindCategory])

	row, err := h.svc.Entities.Get(ctx, models.KindCategory, "cat-1")
	require.NoError(t, err)
	var c models.Category
	require.NoError(t, json.Unmarshal(row.Payload, &c))
	assert.Equal(t, "Renamed offline", c.Name)
	assert.Equal(t, 1, h.pending(t, models.KindCategory))
}

func TestBootstrapper_Failures(t *testing.T) {
	t.Run("offline", func(t *testing.T) {
		h := newHarness(t, gomock.NewController(t))
		h.login(t)

		_, err := h.svc.Bootstrapper.Bootstrap(context.Background(), false)
		assert.ErrorIs(t, err, ErrOffline)
	})

	t.Run("no session", func(t *testing.T) {
		h := newHarness(t, gomock.NewController(t))
		h.monitor.SetOnline(true)

		_, err := h.svc.Bootstrapper.Bootstrap(context.Background(), false)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("download failure writes nothing", func(t *testing.T) {
		h := newHarness(t, gomock.NewController(t))
		ctx := context.Background()
		h.login(t)
		h.monitor.SetOnline(true)

		h.remote.EXPECT().FetchAll(gomock.Any(), models.KindCategory).
			Return([]models.RemoteEntitySnapshot{snapshotOf(t, h.clock.Now(), models.Category{ID: "cat-1", Name: "Drinks"})}, nil).
			AnyTimes()
		h.remote.EXPECT().FetchAll(gomock.Any(), models.KindItem).Return(nil, adapter.ErrBadGateway).AnyTimes()

		_, err := h.svc.Bootstrapper.Bootstrap(ctx, false)
		assert.ErrorIs(t, err, ErrTransportFailure)

		n, err := h.storages.Entities.Count(ctx, models.KindCategory)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Empty(t, h.history(t))

		_, err = h.storages.Settings.GetSetting(ctx, store.SettingBootstrapCompletedAt)
		assert.ErrorIs(t, err, store.ErrSettingNotFound)
	})
}

func TestBootstrapper_SyncPassWaitsForBootstrap(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, ctrl)
	ctx := context.Background()
	h.login(t)
	h.monitor.SetOnline(true)
	h.monitor.CancelPending()

	h.enqueue(t, rawOp(t, models.OpCreate, models.KindBill, "b1", []byte(`{"id":"b1"}`)))

	var mu sync.Mutex
	var events []string
	record := func(event string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	}

	fetching := make(chan struct{})
	release := make(chan struct{})
	h.remote.EXPECT().FetchAll(gomock.Any(), models.KindCategory).
		DoAndReturn(func(context.Context, models.EntityKind) ([]models.RemoteEntitySnapshot, error) {
			close(fetching)
			<-release
			record("fetch")
			return nil, nil
		})
	h.remote.EXPECT().FetchAll(gomock.Any(), models.KindItem).Return(nil, nil)
	h.remote.EXPECT().SyncBatch(gomock.Any(), batchOf(models.KindBill)).
		DoAndReturn(func(_ context.Context, req models.SyncBatchRequest) (models.SyncBatchResponse, error) {
			record("batch")
			return models.SyncBatchResponse{AcceptedCount: len(req.Operations)}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := h.svc.Bootstrapper.Bootstrap(ctx, false)
		done <- err
	}()
	<-fetching

	h.svc.Orchestrator.RequestSync(ctx)
	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-done)
	h.svc.Orchestrator.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"fetch", "batch"}, events)
	assert.Zero(t, h.pending(t, models.KindBill))
}
