package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/mock"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type staticMonitor bool

func (m staticMonitor) CurrentlyOnline() bool { return bool(m) }

func (staticMonitor) CancelPending() bool { return false }

type reconcilerMocks struct {
	queue    *mock.MockMutationQueueRepository
	entities *mock.MockEntityRepository
	remote   *mock.MockRemoteSyncClient
	clock    *network.ManualClock
}

func newReconcilerUnderTest(t *testing.T, online bool) (EntityReconciler, reconcilerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reconcilerMocks{
		queue:    mock.NewMockMutationQueueRepository(ctrl),
		entities: mock.NewMockEntityRepository(ctrl),
		remote:   mock.NewMockRemoteSyncClient(ctrl),
		clock:    network.NewManualClock(time.Unix(1_700_000_000, 0).UTC()),
	}
	queue := NewMutationQueue(m.queue, m.clock, 3, time.Hour, logger.Nop())
	r := NewEntityReconciler(models.KindBill, queue, m.entities, m.remote, staticMonitor(online), stubDevices{}, m.clock, time.Second, logger.Nop())
	return r, m
}

func pendingBills(t *testing.T) []models.MutationOperation {
	t.Helper()
	create, err := models.NewCreate(models.Bill{ID: "b1", Total: 900})
	require.NoError(t, err)
	create.ID = 11
	del, err := models.NewDelete(models.KindBill, "b0")
	require.NoError(t, err)
	del.ID = 12
	return []models.MutationOperation{create, del}
}

func TestEntityReconciler_Offline(t *testing.T) {
	r, _ := newReconcilerUnderTest(t, false)

	result := r.SyncKind(context.Background())
	assert.Equal(t, models.KindBill, r.Kind())
	assert.ErrorIs(t, result.Err, ErrNetworkUnavailable)
	assert.Zero(t, result.Synced)
}

func TestEntityReconciler_NothingPending(t *testing.T) {
	r, m := newReconcilerUnderTest(t, true)
	m.queue.EXPECT().PendingFor(gomock.Any(), models.KindBill).Return(nil, nil)

	result := r.SyncKind(context.Background())
	assert.True(t, result.OK())
	assert.Zero(t, result.Synced)
}

func TestEntityReconciler_Success(t *testing.T) {
	r, m := newReconcilerUnderTest(t, true)
	ops := pendingBills(t)
	snaps := []models.RemoteEntitySnapshot{{Kind: models.KindBill, EntityID: "b1", ServerUpdatedAt: m.clock.Now()}}

	gomock.InOrder(
		m.queue.EXPECT().PendingFor(gomock.Any(), models.KindBill).Return(ops, nil),
		m.remote.EXPECT().SyncBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, req models.SyncBatchRequest) (models.SyncBatchResponse, error) {
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				assert.Equal(t, "device-1", req.DeviceID)
				require.Len(t, req.Operations, 2)
				assert.Empty(t, req.Operations[1].Payload)
				return models.SyncBatchResponse{AcceptedCount: 1, Snapshots: snaps}, nil
			}),
		m.queue.EXPECT().MarkSynced(gomock.Any(), []int64{11, 12}, m.clock.Now()).Return(int64(2), nil),
		m.entities.EXPECT().ApplySnapshots(gomock.Any(), models.KindBill, snaps, m.clock.Now()).Return(nil),
	)

	result := r.SyncKind(context.Background())
	require.NoError(t, result.Err)
	assert.Equal(t, 2, result.Synced, "a short accepted count still confirms the batch")
}

func TestEntityReconciler_RemoteFailure(t *testing.T) {
	tests := []struct {
		name      string
		remoteErr error
		recordErr error
		want      []error
	}{
		{name: "transport", remoteErr: adapter.ErrBadGateway, want: []error{ErrTransportFailure}},
		{name: "rejected", remoteErr: adapter.ErrBadRequest, want: []error{ErrRemoteRejected}},
		{name: "unauthorized", remoteErr: adapter.ErrUnauthorized, want: []error{ErrUnauthorized}},
		{
			name:      "bookkeeping fails too",
			remoteErr: adapter.ErrBadGateway,
			recordErr: store.ErrExecutingStatement,
			want:      []error{ErrTransportFailure, ErrStorageFailure},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := newReconcilerUnderTest(t, true)
			m.queue.EXPECT().PendingFor(gomock.Any(), models.KindBill).Return(pendingBills(t), nil)
			m.remote.EXPECT().SyncBatch(gomock.Any(), gomock.Any()).Return(models.SyncBatchResponse{}, tt.remoteErr)
			m.queue.EXPECT().RecordFailure(gomock.Any(), []int64{11, 12}, gomock.Any()).Return(tt.recordErr)

			result := r.SyncKind(context.Background())
			for _, want := range tt.want {
				assert.ErrorIs(t, result.Err, want)
			}
			assert.Zero(t, result.Synced)
		})
	}
}

func TestEntityReconciler_BookkeepingSurvivesCancel(t *testing.T) {
	r, m := newReconcilerUnderTest(t, true)
	ctx, cancel := context.WithCancel(context.Background())

	m.queue.EXPECT().PendingFor(gomock.Any(), models.KindBill).Return(pendingBills(t), nil)
	m.remote.EXPECT().SyncBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.SyncBatchRequest) (models.SyncBatchResponse, error) {
			cancel()
			return models.SyncBatchResponse{AcceptedCount: 2}, nil
		})
	m.queue.EXPECT().MarkSynced(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []int64, _ time.Time) (int64, error) {
			assert.NoError(t, ctx.Err())
			return 2, nil
		})
	m.entities.EXPECT().ApplySnapshots(gomock.Any(), models.KindBill, gomock.Any(), gomock.Any()).Return(nil)

	result := r.SyncKind(ctx)
	assert.NoError(t, result.Err)
	assert.Equal(t, 2, result.Synced)
}

func TestEntityReconciler_StorageFailures(t *testing.T) {
	t.Run("pending read", func(t *testing.T) {
		r, m := newReconcilerUnderTest(t, true)
		m.queue.EXPECT().PendingFor(gomock.Any(), models.KindBill).Return(nil, store.ErrScanningRow)

		result := r.SyncKind(context.Background())
		assert.ErrorIs(t, result.Err, ErrStorageFailure)
	})

	t.Run("mark synced", func(t *testing.T) {
		r, m := newReconcilerUnderTest(t, true)
		m.queue.EXPECT().PendingFor(gomock.Any(), models.KindBill).Return(pendingBills(t), nil)
		m.remote.EXPECT().SyncBatch(gomock.Any(), gomock.Any()).Return(models.SyncBatchResponse{AcceptedCount: 2}, nil)
		m.queue.EXPECT().MarkSynced(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrCommitingTransaction)

		result := r.SyncKind(context.Background())
		assert.ErrorIs(t, result.Err, ErrStorageFailure)
		assert.Zero(t, result.Synced)
	})
}
