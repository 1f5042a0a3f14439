package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/config"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/mock"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

const testDebounce = 2 * time.Second

// harness wires the real engine over a SQLite file with a mocked remote and
// a manual clock.
type harness struct {
	cfg      *config.StructuredConfig
	storages *store.ClientStorages
	remote   *mock.MockRemoteSyncClient
	clock    *network.ManualClock
	monitor  *network.Monitor
	svc      *ClientServices
}

func newHarness(t *testing.T, ctrl *gomock.Controller) *harness {
	t.Helper()
	ctx := context.Background()

	cfg := config.Defaults()
	cfg.App.DeviceID = "device-1"
	cfg.Sync.ReconnectDebounce = testDebounce
	cfg.Sync.MaxRetries = 2

	storages, err := store.NewClientStorages(ctx, config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "pos.db")}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	remote := mock.NewMockRemoteSyncClient(ctrl)
	remote.EXPECT().SetToken(gomock.Any()).AnyTimes()

	clock := network.NewManualClock(time.Now().UTC().Truncate(time.Second))
	monitor := network.NewMonitor(clock, cfg.Sync.ReconnectDebounce, logger.Nop())

	h := &harness{
		cfg:      cfg,
		storages: storages,
		remote:   remote,
		clock:    clock,
		monitor:  monitor,
		svc:      NewClientServices(storages, remote, monitor, clock, cfg, logger.Nop()),
	}
	t.Cleanup(h.svc.Orchestrator.Wait)
	return h
}

// login stores a session token valid for an hour.
func (h *harness) login(t *testing.T) {
	t.Helper()
	_, err := h.svc.Sessions.Set(context.Background(), signedToken(t, "terminal-1", time.Hour))
	require.NoError(t, err)
}

func (h *harness) enqueue(t *testing.T, op models.MutationOperation) int64 {
	t.Helper()
	h.clock.Advance(time.Millisecond)
	id, err := h.svc.Queue.Enqueue(context.Background(), op)
	require.NoError(t, err)
	return id
}

func (h *harness) pending(t *testing.T, kind models.EntityKind) int {
	t.Helper()
	n, err := h.svc.Queue.PendingCount(context.Background(), &kind)
	require.NoError(t, err)
	return n
}

func (h *harness) history(t *testing.T) []models.SyncPassRecord {
	t.Helper()
	records, err := h.svc.History.List(context.Background())
	require.NoError(t, err)
	return records
}

// acceptAll answers every batch of kind by accepting all operations.
func (h *harness) acceptAll(kind models.EntityKind) *gomock.Call {
	return h.remote.EXPECT().SyncBatch(gomock.Any(), batchOf(kind)).
		DoAndReturn(func(_ context.Context, req models.SyncBatchRequest) (models.SyncBatchResponse, error) {
			return models.SyncBatchResponse{AcceptedCount: len(req.Operations)}, nil
		})
}

type batchKindMatcher struct {
	kind models.EntityKind
}

func batchOf(kind models.EntityKind) gomock.Matcher {
	return batchKindMatcher{kind: kind}
}

func (m batchKindMatcher) Matches(x any) bool {
	req, ok := x.(models.SyncBatchRequest)
	return ok && req.Kind == m.kind
}

func (m batchKindMatcher) String() string {
	return fmt.Sprintf("is a %s sync batch", m.kind)
}

func rawPayload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func rawOp(t *testing.T, opType models.OperationType, kind models.EntityKind, id string, payload json.RawMessage) models.MutationOperation {
	t.Helper()
	op, err := models.NewRawOperation(opType, kind, id, payload)
	require.NoError(t, err)
	return op
}

// signedToken returns an HS256 session token for subject expiring after ttl.
func signedToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "pos-remote",
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}
