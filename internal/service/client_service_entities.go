package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/network"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/store"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/utils"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/validators"
	"github.com/TRENZITSOLUTIONS/POS-mobile/models"
)

type clientEntityService struct {
	entities     store.EntityRepository
	queue        MutationQueue
	orchestrator SyncOrchestrator
	monitor      ConnectivityMonitor
	validator    validators.Validator
	ids          *utils.UUIDGenerator
	clock        network.Clock
	logger       *logger.Logger
}

// NewClientEntityService returns the CRUD service. Mutations are committed
// locally first; the sync pass they schedule runs in the background.
func NewClientEntityService(
	entities store.EntityRepository,
	queue MutationQueue,
	orchestrator SyncOrchestrator,
	monitor ConnectivityMonitor,
	validator validators.Validator,
	ids *utils.UUIDGenerator,
	clock network.Clock,
	logger *logger.Logger,
) ClientEntityService {
	return &clientEntityService{
		entities:     entities,
		queue:        queue,
		orchestrator: orchestrator,
		monitor:      monitor,
		validator:    validator,
		ids:          ids,
		clock:        clock,
		logger:       logger,
	}
}

func (s *clientEntityService) SaveCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if c.ID == "" {
		c.ID = s.ids.Generate()
	}
	return c, s.save(ctx, c)
}

func (s *clientEntityService) SaveItem(ctx context.Context, item models.Item) (models.Item, error) {
	if item.ID == "" {
		item.ID = s.ids.Generate()
	}
	return item, s.save(ctx, item)
}

func (s *clientEntityService) SaveBill(ctx context.Context, bill models.Bill) (models.Bill, error) {
	if bill.ID == "" {
		bill.ID = s.ids.Generate()
	}
	if bill.Total == 0 && len(bill.Lines) > 0 {
		bill.Total = bill.LineTotal()
	}
	return bill, s.save(ctx, bill)
}

func (s *clientEntityService) Delete(ctx context.Context, kind models.EntityKind, id string) error {
	if _, err := s.entities.Get(ctx, kind, id); err != nil {
		return mapStoreError(err)
	}

	op, err := models.NewDelete(kind, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	return s.commit(ctx, op)
}

func (s *clientEntityService) Get(ctx context.Context, kind models.EntityKind, id string) (models.EntityRow, error) {
	row, err := s.entities.Get(ctx, kind, id)
	if err != nil {
		return models.EntityRow{}, mapStoreError(err)
	}
	return row, nil
}

func (s *clientEntityService) List(ctx context.Context, kind models.EntityKind) ([]models.EntityRow, error) {
	rows, err := s.entities.List(ctx, kind)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return rows, nil
}

func (s *clientEntityService) Enqueue(ctx context.Context, op models.MutationOperation) (int64, error) {
	id, err := s.queue.Enqueue(ctx, op)
	if err != nil {
		return 0, err
	}
	s.scheduleSync(ctx)
	return id, nil
}

// save picks Create for a row that does not exist locally yet and Update
// otherwise.
func (s *clientEntityService) save(ctx context.Context, entity models.Entity) error {
	if err := s.validator.Validate(ctx, entity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	build := models.NewUpdate
	_, err := s.entities.Get(ctx, entity.Kind(), entity.EntityID())
	switch {
	case errors.Is(err, store.ErrEntityNotFound):
		build = models.NewCreate
	case err != nil:
		return mapStoreError(err)
	}

	op, err := build(entity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}
	return s.commit(ctx, op)
}

func (s *clientEntityService) commit(ctx context.Context, op models.MutationOperation) error {
	op.EnqueuedAt = s.clock.Now()
	id, err := s.entities.Commit(ctx, op)
	if err != nil {
		return mapStoreError(err)
	}

	s.logger.Debug().
		Str("func", "clientEntityService.commit").
		Int64("queue_id", id).
		Str("kind", op.Kind.String()).
		Str("op", string(op.Type)).
		Str("entity_id", op.EntityID).
		Msg("local mutation committed")

	s.scheduleSync(ctx)
	return nil
}

func (s *clientEntityService) scheduleSync(ctx context.Context) {
	if !s.monitor.CurrentlyOnline() {
		return
	}
	s.orchestrator.RequestSync(utils.WithTrigger(ctx, utils.TriggerEnqueue))
}
