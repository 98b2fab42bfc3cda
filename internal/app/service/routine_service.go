package service

import (
	"context"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

type RoutineService struct {
	store ports.Store
}

func NewRoutineService(store ports.Store) *RoutineService {
	return &RoutineService{store: store}
}

var _ ports.RoutineService = (*RoutineService)(nil)

func (s *RoutineService) Create(ctx context.Context, actor domain.Actor, name string) (domain.Routine, error) {
	var out domain.Routine
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		routine := domain.Routine{Name: name, CreatedAt: time.Now().UTC()}
		id, err := ops.InsertRoutine(ctx, routine)
		if err != nil {
			return err
		}

		after, err := ops.GetRoutine(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionCreateRoutine, domain.EntityRoutine, id, nil, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *RoutineService) List(ctx context.Context) ([]domain.Routine, error) {
	var out []domain.Routine
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		routines, err := ops.ListRoutines(ctx)
		if err != nil {
			return err
		}
		out = routines
		return nil
	})
	return out, err
}

// Delete removes a routine. Task and note references are nullified by the
// store's foreign keys; the routine itself is the only hard-deleted entity.
func (s *RoutineService) Delete(ctx context.Context, actor domain.Actor, id uint64) error {
	return s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := ops.GetRoutine(ctx, id)
		if err != nil {
			return err
		}
		if err := ops.DeleteRoutine(ctx, id); err != nil {
			return err
		}
		return appendAudit(ctx, ops, actor, domain.ActionDeleteRoutine, domain.EntityRoutine, id, before, nil)
	})
}
