package service

import (
	"context"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

// DividerService repositions dividers inside their column's shared
// task+divider sequence. Dividers have no lifecycle of their own.
type DividerService struct {
	store ports.Store
}

func NewDividerService(store ports.Store) *DividerService {
	return &DividerService{store: store}
}

var _ ports.DividerService = (*DividerService)(nil)

func (s *DividerService) Move(ctx context.Context, actor domain.Actor, id uint64, position int) (domain.Divider, error) {
	var out domain.Divider
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := ops.GetDivider(ctx, id)
		if err != nil {
			return err
		}

		refs, err := ops.ListColumnRefs(ctx, before.Column)
		if err != nil {
			return err
		}
		rest := make([]domain.SequenceRef, 0, len(refs))
		for _, ref := range refs {
			if ref.Kind == domain.EntryKindDivider && ref.ID == id {
				continue
			}
			rest = append(rest, ref)
		}

		moved := domain.SequenceRef{Kind: domain.EntryKindDivider, ID: id, CreatedAt: before.CreatedAt}
		planned := domain.InsertRefAt(rest, moved, position)
		if err := ops.ApplyPositions(ctx, planned); err != nil {
			return err
		}

		after, err := ops.GetDivider(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionMoveDivider, domain.EntityDivider, id, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}
