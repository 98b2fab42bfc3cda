package service

import (
	"context"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

type AuditService struct {
	store ports.Store
}

func NewAuditService(store ports.Store) *AuditService {
	return &AuditService{store: store}
}

var _ ports.AuditService = (*AuditService)(nil)

func (s *AuditService) List(ctx context.Context, filter ports.AuditFilter) ([]domain.AuditEntry, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultAuditLimit
	}
	if filter.Limit > maxAuditLimit {
		filter.Limit = maxAuditLimit
	}

	var out []domain.AuditEntry
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		entries, err := ops.ListAudit(ctx, filter)
		if err != nil {
			return err
		}
		out = entries
		return nil
	})
	return out, err
}
