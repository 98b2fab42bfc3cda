package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

// appendAudit writes one audit entry inside the caller's transaction, so a
// failed audit write rolls back the mutation it describes. previous and next
// are marshaled as-is; pass nil for creations (previous) and removals (next).
func appendAudit(ctx context.Context, ops ports.AuditOps, actor domain.Actor, action string, entityType domain.EntityType, entityID uint64, previous, next any) error {
	entry := domain.AuditEntry{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	if previous != nil {
		data, err := json.Marshal(previous)
		if err != nil {
			return err
		}
		entry.PreviousState = data
	}

	if next != nil {
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		entry.NewState = data
	}

	_, err := ops.AppendAudit(ctx, entry)
	return err
}
