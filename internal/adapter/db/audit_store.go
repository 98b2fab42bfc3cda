package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

type auditRow struct {
	ID         uint64    `db:"id"`
	Actor      string    `db:"actor"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   uint64    `db:"entity_id"`
	Previous   []byte    `db:"previous_state"`
	NewState   []byte    `db:"new_state"`
	CreatedAt  time.Time `db:"created_at"`
}

func (o *storeOps) AppendAudit(ctx context.Context, entry domain.AuditEntry) (uint64, error) {
	res, err := o.tx.ExecContext(ctx, `
INSERT INTO audit_log (actor, action, entity_type, entity_id, previous_state, new_state, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(entry.Actor),
		entry.Action,
		string(entry.EntityType),
		entry.EntityID,
		nullableJSON(entry.PreviousState),
		nullableJSON(entry.NewState),
		entry.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (o *storeOps) ListAudit(ctx context.Context, filter ports.AuditFilter) ([]domain.AuditEntry, error) {
	query := `
SELECT id, actor, action, entity_type, entity_id, previous_state, new_state, created_at
FROM audit_log`
	args := []any{}

	where := ""
	if filter.EntityType != "" {
		where = " WHERE entity_type = ?"
		args = append(args, string(filter.EntityType))
	}
	if filter.EntityID != 0 {
		if where == "" {
			where = " WHERE entity_id = ?"
		} else {
			where += " AND entity_id = ?"
		}
		args = append(args, filter.EntityID)
	}

	query += where + " ORDER BY id DESC LIMIT ?"
	args = append(args, filter.Limit)

	var rows []auditRow
	if err := o.tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	entries := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.AuditEntry{
			ID:            row.ID,
			Actor:         domain.Actor(row.Actor),
			Action:        row.Action,
			EntityType:    domain.EntityType(row.EntityType),
			EntityID:      row.EntityID,
			PreviousState: json.RawMessage(row.Previous),
			NewState:      json.RawMessage(row.NewState),
			CreatedAt:     row.CreatedAt,
		})
	}
	return entries, nil
}

func nullableJSON(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
