package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

type dividerRow struct {
	ID          uint64    `db:"id"`
	BoardColumn string    `db:"board_column"`
	LabelAbove  string    `db:"label_above"`
	LabelBelow  string    `db:"label_below"`
	Position    int       `db:"position"`
	CreatedAt   time.Time `db:"created_at"`
}

func (o *storeOps) GetDivider(ctx context.Context, id uint64) (domain.Divider, error) {
	var row dividerRow
	err := o.tx.GetContext(ctx, &row, `
SELECT id, board_column, label_above, label_below, position, created_at
FROM dividers WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Divider{}, domain.ErrDividerNotFound
		}
		return domain.Divider{}, err
	}
	return mapDividerRow(row), nil
}

func (o *storeOps) UpdateDivider(ctx context.Context, divider domain.Divider) error {
	_, err := o.tx.ExecContext(ctx,
		"UPDATE dividers SET label_above = ?, label_below = ?, position = ? WHERE id = ?",
		divider.LabelAbove, divider.LabelBelow, divider.Position, divider.ID)
	return err
}

func mapDividerRow(row dividerRow) domain.Divider {
	return domain.Divider{
		ID:         row.ID,
		Column:     domain.Column(row.BoardColumn),
		LabelAbove: row.LabelAbove,
		LabelBelow: row.LabelBelow,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
	}
}
