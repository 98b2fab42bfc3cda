package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

type itemRow struct {
	ID        uint64 `db:"id"`
	TaskID    uint64 `db:"task_id"`
	Title     string `db:"title"`
	Completed bool   `db:"completed"`
	Position  int    `db:"position"`
}

func (o *storeOps) GetItem(ctx context.Context, taskID, itemID uint64) (domain.Item, error) {
	var row itemRow
	err := o.tx.GetContext(ctx, &row,
		"SELECT id, task_id, title, completed, position FROM task_items WHERE id = ? AND task_id = ?",
		itemID, taskID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, domain.ErrItemNotFound
		}
		return domain.Item{}, err
	}
	return mapItemRow(row), nil
}

func (o *storeOps) InsertItem(ctx context.Context, item domain.Item) (uint64, error) {
	res, err := o.tx.ExecContext(ctx,
		"INSERT INTO task_items (task_id, title, completed, position) VALUES (?, ?, ?, ?)",
		item.TaskID, item.Title, item.Completed, item.Position)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (o *storeOps) UpdateItem(ctx context.Context, item domain.Item) error {
	_, err := o.tx.ExecContext(ctx,
		"UPDATE task_items SET title = ?, completed = ?, position = ? WHERE id = ? AND task_id = ?",
		item.Title, item.Completed, item.Position, item.ID, item.TaskID)
	return err
}

func (o *storeOps) DeleteItem(ctx context.Context, taskID, itemID uint64) error {
	res, err := o.tx.ExecContext(ctx,
		"DELETE FROM task_items WHERE id = ? AND task_id = ?", itemID, taskID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (o *storeOps) ListItems(ctx context.Context, taskID uint64) ([]domain.Item, error) {
	var rows []itemRow
	err := o.tx.SelectContext(ctx, &rows,
		"SELECT id, task_id, title, completed, position FROM task_items WHERE task_id = ? ORDER BY position, id",
		taskID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapItemRow(row))
	}
	return items, nil
}

func mapItemRow(row itemRow) domain.Item {
	return domain.Item{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Completed: row.Completed,
		Position:  row.Position,
	}
}
