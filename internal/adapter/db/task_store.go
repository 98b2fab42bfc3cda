package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

const selectTaskColumns = `
SELECT id, title, notes, status, is_archived, board_column, position,
       due_at, routine_id, archived_items, created_at, updated_at,
       completed_at, archived_at
FROM tasks
`

type taskRow struct {
	ID            uint64         `db:"id"`
	Title         string         `db:"title"`
	Notes         sql.NullString `db:"notes"`
	Status        string         `db:"status"`
	IsArchived    bool           `db:"is_archived"`
	BoardColumn   string         `db:"board_column"`
	Position      int            `db:"position"`
	DueAt         sql.NullTime   `db:"due_at"`
	RoutineID     sql.NullInt64  `db:"routine_id"`
	ArchivedItems []byte         `db:"archived_items"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	CompletedAt   sql.NullTime   `db:"completed_at"`
	ArchivedAt    sql.NullTime   `db:"archived_at"`
}

type refRow struct {
	ID        uint64    `db:"id"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

func (o *storeOps) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := o.tx.GetContext(ctx, &row, selectTaskColumns+"WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	task, err := mapTaskRow(row)
	if err != nil {
		return domain.Task{}, err
	}

	items, err := o.ListItems(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	task.Items = items

	return task, nil
}

func (o *storeOps) InsertTask(ctx context.Context, task domain.Task) (uint64, error) {
	res, err := o.tx.ExecContext(ctx, `
INSERT INTO tasks (title, notes, status, is_archived, board_column, position,
                   due_at, routine_id, archived_items, created_at, updated_at,
                   completed_at, archived_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.Title,
		task.Notes,
		string(task.Status),
		task.IsArchived,
		string(task.Column),
		task.Position,
		task.DueAt,
		task.RoutineID,
		marshalSnapshot(task.ArchivedItems),
		task.CreatedAt,
		task.UpdatedAt,
		task.CompletedAt,
		task.ArchivedAt,
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

func (o *storeOps) UpdateTask(ctx context.Context, task domain.Task) error {
	_, err := o.tx.ExecContext(ctx, `
UPDATE tasks
SET title = ?, notes = ?, status = ?, is_archived = ?, board_column = ?,
    position = ?, due_at = ?, routine_id = ?, archived_items = ?,
    updated_at = ?, completed_at = ?, archived_at = ?
WHERE id = ?`,
		task.Title,
		task.Notes,
		string(task.Status),
		task.IsArchived,
		string(task.Column),
		task.Position,
		task.DueAt,
		task.RoutineID,
		marshalSnapshot(task.ArchivedItems),
		task.UpdatedAt,
		task.CompletedAt,
		task.ArchivedAt,
		task.ID,
	)
	return err
}

// ListColumnRefs locks the column's live task rows and divider rows. The row
// locks are what serialize concurrent writers of the same column; writers of
// different columns touch disjoint row sets and proceed in parallel.
func (o *storeOps) ListColumnRefs(ctx context.Context, column domain.Column) ([]domain.SequenceRef, error) {
	var taskRows []refRow
	err := o.tx.SelectContext(ctx, &taskRows, `
SELECT id, position, created_at FROM tasks
WHERE board_column = ? AND is_archived = 0
ORDER BY position, created_at, id
FOR UPDATE`, string(column))
	if err != nil {
		return nil, err
	}

	var dividerRows []refRow
	err = o.tx.SelectContext(ctx, &dividerRows, `
SELECT id, position, created_at FROM dividers
WHERE board_column = ?
ORDER BY position, created_at, id
FOR UPDATE`, string(column))
	if err != nil {
		return nil, err
	}

	refs := make([]domain.SequenceRef, 0, len(taskRows)+len(dividerRows))
	for _, r := range taskRows {
		refs = append(refs, domain.SequenceRef{Kind: domain.EntryKindTask, ID: r.ID, Position: r.Position, CreatedAt: r.CreatedAt})
	}
	for _, r := range dividerRows {
		refs = append(refs, domain.SequenceRef{Kind: domain.EntryKindDivider, ID: r.ID, Position: r.Position, CreatedAt: r.CreatedAt})
	}
	return refs, nil
}

func (o *storeOps) ApplyPositions(ctx context.Context, refs []domain.SequenceRef) error {
	for _, ref := range refs {
		table := "tasks"
		if ref.Kind == domain.EntryKindDivider {
			table = "dividers"
		}
		if _, err := o.tx.ExecContext(ctx, "UPDATE "+table+" SET position = ? WHERE id = ?", ref.Position, ref.ID); err != nil {
			return err
		}
	}
	return nil
}

func (o *storeOps) ListColumn(ctx context.Context, column domain.Column) ([]domain.ColumnEntry, error) {
	var taskRows []taskRow
	err := o.tx.SelectContext(ctx, &taskRows,
		selectTaskColumns+"WHERE board_column = ? AND is_archived = 0 ORDER BY position, created_at, id",
		string(column))
	if err != nil {
		return nil, err
	}

	itemsByTask, err := o.listColumnItems(ctx, column)
	if err != nil {
		return nil, err
	}

	var dividerRows []dividerRow
	err = o.tx.SelectContext(ctx, &dividerRows, `
SELECT id, board_column, label_above, label_below, position, created_at
FROM dividers
WHERE board_column = ?
ORDER BY position, created_at, id`, string(column))
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ColumnEntry, 0, len(taskRows)+len(dividerRows))
	for _, row := range taskRows {
		task, err := mapTaskRow(row)
		if err != nil {
			return nil, err
		}
		task.Items = itemsByTask[task.ID]
		entries = append(entries, domain.ColumnEntry{Kind: domain.EntryKindTask, Task: &task})
	}
	for _, row := range dividerRows {
		divider := mapDividerRow(row)
		entries = append(entries, domain.ColumnEntry{Kind: domain.EntryKindDivider, Divider: &divider})
	}

	domain.SortColumnEntries(entries)
	return entries, nil
}

func (o *storeOps) ListArchived(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	err := o.tx.SelectContext(ctx, &rows,
		selectTaskColumns+"WHERE is_archived = 1 ORDER BY archived_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRow(row)
		if err != nil {
			return nil, err
		}
		items, err := o.ListItems(ctx, task.ID)
		if err != nil {
			return nil, err
		}
		task.Items = items
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (o *storeOps) listColumnItems(ctx context.Context, column domain.Column) (map[uint64][]domain.Item, error) {
	var rows []itemRow
	err := o.tx.SelectContext(ctx, &rows, `
SELECT i.id, i.task_id, i.title, i.completed, i.position
FROM task_items i
JOIN tasks t ON t.id = i.task_id
WHERE t.board_column = ? AND t.is_archived = 0
ORDER BY i.task_id, i.position, i.id`, string(column))
	if err != nil {
		return nil, err
	}

	byTask := make(map[uint64][]domain.Item, len(rows))
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], mapItemRow(row))
	}
	return byTask, nil
}

func mapTaskRow(row taskRow) (domain.Task, error) {
	task := domain.Task{
		ID:         row.ID,
		Title:      row.Title,
		Status:     domain.TaskStatus(row.Status),
		IsArchived: row.IsArchived,
		Column:     domain.Column(row.BoardColumn),
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}
	if row.DueAt.Valid {
		value := row.DueAt.Time
		task.DueAt = &value
	}
	if row.RoutineID.Valid {
		value := uint64(row.RoutineID.Int64)
		task.RoutineID = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}
	if row.ArchivedAt.Valid {
		value := row.ArchivedAt.Time
		task.ArchivedAt = &value
	}
	if len(row.ArchivedItems) > 0 {
		var snapshot []domain.ItemSnapshot
		if err := json.Unmarshal(row.ArchivedItems, &snapshot); err != nil {
			return domain.Task{}, err
		}
		task.ArchivedItems = snapshot
	}

	return task, nil
}

// marshalSnapshot serializes a frozen checklist for the JSON column; an empty
// snapshot stays NULL so archived_items is only set for archived checklists.
func marshalSnapshot(snapshot []domain.ItemSnapshot) []byte {
	if len(snapshot) == 0 {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil
	}
	return data
}
