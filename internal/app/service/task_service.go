package service

import (
	"context"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

// TaskService owns the task lifecycle: representation duality, archive and
// restore transitions, and the dense per-column ordering. Every mutation,
// its renumbering and its audit entry run in one store transaction.
type TaskService struct {
	store ports.Store
}

func NewTaskService(store ports.Store) *TaskService {
	return &TaskService{store: store}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) Create(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error) {
	if _, err := domain.ParseColumn(string(input.Column)); err != nil {
		return domain.Task{}, err
	}

	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		if input.RoutineID != nil {
			if _, err := ops.GetRoutine(ctx, *input.RoutineID); err != nil {
				return err
			}
		}

		refs, err := ops.ListColumnRefs(ctx, input.Column)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		task := domain.Task{
			Title:     input.Title,
			Notes:     input.Notes,
			Status:    domain.TaskStatusPending,
			Column:    input.Column,
			Position:  len(refs),
			DueAt:     input.DueAt,
			RoutineID: input.RoutineID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		id, err := ops.InsertTask(ctx, task)
		if err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionCreateTask, domain.EntityTask, id, nil, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *TaskService) Get(ctx context.Context, id uint64) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		task, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		out = task
		return nil
	})
	return out, err
}

func (s *TaskService) Update(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := liveTask(ctx, ops, id)
		if err != nil {
			return err
		}

		task := before
		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.NotesSet {
			task.Notes = input.Notes
		}
		if input.DueAtSet {
			task.DueAt = input.DueAt
		}
		if input.RoutineIDSet {
			if input.RoutineID != nil {
				if _, err := ops.GetRoutine(ctx, *input.RoutineID); err != nil {
					return err
				}
			}
			task.RoutineID = input.RoutineID
		}
		task.UpdatedAt = time.Now().UTC()

		if err := ops.UpdateTask(ctx, task); err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionUpdateTask, domain.EntityTask, id, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

// Move relocates a task across columns and/or to an explicit index in the
// destination's shared task+divider sequence. A nil position appends; an
// explicit position inserts before the member currently holding that index,
// clamped to [0, n].
func (s *TaskService) Move(ctx context.Context, actor domain.Actor, id uint64, input domain.MoveTaskInput) (domain.Task, error) {
	if _, err := domain.ParseColumn(string(input.Column)); err != nil {
		return domain.Task{}, err
	}

	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := liveTask(ctx, ops, id)
		if err != nil {
			return err
		}
		source := before.Column

		refs, err := ops.ListColumnRefs(ctx, input.Column)
		if err != nil {
			return err
		}
		rest := make([]domain.SequenceRef, 0, len(refs))
		for _, ref := range refs {
			if ref.Kind == domain.EntryKindTask && ref.ID == id {
				continue
			}
			rest = append(rest, ref)
		}

		index := len(rest)
		if input.Position != nil {
			index = *input.Position
		}
		moved := domain.SequenceRef{Kind: domain.EntryKindTask, ID: id, CreatedAt: before.CreatedAt}
		planned := domain.InsertRefAt(rest, moved, index)

		task := before
		task.Column = input.Column
		task.UpdatedAt = time.Now().UTC()
		if err := ops.UpdateTask(ctx, task); err != nil {
			return err
		}
		if err := ops.ApplyPositions(ctx, planned); err != nil {
			return err
		}
		if source != input.Column {
			if err := renumberColumn(ctx, ops, source); err != nil {
				return err
			}
		}

		after, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionMoveTask, domain.EntityTask, id, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *TaskService) Archive(ctx context.Context, actor domain.Actor, id uint64) (domain.Task, error) {
	return s.archiveTask(ctx, actor, id, domain.ActionArchiveTask, false)
}

// Complete marks a task done and archives it as one combined transition.
// There is no "completed but still on the board" resting state.
func (s *TaskService) Complete(ctx context.Context, actor domain.Actor, id uint64) (domain.Task, error) {
	return s.archiveTask(ctx, actor, id, domain.ActionCompleteTask, true)
}

func (s *TaskService) archiveTask(ctx context.Context, actor domain.Actor, id uint64, action string, complete bool) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := liveTask(ctx, ops, id)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		task := before
		if complete {
			task.Status = domain.TaskStatusCompleted
			task.CompletedAt = &now
		}
		task.IsArchived = true
		task.ArchivedAt = &now
		task.UpdatedAt = now
		// Freeze the checklist content; live item rows stay for restore.
		if len(before.Items) > 0 {
			task.ArchivedItems = domain.SnapshotItems(before.Items)
		}

		if err := ops.UpdateTask(ctx, task); err != nil {
			return err
		}
		if err := renumberColumn(ctx, ops, task.Column); err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, action, domain.EntityTask, id, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

// Restore puts an archived task back at the end of its column. Restoring a
// task that exists but is not archived is a conflict, distinct from a task
// that does not exist at all.
func (s *TaskService) Restore(ctx context.Context, actor domain.Actor, id uint64) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if !before.IsArchived {
			return domain.ErrTaskNotArchived
		}

		refs, err := ops.ListColumnRefs(ctx, before.Column)
		if err != nil {
			return err
		}

		task := before
		task.IsArchived = false
		task.ArchivedAt = nil
		task.Position = len(refs)
		task.UpdatedAt = time.Now().UTC()

		if err := ops.UpdateTask(ctx, task); err != nil {
			return err
		}
		if err := renumberColumn(ctx, ops, task.Column); err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionRestoreTask, domain.EntityTask, id, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

// AddItem appends an item to the task's own dense sequence. Adding the first
// item is the implicit simple-to-checklist promotion; there is no explicit
// convert operation.
func (s *TaskService) AddItem(ctx context.Context, actor domain.Actor, taskID uint64, input domain.AddItemInput) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := liveTask(ctx, ops, taskID)
		if err != nil {
			return err
		}

		item := domain.Item{
			TaskID:   taskID,
			Title:    input.Title,
			Position: len(before.Items),
		}
		if _, err := ops.InsertItem(ctx, item); err != nil {
			return err
		}
		if err := touchTask(ctx, ops, before); err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionAddItem, domain.EntityTask, taskID, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *TaskService) UpdateItem(ctx context.Context, actor domain.Actor, taskID, itemID uint64, input domain.UpdateItemInput) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := liveTask(ctx, ops, taskID)
		if err != nil {
			return err
		}

		item, err := ops.GetItem(ctx, taskID, itemID)
		if err != nil {
			return err
		}
		if input.Title != nil {
			item.Title = *input.Title
		}
		if input.Completed != nil {
			item.Completed = *input.Completed
		}
		if err := ops.UpdateItem(ctx, item); err != nil {
			return err
		}
		if err := touchTask(ctx, ops, before); err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionUpdateItem, domain.EntityTask, taskID, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

// DeleteItem removes one item and renumbers the task's item sequence.
// Removing the last item is the implicit checklist-to-simple demotion.
func (s *TaskService) DeleteItem(ctx context.Context, actor domain.Actor, taskID, itemID uint64) (domain.Task, error) {
	var out domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := liveTask(ctx, ops, taskID)
		if err != nil {
			return err
		}

		if _, err := ops.GetItem(ctx, taskID, itemID); err != nil {
			return err
		}
		if err := ops.DeleteItem(ctx, taskID, itemID); err != nil {
			return err
		}

		remaining, err := ops.ListItems(ctx, taskID)
		if err != nil {
			return err
		}
		for i, it := range remaining {
			if it.Position == i {
				continue
			}
			it.Position = i
			if err := ops.UpdateItem(ctx, it); err != nil {
				return err
			}
		}

		if err := touchTask(ctx, ops, before); err != nil {
			return err
		}

		after, err := ops.GetTask(ctx, taskID)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionDeleteItem, domain.EntityTask, taskID, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *TaskService) ListColumn(ctx context.Context, column domain.Column) ([]domain.ColumnEntry, error) {
	if _, err := domain.ParseColumn(string(column)); err != nil {
		return nil, err
	}

	var out []domain.ColumnEntry
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		entries, err := ops.ListColumn(ctx, column)
		if err != nil {
			return err
		}
		out = entries
		return nil
	})
	return out, err
}

func (s *TaskService) ListArchived(ctx context.Context) ([]domain.Task, error) {
	var out []domain.Task
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		tasks, err := ops.ListArchived(ctx)
		if err != nil {
			return err
		}
		out = tasks
		return nil
	})
	return out, err
}

// liveTask resolves a task for mutation. Archived tasks are off the board and
// read as not found here; restore is the only transition that accepts them.
func liveTask(ctx context.Context, ops ports.StoreOps, id uint64) (domain.Task, error) {
	task, err := ops.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	if task.IsArchived {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

// renumberColumn re-establishes the dense 0..n-1 ordering over one column's
// non-archived tasks and dividers, preserving relative order.
func renumberColumn(ctx context.Context, ops ports.StoreOps, column domain.Column) error {
	refs, err := ops.ListColumnRefs(ctx, column)
	if err != nil {
		return err
	}
	return ops.ApplyPositions(ctx, domain.PlanSequence(refs))
}

func touchTask(ctx context.Context, ops ports.StoreOps, task domain.Task) error {
	task.UpdatedAt = time.Now().UTC()
	return ops.UpdateTask(ctx, task)
}
