package ports

import (
	"context"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

// TaskService is the task-entity lifecycle and ordering engine. Every
// mutating call returns the full post-transaction entity.
type TaskService interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	Update(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Move(ctx context.Context, actor domain.Actor, id uint64, input domain.MoveTaskInput) (domain.Task, error)
	Archive(ctx context.Context, actor domain.Actor, id uint64) (domain.Task, error)
	Restore(ctx context.Context, actor domain.Actor, id uint64) (domain.Task, error)
	Complete(ctx context.Context, actor domain.Actor, id uint64) (domain.Task, error)
	AddItem(ctx context.Context, actor domain.Actor, taskID uint64, input domain.AddItemInput) (domain.Task, error)
	UpdateItem(ctx context.Context, actor domain.Actor, taskID, itemID uint64, input domain.UpdateItemInput) (domain.Task, error)
	DeleteItem(ctx context.Context, actor domain.Actor, taskID, itemID uint64) (domain.Task, error)
	ListColumn(ctx context.Context, column domain.Column) ([]domain.ColumnEntry, error)
	ListArchived(ctx context.Context) ([]domain.Task, error)
}

type DividerService interface {
	Move(ctx context.Context, actor domain.Actor, id uint64, position int) (domain.Divider, error)
}

type AuditService interface {
	List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error)
}

type RoutineService interface {
	Create(ctx context.Context, actor domain.Actor, name string) (domain.Routine, error)
	List(ctx context.Context) ([]domain.Routine, error)
	Delete(ctx context.Context, actor domain.Actor, id uint64) error
}

type NoteService interface {
	Create(ctx context.Context, actor domain.Actor, input domain.CreateNoteInput) (domain.Note, error)
	Update(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateNoteInput) (domain.Note, error)
	Delete(ctx context.Context, actor domain.Actor, id uint64) error
	List(ctx context.Context) ([]domain.Note, error)
}
