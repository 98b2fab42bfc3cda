package ports

import (
	"context"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

// Store is the explicitly constructed handle to the relational store. Every
// mutating operation runs through WithinTx so that the entity mutation, the
// column renumbering and the audit append commit or roll back together.
type Store interface {
	WithinTx(ctx context.Context, fn func(ops StoreOps) error) error
}

// StoreOps groups the row-level operations available inside one transaction.
type StoreOps interface {
	TaskOps
	ItemOps
	DividerOps
	AuditOps
	RoutineOps
	NoteOps
}

type TaskOps interface {
	// GetTask loads a task with its items, archived or not.
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	InsertTask(ctx context.Context, task domain.Task) (uint64, error)
	UpdateTask(ctx context.Context, task domain.Task) error
	// ListColumnRefs locks and returns the non-archived tasks and the dividers
	// of one column as ledger refs. The lock serializes same-column writers.
	ListColumnRefs(ctx context.Context, column domain.Column) ([]domain.SequenceRef, error)
	// ApplyPositions writes planned positions back to task and divider rows.
	ApplyPositions(ctx context.Context, refs []domain.SequenceRef) error
	ListColumn(ctx context.Context, column domain.Column) ([]domain.ColumnEntry, error)
	ListArchived(ctx context.Context) ([]domain.Task, error)
}

type ItemOps interface {
	GetItem(ctx context.Context, taskID, itemID uint64) (domain.Item, error)
	InsertItem(ctx context.Context, item domain.Item) (uint64, error)
	UpdateItem(ctx context.Context, item domain.Item) error
	DeleteItem(ctx context.Context, taskID, itemID uint64) error
	ListItems(ctx context.Context, taskID uint64) ([]domain.Item, error)
}

type DividerOps interface {
	GetDivider(ctx context.Context, id uint64) (domain.Divider, error)
	UpdateDivider(ctx context.Context, divider domain.Divider) error
}

type AuditOps interface {
	AppendAudit(ctx context.Context, entry domain.AuditEntry) (uint64, error)
	ListAudit(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error)
}

type RoutineOps interface {
	InsertRoutine(ctx context.Context, routine domain.Routine) (uint64, error)
	GetRoutine(ctx context.Context, id uint64) (domain.Routine, error)
	DeleteRoutine(ctx context.Context, id uint64) error
	ListRoutines(ctx context.Context) ([]domain.Routine, error)
}

type NoteOps interface {
	InsertNote(ctx context.Context, note domain.Note) (uint64, error)
	GetNote(ctx context.Context, id uint64) (domain.Note, error)
	UpdateNote(ctx context.Context, note domain.Note) error
	DeleteNote(ctx context.Context, id uint64) error
	ListNotes(ctx context.Context) ([]domain.Note, error)
}

// AuditFilter narrows an audit-log read. A zero value lists the most recent
// entries across all entities.
type AuditFilter struct {
	EntityType domain.EntityType
	EntityID   uint64
	Limit      int
}
