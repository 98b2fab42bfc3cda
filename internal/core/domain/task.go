package domain

import "time"

type Column string

const (
	ColumnToday    Column = "today"
	ColumnTomorrow Column = "tomorrow"
	ColumnThisWeek Column = "this_week"
	ColumnHorizon  Column = "horizon"
)

// Columns lists every recognized board column, in board order.
func Columns() []Column {
	return []Column{ColumnToday, ColumnTomorrow, ColumnThisWeek, ColumnHorizon}
}

func ParseColumn(value string) (Column, error) {
	switch Column(value) {
	case ColumnToday, ColumnTomorrow, ColumnThisWeek, ColumnHorizon:
		return Column(value), nil
	}
	return "", ErrInvalidColumn
}

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

type Representation string

const (
	RepresentationSimple    Representation = "simple"
	RepresentationChecklist Representation = "checklist"
)

type Task struct {
	ID            uint64         `json:"id"`
	Title         string         `json:"title"`
	Notes         *string        `json:"notes,omitempty"`
	Status        TaskStatus     `json:"status"`
	IsArchived    bool           `json:"is_archived"`
	Column        Column         `json:"column"`
	Position      int            `json:"position"`
	DueAt         *time.Time     `json:"due_at,omitempty"`
	RoutineID     *uint64        `json:"routine_id,omitempty"`
	Items         []Item         `json:"items,omitempty"`
	ArchivedItems []ItemSnapshot `json:"archived_items,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	ArchivedAt    *time.Time     `json:"archived_at,omitempty"`
}

// Representation derives the task's rendering from its live items. It is
// never stored or accepted from clients.
func (t Task) Representation() Representation {
	if len(t.Items) > 0 {
		return RepresentationChecklist
	}
	return RepresentationSimple
}

type Item struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Position  int    `json:"position"`
}

// ItemSnapshot is one frozen checklist row captured at archive time.
type ItemSnapshot struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// SnapshotItems freezes the structural content of a checklist, in item order.
func SnapshotItems(items []Item) []ItemSnapshot {
	if len(items) == 0 {
		return nil
	}
	snapshot := make([]ItemSnapshot, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, ItemSnapshot{Title: item.Title, Completed: item.Completed})
	}
	return snapshot
}

type CreateTaskInput struct {
	Title     string
	Notes     *string
	Column    Column
	DueAt     *time.Time
	RoutineID *uint64
}

type UpdateTaskInput struct {
	Title        *string
	Notes        *string
	NotesSet     bool
	DueAt        *time.Time
	DueAtSet     bool
	RoutineID    *uint64
	RoutineIDSet bool
}

type MoveTaskInput struct {
	Column   Column
	Position *int
}

type AddItemInput struct {
	Title string
}

type UpdateItemInput struct {
	Title     *string
	Completed *bool
}
