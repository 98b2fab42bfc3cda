package dto

import "time"

type Task struct {
	ID             uint64          `json:"id"`
	Title          string          `json:"title"`
	Notes          *string         `json:"notes,omitempty"`
	Representation string          `json:"representation"`
	Status         string          `json:"status"`
	IsArchived     bool            `json:"is_archived"`
	Column         string          `json:"column"`
	Position       int             `json:"position"`
	DueAt          *string         `json:"due_at,omitempty"`
	RoutineID      *uint64         `json:"routine_id,omitempty"`
	Items          []ChecklistItem `json:"items,omitempty"`
	ArchivedItems  []ItemSnapshot  `json:"archived_items,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
	CompletedAt    *string         `json:"completed_at,omitempty"`
	ArchivedAt     *string         `json:"archived_at,omitempty"`
}

type ChecklistItem struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Position  int    `json:"position"`
}

type ItemSnapshot struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type ColumnEntry struct {
	Kind    string   `json:"kind"`
	Task    *Task    `json:"task,omitempty"`
	Divider *Divider `json:"divider,omitempty"`
}

type CreateTaskRequest struct {
	Title     string     `json:"title" binding:"required,max=255"`
	Notes     *string    `json:"notes" binding:"omitempty,max=65535"`
	Column    string     `json:"column" binding:"required"`
	DueAt     *time.Time `json:"due_at" binding:"omitempty"`
	RoutineID *uint64    `json:"routine_id" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title     *string    `json:"title" binding:"omitempty,max=255"`
	Notes     *string    `json:"notes" binding:"omitempty,max=65535"`
	DueAt     *time.Time `json:"due_at" binding:"omitempty"`
	RoutineID *uint64    `json:"routine_id" binding:"omitempty,gt=0"`
}

type MoveTaskRequest struct {
	Column   string `json:"column" binding:"required"`
	Position *int   `json:"position" binding:"omitempty"`
}

type AddItemRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type UpdateItemRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Completed *bool   `json:"completed" binding:"omitempty"`
}
