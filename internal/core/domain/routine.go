package domain

import "time"

// Routine is a weak grouping container. Tasks and notes reference it through
// a nullable foreign key that is cleared when the routine is deleted.
type Routine struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Note struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	RoutineID *uint64   `json:"routine_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateNoteInput struct {
	Title     string
	Body      string
	RoutineID *uint64
}

type UpdateNoteInput struct {
	Title        *string
	Body         *string
	RoutineID    *uint64
	RoutineIDSet bool
}
