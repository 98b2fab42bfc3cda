package dto

type Routine struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type CreateRoutineRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type Note struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	RoutineID *uint64 `json:"routine_id,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreateNoteRequest struct {
	Title     string  `json:"title" binding:"required,max=255"`
	Body      string  `json:"body" binding:"omitempty,max=65535"`
	RoutineID *uint64 `json:"routine_id" binding:"omitempty,gt=0"`
}

type UpdateNoteRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Body      *string `json:"body" binding:"omitempty,max=65535"`
	RoutineID *uint64 `json:"routine_id" binding:"omitempty,gt=0"`
}
