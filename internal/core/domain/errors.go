package domain

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrDividerNotFound = errors.New("divider not found")
	ErrRoutineNotFound = errors.New("routine not found")
	ErrNoteNotFound    = errors.New("note not found")
	ErrTaskNotArchived = errors.New("task not archived")
	ErrInvalidColumn   = errors.New("invalid column")
)
