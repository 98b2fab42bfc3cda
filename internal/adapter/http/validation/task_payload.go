package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrInvalidItemPayload = errors.New("invalid item payload")
	ErrInvalidNotePayload = errors.New("invalid note payload")
)

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	column, err := domain.ParseColumn(req.Column)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:     title,
		Notes:     req.Notes,
		Column:    column,
		DueAt:     req.DueAt,
		RoutineID: req.RoutineID,
	}, nil
}

// BuildUpdateTaskInput distinguishes "field absent" from "field set to null":
// nullable fields (notes, due_at, routine_id) clear on explicit null and stay
// untouched when omitted. Representation, status and position are never
// accepted from clients; unknown keys are ignored.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	notesSet := hasJSONField(raw, "notes")
	if notesSet && !isJSONNull(raw["notes"]) && req.Notes == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	dueAtSet := hasJSONField(raw, "due_at")
	if dueAtSet && !isJSONNull(raw["due_at"]) && req.DueAt == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	routineIDSet := hasJSONField(raw, "routine_id")
	if routineIDSet && !isJSONNull(raw["routine_id"]) && req.RoutineID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:        title,
		Notes:        req.Notes,
		NotesSet:     notesSet,
		DueAt:        req.DueAt,
		DueAtSet:     dueAtSet,
		RoutineID:    req.RoutineID,
		RoutineIDSet: routineIDSet,
	}, nil
}

func BuildUpdateItemInput(req dto.UpdateItemRequest) (domain.UpdateItemInput, error) {
	if req.Title == nil && req.Completed == nil {
		return domain.UpdateItemInput{}, ErrInvalidItemPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateItemInput{}, ErrInvalidItemPayload
		}
		title = &value
	}

	return domain.UpdateItemInput{Title: title, Completed: req.Completed}, nil
}

func BuildUpdateNoteInput(req dto.UpdateNoteRequest, raw map[string]json.RawMessage) (domain.UpdateNoteInput, error) {
	if !hasJSONField(raw, "title") && !hasJSONField(raw, "body") && !hasJSONField(raw, "routine_id") {
		return domain.UpdateNoteInput{}, ErrInvalidNotePayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateNoteInput{}, ErrInvalidNotePayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateNoteInput{}, ErrInvalidNotePayload
		}
		title = &value
	}

	routineIDSet := hasJSONField(raw, "routine_id")
	if routineIDSet && !isJSONNull(raw["routine_id"]) && req.RoutineID == nil {
		return domain.UpdateNoteInput{}, ErrInvalidNotePayload
	}

	return domain.UpdateNoteInput{
		Title:        title,
		Body:         req.Body,
		RoutineID:    req.RoutineID,
		RoutineIDSet: routineIDSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "notes") ||
		hasJSONField(raw, "due_at") ||
		hasJSONField(raw, "routine_id")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
