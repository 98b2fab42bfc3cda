package mapper

import (
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

func ToDivider(divider domain.Divider) dto.Divider {
	return dto.Divider{
		ID:         divider.ID,
		Column:     string(divider.Column),
		LabelAbove: divider.LabelAbove,
		LabelBelow: divider.LabelBelow,
		Position:   divider.Position,
		CreatedAt:  divider.CreatedAt.Format(time.RFC3339),
	}
}

func ToAuditEntries(entries []domain.AuditEntry) []dto.AuditEntry {
	out := make([]dto.AuditEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.AuditEntry{
			ID:            entry.ID,
			Actor:         string(entry.Actor),
			Action:        entry.Action,
			EntityType:    string(entry.EntityType),
			EntityID:      entry.EntityID,
			PreviousState: entry.PreviousState,
			NewState:      entry.NewState,
			CreatedAt:     entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

func ToRoutine(routine domain.Routine) dto.Routine {
	return dto.Routine{
		ID:        routine.ID,
		Name:      routine.Name,
		CreatedAt: routine.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoutines(routines []domain.Routine) []dto.Routine {
	out := make([]dto.Routine, 0, len(routines))
	for _, routine := range routines {
		out = append(out, ToRoutine(routine))
	}
	return out
}

func ToNote(note domain.Note) dto.Note {
	return dto.Note{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		RoutineID: note.RoutineID,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

func ToNotes(notes []domain.Note) []dto.Note {
	out := make([]dto.Note, 0, len(notes))
	for _, note := range notes {
		out = append(out, ToNote(note))
	}
	return out
}
