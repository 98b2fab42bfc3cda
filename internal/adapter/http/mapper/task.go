package mapper

import (
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/adapter/http/dto"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

func ToTask(task domain.Task) dto.Task {
	out := dto.Task{
		ID:             task.ID,
		Title:          task.Title,
		Representation: string(task.Representation()),
		Status:         string(task.Status),
		IsArchived:     task.IsArchived,
		Column:         string(task.Column),
		Position:       task.Position,
		RoutineID:      task.RoutineID,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Notes != nil {
		value := *task.Notes
		out.Notes = &value
	}
	if task.DueAt != nil {
		value := task.DueAt.Format(time.RFC3339)
		out.DueAt = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		out.CompletedAt = &value
	}
	if task.ArchivedAt != nil {
		value := task.ArchivedAt.Format(time.RFC3339)
		out.ArchivedAt = &value
	}

	for _, item := range task.Items {
		out.Items = append(out.Items, dto.ChecklistItem{
			ID:        item.ID,
			Title:     item.Title,
			Completed: item.Completed,
			Position:  item.Position,
		})
	}
	for _, snap := range task.ArchivedItems {
		out.ArchivedItems = append(out.ArchivedItems, dto.ItemSnapshot{
			Title:     snap.Title,
			Completed: snap.Completed,
		})
	}

	return out
}

func ToTasks(tasks []domain.Task) []dto.Task {
	out := make([]dto.Task, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, ToTask(task))
	}
	return out
}

func ToColumnEntries(entries []domain.ColumnEntry) []dto.ColumnEntry {
	out := make([]dto.ColumnEntry, 0, len(entries))
	for _, entry := range entries {
		mapped := dto.ColumnEntry{Kind: string(entry.Kind)}
		if entry.Task != nil {
			task := ToTask(*entry.Task)
			mapped.Task = &task
		}
		if entry.Divider != nil {
			divider := ToDivider(*entry.Divider)
			mapped.Divider = &divider
		}
		out = append(out, mapped)
	}
	return out
}
