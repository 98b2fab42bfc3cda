package service

import (
	"context"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

type NoteService struct {
	store ports.Store
}

func NewNoteService(store ports.Store) *NoteService {
	return &NoteService{store: store}
}

var _ ports.NoteService = (*NoteService)(nil)

func (s *NoteService) Create(ctx context.Context, actor domain.Actor, input domain.CreateNoteInput) (domain.Note, error) {
	var out domain.Note
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		if input.RoutineID != nil {
			if _, err := ops.GetRoutine(ctx, *input.RoutineID); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		note := domain.Note{
			Title:     input.Title,
			Body:      input.Body,
			RoutineID: input.RoutineID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		id, err := ops.InsertNote(ctx, note)
		if err != nil {
			return err
		}

		after, err := ops.GetNote(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionCreateNote, domain.EntityNote, id, nil, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *NoteService) Update(ctx context.Context, actor domain.Actor, id uint64, input domain.UpdateNoteInput) (domain.Note, error) {
	var out domain.Note
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := ops.GetNote(ctx, id)
		if err != nil {
			return err
		}

		note := before
		if input.Title != nil {
			note.Title = *input.Title
		}
		if input.Body != nil {
			note.Body = *input.Body
		}
		if input.RoutineIDSet {
			if input.RoutineID != nil {
				if _, err := ops.GetRoutine(ctx, *input.RoutineID); err != nil {
					return err
				}
			}
			note.RoutineID = input.RoutineID
		}
		note.UpdatedAt = time.Now().UTC()

		if err := ops.UpdateNote(ctx, note); err != nil {
			return err
		}

		after, err := ops.GetNote(ctx, id)
		if err != nil {
			return err
		}
		if err := appendAudit(ctx, ops, actor, domain.ActionUpdateNote, domain.EntityNote, id, before, after); err != nil {
			return err
		}

		out = after
		return nil
	})
	return out, err
}

func (s *NoteService) Delete(ctx context.Context, actor domain.Actor, id uint64) error {
	return s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		before, err := ops.GetNote(ctx, id)
		if err != nil {
			return err
		}
		if err := ops.DeleteNote(ctx, id); err != nil {
			return err
		}
		return appendAudit(ctx, ops, actor, domain.ActionDeleteNote, domain.EntityNote, id, before, nil)
	})
}

func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	var out []domain.Note
	err := s.store.WithinTx(ctx, func(ops ports.StoreOps) error {
		notes, err := ops.ListNotes(ctx)
		if err != nil {
			return err
		}
		out = notes
		return nil
	})
	return out, err
}
