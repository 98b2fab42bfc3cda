package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

type noteRow struct {
	ID        uint64        `db:"id"`
	Title     string        `db:"title"`
	Body      string        `db:"body"`
	RoutineID sql.NullInt64 `db:"routine_id"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (o *storeOps) InsertNote(ctx context.Context, note domain.Note) (uint64, error) {
	res, err := o.tx.ExecContext(ctx,
		"INSERT INTO notes (title, body, routine_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		note.Title, note.Body, note.RoutineID, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (o *storeOps) GetNote(ctx context.Context, id uint64) (domain.Note, error) {
	var row noteRow
	err := o.tx.GetContext(ctx, &row,
		"SELECT id, title, body, routine_id, created_at, updated_at FROM notes WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Note{}, domain.ErrNoteNotFound
		}
		return domain.Note{}, err
	}
	return mapNoteRow(row), nil
}

func (o *storeOps) UpdateNote(ctx context.Context, note domain.Note) error {
	_, err := o.tx.ExecContext(ctx,
		"UPDATE notes SET title = ?, body = ?, routine_id = ?, updated_at = ? WHERE id = ?",
		note.Title, note.Body, note.RoutineID, note.UpdatedAt, note.ID)
	return err
}

func (o *storeOps) DeleteNote(ctx context.Context, id uint64) error {
	res, err := o.tx.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (o *storeOps) ListNotes(ctx context.Context) ([]domain.Note, error) {
	var rows []noteRow
	err := o.tx.SelectContext(ctx, &rows,
		"SELECT id, title, body, routine_id, created_at, updated_at FROM notes ORDER BY id")
	if err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNoteRow(row))
	}
	return notes, nil
}

func mapNoteRow(row noteRow) domain.Note {
	note := domain.Note{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.RoutineID.Valid {
		value := uint64(row.RoutineID.Int64)
		note.RoutineID = &value
	}
	return note
}
