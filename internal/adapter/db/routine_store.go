package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/domain"
)

type routineRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (o *storeOps) InsertRoutine(ctx context.Context, routine domain.Routine) (uint64, error) {
	res, err := o.tx.ExecContext(ctx,
		"INSERT INTO routines (name, created_at) VALUES (?, ?)",
		routine.Name, routine.CreatedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (o *storeOps) GetRoutine(ctx context.Context, id uint64) (domain.Routine, error) {
	var row routineRow
	err := o.tx.GetContext(ctx, &row, "SELECT id, name, created_at FROM routines WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Routine{}, domain.ErrRoutineNotFound
		}
		return domain.Routine{}, err
	}
	return domain.Routine{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

// DeleteRoutine hard-deletes a routine; task and note references are cleared
// by ON DELETE SET NULL foreign keys.
func (o *storeOps) DeleteRoutine(ctx context.Context, id uint64) error {
	res, err := o.tx.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRoutineNotFound
	}
	return nil
}

func (o *storeOps) ListRoutines(ctx context.Context) ([]domain.Routine, error) {
	var rows []routineRow
	err := o.tx.SelectContext(ctx, &rows, "SELECT id, name, created_at FROM routines ORDER BY id")
	if err != nil {
		return nil, err
	}

	routines := make([]domain.Routine, 0, len(rows))
	for _, row := range rows {
		routines = append(routines, domain.Routine{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}
	return routines, nil
}
