package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/DOUGSKEEZ/clio-board-sub001/internal/core/ports"
)

// Store implements ports.Store over a MySQL connection pool. One WithinTx
// call is one transaction: the entity mutation, the column renumbering and
// the audit append all commit or roll back together.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

var _ ports.Store = (*Store)(nil)

func (s *Store) WithinTx(ctx context.Context, fn func(ops ports.StoreOps) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(&storeOps{tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit()
}

// storeOps executes row-level operations against one open transaction.
type storeOps struct {
	tx *sqlx.Tx
}

var _ ports.StoreOps = (*storeOps)(nil)
