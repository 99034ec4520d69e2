package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type TxStatus int

const (
	TxCommitted TxStatus = iota + 1
	TxRolledBack
)

func (s TxStatus) String() string {
	switch s {
	case TxCommitted:
		return "committed"
	case TxRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// TxResult reports how a composite write ended. Err is nil only when Status is TxCommitted.
type TxResult struct {
	Status TxStatus
	Err    error
}

func (r TxResult) Committed() bool {
	return r.Status == TxCommitted
}

type Transactor interface {
	Run(ctx context.Context, fn func(tx *sqlx.Tx) error) TxResult
}

type transactor struct {
	db *Connection
}

func NewTransactor(db *Connection) Transactor {
	return &transactor{db: db}
}

// Run executes fn inside a transaction on the write pool. Any error returned by fn,
// a failed commit, or a panic rolls the transaction back; the panic is re-raised.
func (t *transactor) Run(ctx context.Context, fn func(tx *sqlx.Tx) error) (result TxResult) {
	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return TxResult{Status: TxRolledBack, Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(tx)

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		rollback(tx)

		return TxResult{Status: TxRolledBack, Err: err}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")
		rollback(tx)

		return TxResult{Status: TxRolledBack, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}

	return TxResult{Status: TxCommitted}
}

func rollback(tx *sqlx.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		log.Error().Err(err).Msg("failed to rollback transaction")
	}
}
