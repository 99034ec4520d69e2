package mocks

import (
	"context"
	"marquee/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// Run implements postgres.Transactor. fn receives a nil tx, which repository mocks ignore.
func (t *transactorImpl) Run(_ context.Context, fn func(tx *sqlx.Tx) error) postgres.TxResult {
	if err := fn(nil); err != nil {
		return postgres.TxResult{Status: postgres.TxRolledBack, Err: err}
	}

	return postgres.TxResult{Status: postgres.TxCommitted}
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
