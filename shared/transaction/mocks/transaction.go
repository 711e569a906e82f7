package mocks

import (
	"context"
	"roomops/shared/transaction"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithinTx implements transaction.Transactor. The callback receives a nil transaction,
// so it is only usable with mocked repositories.
func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return fn(ctx, nil)
}

func NewTransactor() transaction.Transactor {
	return &transactorImpl{}
}
