package repository

import (
	"context"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/infra/repository/converter"
)

const insertTransactionSQL = `INSERT INTO balance_transactions (` + converter.TransactionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(db db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	if _, err := r.db.Exec(ctx, insertTransactionSQL, converter.TransactionToInsertArgs(t)...); err != nil {
		return infra.WrapRepoErr("failed to create balance transaction", err)
	}
	return nil
}
