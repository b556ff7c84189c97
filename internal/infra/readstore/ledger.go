package readstore

import (
	"context"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/user"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/infra/repository/converter"
	"laundromat-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	findUserSQL = `SELECT ` + converter.UserColumns + ` FROM users WHERE id = $1`

	listTransactionsSQL = `SELECT ` + converter.TransactionColumns + `
FROM balance_transactions
WHERE (from_id = $1 OR to_id = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2`

	listTransactionsAfterSQL = `SELECT ` + converter.TransactionColumns + `
FROM balance_transactions
WHERE (from_id = $1 OR to_id = $1)
  AND (created_at, id) < ($2, $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(db db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: db}
}

func (r *LedgerReadStore) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := converter.ScanUser(r.db.QueryRow(ctx, findUserSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return u, nil
}

func (r *LedgerReadStore) ListTransactions(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int) ([]*ledger.Transaction, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		rows, err = r.db.Query(ctx, listTransactionsSQL, userID, limit)
	} else {
		rows, err = r.db.Query(ctx, listTransactionsAfterSQL, userID, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	out := []*ledger.Transaction{}
	for rows.Next() {
		t, err := converter.ScanTransaction(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction", err, infra.KindDBFailure)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transactions", err)
	}
	return out, nil
}
