package repository

import (
	"context"
	"slices"
	"time"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"

	"github.com/google/uuid"
)

const (
	lockAccountsSQL = `SELECT id, credit FROM users
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE`

	updateCreditSQL = `UPDATE users SET credit = $2, updated_at = $3 WHERE id = $1`
)

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(db db.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// LockByIDs locks the user rows in id order so two transfers between the same
// users cannot deadlock. A missing user is NOT_FOUND.
func (r *AccountRepository) LockByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*ledger.Account, error) {
	unique := slices.Clone(ids)
	slices.SortFunc(unique, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	unique = slices.Compact(unique)

	rows, err := r.db.Query(ctx, lockAccountsSQL, uuidStrings(unique))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock accounts", err)
	}
	defer rows.Close()

	accounts := make(map[uuid.UUID]*ledger.Account, len(unique))
	for rows.Next() {
		var (
			id     uuid.UUID
			credit int64
		)
		if err := rows.Scan(&id, &credit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan account", err, infra.KindDBFailure)
		}
		money, err := ledger.NewMoney(credit)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid account credit", err, infra.KindDBFailure)
		}
		accounts[id] = ledger.NewAccount(id, money)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate accounts", err)
	}

	if len(accounts) != len(unique) {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return accounts, nil
}

func (r *AccountRepository) UpdateCredit(ctx context.Context, acc *ledger.Account, now time.Time) error {
	tag, err := r.db.Exec(ctx, updateCreditSQL, acc.UserID(), acc.Credit().Cents(), now)
	if err != nil {
		return infra.WrapRepoErr("failed to update credit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
