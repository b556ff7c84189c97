package repository

import (
	"context"
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/infra/repository/converter"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	hasOverlapSQL = `SELECT EXISTS (
	SELECT 1 FROM contracts
	WHERE washing_machine_id = $1
	  AND status = 'ongoing'
	  AND start_date < $3
	  AND end_date > $2
)`

	insertContractSQL = `INSERT INTO contracts (id, user_id, washing_machine_id, start_date, end_date, status, price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	lockContractByIDSQL = `SELECT ` + converter.ContractColumns + `, wm.laundromat_id, l.owner_id
FROM contracts c
JOIN washing_machines wm ON wm.id = c.washing_machine_id
JOIN laundromats l ON l.id = wm.laundromat_id
WHERE c.id = $1
FOR UPDATE OF c`

	lockOngoingInRangeSQL = `SELECT ` + converter.ContractColumns + `
FROM contracts c
WHERE c.washing_machine_id = ANY($1::uuid[])
  AND c.status = 'ongoing'
  AND c.start_date <= $3
  AND c.end_date >= $2
ORDER BY c.start_date, c.id
FOR UPDATE`

	updateContractStatusSQL = `UPDATE contracts SET status = $2, updated_at = $3 WHERE id = $1`

	finishElapsedSQL = `UPDATE contracts SET status = 'finished', updated_at = $1
WHERE status = 'ongoing' AND end_date < $1`
)

type ContractRepository struct {
	db db.DBTX
}

func NewContractRepository(db db.DBTX) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) HasOverlap(ctx context.Context, machineID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasOverlapSQL, machineID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check contract overlap", err, infra.KindDBFailure)
	}
	return exists, nil
}

// Create inserts an ongoing contract. The exclusion constraint reports a
// concurrent overlapping insert as CONFLICT.
func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	if _, err := r.db.Exec(ctx, insertContractSQL, converter.ContractToInsertArgs(c)...); err != nil {
		return infra.WrapRepoErr("failed to create contract", err)
	}
	return nil
}

func (r *ContractRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	snap := &shared.ContractSnapshot{}
	c, err := converter.ScanContract(r.db.QueryRow(ctx, lockContractByIDSQL, id), &snap.LaundromatID, &snap.OwnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock contract", err)
	}
	snap.Contract = c
	return snap, nil
}

// LockOngoingInRange locks every ongoing contract of the machines intersecting [from, to].
func (r *ContractRepository) LockOngoingInRange(ctx context.Context, machineIDs []uuid.UUID, from, to time.Time) ([]*contract.Contract, error) {
	if len(machineIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, lockOngoingInRangeSQL, uuidStrings(machineIDs), from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock contracts in range", err)
	}
	return collectContracts(rows)
}

func (r *ContractRepository) UpdateStatus(ctx context.Context, c *contract.Contract) error {
	tag, err := r.db.Exec(ctx, updateContractStatusSQL, c.ID(), c.Status().String(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update contract status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("contract not found", nil, infra.KindNotFound)
	}
	return nil
}

// FinishElapsed marks every ongoing contract whose session ended before now as finished.
func (r *ContractRepository) FinishElapsed(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, finishElapsedSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to finish elapsed contracts", err)
	}
	return tag.RowsAffected(), nil
}

func collectContracts(rows pgx.Rows) ([]*contract.Contract, error) {
	defer rows.Close()

	var out []*contract.Contract
	for rows.Next() {
		c, err := converter.ScanContract(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract", err, infra.KindDBFailure)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contracts", err)
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
