package readstore

import (
	"context"

	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/infra/repository/converter"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	contractSnapshotSelect = `SELECT ` + converter.ContractColumns + `, wm.laundromat_id, l.owner_id
FROM contracts c
JOIN washing_machines wm ON wm.id = c.washing_machine_id
JOIN laundromats l ON l.id = wm.laundromat_id`

	listContractsByUserSQL = contractSnapshotSelect + `
WHERE c.user_id = $1
ORDER BY c.created_at DESC, c.id DESC`

	findContractSQL = contractSnapshotSelect + `
WHERE c.id = $1`
)

type ContractReadStore struct {
	db db.DBTX
}

func NewContractReadStore(db db.DBTX) *ContractReadStore {
	return &ContractReadStore{db: db}
}

func (r *ContractReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*shared.ContractSnapshot, error) {
	rows, err := r.db.Query(ctx, listContractsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contracts", err)
	}
	defer rows.Close()

	var out []*shared.ContractSnapshot
	for rows.Next() {
		snap := &shared.ContractSnapshot{}
		c, err := converter.ScanContract(rows, &snap.LaundromatID, &snap.OwnerID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan contract", err, infra.KindDBFailure)
		}
		snap.Contract = c
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contracts", err)
	}
	return out, nil
}

func (r *ContractReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	snap := &shared.ContractSnapshot{}
	c, err := converter.ScanContract(r.db.QueryRow(ctx, findContractSQL, id), &snap.LaundromatID, &snap.OwnerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find contract", err)
	}
	snap.Contract = c
	return snap, nil
}
