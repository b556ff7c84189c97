package repository

import (
	"context"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	lockMachineByIDSQL = `SELECT wm.id, wm.laundromat_id, l.owner_id, l.price
FROM washing_machines wm
JOIN laundromats l ON l.id = wm.laundromat_id
WHERE wm.id = $1
FOR UPDATE OF wm`

	lockMachinesByLaundromatSQL = `SELECT id FROM washing_machines
WHERE laundromat_id = $1
ORDER BY id
FOR UPDATE`
)

type MachineRepository struct {
	db db.DBTX
}

func NewMachineRepository(db db.DBTX) *MachineRepository {
	return &MachineRepository{db: db}
}

// LockByID locks the machine row and returns it with the pricing of its laundromat.
func (r *MachineRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.MachineSnapshot, error) {
	var (
		snap  shared.MachineSnapshot
		price int64
	)
	err := r.db.QueryRow(ctx, lockMachineByIDSQL, id).Scan(&snap.ID, &snap.LaundromatID, &snap.OwnerID, &price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock washing machine", err)
	}

	money, err := ledger.NewMoney(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid laundromat price", err, infra.KindDBFailure)
	}
	snap.Price = money
	return &snap, nil
}

func (r *MachineRepository) LockByLaundromat(ctx context.Context, laundromatID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, lockMachinesByLaundromatSQL, laundromatID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock washing machines", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan washing machine", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate washing machines", err)
	}
	return ids, nil
}
