package readstore

import (
	"context"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	findMachineSQL = `SELECT wm.id, wm.laundromat_id, l.owner_id, l.price
FROM washing_machines wm
JOIN laundromats l ON l.id = wm.laundromat_id
WHERE wm.id = $1`

	findLaundromatSQL = `SELECT id, owner_id, price FROM laundromats WHERE id = $1`
)

// MachineReadStore serves unlocked lookups for command validation.
type MachineReadStore struct {
	db db.DBTX
}

func NewMachineReadStore(db db.DBTX) *MachineReadStore {
	return &MachineReadStore{db: db}
}

func (r *MachineReadStore) MachineByID(ctx context.Context, id uuid.UUID) (*shared.MachineSnapshot, error) {
	var (
		snap  shared.MachineSnapshot
		price int64
	)
	if err := r.db.QueryRow(ctx, findMachineSQL, id).Scan(&snap.ID, &snap.LaundromatID, &snap.OwnerID, &price); err != nil {
		return nil, infra.WrapRepoErr("failed to find washing machine", err)
	}
	money, err := ledger.NewMoney(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid laundromat price", err, infra.KindDBFailure)
	}
	snap.Price = money
	return &snap, nil
}

func (r *MachineReadStore) LaundromatByID(ctx context.Context, id uuid.UUID) (*shared.LaundromatSnapshot, error) {
	var (
		snap  shared.LaundromatSnapshot
		price int64
	)
	if err := r.db.QueryRow(ctx, findLaundromatSQL, id).Scan(&snap.ID, &snap.OwnerID, &price); err != nil {
		return nil, infra.WrapRepoErr("failed to find laundromat", err)
	}
	money, err := ledger.NewMoney(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid laundromat price", err, infra.KindDBFailure)
	}
	snap.Price = money
	return &snap, nil
}
