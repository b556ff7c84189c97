package readstore

import (
	"context"
	"time"

	"laundromat-api/internal/domain/availability"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	machineLaundromatSQL = `SELECT laundromat_id FROM washing_machines WHERE id = $1`

	countMachinesSQL = `SELECT count(wm.id)
FROM laundromats l
LEFT JOIN washing_machines wm ON wm.laundromat_id = l.id
WHERE l.id = $1
GROUP BY l.id`

	machineOccupancySQL = `SELECT washing_machine_id, start_date
FROM contracts
WHERE washing_machine_id = $1
  AND status = 'ongoing'
  AND start_date >= $2
  AND start_date < $3
ORDER BY start_date`

	laundromatOccupancySQL = `SELECT c.washing_machine_id, c.start_date
FROM contracts c
JOIN washing_machines wm ON wm.id = c.washing_machine_id
WHERE wm.laundromat_id = $1
  AND c.status = 'ongoing'
  AND c.start_date >= $2
  AND c.start_date < $3
ORDER BY c.start_date, c.washing_machine_id`
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(db db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (r *AvailabilityReadStore) MachineLaundromat(ctx context.Context, machineID uuid.UUID) (uuid.UUID, error) {
	var laundromatID uuid.UUID
	if err := r.db.QueryRow(ctx, machineLaundromatSQL, machineID).Scan(&laundromatID); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find washing machine", err)
	}
	return laundromatID, nil
}

func (r *AvailabilityReadStore) CountMachines(ctx context.Context, laundromatID uuid.UUID) (int, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countMachinesSQL, laundromatID).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count washing machines", err)
	}
	return int(n), nil
}

// MachineOccupancy lists ongoing contracts of a machine starting in [from, to).
func (r *AvailabilityReadStore) MachineOccupancy(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]availability.Occupancy, error) {
	rows, err := r.db.Query(ctx, machineOccupancySQL, machineID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load machine occupancy", err)
	}
	return collectOccupancy(rows)
}

// LaundromatOccupancy lists ongoing contracts of every machine of a laundromat starting in [from, to).
func (r *AvailabilityReadStore) LaundromatOccupancy(ctx context.Context, laundromatID uuid.UUID, from, to time.Time) ([]availability.Occupancy, error) {
	rows, err := r.db.Query(ctx, laundromatOccupancySQL, laundromatID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load laundromat occupancy", err)
	}
	return collectOccupancy(rows)
}

func collectOccupancy(rows pgx.Rows) ([]availability.Occupancy, error) {
	defer rows.Close()

	out := []availability.Occupancy{}
	for rows.Next() {
		var o availability.Occupancy
		if err := rows.Scan(&o.MachineID, &o.Start); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy", err, infra.KindDBFailure)
		}
		o.Start = o.Start.UTC()
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancy", err)
	}
	return out, nil
}
