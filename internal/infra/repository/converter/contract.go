package converter

import (
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// ContractColumns lists contract columns in scan order. Queries alias contracts as c.
const ContractColumns = "c.id, c.user_id, c.washing_machine_id, c.start_date, c.end_date, c.status, c.price, c.created_at, c.updated_at"

type ContractRow struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	WashingMachineID uuid.UUID
	StartDate        time.Time
	EndDate          time.Time
	Status           string
	Price            int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (r *ContractRow) targets() []any {
	return []any{
		&r.ID, &r.UserID, &r.WashingMachineID,
		&r.StartDate, &r.EndDate, &r.Status, &r.Price,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

// ScanContract scans ContractColumns followed by any extra destinations.
func ScanContract(row Scanner, extra ...any) (*contract.Contract, error) {
	var r ContractRow
	if err := row.Scan(append(r.targets(), extra...)...); err != nil {
		return nil, err
	}
	return ContractToDomain(r)
}

func ContractToDomain(r ContractRow) (*contract.Contract, error) {
	status, err := contract.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "contract %s", r.ID)
	}
	price, err := ledger.NewMoney(r.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "contract %s", r.ID)
	}
	return contract.ReconstructContract(
		r.ID, r.UserID, r.WashingMachineID,
		r.StartDate.UTC(), r.EndDate.UTC(),
		status, price,
		r.CreatedAt, r.UpdatedAt,
	), nil
}

// ContractToInsertArgs matches the column order of ContractColumns.
func ContractToInsertArgs(c *contract.Contract) []any {
	return []any{
		c.ID(), c.UserID(), c.WashingMachineID(),
		c.StartDate(), c.EndDate(), c.Status().String(), c.Price().Cents(),
		c.CreatedAt(), c.UpdatedAt(),
	}
}
