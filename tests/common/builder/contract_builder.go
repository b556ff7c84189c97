//go:build unit || e2e

package builder

import (
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/slot"

	"github.com/google/uuid"
)

type ContractBuilder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	WashingMachineID uuid.UUID
	Start            time.Time
	Status           contract.Status
	PriceCents       int64
	CreatedAt        time.Time
}

func NewContractBuilder() *ContractBuilder {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	return &ContractBuilder{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		WashingMachineID: uuid.New(),
		Start:            time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Status:           contract.StatusOngoing,
		PriceCents:       1000,
		CreatedAt:        created,
	}
}

func (b *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(b)
	return b
}

func (b *ContractBuilder) WithStart(t time.Time) *ContractBuilder {
	b.Start = t
	return b
}

func (b *ContractBuilder) WithStatus(s contract.Status) *ContractBuilder {
	b.Status = s
	return b
}

func (b *ContractBuilder) WithMachine(id uuid.UUID) *ContractBuilder {
	b.WashingMachineID = id
	return b
}

func (b *ContractBuilder) WithUser(id uuid.UUID) *ContractBuilder {
	b.UserID = id
	return b
}

func (b *ContractBuilder) BuildDomain() *contract.Contract {
	return contract.ReconstructContract(
		b.ID,
		b.UserID,
		b.WashingMachineID,
		b.Start,
		slot.SessionEnd(b.Start),
		b.Status,
		ledger.MustMoney(b.PriceCents),
		b.CreatedAt,
		b.CreatedAt,
	)
}
