package shared

import (
	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"

	"github.com/google/uuid"
)

// Minimal snapshots for command read operations

type MachineSnapshot struct {
	ID           uuid.UUID
	LaundromatID uuid.UUID
	OwnerID      uuid.UUID
	Price        ledger.Money
}

type LaundromatSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Price   ledger.Money
}

// ContractSnapshot carries the owner of the laundromat the contract was paid to.
type ContractSnapshot struct {
	Contract     *contract.Contract
	LaundromatID uuid.UUID
	OwnerID      uuid.UUID
}
