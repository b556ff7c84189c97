package shared

import (
	"context"
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the transaction scope handed to use cases. Passing it to another use case
// (the ledger) nests that work in the same commit.
type Tx interface {
	Machines() MachineRepository
	Contracts() ContractRepository
	Accounts() AccountRepository
	Transactions() TransactionRepository
	Reads() CommandReads
}

type CommandReads interface {
	MachineByID(ctx context.Context, id uuid.UUID) (*MachineSnapshot, error)
	LaundromatByID(ctx context.Context, id uuid.UUID) (*LaundromatSnapshot, error)
}

// MachineRepository locks washing machine rows. Holding the lock serializes
// every booking write for that machine until commit.
type MachineRepository interface {
	LockByID(ctx context.Context, id uuid.UUID) (*MachineSnapshot, error)
	LockByLaundromat(ctx context.Context, laundromatID uuid.UUID) ([]uuid.UUID, error)
}

type ContractRepository interface {
	HasOverlap(ctx context.Context, machineID uuid.UUID, start, end time.Time) (bool, error)
	Create(ctx context.Context, c *contract.Contract) error
	LockByID(ctx context.Context, id uuid.UUID) (*ContractSnapshot, error)
	LockOngoingInRange(ctx context.Context, machineIDs []uuid.UUID, from, to time.Time) ([]*contract.Contract, error)
	UpdateStatus(ctx context.Context, c *contract.Contract) error
	FinishElapsed(ctx context.Context, now time.Time) (int64, error)
}

// AccountRepository reads and writes user credit. Only the ledger uses it.
type AccountRepository interface {
	// LockByIDs locks the rows in id order and fails with NOT_FOUND when one is missing.
	LockByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]*ledger.Account, error)
	UpdateCredit(ctx context.Context, acc *ledger.Account, now time.Time) error
}

type TransactionRepository interface {
	Create(ctx context.Context, t *ledger.Transaction) error
}
