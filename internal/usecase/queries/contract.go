package queries

import (
	"context"
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/pkg/clock"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ContractView struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	WashingMachineID uuid.UUID `json:"washingMachineId"`
	LaundromatID     uuid.UUID `json:"laundromatId"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Status           string    `json:"status"`
	PriceCents       int64     `json:"price"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ContractReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*shared.ContractSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error)
}

type ContractQueries interface {
	// ListByUser returns the user's contracts, ongoing ones first by distance to now.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ContractView, error)
	// GetByID is visible to the booking user and the laundromat owner only.
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*ContractView, error)
}

type contractQueriesImpl struct {
	store ContractReadStore
	clock clock.Clock
}

func NewContractQueries(store ContractReadStore, clk clock.Clock) ContractQueries {
	return &contractQueriesImpl{store: store, clock: clk}
}

func (q *contractQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ContractView, error) {
	snaps, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "list contracts")
	}

	byID := make(map[uuid.UUID]*shared.ContractSnapshot, len(snaps))
	contracts := make([]*contract.Contract, 0, len(snaps))
	for _, s := range snaps {
		byID[s.Contract.ID()] = s
		contracts = append(contracts, s.Contract)
	}

	sorted := contract.StatusSort(contracts, q.clock.Now())
	out := make([]*ContractView, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, ToContractView(byID[c.ID()]))
	}
	return out, nil
}

func (q *contractQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*ContractView, error) {
	snap, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.MarkRepoErr(err, "find contract")
	}
	if snap.Contract.UserID() != actorID && snap.OwnerID != actorID {
		return nil, errs.Mark(errs.Newf("user %s cannot read contract %s", actorID, id), errs.ErrForbidden)
	}
	return ToContractView(snap), nil
}

func ToContractView(s *shared.ContractSnapshot) *ContractView {
	c := s.Contract
	return &ContractView{
		ID:               c.ID(),
		UserID:           c.UserID(),
		WashingMachineID: c.WashingMachineID(),
		LaundromatID:     s.LaundromatID,
		StartDate:        c.StartDate(),
		EndDate:          c.EndDate(),
		Status:           c.Status().String(),
		PriceCents:       c.Price().Cents(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}
