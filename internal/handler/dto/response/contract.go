package response

import (
	"time"

	"laundromat-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ContractResponse struct {
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

type BulkCancelResponse struct {
	CancelledIDs []uuid.UUID `json:"cancelledIds"`
}

func FromContractView(v *queries.ContractView) (*ContractResponse, error) {
	res := &ContractResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromContractViews(vs []*queries.ContractView) ([]*ContractResponse, error) {
	res := make([]*ContractResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, err
	}
	return res, nil
}
