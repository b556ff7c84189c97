package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateContractRequest struct {
	WashingMachineID uuid.UUID `json:"washingMachineId" binding:"required"`
	StartDate        time.Time `json:"startDate" binding:"required"`
}

// BulkCancelRequest names a closed range of calendar days, YYYY-MM-DD.
type BulkCancelRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}
