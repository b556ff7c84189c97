package contract

import (
	"errors"
	"time"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/slot"

	"github.com/google/uuid"
)

var ErrNotOngoing = errors.New("contract is not ongoing")

// Contract is a booking of one washing machine for one session.
type Contract struct {
	id               uuid.UUID
	userID           uuid.UUID
	washingMachineID uuid.UUID
	startDate        time.Time
	endDate          time.Time
	status           Status
	price            ledger.Money
	createdAt        time.Time
	updatedAt        time.Time
}

// NewContract opens an ongoing contract at a slot boundary with a price snapshot.
func NewContract(cal slot.Calendar, userID, washingMachineID uuid.UUID, start time.Time, price ledger.Money, now time.Time) (*Contract, error) {
	if err := cal.Validate(start); err != nil {
		return nil, err
	}
	return &Contract{
		id:               uuid.New(),
		userID:           userID,
		washingMachineID: washingMachineID,
		startDate:        start,
		endDate:          slot.SessionEnd(start),
		status:           StatusOngoing,
		price:            price,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructContract(
	id, userID, washingMachineID uuid.UUID,
	startDate, endDate time.Time,
	status Status,
	price ledger.Money,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:               id,
		userID:           userID,
		washingMachineID: washingMachineID,
		startDate:        startDate,
		endDate:          endDate,
		status:           status,
		price:            price,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *Contract) ID() uuid.UUID               { return c.id }
func (c *Contract) UserID() uuid.UUID           { return c.userID }
func (c *Contract) WashingMachineID() uuid.UUID { return c.washingMachineID }
func (c *Contract) StartDate() time.Time        { return c.startDate }
func (c *Contract) EndDate() time.Time          { return c.endDate }
func (c *Contract) Status() Status              { return c.status }
func (c *Contract) Price() ledger.Money         { return c.price }
func (c *Contract) CreatedAt() time.Time        { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time        { return c.updatedAt }

func (c *Contract) IsOngoing() bool {
	return c.status == StatusOngoing
}

func (c *Contract) Overlaps(start, end time.Time) bool {
	return slot.Overlaps(c.startDate, c.endDate, start, end)
}

// IntersectsRange reports whether the contract window touches the closed range [from, to].
func (c *Contract) IntersectsRange(from, to time.Time) bool {
	return !c.startDate.After(to) && !c.endDate.Before(from)
}

func (c *Contract) Cancel(now time.Time) error {
	return c.transition(StatusCancelled, now)
}

func (c *Contract) Finish(now time.Time) error {
	return c.transition(StatusFinished, now)
}

// Both terminal states are only reachable from ongoing.
func (c *Contract) transition(to Status, now time.Time) error {
	if c.status != StatusOngoing {
		return ErrNotOngoing
	}
	c.status = to
	Touch(c, now)
	return nil
}

// Touch bumps the audit timestamp. Callers invoke it on every mutation.
func Touch(c *Contract, now time.Time) {
	c.updatedAt = now
}
