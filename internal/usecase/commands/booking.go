package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/notification"
	"laundromat-api/internal/domain/slot"
	"laundromat-api/internal/pkg/clock"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// notifyTimeout bounds the delivery of one batch of post-commit notifications.
const notifyTimeout = 10 * time.Second

var (
	ErrBulkTargetRequired = errs.New("exactly one of washing machine or laundromat is required")
	ErrBulkRangeInverted  = errs.New("bulk cancel range start is after its end")
)

type CreateContractParams struct {
	UserID           uuid.UUID
	WashingMachineID uuid.UUID
	StartDate        time.Time
}

// BulkCancelTarget selects either one washing machine or every machine of a laundromat.
type BulkCancelTarget struct {
	WashingMachineID *uuid.UUID
	LaundromatID     *uuid.UUID
}

type BulkCancelParams struct {
	Target      BulkCancelTarget
	From        time.Time
	To          time.Time
	RequesterID uuid.UUID
}

type BulkCancelResult struct {
	Cancelled []*contract.Contract
}

func (r *BulkCancelResult) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Cancelled))
	for _, c := range r.Cancelled {
		ids = append(ids, c.ID())
	}
	return ids
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateContractParams) (*contract.Contract, error)
	Cancel(ctx context.Context, contractID, requesterID uuid.UUID) (*contract.Contract, error)
	// BulkCancel cancels and refunds every ongoing contract of the target in
	// [From, To]. Either all of them are cancelled or none is.
	BulkCancel(ctx context.Context, params BulkCancelParams) (*BulkCancelResult, error)
	FinishElapsed(ctx context.Context) (int64, error)
	// WaitDeliveries blocks until pending notifications are delivered or ctx is done.
	WaitDeliveries(ctx context.Context) error
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	ledger      LedgerCommands
	notifier    shared.Notifier
	invalidator shared.AvailabilityInvalidator
	cal         slot.Calendar
	clock       clock.Clock

	deliveries sync.WaitGroup
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	ledger LedgerCommands,
	notifier shared.Notifier,
	invalidator shared.AvailabilityInvalidator,
	cal slot.Calendar,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:         uow,
		ledger:      ledger,
		notifier:    notifier,
		invalidator: invalidator,
		cal:         cal,
		clock:       clk,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, params CreateContractParams) (*contract.Contract, error) {
	if err := uc.cal.Validate(params.StartDate); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSlot)
	}

	var (
		created *contract.Contract
		machine *shared.MachineSnapshot
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, err := tx.Machines().LockByID(ctx, params.WashingMachineID)
		if err != nil {
			return shared.MarkRepoErr(err, "lock washing machine")
		}

		c, err := contract.NewContract(uc.cal, params.UserID, m.ID, params.StartDate, m.Price, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidSlot)
		}

		overlap, err := tx.Contracts().HasOverlap(ctx, m.ID, c.StartDate(), c.EndDate())
		if err != nil {
			return errs.Wrap(err, "check overlap")
		}
		if overlap {
			return errs.Mark(errs.Newf("washing machine %s is already booked at %s", m.ID, uc.cal.SlotKey(c.StartDate())), errs.ErrConflict)
		}

		if err := uc.charge(ctx, tx, params.UserID, m.OwnerID, m.Price); err != nil {
			return err
		}

		if err := tx.Contracts().Create(ctx, c); err != nil {
			return shared.MarkRepoErr(err, "create contract")
		}
		created, machine = c, m
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	events := []notification.Event{
		notification.BookingConfirmed(created.UserID(), machine.ID, created.StartDate(), now),
	}
	if machine.OwnerID != created.UserID() {
		events = append(events, notification.MachineBooked(machine.OwnerID, machine.ID, created.StartDate(), now))
	}
	uc.afterCommit(ctx, []slotRef{{machine.ID, machine.LaundromatID, created.StartDate()}}, events)

	return created, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, contractID, requesterID uuid.UUID) (*contract.Contract, error) {
	var snap *shared.ContractSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Contracts().LockByID(ctx, contractID)
		if err != nil {
			return shared.MarkRepoErr(err, "lock contract")
		}
		c := s.Contract

		if c.UserID() != requesterID {
			return errs.Mark(errs.Newf("user %s does not own contract %s", requesterID, c.ID()), errs.ErrForbidden)
		}
		if !c.IsOngoing() {
			return errs.Mark(errs.Newf("contract %s is %s", c.ID(), c.Status()), errs.ErrInvalidState)
		}

		if err := uc.cancelIn(ctx, tx, s); err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := snap.Contract
	uc.afterCommit(ctx,
		[]slotRef{{c.WashingMachineID(), snap.LaundromatID, c.StartDate()}},
		[]notification.Event{notification.BookingCancelled(c.UserID(), c.WashingMachineID(), c.StartDate(), uc.clock.Now())},
	)
	return c, nil
}

func (uc *bookingUseCaseImpl) BulkCancel(ctx context.Context, params BulkCancelParams) (*BulkCancelResult, error) {
	if (params.Target.WashingMachineID == nil) == (params.Target.LaundromatID == nil) {
		return nil, errs.Mark(ErrBulkTargetRequired, errs.ErrInvalidArgument)
	}
	if params.From.After(params.To) {
		return nil, errs.Mark(ErrBulkRangeInverted, errs.ErrInvalidArgument)
	}

	var (
		cancelled    []*contract.Contract
		laundromatID uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled = nil

		var (
			ownerID    uuid.UUID
			machineIDs []uuid.UUID
		)
		if id := params.Target.WashingMachineID; id != nil {
			m, err := tx.Machines().LockByID(ctx, *id)
			if err != nil {
				return shared.MarkRepoErr(err, "lock washing machine")
			}
			ownerID, laundromatID = m.OwnerID, m.LaundromatID
			machineIDs = []uuid.UUID{m.ID}
		} else {
			l, err := tx.Reads().LaundromatByID(ctx, *params.Target.LaundromatID)
			if err != nil {
				return shared.MarkRepoErr(err, "find laundromat")
			}
			ownerID, laundromatID = l.OwnerID, l.ID
		}

		if ownerID != params.RequesterID {
			return errs.Mark(errs.Newf("user %s does not own laundromat %s", params.RequesterID, laundromatID), errs.ErrForbidden)
		}

		if machineIDs == nil {
			ids, err := tx.Machines().LockByLaundromat(ctx, laundromatID)
			if err != nil {
				return shared.MarkRepoErr(err, "lock washing machines")
			}
			machineIDs = ids
		}

		contracts, err := tx.Contracts().LockOngoingInRange(ctx, machineIDs, params.From, params.To)
		if err != nil {
			return shared.MarkRepoErr(err, "lock contracts")
		}

		for _, c := range contracts {
			s := &shared.ContractSnapshot{Contract: c, LaundromatID: laundromatID, OwnerID: ownerID}
			if err := uc.cancelIn(ctx, tx, s); err != nil {
				return errs.Wrapf(err, "cancel contract %s", c.ID())
			}
			cancelled = append(cancelled, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	refs := make([]slotRef, 0, len(cancelled))
	events := make([]notification.Event, 0, len(cancelled))
	for _, c := range cancelled {
		refs = append(refs, slotRef{c.WashingMachineID(), laundromatID, c.StartDate()})
		events = append(events, notification.BookingCancelledByOwner(c.UserID(), c.WashingMachineID(), c.StartDate(), now))
	}
	uc.afterCommit(ctx, refs, events)

	return &BulkCancelResult{Cancelled: cancelled}, nil
}

func (uc *bookingUseCaseImpl) FinishElapsed(ctx context.Context) (int64, error) {
	var finished int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Contracts().FinishElapsed(ctx, uc.clock.Now())
		if err != nil {
			return shared.MarkRepoErr(err, "finish elapsed contracts")
		}
		finished = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return finished, nil
}

// charge pays the laundromat owner for a booking. Owners book their own
// machines for free; a free machine still requires an existing user.
func (uc *bookingUseCaseImpl) charge(ctx context.Context, tx shared.Tx, userID, ownerID uuid.UUID, price ledger.Money) error {
	if userID == ownerID || price.IsZero() {
		if _, err := tx.Accounts().LockByIDs(ctx, userID); err != nil {
			return shared.MarkRepoErr(err, "lock booking user")
		}
		return nil
	}
	if _, err := uc.ledger.Finalize(ctx, tx, ledger.Payment(userID, ownerID, price)); err != nil {
		return errs.Wrap(err, "pay booking")
	}
	return nil
}

// cancelIn refunds the booking user and marks the contract cancelled inside tx.
func (uc *bookingUseCaseImpl) cancelIn(ctx context.Context, tx shared.Tx, s *shared.ContractSnapshot) error {
	c := s.Contract
	if c.UserID() != s.OwnerID && !c.Price().IsZero() {
		if _, err := uc.ledger.Finalize(ctx, tx, ledger.Refund(s.OwnerID, c.UserID(), c.Price())); err != nil {
			return errs.Wrap(err, "refund booking")
		}
	}

	if err := c.Cancel(uc.clock.Now()); err != nil {
		if errors.Is(err, contract.ErrNotOngoing) {
			return errs.Mark(err, errs.ErrInvalidState)
		}
		return err
	}
	if err := tx.Contracts().UpdateStatus(ctx, c); err != nil {
		return shared.MarkRepoErr(err, "update contract status")
	}
	return nil
}

type slotRef struct {
	machineID    uuid.UUID
	laundromatID uuid.UUID
	start        time.Time
}

// afterCommit drops cached availability and hands notifications off to a
// background delivery. Both are best effort: the booking is already committed.
func (uc *bookingUseCaseImpl) afterCommit(ctx context.Context, refs []slotRef, events []notification.Event) {
	ctx = context.WithoutCancel(ctx)

	if uc.invalidator != nil {
		type dayRef struct {
			machineID uuid.UUID
			day       string
		}
		seen := make(map[dayRef]struct{}, len(refs))
		for _, r := range refs {
			key := dayRef{r.machineID, uc.cal.DayKey(r.start)}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if err := uc.invalidator.Invalidate(ctx, r.machineID, r.laundromatID, key.day); err != nil {
				slog.Warn("failed to invalidate availability cache",
					"washing_machine_id", r.machineID.String(),
					"error", err.Error())
			}
		}
	}

	if uc.notifier == nil || len(events) == 0 {
		return
	}
	uc.deliveries.Add(1)
	go func() {
		defer uc.deliveries.Done()
		ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
		defer cancel()
		if err := uc.notifier.Notify(ctx, events...); err != nil {
			slog.Warn("failed to deliver notifications",
				"count", len(events),
				"error", err.Error())
		}
	}()
}

func (uc *bookingUseCaseImpl) WaitDeliveries(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.deliveries.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
