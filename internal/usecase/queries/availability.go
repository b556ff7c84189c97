package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundromat-api/internal/domain/availability"
	"laundromat-api/internal/domain/slot"
	"laundromat-api/internal/pkg/clock"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CacheScope string

const (
	ScopeMachine    CacheScope = "machine"
	ScopeLaundromat CacheScope = "laundromat"
)

type AvailabilityReadStore interface {
	// MachineLaundromat returns the laundromat of a machine, NOT_FOUND when absent.
	MachineLaundromat(ctx context.Context, machineID uuid.UUID) (uuid.UUID, error)
	// CountMachines returns the machine count of a laundromat, NOT_FOUND when absent.
	CountMachines(ctx context.Context, laundromatID uuid.UUID) (int, error)
	MachineOccupancy(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]availability.Occupancy, error)
	LaundromatOccupancy(ctx context.Context, laundromatID uuid.UUID, from, to time.Time) ([]availability.Occupancy, error)
}

// AvailabilityCache keeps the occupancy of one day of a machine or laundromat.
type AvailabilityCache interface {
	Get(ctx context.Context, scope CacheScope, id uuid.UUID, dayKey string) ([]availability.Occupancy, bool, error)
	Set(ctx context.Context, scope CacheScope, id uuid.UUID, dayKey string, occupancy []availability.Occupancy) error
}

type AvailabilityQueries interface {
	MachineCalendar(ctx context.Context, machineID uuid.UUID, fromDay, toDay string) ([]availability.DayView, error)
	LaundromatCalendar(ctx context.Context, laundromatID uuid.UUID, fromDay, toDay string) ([]availability.DayView, error)
	MachineHours(ctx context.Context, machineID uuid.UUID, day string) ([]availability.SlotView, error)
	LaundromatHours(ctx context.Context, laundromatID uuid.UUID, day string) ([]availability.SlotView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	cache AvailabilityCache
	cal   slot.Calendar
	clock clock.Clock
}

// NewAvailabilityQueries builds the read side of availability. cache may be nil.
func NewAvailabilityQueries(store AvailabilityReadStore, cache AvailabilityCache, cal slot.Calendar, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, cache: cache, cal: cal, clock: clk}
}

func (q *availabilityQueriesImpl) MachineCalendar(ctx context.Context, machineID uuid.UUID, fromDay, toDay string) ([]availability.DayView, error) {
	from, to, err := q.dayRange(fromDay, toDay)
	if err != nil {
		return nil, err
	}
	if _, err := q.store.MachineLaundromat(ctx, machineID); err != nil {
		return nil, shared.MarkRepoErr(err, "find washing machine")
	}

	occ, err := q.store.MachineOccupancy(ctx, machineID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "load machine occupancy")
	}
	return calendar(availability.BuildMachineIndex(q.cal, occ), fromDay, toDay)
}

func (q *availabilityQueriesImpl) LaundromatCalendar(ctx context.Context, laundromatID uuid.UUID, fromDay, toDay string) ([]availability.DayView, error) {
	from, to, err := q.dayRange(fromDay, toDay)
	if err != nil {
		return nil, err
	}
	total, err := q.store.CountMachines(ctx, laundromatID)
	if err != nil {
		return nil, shared.MarkRepoErr(err, "find laundromat")
	}

	occ, err := q.store.LaundromatOccupancy(ctx, laundromatID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "load laundromat occupancy")
	}
	return calendar(availability.BuildLaundromatIndex(q.cal, occ, total), fromDay, toDay)
}

func (q *availabilityQueriesImpl) MachineHours(ctx context.Context, machineID uuid.UUID, day string) ([]availability.SlotView, error) {
	dayStart, err := q.parseDay(day)
	if err != nil {
		return nil, err
	}
	if _, err := q.store.MachineLaundromat(ctx, machineID); err != nil {
		return nil, shared.MarkRepoErr(err, "find washing machine")
	}

	occ, err := q.dayOccupancy(ctx, ScopeMachine, machineID, day, dayStart, q.store.MachineOccupancy)
	if err != nil {
		return nil, err
	}
	return availability.BuildMachineIndex(q.cal, occ).ValidHours(day, q.clock.Now())
}

func (q *availabilityQueriesImpl) LaundromatHours(ctx context.Context, laundromatID uuid.UUID, day string) ([]availability.SlotView, error) {
	dayStart, err := q.parseDay(day)
	if err != nil {
		return nil, err
	}
	total, err := q.store.CountMachines(ctx, laundromatID)
	if err != nil {
		return nil, shared.MarkRepoErr(err, "find laundromat")
	}
	if total == 0 {
		return []availability.SlotView{}, nil
	}

	occ, err := q.dayOccupancy(ctx, ScopeLaundromat, laundromatID, day, dayStart, q.store.LaundromatOccupancy)
	if err != nil {
		return nil, err
	}
	return availability.BuildLaundromatIndex(q.cal, occ, total).ValidHours(day, q.clock.Now())
}

type occupancyLoader func(ctx context.Context, id uuid.UUID, from, to time.Time) ([]availability.Occupancy, error)

// dayOccupancy reads through the cache. Cache failures degrade to the store.
func (q *availabilityQueriesImpl) dayOccupancy(ctx context.Context, scope CacheScope, id uuid.UUID, day string, dayStart time.Time, load occupancyLoader) ([]availability.Occupancy, error) {
	if q.cache != nil {
		occ, ok, err := q.cache.Get(ctx, scope, id, day)
		switch {
		case err != nil:
			slog.Warn("availability cache read failed", "scope", string(scope), "id", id.String(), "error", err.Error())
		case ok:
			return occ, nil
		}
	}

	occ, err := load(ctx, id, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Wrap(err, "load occupancy")
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, scope, id, day, occ); err != nil {
			slog.Warn("availability cache write failed", "scope", string(scope), "id", id.String(), "error", err.Error())
		}
	}
	return occ, nil
}

func (q *availabilityQueriesImpl) parseDay(day string) (time.Time, error) {
	d, err := q.cal.ParseDay(day)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "day %q", day), errs.ErrInvalidArgument)
	}
	return d, nil
}

// dayRange validates [fromDay, toDay] and returns it as a half-open instant range.
func (q *availabilityQueriesImpl) dayRange(fromDay, toDay string) (time.Time, time.Time, error) {
	from, err := q.parseDay(fromDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := q.parseDay(toDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, errs.Mark(availability.ErrInvalidRange, errs.ErrInvalidArgument)
	}
	if !to.Before(from.AddDate(0, 0, availability.MaxCalendarDays)) {
		return time.Time{}, time.Time{}, errs.Mark(availability.ErrRangeTooLarge, errs.ErrInvalidArgument)
	}
	return from, to.AddDate(0, 0, 1), nil
}

func calendar(idx *availability.Index, fromDay, toDay string) ([]availability.DayView, error) {
	days, err := idx.Calendar(fromDay, toDay)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidRange) || errors.Is(err, availability.ErrRangeTooLarge) {
			return nil, errs.Mark(err, errs.ErrInvalidArgument)
		}
		return nil, err
	}
	return days, nil
}
