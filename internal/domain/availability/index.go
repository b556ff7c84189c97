package availability

import (
	"errors"
	"slices"
	"time"

	"laundromat-api/internal/domain/slot"

	"github.com/google/uuid"
)

// MaxCalendarDays bounds a single calendar request.
const MaxCalendarDays = 62

var (
	ErrInvalidRange  = errors.New("from must not be after to")
	ErrRangeTooLarge = errors.New("calendar range too large")
)

type DayStatus string

const (
	NotBooked       DayStatus = "not_booked"
	PartiallyBooked DayStatus = "partially_booked"
	FullyBooked     DayStatus = "fully_booked"
)

// SlotView is one bookable slot of a day.
type SlotView struct {
	Start           time.Time
	Key             string
	Occupied        int
	Total           int
	PartiallyBooked bool
}

type DayView struct {
	Day    string
	Status DayStatus
}

// Occupant is anything that holds a machine from its start date.
// *contract.Contract and Occupancy satisfy it.
type Occupant interface {
	WashingMachineID() uuid.UUID
	StartDate() time.Time
	IsOngoing() bool
}

// Occupancy is the minimal read model of an ongoing contract.
type Occupancy struct {
	MachineID uuid.UUID `json:"machineId"`
	Start     time.Time `json:"start"`
}

func (o Occupancy) WashingMachineID() uuid.UUID { return o.MachineID }
func (o Occupancy) StartDate() time.Time        { return o.Start }
func (o Occupancy) IsOngoing() bool             { return true }

// Index maps dayKey -> slotKey -> machines occupying that slot.
// A single machine is an index with one machine in total.
type Index struct {
	cal   slot.Calendar
	total int
	days  map[string]map[string][]uuid.UUID
}

// BuildMachineIndex indexes the contracts of one washing machine.
func BuildMachineIndex[T Occupant](cal slot.Calendar, contracts []T) *Index {
	return build(cal, contracts, 1)
}

// BuildLaundromatIndex indexes the contracts of every machine of a laundromat.
func BuildLaundromatIndex[T Occupant](cal slot.Calendar, contracts []T, totalMachines int) *Index {
	return build(cal, contracts, totalMachines)
}

func build[T Occupant](cal slot.Calendar, contracts []T, total int) *Index {
	idx := &Index{
		cal:   cal,
		total: total,
		days:  make(map[string]map[string][]uuid.UUID),
	}
	for _, c := range contracts {
		if !c.IsOngoing() {
			continue
		}
		dayKey := cal.DayKey(c.StartDate())
		slotKey := cal.SlotKey(c.StartDate())

		day, ok := idx.days[dayKey]
		if !ok {
			day = make(map[string][]uuid.UUID)
			idx.days[dayKey] = day
		}
		if !slices.Contains(day[slotKey], c.WashingMachineID()) {
			day[slotKey] = append(day[slotKey], c.WashingMachineID())
		}
	}
	return idx
}

func (i *Index) TotalMachines() int {
	return i.total
}

// Occupied returns the occupied slot keys of a day in chronological order.
func (i *Index) Occupied(dayKey string) []string {
	day := i.days[dayKey]
	keys := make([]string, 0, len(day))
	for k := range day {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MachinesAt returns the machines booked at a slot.
func (i *Index) MachinesAt(dayKey, slotKey string) []uuid.UUID {
	return slices.Clone(i.days[dayKey][slotKey])
}

func (i *Index) DayStatus(dayKey string) DayStatus {
	day, ok := i.days[dayKey]
	if !ok || len(day) == 0 {
		return NotBooked
	}
	if len(day) < i.slotsIn(dayKey) {
		return PartiallyBooked
	}
	for _, machines := range day {
		if len(machines) < i.total {
			return PartiallyBooked
		}
	}
	return FullyBooked
}

// slotsIn counts the bookable slots of a day, fewer than MaxSlotsPerDay when a
// DST transition skips one.
func (i *Index) slotsIn(dayKey string) int {
	dayStart, err := i.cal.ParseDay(dayKey)
	if err != nil {
		return slot.MaxSlotsPerDay
	}
	return len(i.cal.SlotsOfDay(dayStart))
}

// ValidHours lists the slots of a day that can still be booked at now.
// On the current day a slot starting at or before now is gone.
func (i *Index) ValidHours(dayKey string, now time.Time) ([]SlotView, error) {
	dayStart, err := i.cal.ParseDay(dayKey)
	if err != nil {
		return nil, err
	}

	today := i.cal.DayKey(now) == dayKey
	nowOfDay := i.cal.TimeOfDay(now)
	day := i.days[dayKey]

	out := make([]SlotView, 0, slot.MaxSlotsPerDay)
	for _, start := range i.cal.SlotsOfDay(dayStart) {
		if today && i.cal.TimeOfDay(start) <= nowOfDay {
			continue
		}
		key := i.cal.SlotKey(start)
		occupied := len(day[key])
		if occupied >= i.total {
			continue
		}
		out = append(out, SlotView{
			Start:           start,
			Key:             key,
			Occupied:        occupied,
			Total:           i.total,
			PartiallyBooked: occupied > 0,
		})
	}
	return out, nil
}

// Calendar returns the status of every day in [fromDay, toDay].
func (i *Index) Calendar(fromDay, toDay string) ([]DayView, error) {
	from, err := i.cal.ParseDay(fromDay)
	if err != nil {
		return nil, err
	}
	to, err := i.cal.ParseDay(toDay)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	var out []DayView
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if len(out) == MaxCalendarDays {
			return nil, ErrRangeTooLarge
		}
		key := i.cal.DayKey(d)
		out = append(out, DayView{Day: key, Status: i.DayStatus(key)})
	}
	return out, nil
}
