package slot

import (
	"errors"
	"time"
)

const (
	// Interval between two consecutive slot starts.
	Interval = 2 * time.Hour
	// SessionLength is how long a booked machine stays reserved.
	SessionLength = 2 * time.Hour
	// MaxSlotsPerDay is the number of bookable slots in one day.
	MaxSlotsPerDay = 12

	intervalHours = int(Interval / time.Hour)

	DayKeyLayout  = "2006-01-02"
	SlotKeyLayout = "2006-01-02T15:04:05.000Z07:00"
)

var (
	ErrInvalidSlot   = errors.New("start date is not a slot boundary")
	ErrInvalidDayKey = errors.New("invalid day key")
)

// Calendar discretizes instants into days and slots of a reference timezone.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

func (c Calendar) Location() *time.Location {
	return c.loc
}

// Offsets returns the start of every slot as a duration after midnight.
func Offsets() []time.Duration {
	out := make([]time.Duration, MaxSlotsPerDay)
	for i := range out {
		out[i] = time.Duration(i) * Interval
	}
	return out
}

func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.loc).Format(DayKeyLayout)
}

// SlotKey identifies the slot containing t as a UTC instant with millisecond precision.
func (c Calendar) SlotKey(t time.Time) string {
	return c.SlotStart(t).UTC().Format(SlotKeyLayout)
}

// SlotStart floors t to the start of its slot.
func (c Calendar) SlotStart(t time.Time) time.Time {
	local := t.In(c.loc)
	hour := local.Hour() - local.Hour()%intervalHours
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, c.loc)
}

func (c Calendar) IsSlotStart(t time.Time) bool {
	local := t.In(c.loc)
	return local.Hour()%intervalHours == 0 &&
		local.Minute() == 0 &&
		local.Second() == 0 &&
		local.Nanosecond() == 0
}

func (c Calendar) Validate(t time.Time) error {
	if t.IsZero() || !c.IsSlotStart(t) {
		return ErrInvalidSlot
	}
	return nil
}

// ParseDay resolves a YYYY-MM-DD key to midnight of that day.
func (c Calendar) ParseDay(dayKey string) (time.Time, error) {
	d, err := time.ParseInLocation(DayKeyLayout, dayKey, c.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDayKey
	}
	return d, nil
}

// DayEnd is the last instant that still belongs to the day starting at dayStart.
func (c Calendar) DayEnd(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SlotsOfDay lists the slot start instants of the given day. A slot whose
// wall-clock start does not exist, skipped by a DST transition, is left out.
func (c Calendar) SlotsOfDay(dayStart time.Time) []time.Time {
	y, m, d := dayStart.In(c.loc).Date()
	out := make([]time.Time, 0, MaxSlotsPerDay)
	for i := 0; i < MaxSlotsPerDay; i++ {
		start := time.Date(y, m, d, i*intervalHours, 0, 0, 0, c.loc)
		if start.Hour() != i*intervalHours || start.Day() != d {
			continue
		}
		out = append(out, start)
	}
	return out
}

// TimeOfDay is the offset of t from midnight in the reference timezone.
func (c Calendar) TimeOfDay(t time.Time) time.Duration {
	local := t.In(c.loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	return local.Sub(midnight)
}

// SessionEnd returns the inclusive end of a session, one millisecond before the next slot.
func SessionEnd(start time.Time) time.Time {
	return start.Add(SessionLength - time.Millisecond)
}

// Overlaps reports whether [s1,e1) and [s2,e2) intersect.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
