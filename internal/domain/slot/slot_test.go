//go:build unit

package slot_test

import (
	"testing"
	"time"

	"laundromat-api/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utc = slot.NewCalendar(time.UTC)

func TestCalendar_Validate(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		errIs error
	}{
		{name: "midnight is a slot", start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "10:00 is a slot", start: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "22:00 is the last slot", start: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)},
		{name: "odd hour", start: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC), errIs: slot.ErrInvalidSlot},
		{name: "minutes set", start: time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), errIs: slot.ErrInvalidSlot},
		{name: "seconds set", start: time.Date(2024, 1, 1, 10, 0, 1, 0, time.UTC), errIs: slot.ErrInvalidSlot},
		{name: "milliseconds set", start: time.Date(2024, 1, 1, 10, 0, 0, int(time.Millisecond), time.UTC), errIs: slot.ErrInvalidSlot},
		{name: "zero time", start: time.Time{}, errIs: slot.ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utc.Validate(tt.start)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCalendar_ValidateUsesReferenceTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	cal := slot.NewCalendar(tokyo)

	// 01:00Z is 10:00 in Tokyo.
	assert.NoError(t, cal.Validate(time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)))
	// 10:00Z is 19:00 in Tokyo.
	assert.ErrorIs(t, cal.Validate(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)), slot.ErrInvalidSlot)
}

func TestCalendar_Keys(t *testing.T) {
	at := time.Date(2024, 1, 1, 11, 59, 59, 999_000_000, time.UTC)

	assert.Equal(t, "2024-01-01", utc.DayKey(at))
	assert.Equal(t, "2024-01-01T10:00:00.000Z", utc.SlotKey(at))
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), utc.SlotStart(at))
}

func TestCalendar_SlotsOfDay(t *testing.T) {
	day, err := utc.ParseDay("2024-03-05")
	require.NoError(t, err)

	slots := utc.SlotsOfDay(day)
	require.Len(t, slots, slot.MaxSlotsPerDay)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), slots[0])
	assert.Equal(t, time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC), slots[11])

	for i, offset := range slot.Offsets() {
		assert.Equal(t, offset, utc.TimeOfDay(slots[i]))
	}
}

func TestCalendar_SlotsOfDay_SkipsMissingWallClockSlot(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	cal := slot.NewCalendar(newYork)

	// 2024-03-10 jumps from 02:00 to 03:00.
	day, err := cal.ParseDay("2024-03-10")
	require.NoError(t, err)

	slots := cal.SlotsOfDay(day)
	require.Len(t, slots, slot.MaxSlotsPerDay-1)
	for _, s := range slots {
		assert.True(t, cal.IsSlotStart(s), "offered slot %v must be bookable", s)
		assert.Equal(t, "2024-03-10", cal.DayKey(s))
		assert.NotEqual(t, 3, s.In(newYork).Hour())
	}

	// 2024-11-03 repeats 01:00, every even hour still exists once.
	day, err = cal.ParseDay("2024-11-03")
	require.NoError(t, err)
	assert.Len(t, cal.SlotsOfDay(day), slot.MaxSlotsPerDay)
}

func TestCalendar_ParseDay(t *testing.T) {
	_, err := utc.ParseDay("2024-13-40")
	assert.ErrorIs(t, err, slot.ErrInvalidDayKey)

	day, err := utc.ParseDay("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999_999_999, time.UTC), utc.DayEnd(day))
}

func TestSessionEnd(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 1, 11, 59, 59, 999_000_000, time.UTC), slot.SessionEnd(start))
}

func TestOverlaps(t *testing.T) {
	ten := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	twelve := ten.Add(2 * time.Hour)

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{name: "same session", s1: ten, e1: slot.SessionEnd(ten), s2: ten, e2: slot.SessionEnd(ten), want: true},
		{name: "back to back sessions", s1: ten, e1: slot.SessionEnd(ten), s2: twelve, e2: slot.SessionEnd(twelve), want: false},
		{name: "partial overlap", s1: ten, e1: slot.SessionEnd(ten), s2: ten.Add(time.Hour), e2: twelve.Add(time.Hour), want: true},
		{name: "disjoint", s1: ten, e1: ten.Add(time.Hour), s2: twelve, e2: twelve.Add(time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			assert.Equal(t, tt.want, slot.Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
