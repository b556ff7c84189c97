//go:build unit

package contract_test

import (
	"testing"
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/slot"
	"laundromat-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cal = slot.NewCalendar(time.UTC)

func TestNewContract(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	userID, machineID := uuid.New(), uuid.New()

	t.Run("success: ongoing contract with snapshotted price", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

		c, err := contract.NewContract(cal, userID, machineID, start, ledger.MustMoney(1000), now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, contract.StatusOngoing, c.Status())
		assert.Equal(t, start, c.StartDate())
		assert.Equal(t, time.Date(2024, 1, 1, 11, 59, 59, 999_000_000, time.UTC), c.EndDate())
		assert.Equal(t, int64(1000), c.Price().Cents())
		assert.Equal(t, now, c.CreatedAt())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("error: start off the slot grid", func(t *testing.T) {
		_, err := contract.NewContract(cal, userID, machineID, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), ledger.MustMoney(1000), now)
		assert.ErrorIs(t, err, slot.ErrInvalidSlot)
	})
}

func TestContract_Transitions(t *testing.T) {
	later := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("ongoing to cancelled", func(t *testing.T) {
		c := builder.NewContractBuilder().BuildDomain()
		require.NoError(t, c.Cancel(later))
		assert.Equal(t, contract.StatusCancelled, c.Status())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("ongoing to finished", func(t *testing.T) {
		c := builder.NewContractBuilder().BuildDomain()
		require.NoError(t, c.Finish(later))
		assert.Equal(t, contract.StatusFinished, c.Status())
	})

	t.Run("terminal states do not move", func(t *testing.T) {
		for _, st := range []contract.Status{contract.StatusCancelled, contract.StatusFinished} {
			c := builder.NewContractBuilder().WithStatus(st).BuildDomain()
			assert.ErrorIs(t, c.Cancel(later), contract.ErrNotOngoing)
			assert.ErrorIs(t, c.Finish(later), contract.ErrNotOngoing)
			assert.Equal(t, st, c.Status())
		}
	})
}

func TestContract_IntersectsRange(t *testing.T) {
	c := builder.NewContractBuilder().WithStart(time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)).BuildDomain()
	jan1, _ := cal.ParseDay("2024-01-01")
	jan31, _ := cal.ParseDay("2024-01-31")
	feb1, _ := cal.ParseDay("2024-02-01")

	assert.True(t, c.IntersectsRange(jan1, cal.DayEnd(jan31)))
	assert.False(t, c.IntersectsRange(feb1, cal.DayEnd(feb1)))
	assert.False(t, c.IntersectsRange(jan1, jan31))
}

func TestParseStatus(t *testing.T) {
	st, err := contract.ParseStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, contract.StatusCancelled, st)

	_, err = contract.ParseStatus("paused")
	assert.ErrorIs(t, err, contract.ErrInvalidStatus)
}
