//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"laundromat-api/internal/handler/dto/response"
	"laundromat-api/internal/pkg/cookie"
	"laundromat-api/tests/common/authtest"
	"laundromat-api/tests/common/dbtest"
	"laundromat-api/tests/common/httptest"
	"laundromat-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	contractsURL          = "/api/contracts"
	cancelURL             = "/api/contracts/%s/cancel"
	laundromatBulkURL     = "/api/laundromats/%s/bulk-cancel"
	machineSlotsURL       = "/api/washing-machines/%s/slots?day=%s"
	laundromatCalendarURL = "/api/laundromats/%s/calendar?from=%s&to=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	owner      uuid.UUID
	laundromat uuid.UUID
	machine    uuid.UUID
}

func (s *BookingSuite) newLaundromat(price int64) fixture {
	t := s.T()
	owner := dbtest.CreateTestUser(t, s.DB, 0)
	laundromat := dbtest.CreateTestLaundromat(t, s.DB, owner, price)
	return fixture{owner: owner, laundromat: laundromat, machine: dbtest.CreateTestMachine(t, s.DB, laundromat)}
}

// slotAt is a slot start two days ahead, away from the day boundary.
func slotAt(hour int) time.Time {
	d := time.Now().UTC().AddDate(0, 0, 2)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func bookingBody(machine uuid.UUID, start time.Time) map[string]any {
	return map[string]any{
		"washingMachineId": machine.String(),
		"startDate":        start.Format(time.RFC3339),
	}
}

// =============================================================================
// TestCreate
// =============================================================================

func (s *BookingSuite) TestCreate() {
	s.Run("Normal case: booking pays the owner and takes the slot", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		user := dbtest.CreateTestUser(t, s.DB, 2500)
		token := s.jwt.GenerateToken(t, user)
		start := slotAt(10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, start), token)

		var created response.ContractResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "ongoing", created.Status)
		require.Equal(t, f.laundromat, created.LaundromatID)
		require.True(t, start.Equal(created.StartDate))
		require.True(t, start.Add(2*time.Hour).Equal(created.EndDate))

		require.Equal(t, int64(1500), dbtest.Credit(t, s.DB, user))
		require.Equal(t, int64(1000), dbtest.Credit(t, s.DB, f.owner))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "balance_transactions"))

		day := start.Format("2006-01-02")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(machineSlotsURL, f.machine, day), nil, token)
		var slots []response.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
		for _, sl := range slots {
			require.False(t, sl.Start.Equal(start), "booked slot must not be offered")
		}
	})

	s.Run("Normal case: owners book their own machines for free", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		token := s.jwt.GenerateToken(t, f.owner)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(12)), token)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		require.Equal(t, int64(0), dbtest.Credit(t, s.DB, f.owner))
		require.Zero(t, dbtest.CountRows(t, s.DB, "balance_transactions"))
	})

	s.Run("Error case: insufficient balance writes nothing", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		user := dbtest.CreateTestUser(t, s.DB, 999)
		token := s.jwt.GenerateToken(t, user)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(10)), token)

		httptest.AssertErrorResponse(t, w, http.StatusPaymentRequired, "")
		require.Equal(t, int64(999), dbtest.Credit(t, s.DB, user))
		require.Equal(t, int64(0), dbtest.Credit(t, s.DB, f.owner))
		require.Zero(t, dbtest.CountRows(t, s.DB, "contracts"))
		require.Zero(t, dbtest.CountRows(t, s.DB, "balance_transactions"))
	})

	s.Run("Error case: start off a slot boundary", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		user := dbtest.CreateTestUser(t, s.DB, 5000)
		token := s.jwt.GenerateToken(t, user)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(10).Add(30*time.Minute)), token)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "slot")
		require.Zero(t, dbtest.CountRows(t, s.DB, "contracts"))
	})

	s.Run("Error case: expired token", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		user := dbtest.CreateTestUser(t, s.DB, 5000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(10)), s.jwt.CreateExpiredToken(t, user))

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: access_token cookie authenticates the request", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		user := dbtest.CreateTestUser(t, s.DB, 5000)
		session := &http.Cookie{Name: cookie.AccessTokenCookieName, Value: s.jwt.GenerateToken(t, user)}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(14)), []*http.Cookie{session}, "")

		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		var created response.ContractResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, user, created.UserID)
		require.Equal(t, int64(4000), dbtest.Credit(t, s.DB, user))
	})

	s.Run("Error case: expired cookie is not rescued by a valid bearer token", func() {
		t := s.T()
		f := s.newLaundromat(1000)
		user := dbtest.CreateTestUser(t, s.DB, 5000)
		expired := &http.Cookie{Name: cookie.AccessTokenCookieName, Value: s.jwt.CreateExpiredToken(t, user)}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(14)), []*http.Cookie{expired}, s.jwt.GenerateToken(t, user))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Zero(t, dbtest.CountRows(t, s.DB, "contracts"))
	})
}

// =============================================================================
// TestConcurrentCreate - one winner per slot
// =============================================================================

func (s *BookingSuite) TestConcurrentCreate() {
	s.Run("Concurrent bookings of one slot: exactly one succeeds", func() {
		t := s.T()
		const bookers = 8
		f := s.newLaundromat(500)
		start := slotAt(14)

		users := make([]uuid.UUID, bookers)
		tokens := make([]string, bookers)
		for i := range users {
			users[i] = dbtest.CreateTestUser(t, s.DB, 1000)
			tokens[i] = s.jwt.GenerateToken(t, users[i])
		}

		codes := make([]int, bookers)
		var wg sync.WaitGroup
		for i := range bookers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, start), tokens[i])
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		var created, conflicts int
		var charged int64
		for i, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
				charged += 1000 - dbtest.Credit(t, s.DB, users[i])
			case http.StatusConflict:
				conflicts++
				require.Equal(t, int64(1000), dbtest.Credit(t, s.DB, users[i]))
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, 1, created)
		require.Equal(t, bookers-1, conflicts)
		require.Equal(t, int64(500), charged)
		require.Equal(t, int64(500), dbtest.Credit(t, s.DB, f.owner))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "contracts"))
	})
}

// =============================================================================
// TestCancel
// =============================================================================

func (s *BookingSuite) TestCancel() {
	s.Run("Normal case: cancel refunds and frees the slot", func() {
		t := s.T()
		f := s.newLaundromat(700)
		user := dbtest.CreateTestUser(t, s.DB, 1000)
		token := s.jwt.GenerateToken(t, user)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(8)), token)
		var created response.ContractResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		var cancelled response.ContractResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
		require.Equal(t, int64(1000), dbtest.Credit(t, s.DB, user))
		require.Equal(t, int64(0), dbtest.Credit(t, s.DB, f.owner))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "balance_transactions"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "cancelled")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(8)), token)
		require.Equal(t, http.StatusCreated, w.Code, "the slot must be bookable again")
	})

	s.Run("Error case: someone else's booking", func() {
		t := s.T()
		f := s.newLaundromat(0)
		user := dbtest.CreateTestUser(t, s.DB, 0)
		other := dbtest.CreateTestUser(t, s.DB, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(8)), s.jwt.GenerateToken(t, user))
		var created response.ContractResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(cancelURL, created.ID), nil, s.jwt.GenerateToken(t, other))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

// =============================================================================
// TestBulkCancel
// =============================================================================

func (s *BookingSuite) TestBulkCancel() {
	s.Run("Normal case: owner cancels a laundromat for a day", func() {
		t := s.T()
		f := s.newLaundromat(300)
		second := dbtest.CreateTestMachine(t, s.DB, f.laundromat)
		user := dbtest.CreateTestUser(t, s.DB, 1000)
		token := s.jwt.GenerateToken(t, user)

		for _, b := range []map[string]any{
			bookingBody(f.machine, slotAt(10)),
			bookingBody(second, slotAt(10)),
			bookingBody(second, slotAt(16)),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, b, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}
		require.Equal(t, int64(100), dbtest.Credit(t, s.DB, user))

		day := slotAt(0).Format("2006-01-02")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(laundromatCalendarURL, f.laundromat, day, day), nil, token)
		var days []response.DayResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &days)
		require.Equal(t, []response.DayResponse{{Day: day, Status: "partially_booked"}}, days)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(laundromatBulkURL, f.laundromat),
			map[string]any{"from": day, "to": day}, s.jwt.GenerateToken(t, f.owner))
		var res response.BulkCancelResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.CancelledIDs, 3)
		require.Equal(t, int64(1000), dbtest.Credit(t, s.DB, user))
		require.Equal(t, int64(0), dbtest.Credit(t, s.DB, f.owner))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(laundromatCalendarURL, f.laundromat, day, day), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &days)
		require.Equal(t, "not_booked", days[0].Status)
	})

	s.Run("Error case: only the owner may bulk cancel", func() {
		t := s.T()
		f := s.newLaundromat(300)
		user := dbtest.CreateTestUser(t, s.DB, 1000)
		token := s.jwt.GenerateToken(t, user)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, contractsURL, bookingBody(f.machine, slotAt(10)), token)
		require.Equal(t, http.StatusCreated, w.Code)

		day := slotAt(0).Format("2006-01-02")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(laundromatBulkURL, f.laundromat),
			map[string]any{"from": day, "to": day}, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
		require.Equal(t, int64(700), dbtest.Credit(t, s.DB, user))
	})
}
