package api

import (
	"context"
	"net/http"

	"laundromat-api/internal/domain/availability"
	reqdto "laundromat-api/internal/handler/dto/request"
	resdto "laundromat-api/internal/handler/dto/response"
	"laundromat-api/internal/handler/httperr"
	"laundromat-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

type calendarFunc func(ctx context.Context, id uuid.UUID, fromDay, toDay string) ([]availability.DayView, error)

type slotsFunc func(ctx context.Context, id uuid.UUID, day string) ([]availability.SlotView, error)

// @Summary Washing machine calendar
// @Description Booking status of every day in [from, to], at most 62 days.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Washing machine ID"
// @Param from query string true "First day, YYYY-MM-DD"
// @Param to query string true "Last day, YYYY-MM-DD"
// @Success 200 {array} resdto.DayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /washing-machines/{id}/calendar [get]
func (h *AvailabilityHandler) MachineCalendar(c *gin.Context) {
	h.calendar(c, h.q.MachineCalendar)
}

// @Summary Laundromat calendar
// @Description A day is fully booked when every slot is taken on every machine.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Laundromat ID"
// @Param from query string true "First day, YYYY-MM-DD"
// @Param to query string true "Last day, YYYY-MM-DD"
// @Success 200 {array} resdto.DayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /laundromats/{id}/calendar [get]
func (h *AvailabilityHandler) LaundromatCalendar(c *gin.Context) {
	h.calendar(c, h.q.LaundromatCalendar)
}

// @Summary Washing machine free slots
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Washing machine ID"
// @Param day query string true "Day, YYYY-MM-DD"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /washing-machines/{id}/slots [get]
func (h *AvailabilityHandler) MachineSlots(c *gin.Context) {
	h.slots(c, h.q.MachineHours)
}

// @Summary Laundromat free slots
// @Description Slots where at least one machine is free. Partially booked slots carry the occupied and total counts.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Laundromat ID"
// @Param day query string true "Day, YYYY-MM-DD"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /laundromats/{id}/slots [get]
func (h *AvailabilityHandler) LaundromatSlots(c *gin.Context) {
	h.slots(c, h.q.LaundromatHours)
}

func (h *AvailabilityHandler) calendar(c *gin.Context, load calendarFunc) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "from and to are required", nil)
		return
	}
	days, err := load(c.Request.Context(), id, query.From, query.To)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromDayViews(days)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AvailabilityHandler) slots(c *gin.Context, load slotsFunc) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var query reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "day is required", nil)
		return
	}
	slots, err := load(c.Request.Context(), id, query.Day)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromSlotViews(slots)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
