package api

import (
	"net/http"
	"time"

	"laundromat-api/internal/domain/slot"
	reqdto "laundromat-api/internal/handler/dto/request"
	resdto "laundromat-api/internal/handler/dto/response"
	"laundromat-api/internal/handler/httperr"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/commands"
	"laundromat-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContractHandler struct {
	cmds commands.BookingCommands
	q    queries.ContractQueries
	cal  slot.Calendar
}

func NewContractHandler(cmds commands.BookingCommands, q queries.ContractQueries, cal slot.Calendar) *ContractHandler {
	return &ContractHandler{cmds: cmds, q: q, cal: cal}
}

// @Summary Book a washing machine
// @Description Book a two-hour session starting at a slot boundary. The laundromat price is paid from the user's credit.
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateContractRequest true "Booking request"
// @Success 201 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), commands.CreateContractParams{
		UserID:           userID,
		WashingMachineID: req.WashingMachineID,
		StartDate:        req.StartDate,
	})
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondContract(c, http.StatusCreated, userID, created.ID())
}

// @Summary List my contracts
// @Description Ongoing contracts first, closest to now first; then finished and cancelled ones.
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ContractResponse
// @Failure 401 {object} httperr.Response
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromContractViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get contract
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondContract(c, http.StatusOK, userID, id)
}

// @Summary Cancel contract
// @Description Cancel one of my ongoing contracts. The price is refunded by the laundromat owner.
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /contracts/{id}/cancel [post]
func (h *ContractHandler) Cancel(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Cancel(c.Request.Context(), id, userID); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondContract(c, http.StatusOK, userID, id)
}

// @Summary Bulk cancel a washing machine
// @Description Cancel and refund every ongoing contract of the machine between two days, both inclusive.
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Washing machine ID"
// @Param request body reqdto.BulkCancelRequest true "Day range"
// @Success 200 {object} resdto.BulkCancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /washing-machines/{id}/bulk-cancel [post]
func (h *ContractHandler) BulkCancelMachine(c *gin.Context) {
	h.bulkCancel(c, func(id uuid.UUID) commands.BulkCancelTarget {
		return commands.BulkCancelTarget{WashingMachineID: &id}
	})
}

// @Summary Bulk cancel a laundromat
// @Description Cancel and refund every ongoing contract of every machine of the laundromat between two days, both inclusive.
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Laundromat ID"
// @Param request body reqdto.BulkCancelRequest true "Day range"
// @Success 200 {object} resdto.BulkCancelResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /laundromats/{id}/bulk-cancel [post]
func (h *ContractHandler) BulkCancelLaundromat(c *gin.Context) {
	h.bulkCancel(c, func(id uuid.UUID) commands.BulkCancelTarget {
		return commands.BulkCancelTarget{LaundromatID: &id}
	})
}

func (h *ContractHandler) bulkCancel(c *gin.Context, target func(uuid.UUID) commands.BulkCancelTarget) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.BulkCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	from, to, err := h.dayBounds(req.From, req.To)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	result, err := h.cmds.BulkCancel(c.Request.Context(), commands.BulkCancelParams{
		Target:      target(id),
		From:        from,
		To:          to,
		RequesterID: userID,
	})
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BulkCancelResponse{CancelledIDs: result.IDs()})
}

// dayBounds turns [fromDay, toDay] into instants; to is the last instant of toDay.
func (h *ContractHandler) dayBounds(fromDay, toDay string) (time.Time, time.Time, error) {
	from, err := h.cal.ParseDay(fromDay)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(errs.Wrapf(err, "from %q", fromDay), errs.ErrInvalidArgument)
	}
	toStart, err := h.cal.ParseDay(toDay)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(errs.Wrapf(err, "to %q", toDay), errs.ErrInvalidArgument)
	}
	return from, h.cal.DayEnd(toStart), nil
}

func (h *ContractHandler) respondContract(c *gin.Context, status int, actorID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromContractView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}
