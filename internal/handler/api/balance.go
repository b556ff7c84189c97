package api

import (
	"net/http"

	"laundromat-api/internal/domain/ledger"
	reqdto "laundromat-api/internal/handler/dto/request"
	resdto "laundromat-api/internal/handler/dto/response"
	"laundromat-api/internal/handler/httperr"
	"laundromat-api/internal/usecase/commands"
	"laundromat-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	cmds commands.LedgerCommands
	q    queries.LedgerQueries
}

func NewBalanceHandler(cmds commands.LedgerCommands, q queries.LedgerQueries) *BalanceHandler {
	return &BalanceHandler{cmds: cmds, q: q}
}

// @Summary My balance
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /balance [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := h.q.Balance(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromBalanceView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary My balance transactions
// @Description Newest first. Pass the returned next cursor as after to read the following page.
// @Tags balance
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size, default 20, max 200"
// @Success 200 {object} resdto.TransactionPageResponse
// @Failure 400 {object} httperr.Response
// @Router /balance/transactions [get]
func (h *BalanceHandler) Transactions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var query reqdto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var after *queries.Cursor
	if query.After != "" {
		after = &queries.Cursor{After: query.After}
	}
	views, next, err := h.q.ListTransactions(c.Request.Context(), userID, after, query.Limit)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromTransactionPage(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Top up my balance
// @Tags balance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TopUpRequest true "Amount in cents"
// @Success 201 {object} resdto.TransactionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /balance/topup [post]
func (h *BalanceHandler) TopUp(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req reqdto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	amount, err := ledger.NewMoney(req.Amount)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid amount", nil)
		return
	}

	tx, err := h.cmds.TopUp(c.Request.Context(), userID, amount)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromTransactionView(queries.ToTransactionView(tx, userID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}
