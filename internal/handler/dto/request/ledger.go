package request

// TopUpRequest amount is in cents, at most 1,000,000€ per top-up.
type TopUpRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0,lte=100000000"`
}

type ListTransactionsQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit"`
}
