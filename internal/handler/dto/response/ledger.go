package response

import (
	"time"

	"laundromat-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BalanceResponse struct {
	UserID  uuid.UUID `json:"userId"`
	Credit  int64     `json:"credit"`
	Display string    `json:"display"`
}

type TransactionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Amount    int64      `json:"amount"`
	From      *uuid.UUID `json:"from,omitempty"`
	To        uuid.UUID  `json:"to"`
	Direction string     `json:"direction"`
	CreatedAt time.Time  `json:"createdAt"`
}

type TransactionPageResponse struct {
	Items []*TransactionResponse `json:"items"`
	Next  string                 `json:"next,omitempty"`
}

func FromBalanceView(v *queries.BalanceView) (*BalanceResponse, error) {
	res := &BalanceResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromTransactionView(v *queries.TransactionView) (*TransactionResponse, error) {
	res := &TransactionResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromTransactionPage(vs []*queries.TransactionView, next *queries.Cursor) (*TransactionPageResponse, error) {
	items := make([]*TransactionResponse, 0, len(vs))
	if err := copier.Copy(&items, &vs); err != nil {
		return nil, err
	}
	page := &TransactionPageResponse{Items: items}
	if next != nil {
		page.Next = next.After
	}
	return page, nil
}
