package queries

import (
	"context"
	"time"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/user"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type BalanceView struct {
	UserID  uuid.UUID `json:"userId"`
	Credit  int64     `json:"credit"`
	Display string    `json:"display"`
}

type TransactionDirection string

const (
	DirectionIn  TransactionDirection = "in"
	DirectionOut TransactionDirection = "out"
)

type TransactionView struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Type      string               `json:"type"`
	Amount    int64                `json:"amount"`
	From      *uuid.UUID           `json:"from,omitempty"`
	To        uuid.UUID            `json:"to"`
	Direction TransactionDirection `json:"direction"`
	CreatedAt time.Time            `json:"createdAt"`
}

type LedgerReadStore interface {
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	// ListTransactions returns the user's transactions newest first, strictly after the keyset when given.
	ListTransactions(ctx context.Context, userID uuid.UUID, after *Keyset, limit int) ([]*ledger.Transaction, error)
}

type LedgerQueries interface {
	Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*TransactionView, *Cursor, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

func (q *ledgerQueriesImpl) Balance(ctx context.Context, userID uuid.UUID) (*BalanceView, error) {
	u, err := q.store.UserByID(ctx, userID)
	if err != nil {
		return nil, shared.MarkRepoErr(err, "find user")
	}
	return &BalanceView{
		UserID:  u.ID(),
		Credit:  u.Credit().Cents(),
		Display: u.Credit().String() + "€",
	}, nil
}

func (q *ledgerQueriesImpl) ListTransactions(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var keyset *Keyset
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(errs.Wrap(err, "decode cursor"), errs.ErrInvalidArgument)
		}
		keyset = &Keyset{CreatedAt: t, ID: id}
	}

	// one extra row tells whether another page exists
	txs, err := q.store.ListTransactions(ctx, userID, keyset, limit+1)
	if err != nil {
		return nil, nil, errs.Wrap(err, "list transactions")
	}

	var next *Cursor
	if len(txs) > limit {
		txs = txs[:limit]
		last := txs[len(txs)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
	}

	out := make([]*TransactionView, 0, len(txs))
	for _, t := range txs {
		out = append(out, ToTransactionView(t, userID))
	}
	return out, next, nil
}

// ToTransactionView reports the transaction from the point of view of userID.
func ToTransactionView(t *ledger.Transaction, userID uuid.UUID) *TransactionView {
	dir := DirectionIn
	if from := t.From(); from != nil && *from == userID {
		dir = DirectionOut
	}
	return &TransactionView{
		ID:        t.ID(),
		Name:      t.Name(),
		Type:      t.Type().String(),
		Amount:    t.Amount().Cents(),
		From:      t.From(),
		To:        t.To(),
		Direction: dir,
		CreatedAt: t.CreatedAt(),
	}
}
