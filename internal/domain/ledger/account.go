package ledger

import (
	"math"

	"github.com/google/uuid"
)

// Account is the credit balance of one user as seen by the ledger.
type Account struct {
	userID uuid.UUID
	credit Money
}

func NewAccount(userID uuid.UUID, credit Money) *Account {
	return &Account{userID: userID, credit: credit}
}

func (a *Account) UserID() uuid.UUID { return a.userID }
func (a *Account) Credit() Money     { return a.credit }

// Apply moves the transaction amount between the accounts.
// from is nil for a topup. Balances are left untouched when an error is returned.
func Apply(t *Transaction, from, to *Account) error {
	if to == nil || to.userID != t.to {
		return ErrAccountMismatch
	}

	if t.from == nil {
		if from != nil {
			return ErrAccountMismatch
		}
		if overflows(to, t.amount) {
			return ErrCreditOverflow
		}
		to.credit = Money{cents: to.credit.cents + t.amount.cents}
		return nil
	}

	if from == nil || from.userID != *t.from {
		return ErrAccountMismatch
	}

	remaining := from.credit.cents - t.amount.cents
	if remaining < 0 {
		return ErrInsufficientBalance
	}
	if overflows(to, t.amount) {
		return ErrCreditOverflow
	}
	from.credit = Money{cents: remaining}
	to.credit = Money{cents: to.credit.cents + t.amount.cents}
	return nil
}

func overflows(a *Account, amount Money) bool {
	return a.credit.cents > math.MaxInt64-amount.cents
}
