package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingSource       = errors.New("payment and refund require a source account")
	ErrUnexpectedSource    = errors.New("topup must not have a source account")
	ErrMissingDestination  = errors.New("transaction requires a destination account")
	ErrSameAccount         = errors.New("source and destination must differ")
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrUnknownType         = errors.New("unknown transaction type")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountMismatch     = errors.New("account does not match transaction")
	ErrCreditOverflow      = errors.New("credit would exceed the maximum balance")
)

type Type string

const (
	TypeTopup   Type = "topup"
	TypePayment Type = "payment"
	TypeRefund  Type = "refund"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeTopup, TypePayment, TypeRefund:
		return true
	default:
		return false
	}
}

// Draft is a transaction that has not been validated or applied yet.
type Draft struct {
	Type   Type
	Amount Money
	From   *uuid.UUID
	To     uuid.UUID
}

func Topup(to uuid.UUID, amount Money) Draft {
	return Draft{Type: TypeTopup, Amount: amount, To: to}
}

func Payment(from, to uuid.UUID, amount Money) Draft {
	return Draft{Type: TypePayment, Amount: amount, From: &from, To: to}
}

func Refund(from, to uuid.UUID, amount Money) Draft {
	return Draft{Type: TypeRefund, Amount: amount, From: &from, To: to}
}

// ValidateShape enforces topup <=> no source.
func ValidateShape(d Draft) error {
	if !d.Type.IsValid() {
		return ErrUnknownType
	}
	if d.To == uuid.Nil {
		return ErrMissingDestination
	}
	if d.Amount.Cents() <= 0 {
		return ErrNonPositiveAmount
	}
	switch d.Type {
	case TypeTopup:
		if d.From != nil {
			return ErrUnexpectedSource
		}
	default:
		if d.From == nil || *d.From == uuid.Nil {
			return ErrMissingSource
		}
		if *d.From == d.To {
			return ErrSameAccount
		}
	}
	return nil
}

// DeriveName builds the human readable label stored with the transaction.
func DeriveName(d Draft) string {
	if d.From != nil {
		return fmt.Sprintf("%s€ from %s to %s", d.Amount, *d.From, d.To)
	}
	return fmt.Sprintf("%s€ to %s", d.Amount, d.To)
}

// Transaction is an append-only ledger record.
type Transaction struct {
	id        uuid.UUID
	name      string
	txType    Type
	amount    Money
	from      *uuid.UUID
	to        uuid.UUID
	createdAt time.Time
}

// NewTransaction validates the draft and freezes its derived name.
func NewTransaction(d Draft, now time.Time) (*Transaction, error) {
	if err := ValidateShape(d); err != nil {
		return nil, err
	}
	var from *uuid.UUID
	if d.From != nil {
		id := *d.From
		from = &id
	}
	return &Transaction{
		id:        uuid.New(),
		name:      DeriveName(d),
		txType:    d.Type,
		amount:    d.Amount,
		from:      from,
		to:        d.To,
		createdAt: now,
	}, nil
}

func ReconstructTransaction(id uuid.UUID, name string, txType Type, amount Money, from *uuid.UUID, to uuid.UUID, createdAt time.Time) *Transaction {
	return &Transaction{
		id:        id,
		name:      name,
		txType:    txType,
		amount:    amount,
		from:      from,
		to:        to,
		createdAt: createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) Name() string         { return t.name }
func (t *Transaction) Type() Type           { return t.txType }
func (t *Transaction) Amount() Money        { return t.amount }
func (t *Transaction) From() *uuid.UUID     { return t.from }
func (t *Transaction) To() uuid.UUID        { return t.to }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
