package ledger

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount of euro cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// MustMoney is for constants and tests.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

// String renders whole euros without decimals ("10") and others with two ("10.50").
func (m Money) String() string {
	if m.cents%100 == 0 {
		return strconv.FormatInt(m.cents/100, 10)
	}
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
