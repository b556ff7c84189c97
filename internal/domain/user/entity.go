package user

import (
	"time"

	"laundromat-api/internal/domain/ledger"

	"github.com/google/uuid"
)

// User is owned by the identity service; this service only reads it and
// moves its credit through the ledger.
type User struct {
	id           uuid.UUID
	email        Email
	credit       ledger.Money
	isAlsoVendor bool
	createdAt    time.Time
	updatedAt    time.Time
}

func ReconstructUser(id uuid.UUID, email Email, credit ledger.Money, isAlsoVendor bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		credit:       credit,
		isAlsoVendor: isAlsoVendor,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Credit() ledger.Money { return u.credit }
func (u *User) IsAlsoVendor() bool   { return u.isAlsoVendor }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Account is the ledger view of the user's balance.
func (u *User) Account() *ledger.Account {
	return ledger.NewAccount(u.id, u.credit)
}

// Owns reports whether the user is the owner of a laundromat.
func (u *User) Owns(ownerID uuid.UUID) bool {
	return u.id == ownerID
}
