package converter

import (
	"time"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/user"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const TransactionColumns = "id, name, type, amount, from_id, to_id, created_at"

func ScanTransaction(row Scanner) (*ledger.Transaction, error) {
	var (
		id        uuid.UUID
		name      string
		txType    string
		amount    int64
		from      pgtype.UUID
		to        uuid.UUID
		createdAt time.Time
	)
	if err := row.Scan(&id, &name, &txType, &amount, &from, &to, &createdAt); err != nil {
		return nil, err
	}

	t := ledger.Type(txType)
	if !t.IsValid() {
		return nil, errs.Wrapf(ledger.ErrUnknownType, "transaction %s", id)
	}
	money, err := ledger.NewMoney(amount)
	if err != nil {
		return nil, errs.Wrapf(err, "transaction %s", id)
	}
	return ledger.ReconstructTransaction(id, name, t, money, pgconv.UUIDPtrFromPgtype(from), to, createdAt), nil
}

func TransactionToInsertArgs(t *ledger.Transaction) []any {
	return []any{
		t.ID(), t.Name(), t.Type().String(), t.Amount().Cents(),
		pgconv.UUIDPtrToPgtype(t.From()), t.To(), t.CreatedAt(),
	}
}

const UserColumns = "id, email, credit, is_also_vendor, created_at, updated_at"

func ScanUser(row Scanner) (*user.User, error) {
	var (
		id           uuid.UUID
		email        string
		credit       int64
		isAlsoVendor bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &email, &credit, &isAlsoVendor, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	e, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", id)
	}
	money, err := ledger.NewMoney(credit)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", id)
	}
	return user.ReconstructUser(id, e, money, isAlsoVendor, createdAt, updatedAt), nil
}
