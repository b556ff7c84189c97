package errs

// Error kinds shared by the booking engine and the ledger.
// Use cases attach them with Mark; handlers match them with Is.
var (
	ErrInvalidSlot             = New("invalid slot")
	ErrNotFound                = New("not found")
	ErrConflict                = New("slot already booked")
	ErrForbidden               = New("forbidden")
	ErrInvalidState            = New("invalid state")
	ErrInvalidTransactionShape = New("invalid transaction shape")
	ErrInsufficientBalance     = New("insufficient balance")
	ErrInvalidArgument         = New("invalid argument")
)

type Kind string

const (
	KindInvalidSlot             Kind = "INVALID_SLOT"
	KindNotFound                Kind = "NOT_FOUND"
	KindConflict                Kind = "CONFLICT"
	KindForbidden               Kind = "FORBIDDEN"
	KindInvalidState            Kind = "INVALID_STATE"
	KindInvalidTransactionShape Kind = "INVALID_TRANSACTION_SHAPE"
	KindInsufficientBalance     Kind = "INSUFFICIENT_BALANCE"
	KindInvalidArgument         Kind = "INVALID_ARGUMENT"
	KindInternal                Kind = "INTERNAL"
)

var kindsBySentinel = []struct {
	sentinel error
	kind     Kind
}{
	{ErrInvalidSlot, KindInvalidSlot},
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrForbidden, KindForbidden},
	{ErrInvalidState, KindInvalidState},
	{ErrInvalidTransactionShape, KindInvalidTransactionShape},
	{ErrInsufficientBalance, KindInsufficientBalance},
	{ErrInvalidArgument, KindInvalidArgument},
}

// KindOf reports the first kind marked on err, or KindInternal.
func KindOf(err error) Kind {
	for _, k := range kindsBySentinel {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}
