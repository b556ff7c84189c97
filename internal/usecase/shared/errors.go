package shared

import (
	"laundromat-api/internal/infra"
	"laundromat-api/internal/pkg/errs"
)

// MarkRepoErr wraps a repository error with op and marks the kinds a caller can act on.
func MarkRepoErr(err error, op string) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, op)
	switch {
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(wrapped, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(wrapped, errs.ErrConflict)
	default:
		return wrapped
	}
}
