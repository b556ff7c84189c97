package infra

import (
	"errors"
	"log/slog"

	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err. An explicit kind wins; otherwise the kind is
// derived from the postgres error code, falling back to DB_FAILURE.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	} else {
		k = kindFromPgError(err)
	}

	if k == KindDBFailure {
		logArgs := []any{slog.String("kind", string(k))}
		if err != nil {
			logArgs = append(logArgs, slog.String("error", err.Error()))
		}
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func kindFromPgError(err error) RepositoryErrorKind {
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	switch pgconv.PgErrorCode(err) {
	case pgconv.CodeUniqueViolation:
		return KindDuplicateKey
	case pgconv.CodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgconv.CodeExclusionViolation:
		return KindConflict
	case pgconv.CodeCheckViolation:
		return KindCheckViolated
	default:
		return KindDBFailure
	}
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)
