package migrations

import (
	"embed"

	"laundromat-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Run applies every pending migration through a database/sql view of the pool.
func Run(pool *pgxpool.Pool) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errs.Wrap(err, "failed to set goose dialect")
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := goose.Up(db, "."); err != nil {
		_ = db.Close()
		return errs.Wrap(err, "failed to run migrations")
	}
	if err := db.Close(); err != nil {
		return errs.Wrap(err, "failed to close migration db")
	}
	return nil
}
