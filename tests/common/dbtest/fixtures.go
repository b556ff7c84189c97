//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, credit int64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, email, credit) VALUES ($1, $2, $3)",
		userID, userID.String()+"@example.com", credit)
	require.NoError(t, err)
	return userID
}

func CreateTestLaundromat(t *testing.T, db DBLike, ownerID uuid.UUID, price int64) uuid.UUID {
	t.Helper()

	laundromatID := uuid.New()
	_, err := db.Exec(context.Background(),
		"UPDATE users SET is_also_vendor = true WHERE id = $1", ownerID)
	require.NoError(t, err)
	_, err = db.Exec(context.Background(),
		"INSERT INTO laundromats (id, owner_id, name, price) VALUES ($1, $2, $3, $4)",
		laundromatID, ownerID, "Laundromat "+laundromatID.String()[:8], price)
	require.NoError(t, err)
	return laundromatID
}

func CreateTestMachine(t *testing.T, db DBLike, laundromatID uuid.UUID) uuid.UUID {
	t.Helper()

	machineID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO washing_machines (id, laundromat_id, name) VALUES ($1, $2, $3)",
		machineID, laundromatID, "Machine "+machineID.String()[:8])
	require.NoError(t, err)
	return machineID
}

func Credit(t *testing.T, db DBLike, userID uuid.UUID) int64 {
	t.Helper()

	var credit int64
	err := db.QueryRow(context.Background(), "SELECT credit FROM users WHERE id = $1", userID).Scan(&credit)
	require.NoError(t, err)
	return credit
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except goose bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
