//go:build unit

package readstore

import (
	"context"
	"regexp"
	"testing"
	"time"

	"laundromat-api/internal/domain/availability"
	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/usecase/queries"
	"laundromat-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestMachineReadStore(t *testing.T) {
	machineID, laundromatID, ownerID := uuid.New(), uuid.New(), uuid.New()

	t.Run("machine carries laundromat owner and price", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(findMachineSQL)).WithArgs(machineID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "laundromat_id", "owner_id", "price"}).
				AddRow(machineID, laundromatID, ownerID, int64(1000)))

		snap, err := NewMachineReadStore(mock).MachineByID(context.Background(), machineID)

		require.NoError(t, err)
		assert.Equal(t, laundromatID, snap.LaundromatID)
		assert.Equal(t, ownerID, snap.OwnerID)
		assert.Equal(t, int64(1000), snap.Price.Cents())
	})

	t.Run("missing laundromat is not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(findLaundromatSQL)).WithArgs(laundromatID).WillReturnError(pgx.ErrNoRows)

		_, err := NewMachineReadStore(mock).LaundromatByID(context.Background(), laundromatID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("laundromat", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(findLaundromatSQL)).WithArgs(laundromatID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "price"}).
				AddRow(laundromatID, ownerID, int64(0)))

		snap, err := NewMachineReadStore(mock).LaundromatByID(context.Background(), laundromatID)

		require.NoError(t, err)
		assert.Equal(t, ownerID, snap.OwnerID)
		assert.True(t, snap.Price.IsZero())
	})
}

func TestAvailabilityReadStore(t *testing.T) {
	machineID, laundromatID := uuid.New(), uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	t.Run("machine occupancy", func(t *testing.T) {
		mock := newMockPool(t)
		start := from.Add(10 * time.Hour)
		mock.ExpectQuery(regexp.QuoteMeta(machineOccupancySQL)).WithArgs(machineID, from, to).
			WillReturnRows(pgxmock.NewRows([]string{"washing_machine_id", "start_date"}).AddRow(machineID, start))

		got, err := NewAvailabilityReadStore(mock).MachineOccupancy(context.Background(), machineID, from, to)

		require.NoError(t, err)
		want := []availability.Occupancy{{MachineID: machineID, Start: start}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("occupancy mismatch (-want +got):\n%s", diff)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty laundromat occupancy is an empty slice", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(laundromatOccupancySQL)).WithArgs(laundromatID, from, to).
			WillReturnRows(pgxmock.NewRows([]string{"washing_machine_id", "start_date"}))

		got, err := NewAvailabilityReadStore(mock).LaundromatOccupancy(context.Background(), laundromatID, from, to)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("count machines", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(countMachinesSQL)).WithArgs(laundromatID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

		n, err := NewAvailabilityReadStore(mock).CountMachines(context.Background(), laundromatID)

		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("unknown laundromat is not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(countMachinesSQL)).WithArgs(laundromatID).WillReturnError(pgx.ErrNoRows)

		_, err := NewAvailabilityReadStore(mock).CountMachines(context.Background(), laundromatID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("machine laundromat", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(machineLaundromatSQL)).WithArgs(machineID).
			WillReturnRows(pgxmock.NewRows([]string{"laundromat_id"}).AddRow(laundromatID))

		got, err := NewAvailabilityReadStore(mock).MachineLaundromat(context.Background(), machineID)

		require.NoError(t, err)
		assert.Equal(t, laundromatID, got)
	})
}

var contractSnapshotColumns = []string{
	"id", "user_id", "washing_machine_id", "start_date", "end_date",
	"status", "price", "created_at", "updated_at", "laundromat_id", "owner_id",
}

func contractSnapshotValues(c *contract.Contract, laundromatID, ownerID uuid.UUID) []any {
	return []any{
		c.ID(), c.UserID(), c.WashingMachineID(), c.StartDate(), c.EndDate(),
		c.Status().String(), c.Price().Cents(), c.CreatedAt(), c.UpdatedAt(),
		laundromatID, ownerID,
	}
}

func TestContractReadStore(t *testing.T) {
	userID, laundromatID, ownerID := uuid.New(), uuid.New(), uuid.New()
	a := builder.NewContractBuilder().With(func(b *builder.ContractBuilder) { b.UserID = userID }).BuildDomain()
	b := builder.NewContractBuilder().
		With(func(b *builder.ContractBuilder) { b.UserID = userID }).
		WithStatus(contract.StatusCancelled).
		BuildDomain()

	t.Run("list by user", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(listContractsByUserSQL)).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(contractSnapshotColumns).
				AddRow(contractSnapshotValues(a, laundromatID, ownerID)...).
				AddRow(contractSnapshotValues(b, laundromatID, ownerID)...))

		got, err := NewContractReadStore(mock).ListByUser(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, a.ID(), got[0].Contract.ID())
		assert.Equal(t, contract.StatusCancelled, got[1].Contract.Status())
		assert.Equal(t, ownerID, got[1].OwnerID)
	})

	t.Run("find by id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(findContractSQL)).WithArgs(a.ID()).
			WillReturnRows(pgxmock.NewRows(contractSnapshotColumns).
				AddRow(contractSnapshotValues(a, laundromatID, ownerID)...))

		snap, err := NewContractReadStore(mock).FindByID(context.Background(), a.ID())

		require.NoError(t, err)
		assert.Equal(t, laundromatID, snap.LaundromatID)
		assert.Equal(t, a.StartDate(), snap.Contract.StartDate())
	})

	t.Run("missing contract is not found", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(findContractSQL)).WithArgs(a.ID()).WillReturnError(pgx.ErrNoRows)

		_, err := NewContractReadStore(mock).FindByID(context.Background(), a.ID())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestLedgerReadStore(t *testing.T) {
	userID, ownerID := uuid.New(), uuid.New()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	txColumns := []string{"id", "name", "type", "amount", "from_id", "to_id", "created_at"}

	t.Run("user by id", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(findUserSQL)).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "email", "credit", "is_also_vendor", "created_at", "updated_at"}).
				AddRow(userID, "ada@example.com", int64(1250), false, now, now))

		u, err := NewLedgerReadStore(mock).UserByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, int64(1250), u.Credit().Cents())
		assert.Equal(t, "ada@example.com", u.Email().Value())
	})

	t.Run("first page", func(t *testing.T) {
		mock := newMockPool(t)
		topupID, paymentID := uuid.New(), uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(listTransactionsSQL)).WithArgs(userID, 3).
			WillReturnRows(pgxmock.NewRows(txColumns).
				AddRow(paymentID, "payment", "payment", int64(1000), userID.String(), ownerID, now).
				AddRow(topupID, "topup", "topup", int64(5000), nil, userID, now.Add(-time.Hour)))

		got, err := NewLedgerReadStore(mock).ListTransactions(context.Background(), userID, nil, 3)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ledger.TypePayment, got[0].Type())
		require.NotNil(t, got[0].From())
		assert.Equal(t, userID, *got[0].From())
		assert.Nil(t, got[1].From())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("after cursor uses keyset", func(t *testing.T) {
		mock := newMockPool(t)
		after := &queries.Keyset{CreatedAt: now, ID: uuid.New()}
		mock.ExpectQuery(regexp.QuoteMeta(listTransactionsAfterSQL)).WithArgs(userID, after.CreatedAt, after.ID, 21).
			WillReturnRows(pgxmock.NewRows(txColumns))

		got, err := NewLedgerReadStore(mock).ListTransactions(context.Background(), userID, after, 21)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown transaction type fails the scan", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta(listTransactionsSQL)).WithArgs(userID, 3).
			WillReturnRows(pgxmock.NewRows(txColumns).
				AddRow(uuid.New(), "gift", "gift", int64(1000), nil, userID, now))

		_, err := NewLedgerReadStore(mock).ListTransactions(context.Background(), userID, nil, 3)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
