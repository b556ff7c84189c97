//go:build unit

package commands

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"laundromat-api/internal/domain/contract"
	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/domain/notification"
	"laundromat-api/internal/domain/slot"
	"laundromat-api/internal/infra"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// memUoW is an in-memory unit of work. Within holds a single mutex for the
// whole callback, which stands in for the row locks, and restores the
// previous state when the callback fails.
type memUoW struct {
	mu          sync.Mutex
	state       memState
	withinCalls int

	failTransactionCreate error
}

type memLaundromat struct {
	ownerID uuid.UUID
	price   int64
}

type memContract struct {
	id        uuid.UUID
	userID    uuid.UUID
	machineID uuid.UUID
	start     time.Time
	status    contract.Status
	price     int64
	createdAt time.Time
	updatedAt time.Time
}

func (m memContract) toDomain() *contract.Contract {
	return contract.ReconstructContract(m.id, m.userID, m.machineID, m.start, slot.SessionEnd(m.start),
		m.status, ledger.MustMoney(m.price), m.createdAt, m.updatedAt)
}

type memState struct {
	users        map[uuid.UUID]int64
	laundromats  map[uuid.UUID]memLaundromat
	machines     map[uuid.UUID]uuid.UUID
	contracts    map[uuid.UUID]memContract
	transactions []*ledger.Transaction
}

func (s memState) clone() memState {
	return memState{
		users:        maps.Clone(s.users),
		laundromats:  maps.Clone(s.laundromats),
		machines:     maps.Clone(s.machines),
		contracts:    maps.Clone(s.contracts),
		transactions: slices.Clone(s.transactions),
	}
}

func newMemUoW() *memUoW {
	return &memUoW{state: memState{
		users:       map[uuid.UUID]int64{},
		laundromats: map[uuid.UUID]memLaundromat{},
		machines:    map[uuid.UUID]uuid.UUID{},
		contracts:   map[uuid.UUID]memContract{},
	}}
}

func (u *memUoW) addUser(credit int64) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := uuid.New()
	u.state.users[id] = credit
	return id
}

func (u *memUoW) addLaundromat(ownerID uuid.UUID, price int64) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := uuid.New()
	u.state.laundromats[id] = memLaundromat{ownerID: ownerID, price: price}
	return id
}

func (u *memUoW) addMachine(laundromatID uuid.UUID) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := uuid.New()
	u.state.machines[id] = laundromatID
	return id
}

func (u *memUoW) setCredit(userID uuid.UUID, credit int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.users[userID] = credit
}

func (u *memUoW) credit(userID uuid.UUID) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.users[userID]
}

func (u *memUoW) contract(id uuid.UUID) (*contract.Contract, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.state.contracts[id]
	if !ok {
		return nil, false
	}
	return c.toDomain(), true
}

func (u *memUoW) contractCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.contracts)
}

func (u *memUoW) transactions() []*ledger.Transaction {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.state.transactions)
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.withinCalls++

	snapshot := u.state.clone()
	if err := fn(ctx, &memTx{u: u}); err != nil {
		u.state = snapshot
		return err
	}
	return nil
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// memTx implements every repository of shared.Tx. Callers hold u.mu.
type memTx struct {
	u *memUoW
}

func (t *memTx) Machines() shared.MachineRepository         { return t }
func (t *memTx) Contracts() shared.ContractRepository       { return (*memContracts)(t) }
func (t *memTx) Accounts() shared.AccountRepository         { return (*memAccounts)(t) }
func (t *memTx) Transactions() shared.TransactionRepository { return (*memTransactions)(t) }
func (t *memTx) Reads() shared.CommandReads                 { return t }

func (t *memTx) LockByID(_ context.Context, id uuid.UUID) (*shared.MachineSnapshot, error) {
	return t.MachineByID(context.Background(), id)
}

func (t *memTx) LockByLaundromat(_ context.Context, laundromatID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, lid := range t.u.state.machines {
		if lid == laundromatID {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return slices.Compare(a[:], b[:]) })
	return ids, nil
}

func (t *memTx) MachineByID(_ context.Context, id uuid.UUID) (*shared.MachineSnapshot, error) {
	lid, ok := t.u.state.machines[id]
	if !ok {
		return nil, notFound("washing machine not found")
	}
	l := t.u.state.laundromats[lid]
	return &shared.MachineSnapshot{ID: id, LaundromatID: lid, OwnerID: l.ownerID, Price: ledger.MustMoney(l.price)}, nil
}

func (t *memTx) LaundromatByID(_ context.Context, id uuid.UUID) (*shared.LaundromatSnapshot, error) {
	l, ok := t.u.state.laundromats[id]
	if !ok {
		return nil, notFound("laundromat not found")
	}
	return &shared.LaundromatSnapshot{ID: id, OwnerID: l.ownerID, Price: ledger.MustMoney(l.price)}, nil
}

type memContracts memTx

func (t *memContracts) HasOverlap(_ context.Context, machineID uuid.UUID, start, end time.Time) (bool, error) {
	for _, c := range t.u.state.contracts {
		if c.machineID == machineID && c.status == contract.StatusOngoing &&
			slot.Overlaps(c.start, slot.SessionEnd(c.start), start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (t *memContracts) Create(ctx context.Context, c *contract.Contract) error {
	if overlap, _ := t.HasOverlap(ctx, c.WashingMachineID(), c.StartDate(), c.EndDate()); overlap {
		return infra.WrapRepoErr("contracts_no_overlap", nil, infra.KindConflict)
	}
	if _, ok := t.u.state.users[c.UserID()]; !ok {
		return infra.WrapRepoErr("contracts_user_id_fkey", nil, infra.KindForeignKeyViolated)
	}
	t.u.state.contracts[c.ID()] = memContract{
		id: c.ID(), userID: c.UserID(), machineID: c.WashingMachineID(), start: c.StartDate(),
		status: c.Status(), price: c.Price().Cents(), createdAt: c.CreatedAt(), updatedAt: c.UpdatedAt(),
	}
	return nil
}

func (t *memContracts) LockByID(ctx context.Context, id uuid.UUID) (*shared.ContractSnapshot, error) {
	c, ok := t.u.state.contracts[id]
	if !ok {
		return nil, notFound("contract not found")
	}
	m, err := (*memTx)(t).MachineByID(ctx, c.machineID)
	if err != nil {
		return nil, err
	}
	return &shared.ContractSnapshot{Contract: c.toDomain(), LaundromatID: m.LaundromatID, OwnerID: m.OwnerID}, nil
}

func (t *memContracts) LockOngoingInRange(_ context.Context, machineIDs []uuid.UUID, from, to time.Time) ([]*contract.Contract, error) {
	var out []*contract.Contract
	for _, c := range t.u.state.contracts {
		d := c.toDomain()
		if slices.Contains(machineIDs, c.machineID) && d.IsOngoing() && d.IntersectsRange(from, to) {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, func(a, b *contract.Contract) int { return a.StartDate().Compare(b.StartDate()) })
	return out, nil
}

func (t *memContracts) UpdateStatus(_ context.Context, c *contract.Contract) error {
	rec, ok := t.u.state.contracts[c.ID()]
	if !ok {
		return notFound("contract not found")
	}
	rec.status = c.Status()
	rec.updatedAt = c.UpdatedAt()
	t.u.state.contracts[c.ID()] = rec
	return nil
}

func (t *memContracts) FinishElapsed(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, c := range t.u.state.contracts {
		if c.status == contract.StatusOngoing && slot.SessionEnd(c.start).Before(now) {
			c.status = contract.StatusFinished
			c.updatedAt = now
			t.u.state.contracts[id] = c
			n++
		}
	}
	return n, nil
}

type memAccounts memTx

func (t *memAccounts) LockByIDs(_ context.Context, ids ...uuid.UUID) (map[uuid.UUID]*ledger.Account, error) {
	out := make(map[uuid.UUID]*ledger.Account, len(ids))
	for _, id := range ids {
		credit, ok := t.u.state.users[id]
		if !ok {
			return nil, notFound("user not found")
		}
		out[id] = ledger.NewAccount(id, ledger.MustMoney(credit))
	}
	return out, nil
}

func (t *memAccounts) UpdateCredit(_ context.Context, acc *ledger.Account, _ time.Time) error {
	if _, ok := t.u.state.users[acc.UserID()]; !ok {
		return notFound("user not found")
	}
	t.u.state.users[acc.UserID()] = acc.Credit().Cents()
	return nil
}

type memTransactions memTx

func (t *memTransactions) Create(_ context.Context, tx *ledger.Transaction) error {
	if t.u.failTransactionCreate != nil {
		return t.u.failTransactionCreate
	}
	t.u.state.transactions = append(t.u.state.transactions, tx)
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notification.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, events ...notification.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
	return n.err
}

func (n *recordingNotifier) recipients() []uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]uuid.UUID, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.UserID)
	}
	return out
}

// blockingNotifier holds every delivery until release is closed.
type blockingNotifier struct {
	release chan struct{}

	mu          sync.Mutex
	events      []notification.Event
	hadDeadline bool
}

func (n *blockingNotifier) Notify(ctx context.Context, events ...notification.Event) error {
	select {
	case <-n.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, n.hadDeadline = ctx.Deadline()
	n.events = append(n.events, events...)
	return nil
}

func (n *blockingNotifier) delivered() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

type invalidation struct {
	machineID    uuid.UUID
	laundromatID uuid.UUID
	day          string
}

type recordingInvalidator struct {
	mu    sync.Mutex
	calls []invalidation
	err   error
}

func (i *recordingInvalidator) Invalidate(_ context.Context, machineID, laundromatID uuid.UUID, dayKey string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.calls = append(i.calls, invalidation{machineID, laundromatID, dayKey})
	return i.err
}
