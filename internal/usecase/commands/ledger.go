package commands

import (
	"context"
	"errors"

	"laundromat-api/internal/domain/ledger"
	"laundromat-api/internal/pkg/clock"
	"laundromat-api/internal/pkg/errs"
	"laundromat-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type LedgerCommands interface {
	// Finalize validates, applies and records draft. With a nil scope it opens
	// its own transaction; otherwise it joins scope and commits with it.
	Finalize(ctx context.Context, scope shared.Tx, draft ledger.Draft) (*ledger.Transaction, error)
	TopUp(ctx context.Context, userID uuid.UUID, amount ledger.Money) (*ledger.Transaction, error)
}

type ledgerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLedgerUseCase(uow shared.UnitOfWork, clk clock.Clock) LedgerCommands {
	return &ledgerUseCaseImpl{uow: uow, clock: clk}
}

func (uc *ledgerUseCaseImpl) Finalize(ctx context.Context, scope shared.Tx, draft ledger.Draft) (*ledger.Transaction, error) {
	if err := ledger.ValidateShape(draft); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransactionShape)
	}

	if scope != nil {
		return uc.finalizeIn(ctx, scope, draft)
	}

	var out *ledger.Transaction
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := uc.finalizeIn(ctx, tx, draft)
		if err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ledgerUseCaseImpl) TopUp(ctx context.Context, userID uuid.UUID, amount ledger.Money) (*ledger.Transaction, error) {
	return uc.Finalize(ctx, nil, ledger.Topup(userID, amount))
}

func (uc *ledgerUseCaseImpl) finalizeIn(ctx context.Context, tx shared.Tx, draft ledger.Draft) (*ledger.Transaction, error) {
	now := uc.clock.Now()
	t, err := ledger.NewTransaction(draft, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransactionShape)
	}

	ids := []uuid.UUID{draft.To}
	if draft.From != nil {
		ids = append(ids, *draft.From)
	}
	accounts, err := tx.Accounts().LockByIDs(ctx, ids...)
	if err != nil {
		return nil, shared.MarkRepoErr(err, "lock accounts")
	}

	var from *ledger.Account
	if draft.From != nil {
		from = accounts[*draft.From]
	}
	to := accounts[draft.To]

	if err := ledger.Apply(t, from, to); err != nil {
		if errors.Is(err, ledger.ErrInsufficientBalance) {
			return nil, errs.Mark(errs.Wrapf(err, "user %s cannot pay %s€", *draft.From, draft.Amount), errs.ErrInsufficientBalance)
		}
		if errors.Is(err, ledger.ErrCreditOverflow) {
			return nil, errs.Mark(errs.Wrapf(err, "user %s", draft.To), errs.ErrInvalidArgument)
		}
		return nil, errs.Mark(err, errs.ErrInvalidTransactionShape)
	}

	if from != nil {
		if err := tx.Accounts().UpdateCredit(ctx, from, now); err != nil {
			return nil, shared.MarkRepoErr(err, "debit source account")
		}
	}
	if err := tx.Accounts().UpdateCredit(ctx, to, now); err != nil {
		return nil, shared.MarkRepoErr(err, "credit destination account")
	}
	if err := tx.Transactions().Create(ctx, t); err != nil {
		return nil, shared.MarkRepoErr(err, "record transaction")
	}
	return t, nil
}
