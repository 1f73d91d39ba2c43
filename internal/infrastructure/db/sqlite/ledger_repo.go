package sqlitedb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/infrastructure/db/sqlite/sqlc/queries"
)

type ledgerRepository struct {
	querier *queries.Queries
}

func (r *ledgerRepository) GetCustody(ctx context.Context) (domain.Amount, error) {
	balance, err := querierFor(ctx, r.querier).SelectCustody(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Amount{}, nil
		}
		return domain.Amount{}, err
	}
	return domain.AmountFromString(balance)
}

func (r *ledgerRepository) CreditCustody(ctx context.Context, amount domain.Amount) error {
	balance, err := r.GetCustody(ctx)
	if err != nil {
		return err
	}
	newBalance, err := balance.Add(amount)
	if err != nil {
		return err
	}
	return querierFor(ctx, r.querier).UpsertCustody(ctx, newBalance.String())
}

func (r *ledgerRepository) DebitCustody(ctx context.Context, amount domain.Amount) error {
	balance, err := r.GetCustody(ctx)
	if err != nil {
		return err
	}
	newBalance, err := balance.Sub(amount)
	if err != nil {
		return err
	}
	return querierFor(ctx, r.querier).UpsertCustody(ctx, newBalance.String())
}

func (r *ledgerRepository) GetBalance(
	ctx context.Context, account domain.Identity,
) (domain.Amount, error) {
	amount, err := querierFor(ctx, r.querier).SelectBalance(ctx, account.Hex())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Amount{}, nil
		}
		return domain.Amount{}, err
	}
	return domain.AmountFromString(amount)
}

func (r *ledgerRepository) Credit(
	ctx context.Context, account domain.Identity, amount domain.Amount,
) error {
	balance, err := r.GetBalance(ctx, account)
	if err != nil {
		return err
	}
	newBalance, err := balance.Add(amount)
	if err != nil {
		return err
	}
	return querierFor(ctx, r.querier).UpsertBalance(ctx, queries.UpsertBalanceParams{
		Account: account.Hex(),
		Amount:  newBalance.String(),
	})
}
