package badgerdb

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const custodyKey = "custody"

type custodyDTO struct {
	Balance domain.Amount
}

type balanceDTO struct {
	Account domain.Identity
	Balance domain.Amount
}

type ledgerRepository struct {
	store *badgerhold.Store
}

func (r *ledgerRepository) GetCustody(ctx context.Context) (domain.Amount, error) {
	var dto custodyDTO
	if _, err := get(ctx, r.store, custodyKey, &dto); err != nil {
		return domain.Amount{}, err
	}
	return dto.Balance, nil
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
	return upsert(ctx, r.store, custodyKey, custodyDTO{newBalance})
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
	return upsert(ctx, r.store, custodyKey, custodyDTO{newBalance})
}

func (r *ledgerRepository) GetBalance(
	ctx context.Context, account domain.Identity,
) (domain.Amount, error) {
	var dto balanceDTO
	if _, err := get(ctx, r.store, account.Hex(), &dto); err != nil {
		return domain.Amount{}, err
	}
	return dto.Balance, nil
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
	return upsert(ctx, r.store, account.Hex(), balanceDTO{account, newBalance})
}
