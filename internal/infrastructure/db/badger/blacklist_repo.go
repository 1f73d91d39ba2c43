package badgerdb

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type blacklistDTO struct {
	Account domain.Identity
}

type blacklistRepository struct {
	store *badgerhold.Store
}

func (r *blacklistRepository) Add(ctx context.Context, account domain.Identity) error {
	return upsert(ctx, r.store, account.Hex(), blacklistDTO{account})
}

func (r *blacklistRepository) Remove(ctx context.Context, account domain.Identity) error {
	return remove(ctx, r.store, account.Hex(), blacklistDTO{})
}

func (r *blacklistRepository) Contains(
	ctx context.Context, account domain.Identity,
) (bool, error) {
	var dto blacklistDTO
	return get(ctx, r.store, account.Hex(), &dto)
}

func (r *blacklistRepository) List(ctx context.Context) ([]domain.Identity, error) {
	var dtos []blacklistDTO
	if err := find(ctx, r.store, &dtos, nil); err != nil {
		return nil, err
	}
	accounts := make([]domain.Identity, 0, len(dtos))
	for _, dto := range dtos {
		accounts = append(accounts, dto.Account)
	}
	return accounts, nil
}
