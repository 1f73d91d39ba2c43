package sqlitedb

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/infrastructure/db/sqlite/sqlc/queries"
)

type blacklistRepository struct {
	querier *queries.Queries
}

func (r *blacklistRepository) Add(ctx context.Context, account domain.Identity) error {
	return querierFor(ctx, r.querier).InsertBlacklisted(ctx, account.Hex())
}

func (r *blacklistRepository) Remove(ctx context.Context, account domain.Identity) error {
	return querierFor(ctx, r.querier).DeleteBlacklisted(ctx, account.Hex())
}

func (r *blacklistRepository) Contains(
	ctx context.Context, account domain.Identity,
) (bool, error) {
	count, err := querierFor(ctx, r.querier).ContainsBlacklisted(ctx, account.Hex())
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blacklistRepository) List(ctx context.Context) ([]domain.Identity, error) {
	rows, err := querierFor(ctx, r.querier).SelectBlacklisted(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Identity, 0, len(rows))
	for _, row := range rows {
		account, err := parseIdentity(row)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}
