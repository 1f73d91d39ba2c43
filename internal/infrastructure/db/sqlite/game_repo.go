package sqlitedb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/infrastructure/db/sqlite/sqlc/queries"
)

type gameRepository struct {
	querier *queries.Queries
}

func (r *gameRepository) Get(ctx context.Context) (*domain.Game, error) {
	row, err := querierFor(ctx, r.querier).SelectGame(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	admin, err := parseIdentity(row.Admin)
	if err != nil {
		return nil, err
	}
	treasury, err := parseIdentity(row.Treasury)
	if err != nil {
		return nil, err
	}
	leader, err := parseIdentity(row.RoundLeader)
	if err != nil {
		return nil, err
	}
	stakeAmount, err := domain.AmountFromString(row.StakeAmount)
	if err != nil {
		return nil, err
	}
	roundStake, err := domain.AmountFromString(row.RoundStake)
	if err != nil {
		return nil, err
	}

	return &domain.Game{
		Admin: admin,
		Parameters: domain.Parameters{
			StakeAmount:      stakeAmount,
			EndDelay:         uint64(row.EndDelay),
			CoolDownDuration: uint64(row.CooldownDuration),
			Treasury:         treasury,
			NextStartTime:    uint64(row.NextStartTime),
		},
		Round: domain.Round{
			Leader:      leader,
			DepositTime: uint64(row.RoundDepositTime),
			Stake:       roundStake,
		},
		Changes: make([]domain.GameEvent, 0),
	}, nil
}

// Save stores the unsigned values bit by bit into signed columns.
func (r *gameRepository) Save(ctx context.Context, game *domain.Game) error {
	return querierFor(ctx, r.querier).UpsertGame(ctx, queries.UpsertGameParams{
		Admin:            formatIdentity(game.Admin),
		StakeAmount:      game.Parameters.StakeAmount.String(),
		EndDelay:         int64(game.Parameters.EndDelay),
		CooldownDuration: int64(game.Parameters.CoolDownDuration),
		Treasury:         formatIdentity(game.Parameters.Treasury),
		NextStartTime:    int64(game.Parameters.NextStartTime),
		RoundLeader:      formatIdentity(game.Round.Leader),
		RoundDepositTime: int64(game.Round.DepositTime),
		RoundStake:       game.Round.Stake.String(),
	})
}
