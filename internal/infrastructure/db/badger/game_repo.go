package badgerdb

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const gameKey = "game"

type gameDTO struct {
	Admin      domain.Identity
	Parameters domain.Parameters
	Round      domain.Round
}

type gameRepository struct {
	store *badgerhold.Store
}

func (r *gameRepository) Get(ctx context.Context) (*domain.Game, error) {
	var dto gameDTO
	found, err := get(ctx, r.store, gameKey, &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &domain.Game{
		Admin:      dto.Admin,
		Parameters: dto.Parameters,
		Round:      dto.Round,
		Changes:    make([]domain.GameEvent, 0),
	}, nil
}

func (r *gameRepository) Save(ctx context.Context, game *domain.Game) error {
	dto := gameDTO{
		Admin:      game.Admin,
		Parameters: game.Parameters,
		Round:      game.Round,
	}
	return upsert(ctx, r.store, gameKey, dto)
}
