package application

import (
	"context"
	"fmt"

	"github.com/ark-network/countdown/internal/core/domain"
	log "github.com/sirupsen/logrus"
)

func (s *service) SetEndDelay(
	ctx context.Context, caller domain.Identity, delay uint64,
) error {
	return s.updateGame(ctx, func(game *domain.Game) ([]domain.GameEvent, error) {
		return game.SetEndDelay(caller, delay)
	})
}

func (s *service) SetCoolDownDuration(
	ctx context.Context, caller domain.Identity, duration uint64,
) error {
	return s.updateGame(ctx, func(game *domain.Game) ([]domain.GameEvent, error) {
		return game.SetCoolDownDuration(caller, duration)
	})
}

func (s *service) SetStakeAmount(
	ctx context.Context, caller domain.Identity, amount domain.Amount,
) error {
	return s.updateGame(ctx, func(game *domain.Game) ([]domain.GameEvent, error) {
		return game.SetStakeAmount(caller, amount)
	})
}

func (s *service) SetTreasury(
	ctx context.Context, caller, treasury domain.Identity,
) error {
	return s.updateGame(ctx, func(game *domain.Game) ([]domain.GameEvent, error) {
		return game.SetTreasury(caller, treasury)
	})
}

func (s *service) Ban(ctx context.Context, caller, account domain.Identity) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.repoManager.RunTx(ctx, func(ctx context.Context) error {
		if err := s.authorize(ctx, caller); err != nil {
			return err
		}
		if err := s.repoManager.Blacklist().Add(ctx, account); err != nil {
			return fmt.Errorf("failed to add %s to blacklist: %w", account, err)
		}
		log.Infof("banned %s", account)
		return nil
	})
}

func (s *service) Unban(ctx context.Context, caller, account domain.Identity) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.repoManager.RunTx(ctx, func(ctx context.Context) error {
		if err := s.authorize(ctx, caller); err != nil {
			return err
		}
		if err := s.repoManager.Blacklist().Remove(ctx, account); err != nil {
			return fmt.Errorf("failed to remove %s from blacklist: %w", account, err)
		}
		log.Infof("unbanned %s", account)
		return nil
	})
}

func (s *service) ListBlacklisted(
	ctx context.Context, caller domain.Identity,
) ([]domain.Identity, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.authorize(ctx, caller); err != nil {
		return nil, err
	}
	return s.repoManager.Blacklist().List(ctx)
}

func (s *service) updateGame(
	ctx context.Context, update func(game *domain.Game) ([]domain.GameEvent, error),
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, err := s.runTx(ctx, func(ctx context.Context) ([]domain.GameEvent, error) {
		game, err := s.getGame(ctx)
		if err != nil {
			return nil, err
		}
		events, err := update(game)
		if err != nil {
			return nil, err
		}
		if err := s.repoManager.Game().Save(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
		log.Infof("updated game parameters: %+v", game.Parameters)
		return events, nil
	})
	return err
}

func (s *service) authorize(ctx context.Context, caller domain.Identity) error {
	game, err := s.getGame(ctx)
	if err != nil {
		return err
	}
	return game.Authorize(caller)
}
