package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

type service struct {
	cfg GameConfig

	repoManager ports.RepoManager
	publisher   ports.EventPublisher
	scheduler   ports.SchedulerService
	clock       ports.Clock

	// lock serializes every operation on the game.
	lock     *sync.Mutex
	lastSeen uint64
}

func NewService(
	cfg GameConfig,
	repoManager ports.RepoManager, publisher ports.EventPublisher,
	scheduler ports.SchedulerService, clock ports.Clock,
) (*service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if publisher == nil {
		return nil, fmt.Errorf("missing event publisher")
	}
	if clock == nil {
		return nil, fmt.Errorf("missing clock")
	}
	if cfg.AutoClaimInterval > 0 && scheduler == nil {
		return nil, fmt.Errorf("missing scheduler")
	}
	return &service{
		cfg:         cfg,
		repoManager: repoManager,
		publisher:   publisher,
		scheduler:   scheduler,
		clock:       clock,
		lock:        &sync.Mutex{},
	}, nil
}

func (s *service) Start() error {
	if err := s.seed(context.Background()); err != nil {
		return err
	}

	if s.cfg.AutoClaimInterval > 0 {
		startImmediately := true
		if err := s.scheduler.ScheduleTask(
			s.cfg.AutoClaimInterval, !startImmediately, s.autoClaim,
		); err != nil {
			return err
		}
		s.scheduler.Start()
		log.Debugf("auto claim scheduled every %d seconds", s.cfg.AutoClaimInterval)
	}
	return nil
}

func (s *service) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
		log.Debug("stopped scheduler")
	}
	if err := s.publisher.Close(); err != nil {
		log.WithError(err).Warn("failed to close event publisher")
	}
	s.repoManager.Close()
	log.Debug("closed connection to db")
}

func (s *service) GetInfo(ctx context.Context) (*GameInfo, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.now()
	game, err := s.getGame(ctx)
	if err != nil {
		return nil, err
	}
	custody, err := s.repoManager.Ledger().GetCustody(ctx)
	if err != nil {
		return nil, err
	}

	return &GameInfo{
		Admin:            game.Admin,
		StakeAmount:      game.Parameters.StakeAmount,
		EndDelay:         game.Parameters.EndDelay,
		CoolDownDuration: game.Parameters.CoolDownDuration,
		Treasury:         game.Parameters.Treasury,
		NextStartTime:    game.Parameters.NextStartTime,
		HasWinner:        game.HasWinner(now),
		CustodyBalance:   custody,
		Now:              now,
	}, nil
}

func (s *service) GetRound(ctx context.Context) (*RoundInfo, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.now()
	game, err := s.getGame(ctx)
	if err != nil {
		return nil, err
	}

	info := &RoundInfo{
		Leader:      game.Round.Leader,
		DepositTime: game.Round.DepositTime,
		Stake:       game.Round.Stake,
		Stage:       game.Stage(now),
		HasWinner:   game.HasWinner(now),
		Now:         now,
	}
	if !game.Round.IsEmpty() {
		info.Deadline = game.Round.Deadline(game.Parameters.EndDelay)
	}
	return info, nil
}

func (s *service) GetBalance(
	ctx context.Context, account domain.Identity,
) (domain.Amount, error) {
	return s.repoManager.Ledger().GetBalance(ctx, account)
}

func (s *service) ListNotifications(
	ctx context.Context, fromSeq uint64, limit int,
) ([]domain.Notification, error) {
	return s.repoManager.Notifications().List(ctx, fromSeq, limit)
}

func (s *service) GetNotificationsChannel(
	ctx context.Context,
) (<-chan domain.Notification, error) {
	return s.publisher.Subscribe(ctx)
}

func (s *service) Participate(
	ctx context.Context, caller domain.Identity, value domain.Amount,
) (*domain.Notification, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.now()
	notifications, err := s.runTx(ctx, func(ctx context.Context) ([]domain.GameEvent, error) {
		game, err := s.getGame(ctx)
		if err != nil {
			return nil, err
		}
		banned, err := s.repoManager.Blacklist().Contains(ctx, caller)
		if err != nil {
			return nil, fmt.Errorf("failed to check blacklist: %w", err)
		}

		events, err := game.Participate(caller, value, banned, now)
		if err != nil {
			return nil, err
		}
		if err := s.repoManager.Game().Save(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
		if err := s.repoManager.Ledger().CreditCustody(ctx, value); err != nil {
			return nil, err
		}
		return events, nil
	})
	if err != nil {
		return nil, err
	}

	log.Debugf("%s is the new leader at %d", caller, now)
	return &notifications[0], nil
}

func (s *service) ClaimReward(
	ctx context.Context, caller domain.Identity,
) (*domain.Payout, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.now()
	var payout *domain.Payout
	if _, err := s.runTx(ctx, func(ctx context.Context) ([]domain.GameEvent, error) {
		game, err := s.getGame(ctx)
		if err != nil {
			return nil, err
		}

		p, events, err := game.ClaimReward(now)
		if err != nil {
			return nil, err
		}
		// The round reset is persisted before any fund is moved.
		if err := s.repoManager.Game().Save(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to save game: %w", err)
		}
		if err := s.transfer(ctx, p); err != nil {
			return nil, err
		}
		payout = p
		return events, nil
	}); err != nil {
		return nil, err
	}

	log.Infof(
		"reward of %s claimed by %s for winner %s",
		payout.Stake, caller, payout.Winner().Account,
	)
	return payout, nil
}

// runTx runs fn in a storage transaction, stores the notifications derived
// from the returned events in the same transaction and publishes them once
// committed.
func (s *service) runTx(
	ctx context.Context, fn func(ctx context.Context) ([]domain.GameEvent, error),
) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := s.repoManager.RunTx(ctx, func(ctx context.Context) error {
		events, err := fn(ctx)
		if err != nil {
			return err
		}
		toAppend := domain.NotificationsFromEvents(events)
		if len(toAppend) <= 0 {
			return nil
		}
		notifications, err = s.repoManager.Notifications().Append(ctx, toAppend...)
		if err != nil {
			return fmt.Errorf("failed to store notifications: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if len(notifications) > 0 {
		if err := s.publisher.Publish(context.Background(), notifications...); err != nil {
			log.WithError(err).Warn("failed to publish notifications")
		}
	}
	return notifications, nil
}

// transfer moves the payout out of custody to the receivers.
func (s *service) transfer(ctx context.Context, payout *domain.Payout) error {
	if err := s.repoManager.Ledger().DebitCustody(ctx, payout.Stake); err != nil {
		return err
	}
	for _, r := range payout.Receivers {
		if err := s.repoManager.Ledger().Credit(ctx, r.Account, r.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) getGame(ctx context.Context) (*domain.Game, error) {
	game, err := s.repoManager.Game().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	if game == nil {
		return nil, fmt.Errorf("game not initialized")
	}
	return game, nil
}

func (s *service) seed(ctx context.Context) error {
	return s.repoManager.RunTx(ctx, func(ctx context.Context) error {
		game, err := s.repoManager.Game().Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}
		if game != nil {
			log.Debugf("loaded game with admin %s", game.Admin)
			return nil
		}

		params := domain.DefaultParameters(s.cfg.Treasury)
		if s.cfg.StakeAmount != nil {
			params.StakeAmount = *s.cfg.StakeAmount
		}
		if s.cfg.EndDelay != nil {
			params.EndDelay = *s.cfg.EndDelay
		}
		if s.cfg.CoolDownDuration != nil {
			params.CoolDownDuration = *s.cfg.CoolDownDuration
		}
		if domain.IsEmptyIdentity(params.Treasury) {
			return fmt.Errorf("missing treasury")
		}

		game, err = domain.NewGame(s.cfg.Admin, params)
		if err != nil {
			return err
		}
		if err := s.repoManager.Game().Save(ctx, game); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
		log.Infof("initialized game with admin %s", game.Admin)
		return nil
	})
}

// now returns the current unix time, never lower than a previously
// returned value. Must be called with the lock held.
func (s *service) now() uint64 {
	var now uint64
	if t := s.clock.Now().Unix(); t > 0 {
		now = uint64(t)
	}
	if now < s.lastSeen {
		now = s.lastSeen
	}
	s.lastSeen = now
	return now
}

func (s *service) autoClaim() {
	payout, err := s.ClaimReward(context.Background(), domain.ZeroIdentity)
	if err != nil {
		if errors.Is(err, domain.ErrNoWinner) {
			return
		}
		log.WithError(err).Warn("failed to auto claim reward")
		return
	}
	log.Debugf("auto claimed reward for %s", payout.Winner().Account)
}
