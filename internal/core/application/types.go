package application

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
)

type Service interface {
	Start() error
	Stop()
	GetInfo(ctx context.Context) (*GameInfo, error)
	GetRound(ctx context.Context) (*RoundInfo, error)
	GetBalance(ctx context.Context, account domain.Identity) (domain.Amount, error)
	ListNotifications(
		ctx context.Context, fromSeq uint64, limit int,
	) ([]domain.Notification, error)
	GetNotificationsChannel(ctx context.Context) (<-chan domain.Notification, error)
	Participate(
		ctx context.Context, caller domain.Identity, value domain.Amount,
	) (*domain.Notification, error)
	ClaimReward(ctx context.Context, caller domain.Identity) (*domain.Payout, error)
}

type AdminService interface {
	SetEndDelay(ctx context.Context, caller domain.Identity, delay uint64) error
	SetCoolDownDuration(ctx context.Context, caller domain.Identity, duration uint64) error
	SetStakeAmount(ctx context.Context, caller domain.Identity, amount domain.Amount) error
	SetTreasury(ctx context.Context, caller, treasury domain.Identity) error
	Ban(ctx context.Context, caller, account domain.Identity) error
	Unban(ctx context.Context, caller, account domain.Identity) error
	ListBlacklisted(ctx context.Context, caller domain.Identity) ([]domain.Identity, error)
}

// GameConfig holds the values used to seed an empty store. Nil optional
// values fall back to the domain defaults.
type GameConfig struct {
	Admin             domain.Identity
	Treasury          domain.Identity
	StakeAmount       *domain.Amount
	EndDelay          *uint64
	CoolDownDuration  *uint64
	AutoClaimInterval int64
}

type GameInfo struct {
	Admin            domain.Identity
	StakeAmount      domain.Amount
	EndDelay         uint64
	CoolDownDuration uint64
	Treasury         domain.Identity
	NextStartTime    uint64
	HasWinner        bool
	CustodyBalance   domain.Amount
	Now              uint64
}

type RoundInfo struct {
	Leader      domain.Identity
	DepositTime uint64
	Stake       domain.Amount
	Deadline    uint64
	Stage       domain.RoundStage
	HasWinner   bool
	Now         uint64
}
