package domain

import "fmt"

const (
	DefaultEndDelay         = uint64(69)
	DefaultCoolDownDuration = uint64(300)
)

// DefaultStakeAmount is 0.01 units of the native currency (10^16).
var DefaultStakeAmount = NewAmount(10_000_000_000_000_000)

type Parameters struct {
	StakeAmount      Amount
	EndDelay         uint64
	CoolDownDuration uint64
	Treasury         Identity
	NextStartTime    uint64
}

func DefaultParameters(treasury Identity) Parameters {
	return Parameters{
		StakeAmount:      DefaultStakeAmount,
		EndDelay:         DefaultEndDelay,
		CoolDownDuration: DefaultCoolDownDuration,
		Treasury:         treasury,
	}
}

// Game is the aggregate holding the round, its parameters and the admin
// identity. Every accepted mutation is recorded in Changes.
type Game struct {
	Admin      Identity
	Parameters Parameters
	Round      Round
	Changes    []GameEvent
}

func NewGame(admin Identity, params Parameters) (*Game, error) {
	if IsEmptyIdentity(admin) {
		return nil, fmt.Errorf("missing admin")
	}
	if params.StakeAmount.IsZero() {
		return nil, errInvalidAmount("must be positive")
	}
	return &Game{
		Admin:      admin,
		Parameters: params,
		Changes:    make([]GameEvent, 0),
	}, nil
}

func (g *Game) On(event GameEvent) {
	switch e := event.(type) {
	case BidPlaced:
		g.Round = Round{
			Leader:      e.Bidder,
			DepositTime: e.Timestamp,
			Stake:       e.Amount,
		}
	case RewardClaimed:
		g.Round = Round{}
		next := satAdd(e.Timestamp, g.Parameters.CoolDownDuration)
		if next > g.Parameters.NextStartTime {
			g.Parameters.NextStartTime = next
		}
	case ParametersUpdated:
		g.Parameters = e.Parameters
	}
}

func (g *Game) IsAdmin(caller Identity) bool {
	return !IsEmptyIdentity(caller) && caller == g.Admin
}

// Authorize fails with ErrUnauthorized unless caller is the admin.
func (g *Game) Authorize(caller Identity) error {
	if !g.IsAdmin(caller) {
		return ErrUnauthorized
	}
	return nil
}

func (g *Game) InCooldown(now uint64) bool {
	return now < g.Parameters.NextStartTime
}

func (g *Game) Stage(now uint64) RoundStage {
	return g.Round.Stage(g.Parameters.EndDelay, now)
}

func (g *Game) HasWinner(now uint64) bool {
	return g.Stage(now) == SettledStage
}

// Participate makes caller the new leader of the round. The checks run in
// order: blacklist, cooldown, stake amount.
func (g *Game) Participate(
	caller Identity, value Amount, banned bool, now uint64,
) ([]GameEvent, error) {
	if IsEmptyIdentity(caller) {
		return nil, fmt.Errorf("missing caller")
	}
	if banned {
		return nil, ErrForbidden
	}
	if g.InCooldown(now) {
		return nil, ErrNotReady
	}
	if !value.Equal(g.Parameters.StakeAmount) {
		return nil, errInvalidAmount("amount must be equal to bidAmount")
	}

	event := BidPlaced{
		Bidder:    caller,
		Amount:    value,
		Timestamp: now,
	}
	g.raise(event)

	return []GameEvent{event}, nil
}

// ClaimReward settles the round: it is reset and the next start time is
// pushed forward before the payout is returned to be moved. The payout splits
// the stake deposited by the leader, not the current StakeAmount.
func (g *Game) ClaimReward(now uint64) (*Payout, []GameEvent, error) {
	if !g.HasWinner(now) {
		return nil, nil, ErrNoWinner
	}

	payout, err := NewPayout(g.Round.Leader, g.Parameters.Treasury, g.Round.Stake)
	if err != nil {
		return nil, nil, err
	}
	if err := payout.validate(); err != nil {
		return nil, nil, err
	}

	event := RewardClaimed{
		Winner:         payout.Winner().Account,
		Amount:         payout.Winner().Amount,
		Treasury:       payout.Treasury().Account,
		TreasuryAmount: payout.Treasury().Amount,
		Timestamp:      now,
	}
	g.raise(event)

	return payout, []GameEvent{event}, nil
}

func (g *Game) SetEndDelay(caller Identity, delay uint64) ([]GameEvent, error) {
	return g.updateParameters(caller, func(p *Parameters) error {
		p.EndDelay = delay
		return nil
	})
}

func (g *Game) SetCoolDownDuration(caller Identity, duration uint64) ([]GameEvent, error) {
	return g.updateParameters(caller, func(p *Parameters) error {
		p.CoolDownDuration = duration
		return nil
	})
}

func (g *Game) SetStakeAmount(caller Identity, amount Amount) ([]GameEvent, error) {
	return g.updateParameters(caller, func(p *Parameters) error {
		if amount.IsZero() {
			return errInvalidAmount("must be positive")
		}
		p.StakeAmount = amount
		return nil
	})
}

func (g *Game) SetTreasury(caller Identity, treasury Identity) ([]GameEvent, error) {
	return g.updateParameters(caller, func(p *Parameters) error {
		if IsEmptyIdentity(treasury) {
			return fmt.Errorf("missing treasury")
		}
		p.Treasury = treasury
		return nil
	})
}

func (g *Game) updateParameters(
	caller Identity, update func(p *Parameters) error,
) ([]GameEvent, error) {
	if err := g.Authorize(caller); err != nil {
		return nil, err
	}
	params := g.Parameters
	if err := update(&params); err != nil {
		return nil, err
	}

	event := ParametersUpdated{params}
	g.raise(event)

	return []GameEvent{event}, nil
}

func (g *Game) raise(event GameEvent) {
	if g.Changes == nil {
		g.Changes = make([]GameEvent, 0)
	}
	g.Changes = append(g.Changes, event)
	g.On(event)
}

func satAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return ^uint64(0)
	}
	return sum
}
