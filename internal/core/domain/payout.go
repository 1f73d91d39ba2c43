package domain

import "fmt"

const (
	WinnerShareNumerator   = 90
	WinnerShareDenominator = 100
)

type Receiver struct {
	Account Identity
	Amount  Amount
}

// Payout is the split of a settled round stake between the winner and the
// treasury. The receivers always sum up to the stake.
type Payout struct {
	Stake     Amount
	Receivers []Receiver
}

func NewPayout(winner, treasury Identity, stake Amount) (*Payout, error) {
	winnerShare, err := stake.MulDiv(WinnerShareNumerator, WinnerShareDenominator)
	if err != nil {
		return nil, err
	}
	treasuryShare, err := stake.Sub(winnerShare)
	if err != nil {
		return nil, err
	}
	return &Payout{
		Stake: stake,
		Receivers: []Receiver{
			{Account: winner, Amount: winnerShare},
			{Account: treasury, Amount: treasuryShare},
		},
	}, nil
}

func (p Payout) Winner() Receiver {
	return p.Receivers[0]
}

func (p Payout) Treasury() Receiver {
	return p.Receivers[1]
}

func (p Payout) TotAmount() (Amount, error) {
	tot := Amount{}
	for _, r := range p.Receivers {
		sum, err := tot.Add(r.Amount)
		if err != nil {
			return Amount{}, err
		}
		tot = sum
	}
	return tot, nil
}

func (p Payout) validate() error {
	if len(p.Receivers) != 2 {
		return fmt.Errorf("payout must have exactly 2 receivers")
	}
	tot, err := p.TotAmount()
	if err != nil {
		return err
	}
	if !tot.Equal(p.Stake) {
		return fmt.Errorf("payout receivers sum up to %s, expected %s", tot, p.Stake)
	}
	return nil
}
