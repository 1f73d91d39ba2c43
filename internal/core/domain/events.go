package domain

type GameEvent interface {
	isEvent()
}

func (e BidPlaced) isEvent()         {}
func (e RewardClaimed) isEvent()     {}
func (e ParametersUpdated) isEvent() {}

type BidPlaced struct {
	Bidder    Identity
	Amount    Amount
	Timestamp uint64
}

type RewardClaimed struct {
	Winner         Identity
	Amount         Amount
	Treasury       Identity
	TreasuryAmount Amount
	Timestamp      uint64
}

type ParametersUpdated struct {
	Parameters Parameters
}
