package domain

const (
	DormantStage RoundStage = iota
	OpenStage
	SettledStage
)

type RoundStage int

func (s RoundStage) String() string {
	switch s {
	case OpenStage:
		return "OPEN_STAGE"
	case SettledStage:
		return "SETTLED_STAGE"
	default:
		return "DORMANT_STAGE"
	}
}

// Round is the singleton round. It's empty (dormant) until the first deposit
// and is reset to empty once the reward is claimed.
type Round struct {
	Leader      Identity
	DepositTime uint64
	Stake       Amount
}

func (r Round) IsEmpty() bool {
	return IsEmptyIdentity(r.Leader)
}

// Deadline returns the time from which the leader is the winner. The sum
// saturates so that an oversized end delay means the round never settles.
func (r Round) Deadline(endDelay uint64) uint64 {
	deadline := r.DepositTime + endDelay
	if deadline < r.DepositTime {
		return ^uint64(0)
	}
	return deadline
}

func (r Round) Stage(endDelay, now uint64) RoundStage {
	if r.IsEmpty() {
		return DormantStage
	}
	if now >= r.Deadline(endDelay) {
		return SettledStage
	}
	return OpenStage
}
