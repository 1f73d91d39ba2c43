// Package countdownv1 defines the messages and the gRPC services of the
// countdown daemon. Amounts are decimal strings in base units, addresses are
// 0x prefixed hex strings and times are unix seconds.
package countdownv1

type Event struct {
	Seq            uint64 `json:"seq"`
	Id             string `json:"id"`
	Type           string `json:"type"`
	Account        string `json:"account"`
	Amount         string `json:"amount"`
	Treasury       string `json:"treasury,omitempty"`
	TreasuryAmount string `json:"treasuryAmount,omitempty"`
	Timestamp      uint64 `json:"timestamp"`
}

type GetInfoRequest struct{}

type GetInfoResponse struct {
	Admin            string `json:"admin"`
	StakeAmount      string `json:"stakeAmount"`
	EndDelay         uint64 `json:"endDelay"`
	CoolDownDuration uint64 `json:"coolDownDuration"`
	Treasury         string `json:"treasury"`
	NextStartTime    uint64 `json:"nextStartTime"`
	HasWinner        bool   `json:"hasWinner"`
	CustodyBalance   string `json:"custodyBalance"`
	Now              uint64 `json:"now"`
}

type GetRoundRequest struct{}

type GetRoundResponse struct {
	Leader      string `json:"leader"`
	DepositTime uint64 `json:"depositTime"`
	Stake       string `json:"stake"`
	Deadline    uint64 `json:"deadline"`
	Stage       string `json:"stage"`
	HasWinner   bool   `json:"hasWinner"`
	Now         uint64 `json:"now"`
}

type GetBalanceRequest struct {
	Address string `json:"address"`
}

type GetBalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type ListEventsRequest struct {
	FromSeq uint64 `json:"fromSeq"`
	Limit   int32  `json:"limit"`
}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

type ParticipateRequest struct {
	Amount string `json:"amount"`
}

type ParticipateResponse struct {
	Event *Event `json:"event"`
}

type ClaimRewardRequest struct{}

type ClaimRewardResponse struct {
	Winner         string `json:"winner"`
	WinnerAmount   string `json:"winnerAmount"`
	Treasury       string `json:"treasury"`
	TreasuryAmount string `json:"treasuryAmount"`
}

type SubscribeEventsRequest struct{}

type SetEndDelayRequest struct {
	EndDelay uint64 `json:"endDelay"`
}

type SetEndDelayResponse struct{}

type SetCoolDownDurationRequest struct {
	CoolDownDuration uint64 `json:"coolDownDuration"`
}

type SetCoolDownDurationResponse struct{}

type SetStakeAmountRequest struct {
	StakeAmount string `json:"stakeAmount"`
}

type SetStakeAmountResponse struct{}

type SetTreasuryRequest struct {
	Treasury string `json:"treasury"`
}

type SetTreasuryResponse struct{}

type BanRequest struct {
	Address string `json:"address"`
}

type BanResponse struct{}

type UnbanRequest struct {
	Address string `json:"address"`
}

type UnbanResponse struct{}

type ListBlacklistedRequest struct{}

type ListBlacklistedResponse struct {
	Addresses []string `json:"addresses"`
}
