package handlers

import (
	"context"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/ark-network/countdown/internal/core/application"
	"github.com/ark-network/countdown/internal/core/domain"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type handler struct {
	svc application.Service
}

func NewHandler(svc application.Service) countdownv1.CountdownServiceServer {
	return &handler{svc}
}

func (h *handler) GetInfo(
	ctx context.Context, _ *countdownv1.GetInfoRequest,
) (*countdownv1.GetInfoResponse, error) {
	info, err := h.svc.GetInfo(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &countdownv1.GetInfoResponse{
		Admin:            info.Admin.Hex(),
		StakeAmount:      info.StakeAmount.String(),
		EndDelay:         info.EndDelay,
		CoolDownDuration: info.CoolDownDuration,
		Treasury:         info.Treasury.Hex(),
		NextStartTime:    info.NextStartTime,
		HasWinner:        info.HasWinner,
		CustodyBalance:   info.CustodyBalance.String(),
		Now:              info.Now,
	}, nil
}

func (h *handler) GetRound(
	ctx context.Context, _ *countdownv1.GetRoundRequest,
) (*countdownv1.GetRoundResponse, error) {
	round, err := h.svc.GetRound(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	leader := ""
	if !domain.IsEmptyIdentity(round.Leader) {
		leader = round.Leader.Hex()
	}
	return &countdownv1.GetRoundResponse{
		Leader:      leader,
		DepositTime: round.DepositTime,
		Stake:       round.Stake.String(),
		Deadline:    round.Deadline,
		Stage:       round.Stage.String(),
		HasWinner:   round.HasWinner,
		Now:         round.Now,
	}, nil
}

func (h *handler) GetBalance(
	ctx context.Context, req *countdownv1.GetBalanceRequest,
) (*countdownv1.GetBalanceResponse, error) {
	account, err := parseAddress(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	balance, err := h.svc.GetBalance(ctx, account)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &countdownv1.GetBalanceResponse{
		Address: account.Hex(),
		Balance: balance.String(),
	}, nil
}

func (h *handler) ListEvents(
	ctx context.Context, req *countdownv1.ListEventsRequest,
) (*countdownv1.ListEventsResponse, error) {
	notifications, err := h.svc.ListNotifications(ctx, req.FromSeq, parseLimit(req.Limit))
	if err != nil {
		return nil, toStatusError(err)
	}

	return &countdownv1.ListEventsResponse{Events: toEvents(notifications)}, nil
}

func (h *handler) Participate(
	ctx context.Context, req *countdownv1.ParticipateRequest,
) (*countdownv1.ParticipateResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := domain.AmountFromString(req.Amount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	notification, err := h.svc.Participate(ctx, caller, amount)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &countdownv1.ParticipateResponse{Event: toEvent(*notification)}, nil
}

func (h *handler) ClaimReward(
	ctx context.Context, _ *countdownv1.ClaimRewardRequest,
) (*countdownv1.ClaimRewardResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}

	payout, err := h.svc.ClaimReward(ctx, caller)
	if err != nil {
		return nil, toStatusError(err)
	}

	winner, treasury := payout.Winner(), payout.Treasury()
	return &countdownv1.ClaimRewardResponse{
		Winner:         winner.Account.Hex(),
		WinnerAmount:   winner.Amount.String(),
		Treasury:       treasury.Account.Hex(),
		TreasuryAmount: treasury.Amount.String(),
	}, nil
}

func (h *handler) SubscribeEvents(
	_ *countdownv1.SubscribeEventsRequest,
	stream countdownv1.CountdownService_SubscribeEventsServer,
) error {
	ctx := stream.Context()
	notifications, err := h.svc.GetNotificationsChannel(ctx)
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-notifications:
			if !ok {
				return nil
			}
			if err := stream.Send(toEvent(n)); err != nil {
				log.WithError(err).Debug("failed to forward event to subscriber")
				return err
			}
		}
	}
}
