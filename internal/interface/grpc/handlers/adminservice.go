package handlers

import (
	"context"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/ark-network/countdown/internal/core/application"
	"github.com/ark-network/countdown/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type adminHandler struct {
	adminService application.AdminService
}

func NewAdminHandler(
	adminService application.AdminService,
) countdownv1.AdminServiceServer {
	return &adminHandler{adminService}
}

func (a *adminHandler) SetEndDelay(
	ctx context.Context, req *countdownv1.SetEndDelayRequest,
) (*countdownv1.SetEndDelayResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.adminService.SetEndDelay(ctx, caller, req.EndDelay); err != nil {
		return nil, toStatusError(err)
	}
	return &countdownv1.SetEndDelayResponse{}, nil
}

func (a *adminHandler) SetCoolDownDuration(
	ctx context.Context, req *countdownv1.SetCoolDownDurationRequest,
) (*countdownv1.SetCoolDownDurationResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.adminService.SetCoolDownDuration(
		ctx, caller, req.CoolDownDuration,
	); err != nil {
		return nil, toStatusError(err)
	}
	return &countdownv1.SetCoolDownDurationResponse{}, nil
}

func (a *adminHandler) SetStakeAmount(
	ctx context.Context, req *countdownv1.SetStakeAmountRequest,
) (*countdownv1.SetStakeAmountResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	amount, err := domain.AmountFromString(req.StakeAmount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := a.adminService.SetStakeAmount(ctx, caller, amount); err != nil {
		return nil, toStatusError(err)
	}
	return &countdownv1.SetStakeAmountResponse{}, nil
}

func (a *adminHandler) SetTreasury(
	ctx context.Context, req *countdownv1.SetTreasuryRequest,
) (*countdownv1.SetTreasuryResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	treasury, err := parseAddress(req.Treasury)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if domain.IsEmptyIdentity(treasury) {
		return nil, status.Error(codes.InvalidArgument, "missing treasury")
	}

	if err := a.adminService.SetTreasury(ctx, caller, treasury); err != nil {
		return nil, toStatusError(err)
	}
	return &countdownv1.SetTreasuryResponse{}, nil
}

func (a *adminHandler) Ban(
	ctx context.Context, req *countdownv1.BanRequest,
) (*countdownv1.BanResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	account, err := parseAddress(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := a.adminService.Ban(ctx, caller, account); err != nil {
		return nil, toStatusError(err)
	}
	return &countdownv1.BanResponse{}, nil
}

func (a *adminHandler) Unban(
	ctx context.Context, req *countdownv1.UnbanRequest,
) (*countdownv1.UnbanResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	account, err := parseAddress(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := a.adminService.Unban(ctx, caller, account); err != nil {
		return nil, toStatusError(err)
	}
	return &countdownv1.UnbanResponse{}, nil
}

func (a *adminHandler) ListBlacklisted(
	ctx context.Context, _ *countdownv1.ListBlacklistedRequest,
) (*countdownv1.ListBlacklistedResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := a.adminService.ListBlacklisted(ctx, caller)
	if err != nil {
		return nil, toStatusError(err)
	}

	addresses := make([]string, 0, len(accounts))
	for _, account := range accounts {
		addresses = append(addresses, account.Hex())
	}
	return &countdownv1.ListBlacklistedResponse{Addresses: addresses}, nil
}
