package handlers

import (
	"context"
	"errors"
	"fmt"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/interface/grpc/interceptors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

func parseAddress(addr string) (domain.Identity, error) {
	if len(addr) <= 0 {
		return domain.ZeroIdentity, fmt.Errorf("missing address")
	}
	return domain.ParseIdentity(addr)
}

func parseLimit(limit int32) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return int(limit)
}

func getCaller(ctx context.Context) (domain.Identity, error) {
	caller, ok := interceptors.CallerFromContext(ctx)
	if !ok {
		return domain.ZeroIdentity, status.Error(codes.Unauthenticated, "missing caller")
	}
	return caller, nil
}

// toStatusError maps game rejections to grpc codes. The domain error code is
// prefixed to the message so that clients can tell rejections apart.
func toStatusError(err error) error {
	var gameErr *domain.Error
	if !errors.As(err, &gameErr) {
		return status.Error(codes.Internal, err.Error())
	}

	code := codes.Unknown
	switch gameErr.Code {
	case domain.ErrCodeUnauthorized, domain.ErrCodeForbidden:
		code = codes.PermissionDenied
	case domain.ErrCodeInvalidAmount:
		code = codes.InvalidArgument
	case domain.ErrCodeNotReady, domain.ErrCodeNoWinner,
		domain.ErrCodeInsufficientFunds:
		code = codes.FailedPrecondition
	case domain.ErrCodeAmountOverflow:
		code = codes.OutOfRange
	}
	return status.Errorf(code, "%s: %s", gameErr.Code, gameErr.Msg)
}

func toEvent(n domain.Notification) *countdownv1.Event {
	ev := &countdownv1.Event{
		Seq:       n.Seq,
		Id:        n.Id,
		Type:      string(n.Type),
		Account:   n.Account.Hex(),
		Amount:    n.Amount.String(),
		Timestamp: n.Timestamp,
	}
	if n.Type == domain.WinNotification {
		ev.Treasury = n.Treasury.Hex()
		ev.TreasuryAmount = n.TreasuryAmount.String()
	}
	return ev
}

func toEvents(notifications []domain.Notification) []*countdownv1.Event {
	events := make([]*countdownv1.Event, 0, len(notifications))
	for _, n := range notifications {
		events = append(events, toEvent(n))
	}
	return events
}
