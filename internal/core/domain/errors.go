package domain

import "fmt"

type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeUnauthorized
	ErrCodeForbidden
	ErrCodeInvalidAmount
	ErrCodeNotReady
	ErrCodeNoWinner
	ErrCodeInsufficientFunds
	ErrCodeAmountOverflow
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnauthorized:
		return "UNAUTHORIZED"
	case ErrCodeForbidden:
		return "FORBIDDEN"
	case ErrCodeInvalidAmount:
		return "INVALID_AMOUNT"
	case ErrCodeNotReady:
		return "NOT_READY"
	case ErrCodeNoWinner:
		return "NO_WINNER"
	case ErrCodeInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case ErrCodeAmountOverflow:
		return "AMOUNT_OVERFLOW"
	default:
		return "UNKNOWN"
	}
}

// Error is a rejection of a game operation. Two errors match with errors.Is
// when they share the same code, regardless of the message.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrUnauthorized      = &Error{ErrCodeUnauthorized, "Caller is not an admin"}
	ErrForbidden         = &Error{ErrCodeForbidden, "Player is backlisted"}
	ErrInvalidAmount     = &Error{ErrCodeInvalidAmount, "invalid amount"}
	ErrNotReady          = &Error{ErrCodeNotReady, "CoolDown period not met"}
	ErrNoWinner          = &Error{ErrCodeNoWinner, "no winner yet"}
	ErrInsufficientFunds = &Error{ErrCodeInsufficientFunds, "insufficient funds"}
	ErrAmountOverflow    = &Error{ErrCodeAmountOverflow, "amount overflow"}
)

func errInvalidAmount(format string, args ...interface{}) error {
	return &Error{ErrCodeInvalidAmount, fmt.Sprintf(format, args...)}
}
