package domain

import "context"

type GameRepository interface {
	// Get returns a nil game without error if the store was never seeded.
	Get(ctx context.Context) (*Game, error)
	Save(ctx context.Context, game *Game) error
}

type BlacklistRepository interface {
	Add(ctx context.Context, account Identity) error
	Remove(ctx context.Context, account Identity) error
	Contains(ctx context.Context, account Identity) (bool, error)
	List(ctx context.Context) ([]Identity, error)
}

// LedgerRepository keeps the custody balance and the balance credited to
// every identity. Debit fails with ErrInsufficientFunds if the balance is
// lower than the amount.
type LedgerRepository interface {
	GetCustody(ctx context.Context) (Amount, error)
	CreditCustody(ctx context.Context, amount Amount) error
	DebitCustody(ctx context.Context, amount Amount) error
	GetBalance(ctx context.Context, account Identity) (Amount, error)
	Credit(ctx context.Context, account Identity, amount Amount) error
}

type NotificationRepository interface {
	Append(ctx context.Context, notifications ...Notification) ([]Notification, error)
	List(ctx context.Context, fromSeq uint64, limit int) ([]Notification, error)
}
