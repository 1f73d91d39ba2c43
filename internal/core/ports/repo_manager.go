package ports

import (
	"context"

	"github.com/ark-network/countdown/internal/core/domain"
)

type RepoManager interface {
	Game() domain.GameRepository
	Blacklist() domain.BlacklistRepository
	Ledger() domain.LedgerRepository
	Notifications() domain.NotificationRepository
	// RunTx runs fn in a single storage transaction carried by the context
	// passed to it. The transaction is discarded if fn returns an error.
	RunTx(ctx context.Context, fn func(ctx context.Context) error) error
	Close()
}
