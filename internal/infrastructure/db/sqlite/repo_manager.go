package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	"github.com/ark-network/countdown/internal/infrastructure/db/sqlite/sqlc/queries"
)

type repoManager struct {
	db *sql.DB

	gameRepo         domain.GameRepository
	blacklistRepo    domain.BlacklistRepository
	ledgerRepo       domain.LedgerRepository
	notificationRepo domain.NotificationRepository
}

// NewRepoManager expects an opened and migrated *sql.DB.
func NewRepoManager(config ...interface{}) (ports.RepoManager, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config")
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("cannot open repo manager: invalid config, expected db at 0")
	}

	querier := queries.New(db)
	return &repoManager{
		db:               db,
		gameRepo:         &gameRepository{querier},
		blacklistRepo:    &blacklistRepository{querier},
		ledgerRepo:       &ledgerRepository{querier},
		notificationRepo: &notificationRepository{querier},
	}, nil
}

func (m *repoManager) Game() domain.GameRepository {
	return m.gameRepo
}

func (m *repoManager) Blacklist() domain.BlacklistRepository {
	return m.blacklistRepo
}

func (m *repoManager) Ledger() domain.LedgerRepository {
	return m.ledgerRepo
}

func (m *repoManager) Notifications() domain.NotificationRepository {
	return m.notificationRepo
}

func (m *repoManager) RunTx(
	ctx context.Context, fn func(ctx context.Context) error,
) error {
	if ctx.Value("tx") != nil {
		return fn(ctx)
	}
	return execTx(ctx, m.db, fn)
}

func (m *repoManager) Close() {
	_ = m.db.Close()
}
