package badgerdb

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/core/ports"
	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

const storeDir = "countdown"

type repoManager struct {
	store  *badgerhold.Store
	stopGC func()

	gameRepo         domain.GameRepository
	blacklistRepo    domain.BlacklistRepository
	ledgerRepo       domain.LedgerRepository
	notificationRepo domain.NotificationRepository
}

// NewRepoManager opens the badger store shared by all repositories. It
// expects the base directory (empty for an in-memory store) and an optional
// badger.Logger.
func NewRepoManager(config ...interface{}) (ports.RepoManager, error) {
	if len(config) != 2 {
		return nil, fmt.Errorf("invalid config")
	}
	baseDir, ok := config[0].(string)
	if !ok {
		return nil, fmt.Errorf("invalid base directory")
	}
	var logger badger.Logger
	if config[1] != nil {
		logger, ok = config[1].(badger.Logger)
		if !ok {
			return nil, fmt.Errorf("invalid logger")
		}
	}

	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, storeDir)
	}
	store, stopGC, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open countdown store: %s", err)
	}

	return &repoManager{
		store:            store,
		stopGC:           stopGC,
		gameRepo:         &gameRepository{store},
		blacklistRepo:    &blacklistRepository{store},
		ledgerRepo:       &ledgerRepository{store},
		notificationRepo: &notificationRepository{store},
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
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}
	return m.store.Badger().Update(func(tx *badger.Txn) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

func (m *repoManager) Close() {
	m.stopGC()
	// nolint:errcheck
	m.store.Close()
}
