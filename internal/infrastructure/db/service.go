package db

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ark-network/countdown/internal/core/ports"
	badgerdb "github.com/ark-network/countdown/internal/infrastructure/db/badger"
	sqlitedb "github.com/ark-network/countdown/internal/infrastructure/db/sqlite"
	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

var storeTypes = map[string]func(...interface{}) (ports.RepoManager, error){
	"badger": badgerdb.NewRepoManager,
	"sqlite": newSqliteRepoManager,
}

const (
	sqliteDbFile = "sqlite.db"
)

type ServiceConfig struct {
	DataStoreType string

	// For badger: base dir (empty for in-memory) and an optional logger.
	// For sqlite: base dir.
	DataStoreConfig []interface{}
}

func NewService(config ServiceConfig) (ports.RepoManager, error) {
	storeFactory, ok := storeTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}

	repoManager, err := storeFactory(config.DataStoreConfig...)
	if err != nil {
		return nil, fmt.Errorf("failed to create data store: %w", err)
	}
	return repoManager, nil
}

func newSqliteRepoManager(config ...interface{}) (ports.RepoManager, error) {
	if len(config) != 1 {
		return nil, errors.New("invalid config")
	}
	baseDir, ok := config[0].(string)
	if !ok {
		return nil, errors.New("invalid config")
	}

	db, err := sqlitedb.OpenDb(filepath.Join(baseDir, sqliteDbFile))
	if err != nil {
		return nil, err
	}

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqlite driver: %w", err)
	}
	source, err := iofs.New(sqlitedb.Migrations, "migration")
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("failed to migrate sqlite: %w", err)
	}

	return sqlitedb.NewRepoManager(db)
}
