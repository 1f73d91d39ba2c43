package sqlitedb

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ark-network/countdown/internal/core/domain"
	"github.com/ark-network/countdown/internal/infrastructure/db/sqlite/sqlc/queries"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
)

//go:embed migration/*.sql
var Migrations embed.FS

func OpenDb(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create directory: %v", err)
		}
	}

	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	db.SetMaxOpenConns(1) // prevent concurrent writes

	return db, nil
}

func execTx(
	ctx context.Context,
	db *sql.DB,
	txBody func(context.Context) error,
) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollbackErr := tx.Rollback()
			if rollbackErr != nil {
				err = fmt.Errorf("panic: %v, rollback error: %w", p, rollbackErr)
			}
			panic(p) // Re-throw after rollback
		} else if err != nil {
			rollbackErr := tx.Rollback()
			if rollbackErr != nil {
				err = fmt.Errorf("original error: %w, rollback error: %v", err, rollbackErr)
			}
		}
	}()

	if err = txBody(context.WithValue(ctx, "tx", tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// querierFor returns a querier bound to the transaction carried by ctx, if
// any.
func querierFor(ctx context.Context, querier *queries.Queries) *queries.Queries {
	if ctx.Value("tx") == nil {
		return querier
	}
	tx, ok := ctx.Value("tx").(*sql.Tx)
	if !ok {
		return querier
	}
	return querier.WithTx(tx)
}

func parseIdentity(str string) (domain.Identity, error) {
	if len(str) <= 0 {
		return domain.ZeroIdentity, nil
	}
	return domain.ParseIdentity(str)
}

func formatIdentity(id domain.Identity) string {
	if domain.IsEmptyIdentity(id) {
		return ""
	}
	return id.Hex()
}
