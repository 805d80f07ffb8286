package relational

import (
	"context"
	"database/sql"
	"sync"

	"botauth/config"
	"botauth/internal/errors"
	"botauth/internal/infra/persistence/relational/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded migrations for driver.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	dialect, dir, err := migrationTarget(driver)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrapf(err, "goose dialect %s", dialect)
	}

	if err := gooseUpContext(ctx, sqlDB, dir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

func migrationTarget(driver string) (dialect, dir string, err error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", "sqlite", nil
	default:
		return "", "", errors.Errorf("no migrations for driver %q", driver)
	}
}
