// Package relational contains the concrete implementation of the persistence layer using GORM,
// backed by PostgreSQL in production and SQLite for single-node deployments and tests.
package relational

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"botauth/config"
	"botauth/internal/domain/lifecycle"
	"botauth/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	sqliteMemory = ":memory:"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database and ties its lifetime to the fx application.
// Migrations run on start when database.autoMigrate is set.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if params.Config.Database.AutoMigrate {
				if err := Migrate(ctx, db, params.Config.Database.Driver); err != nil {
					return err
				}
				params.Logger.Info("Database migrations applied", slog.String("driver", params.Config.Database.Driver))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the backend selected by database.driver without any lifecycle management.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(logger, cfg)

	var db *gorm.DB
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		var err error
		db, err = gorm.Open(sqlite.Open(sqliteDSN(cfg.Database.SQLitePath)), &gorm.Config{
			Logger:         gormLogger,
			TranslateError: true,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}

		if cfg.Database.SQLitePath == sqliteMemory {
			sqlDB, err := db.DB()
			if err != nil {
				return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
			}
			// Every connection to :memory: is a separate database.
			sqlDB.SetMaxOpenConns(1)
		}
	case config.DriverPostgres:
		var err error
		db, err = pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db.TranslateError = true
	default:
		return nil, errors.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return db.Session(&gorm.Session{
		// Explicit transactions go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	}), nil
}

// sqliteDSN adds a busy timeout and immediate write locks so concurrent transactions queue
// instead of failing with SQLITE_BUSY. DSNs that already carry parameters are left alone.
func sqliteDSN(path string) string {
	if path == sqliteMemory || strings.Contains(path, "?") {
		return path
	}

	return path + "?_busy_timeout=5000&_txlock=immediate"
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)

		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
}
