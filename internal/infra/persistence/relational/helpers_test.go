package relational

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"botauth/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSQLiteConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "botauth.db"),
		},
	}
}

// newTestDB opens a migrated SQLite database that lives for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(newSQLiteConfig(t), newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
