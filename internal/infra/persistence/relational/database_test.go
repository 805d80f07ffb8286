package relational

import (
	"context"
	"database/sql"
	"testing"

	"botauth/config"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{Database: config.DatabaseConfig{Driver: "oracle"}}, newDiscardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_InMemorySQLite(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}}

	db, err := Open(cfg, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	count, err := NewConfigRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:", sqliteDSN(":memory:"))
	assert.Equal(t, "bot.db?_busy_timeout=5000&_txlock=immediate", sqliteDSN("bot.db"))
	assert.Equal(t, "file:bot.db?cache=shared", sqliteDSN("file:bot.db?cache=shared"))
}

func TestMigrate_CreatesTablesAndIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))

	assert.True(t, db.Migrator().HasTable("configs"))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasColumn("users", "is_superuser"))
	assert.True(t, db.Migrator().HasColumn("configs", "superuser_password"))
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := newTestDB(t)

	err := Migrate(context.Background(), db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no migrations for driver")
}

func TestMigrate_PostgresTarget(t *testing.T) {
	db := newTestDB(t)

	var gotDir string
	orig := gooseUpContext
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}
	defer func() { gooseUpContext = orig }()

	require.NoError(t, Migrate(context.Background(), db, config.DriverPostgres))
	assert.Equal(t, "postgres", gotDir)
}
