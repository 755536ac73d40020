package db

import (
	"path/filepath"
	"testing"

	"github.com/linskybing/catalyst/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	config.SQLitePath = "data/catalyst.db"
	config.DbHost, config.DbPort, config.DbUser, config.DbPassword, config.DbName = "db", "5432", "u", "p", "catalyst"

	assert.Equal(t, "data/catalyst.db", DSN(config.BackendSQLite))
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=catalyst sslmode=disable", DSN(config.BackendPostgres))
}

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalyst.db")
	gdb, err := Open(config.BackendSQLite, path)
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, AutoMigrate(gdb))
	assert.True(t, gdb.Migrator().HasTable("ticket_labels"))
	assert.True(t, gdb.Migrator().HasTable("audit_logs"))
}

func TestOpenUnsupportedBackend(t *testing.T) {
	_, err := Open(config.BackendFirestore, "")
	assert.ErrorContains(t, err, "unsupported relational backend")
}
