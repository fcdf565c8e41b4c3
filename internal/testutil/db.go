// Package testutil opens throwaway catalog databases for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/database"
)

// NewTestDB returns a migrated in-memory SQLite database. The pool is pinned
// to a single connection because every :memory: connection is its own database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	return open(t, config.DatabaseConfig{
		Driver:       "sqlite",
		SQLitePath:   ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
}

// NewFileTestDB returns a migrated SQLite database in a temp file, shared by
// up to conns connections so transactions can run side by side.
func NewFileTestDB(t testing.TB, conns int) *gorm.DB {
	t.Helper()

	return open(t, config.DatabaseConfig{
		Driver:       "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "catalog.db"),
		MaxOpenConns: conns,
		MaxIdleConns: conns,
		LogLevel:     "silent",
	})
}

func open(t testing.TB, cfg config.DatabaseConfig) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(cfg)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	t.Cleanup(func() { database.Close(db) })
	return db
}
