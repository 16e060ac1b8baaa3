// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/MyelinBots/ecochat-go/internal/db"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories"
)

var seq atomic.Uint64

// New returns a migrated sqlite database private to t. It is closed on cleanup.
func New(t testing.TB) *db.DB {
	t.Helper()

	// named shared-cache memory db so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:ecochat_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq.Add(1))

	database, err := db.OpenDialector(context.Background(), sqlite.Open(dsn))
	require.NoError(t, err)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repositories.AutoMigrate(context.Background(), database))

	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// NewWithCatalog is New plus the default task catalog.
func NewWithCatalog(t testing.TB) *db.DB {
	t.Helper()

	database := New(t)
	require.NoError(t, repositories.SeedCatalog(context.Background(), database))
	return database
}
