// Package dbtest opens throwaway in-memory databases with the full schema for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"foodmenu_server/database"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"
)

// Open returns a fresh in-memory sqlite database with every table created and foreign keys enforced.
// A single connection is used so the memory database lives as long as the handle.
func Open(t testing.TB) *database.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := database.Wrap(bun.NewDB(sqldb, sqlitedialect.New()), gecho.NewDefaultLogger(), 0)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.CreateSchema(context.Background(), db))
	return db
}
