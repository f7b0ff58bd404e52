package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/blueprint/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory store that is closed with the test.
// It starts empty: the built-in knowledge base is seeded by the catalog
// service on first use, not here.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory store")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
