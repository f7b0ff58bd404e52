package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"archetypes", "archetype_keywords", "feature_catalog", "kb_imports"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_archetypes_category", "idx_kb_imports_imported_at"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_FeatureCatalogHiddenColumn(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO feature_catalog (id, label) VALUES ('auth', 'user authentication')`)
	require.NoError(t, err)

	var hidden int
	require.NoError(t, db.QueryRow(`SELECT hidden FROM feature_catalog WHERE id = 'auth'`).Scan(&hidden))
	assert.Zero(t, hidden)
}

func TestMigrate_KeywordsCascadeWithArchetype(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO archetypes (id, name, category) VALUES ('store', 'Online Store', 'e-commerce')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO archetype_keywords (archetype_id, position, keyword) VALUES ('store', 0, 'cart')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM archetypes WHERE id = 'store'`)
	require.NoError(t, err)

	assert.Zero(t, countRows(t, db, "archetype_keywords"))
}

func TestMigrate_RejectsInvertedCostRange(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO archetypes (id, name, category, mid_cost_min, mid_cost_max) VALUES ('x', 'X', 'saas', 10, 5)`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "blueprint.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
