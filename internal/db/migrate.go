package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The store only holds reference data: the archetype knowledge base and the
// feature catalog. Estimates are never written.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS archetypes (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		category         TEXT NOT NULL,
		mid_cost_min     INTEGER NOT NULL DEFAULT 0,
		mid_cost_max     INTEGER NOT NULL DEFAULT 0,
		mid_weeks_min    INTEGER NOT NULL DEFAULT 0,
		mid_weeks_max    INTEGER NOT NULL DEFAULT 0,
		mid_team_size    INTEGER NOT NULL DEFAULT 0,
		senior_cost_min  INTEGER NOT NULL DEFAULT 0,
		senior_cost_max  INTEGER NOT NULL DEFAULT 0,
		senior_weeks_min INTEGER NOT NULL DEFAULT 0,
		senior_weeks_max INTEGER NOT NULL DEFAULT 0,
		senior_team_size INTEGER NOT NULL DEFAULT 0,
		CHECK(mid_cost_min <= mid_cost_max),
		CHECK(senior_cost_min <= senior_cost_max)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_archetypes_category ON archetypes(category)`,

	`CREATE TABLE IF NOT EXISTS archetype_keywords (
		archetype_id TEXT NOT NULL REFERENCES archetypes(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		keyword      TEXT NOT NULL,
		PRIMARY KEY (archetype_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS feature_catalog (
		id       TEXT PRIMARY KEY,
		label    TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS kb_imports (
		id              TEXT PRIMARY KEY,
		source          TEXT NOT NULL,
		archetype_count INTEGER NOT NULL DEFAULT 0,
		feature_count   INTEGER NOT NULL DEFAULT 0,
		imported_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_kb_imports_imported_at ON kb_imports(imported_at)`,

	// Catalog entries can be hidden from pickers without breaking old IDs.
	`ALTER TABLE feature_catalog ADD COLUMN hidden INTEGER NOT NULL DEFAULT 0`,
}
