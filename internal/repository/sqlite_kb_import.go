package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/blueprint/internal/db"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/google/uuid"
)

// SQLiteKBImportRepo implements KBImportRepo using a SQLite database.
type SQLiteKBImportRepo struct {
	db db.DBTX
}

// NewSQLiteKBImportRepo creates a new SQLiteKBImportRepo.
func NewSQLiteKBImportRepo(conn db.DBTX) *SQLiteKBImportRepo {
	return &SQLiteKBImportRepo{db: conn}
}

// Create stores an import record, filling in the ID and timestamp when unset.
func (r *SQLiteKBImportRepo) Create(ctx context.Context, imp *domain.KBImport) error {
	if imp.ID == "" {
		imp.ID = uuid.New().String()
	}
	var importedAt string
	imp.ImportedAt, importedAt = importStamp(imp.ImportedAt)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kb_imports (id, source, archetype_count, feature_count, imported_at) VALUES (?, ?, ?, ?, ?)`,
		imp.ID, imp.Source, imp.ArchetypeCount, imp.FeatureCount, importedAt)
	if err != nil {
		return fmt.Errorf("inserting kb import: %w", err)
	}
	return nil
}

func (r *SQLiteKBImportRepo) Latest(ctx context.Context) (*domain.KBImport, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, source, archetype_count, feature_count, imported_at
		FROM kb_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`)
	imp, err := scanKBImport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("kb import: %w", ErrNotFound)
		}
		return nil, err
	}
	return imp, nil
}

// List returns the most recent imports first. A non-positive limit returns all.
func (r *SQLiteKBImportRepo) List(ctx context.Context, limit int) ([]*domain.KBImport, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id, source, archetype_count, feature_count, imported_at
		FROM kb_imports ORDER BY imported_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing kb imports: %w", err)
	}
	defer rows.Close()

	var imports []*domain.KBImport
	for rows.Next() {
		imp, err := scanKBImport(rows)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating kb imports: %w", err)
	}
	return imports, nil
}

func scanKBImport(s rowScanner) (*domain.KBImport, error) {
	var imp domain.KBImport
	var importedAt string
	if err := s.Scan(&imp.ID, &imp.Source, &imp.ArchetypeCount, &imp.FeatureCount, &importedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning kb import: %w", err)
	}
	t, err := parseImportStamp(importedAt)
	if err != nil {
		return nil, err
	}
	imp.ImportedAt = t
	return &imp, nil
}
