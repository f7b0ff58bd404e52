package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/blueprint/internal/db"
	"github.com/alexanderramin/blueprint/internal/domain"
)

// SQLiteFeatureCatalogRepo implements FeatureCatalogRepo using a SQLite database.
type SQLiteFeatureCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteFeatureCatalogRepo creates a new SQLiteFeatureCatalogRepo.
func NewSQLiteFeatureCatalogRepo(conn db.DBTX) *SQLiteFeatureCatalogRepo {
	return &SQLiteFeatureCatalogRepo{db: conn}
}

func (r *SQLiteFeatureCatalogRepo) List(ctx context.Context, includeHidden bool) ([]domain.CatalogFeature, error) {
	query := `SELECT id, label, hidden FROM feature_catalog WHERE hidden = 0 ORDER BY position, id`
	if includeHidden {
		query = `SELECT id, label, hidden FROM feature_catalog ORDER BY position, id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing feature catalog: %w", err)
	}
	defer rows.Close()

	var features []domain.CatalogFeature
	for rows.Next() {
		var f domain.CatalogFeature
		var hidden int
		if err := rows.Scan(&f.ID, &f.Label, &hidden); err != nil {
			return nil, fmt.Errorf("scanning catalog feature: %w", err)
		}
		f.Hidden = hidden != 0
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feature catalog: %w", err)
	}
	return features, nil
}

// ReplaceAll stores the features in the given order. Hidden flags are kept
// for IDs that survive the replacement.
func (r *SQLiteFeatureCatalogRepo) ReplaceAll(ctx context.Context, features []domain.CatalogFeature) error {
	hidden := make(map[string]bool)
	existing, err := r.List(ctx, true)
	if err != nil {
		return err
	}
	for _, f := range existing {
		hidden[f.ID] = f.Hidden
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM feature_catalog`); err != nil {
		return fmt.Errorf("clearing feature catalog: %w", err)
	}
	for i, f := range features {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO feature_catalog (id, label, position, hidden) VALUES (?, ?, ?, ?)`,
			f.ID, f.Label, i, hiddenFlag(f.Hidden || hidden[f.ID]))
		if err != nil {
			return fmt.Errorf("inserting catalog feature %s: %w", f.ID, err)
		}
	}
	return nil
}

func (r *SQLiteFeatureCatalogRepo) SetHidden(ctx context.Context, id string, hidden bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE feature_catalog SET hidden = ? WHERE id = ?`, hiddenFlag(hidden), id)
	if err != nil {
		return fmt.Errorf("updating catalog feature: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("catalog feature %q: %w", id, ErrNotFound)
	}
	return nil
}
