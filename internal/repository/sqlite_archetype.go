package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/blueprint/internal/db"
	"github.com/alexanderramin/blueprint/internal/domain"
)

// SQLiteArchetypeRepo implements ArchetypeRepo using a SQLite database.
type SQLiteArchetypeRepo struct {
	db db.DBTX
}

// NewSQLiteArchetypeRepo creates a new SQLiteArchetypeRepo.
func NewSQLiteArchetypeRepo(conn db.DBTX) *SQLiteArchetypeRepo {
	return &SQLiteArchetypeRepo{db: conn}
}

const archetypeColumns = `id, name, category,
	mid_cost_min, mid_cost_max, mid_weeks_min, mid_weeks_max, mid_team_size,
	senior_cost_min, senior_cost_max, senior_weeks_min, senior_weeks_max, senior_team_size`

func (r *SQLiteArchetypeRepo) List(ctx context.Context) ([]domain.Archetype, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+archetypeColumns+` FROM archetypes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing archetypes: %w", err)
	}
	defer rows.Close()

	var archetypes []domain.Archetype
	for rows.Next() {
		a, err := scanArchetype(rows)
		if err != nil {
			return nil, err
		}
		archetypes = append(archetypes, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archetypes: %w", err)
	}
	rows.Close()

	keywords, err := r.listKeywords(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range archetypes {
		archetypes[i].Keywords = keywords[archetypes[i].ID]
	}
	return archetypes, nil
}

func (r *SQLiteArchetypeRepo) GetByID(ctx context.Context, id string) (*domain.Archetype, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+archetypeColumns+` FROM archetypes WHERE id = ?`, id)
	a, err := scanArchetype(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("archetype %q: %w", id, ErrNotFound)
		}
		return nil, err
	}

	keywords, err := r.listKeywords(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Keywords = keywords[id]
	return a, nil
}

func (r *SQLiteArchetypeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archetypes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting archetypes: %w", err)
	}
	return n, nil
}

func (r *SQLiteArchetypeRepo) ReplaceAll(ctx context.Context, archetypes []domain.Archetype) error {
	// Keywords go with their archetype through ON DELETE CASCADE.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM archetypes`); err != nil {
		return fmt.Errorf("clearing archetypes: %w", err)
	}

	for _, a := range archetypes {
		_, err := r.db.ExecContext(ctx, `INSERT INTO archetypes (`+archetypeColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Name, a.Category,
			a.MidTier.Cost.Min, a.MidTier.Cost.Max,
			a.MidTier.TimelineWeeks.Min, a.MidTier.TimelineWeeks.Max, a.MidTier.TeamSize,
			a.Senior.Cost.Min, a.Senior.Cost.Max,
			a.Senior.TimelineWeeks.Min, a.Senior.TimelineWeeks.Max, a.Senior.TeamSize,
		)
		if err != nil {
			return fmt.Errorf("inserting archetype %s: %w", a.ID, err)
		}

		for i, kw := range a.Keywords {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO archetype_keywords (archetype_id, position, keyword) VALUES (?, ?, ?)`,
				a.ID, i, kw)
			if err != nil {
				return fmt.Errorf("inserting keyword for %s: %w", a.ID, err)
			}
		}
	}
	return nil
}

// listKeywords loads keywords grouped by archetype, in stored order. An
// empty id loads every archetype's keywords.
func (r *SQLiteArchetypeRepo) listKeywords(ctx context.Context, id string) (map[string][]string, error) {
	query := `SELECT archetype_id, keyword FROM archetype_keywords ORDER BY archetype_id, position`
	var args []any
	if id != "" {
		query = `SELECT archetype_id, keyword FROM archetype_keywords WHERE archetype_id = ? ORDER BY position`
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing archetype keywords: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var archetypeID, keyword string
		if err := rows.Scan(&archetypeID, &keyword); err != nil {
			return nil, fmt.Errorf("scanning archetype keyword: %w", err)
		}
		out[archetypeID] = append(out[archetypeID], keyword)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archetype keywords: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArchetype(s rowScanner) (*domain.Archetype, error) {
	var a domain.Archetype
	err := s.Scan(
		&a.ID, &a.Name, &a.Category,
		&a.MidTier.Cost.Min, &a.MidTier.Cost.Max,
		&a.MidTier.TimelineWeeks.Min, &a.MidTier.TimelineWeeks.Max, &a.MidTier.TeamSize,
		&a.Senior.Cost.Min, &a.Senior.Cost.Max,
		&a.Senior.TimelineWeeks.Min, &a.Senior.TimelineWeeks.Max, &a.Senior.TeamSize,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning archetype: %w", err)
	}
	return &a, nil
}
