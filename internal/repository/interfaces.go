package repository

import (
	"context"

	"github.com/alexanderramin/blueprint/internal/domain"
)

type ArchetypeRepo interface {
	List(ctx context.Context) ([]domain.Archetype, error)
	GetByID(ctx context.Context, id string) (*domain.Archetype, error)
	Count(ctx context.Context) (int, error)
	// ReplaceAll swaps the stored archetypes for the given set. Run it inside
	// a transaction so readers never observe a half-written catalog.
	ReplaceAll(ctx context.Context, archetypes []domain.Archetype) error
}

type FeatureCatalogRepo interface {
	List(ctx context.Context, includeHidden bool) ([]domain.CatalogFeature, error)
	ReplaceAll(ctx context.Context, features []domain.CatalogFeature) error
	SetHidden(ctx context.Context, id string, hidden bool) error
}

type KBImportRepo interface {
	Create(ctx context.Context, imp *domain.KBImport) error
	Latest(ctx context.Context) (*domain.KBImport, error)
	List(ctx context.Context, limit int) ([]*domain.KBImport, error)
}
