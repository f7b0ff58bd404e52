package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/archetype"
	"github.com/alexanderramin/blueprint/internal/db"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/alexanderramin/blueprint/internal/importer"
	"github.com/alexanderramin/blueprint/internal/repository"
)

// SeedSource is the import source recorded for the built-in knowledge base.
const SeedSource = "seed"

type catalogService struct {
	archetypes repository.ArchetypeRepo
	features   repository.FeatureCatalogRepo
	imports    repository.KBImportRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver

	mu sync.Mutex
	kb *archetype.KnowledgeBase
}

func NewCatalogService(
	archetypes repository.ArchetypeRepo,
	features repository.FeatureCatalogRepo,
	imports repository.KBImportRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		archetypes: archetypes,
		features:   features,
		imports:    imports,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// KnowledgeBase returns the stored knowledge base, seeding the store from
// the built-in catalog when nothing has ever been imported. The result is
// cached until the next import or visibility change.
func (s *catalogService) KnowledgeBase(ctx context.Context) (*archetype.KnowledgeBase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kb != nil {
		return s.kb, nil
	}
	if err := s.ensureSeeded(ctx); err != nil {
		return nil, err
	}

	archetypes, err := s.archetypes.List(ctx)
	if err != nil {
		return nil, err
	}
	features, err := s.features.List(ctx, true)
	if err != nil {
		return nil, err
	}
	s.kb = archetype.NewKnowledgeBase(archetypes, features)
	return s.kb, nil
}

func (s *catalogService) ensureSeeded(ctx context.Context) error {
	_, err := s.imports.Latest(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	seed, err := importer.Seed()
	if err != nil {
		return fmt.Errorf("loading built-in knowledge base: %w", err)
	}
	_, err = s.replace(ctx, seed, SeedSource)
	return err
}

func (s *catalogService) ImportKnowledgeBase(ctx context.Context, path string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": path}
	defer func() { observe(ctx, s.observer, "import-knowledge-base", startedAt, fields, err) }()

	file, err := importer.LoadKnowledgeBase(path)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The seed stays the first history entry even when the store is new.
	if err = s.ensureSeeded(ctx); err != nil {
		return nil, err
	}
	result, err = s.replace(ctx, file, path)
	if err != nil {
		return nil, err
	}
	s.kb = nil
	fields["archetype_count"] = result.ArchetypeCount
	fields["feature_count"] = result.FeatureCount
	return result, nil
}

// replace validates file and swaps it in as the whole stored knowledge base
// in one transaction.
func (s *catalogService) replace(ctx context.Context, file *importer.KnowledgeBaseFile, source string) (*app.ImportResult, error) {
	if errs := importer.ValidateKnowledgeBase(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	archetypes, features := importer.Convert(file)

	record := &domain.KBImport{
		Source:         source,
		ArchetypeCount: len(archetypes),
		FeatureCount:   len(features),
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteArchetypeRepo(tx).ReplaceAll(ctx, archetypes); err != nil {
			return err
		}
		if err := repository.NewSQLiteFeatureCatalogRepo(tx).ReplaceAll(ctx, features); err != nil {
			return err
		}
		return repository.NewSQLiteKBImportRepo(tx).Create(ctx, record)
	})
	if err != nil {
		return nil, fmt.Errorf("importing knowledge base: %w", err)
	}

	return &app.ImportResult{
		Import:         record,
		ArchetypeCount: len(archetypes),
		FeatureCount:   len(features),
	}, nil
}

// ListArchetypes lists archetypes, optionally restricted to one category
// (case-insensitive).
func (s *catalogService) ListArchetypes(ctx context.Context, category string) ([]domain.Archetype, error) {
	kb, err := s.KnowledgeBase(ctx)
	if err != nil {
		return nil, err
	}
	all := kb.Archetypes()
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return all, nil
	}
	var filtered []domain.Archetype
	for _, a := range all {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (s *catalogService) ListFeatures(ctx context.Context, includeHidden bool) ([]domain.CatalogFeature, error) {
	kb, err := s.KnowledgeBase(ctx)
	if err != nil {
		return nil, err
	}
	all := kb.Features()
	if includeHidden {
		return all, nil
	}
	visible := all[:0]
	for _, f := range all {
		if !f.Hidden {
			visible = append(visible, f)
		}
	}
	return visible, nil
}

func (s *catalogService) SetFeatureHidden(ctx context.Context, id string, hidden bool) error {
	if _, err := s.KnowledgeBase(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.features.SetHidden(ctx, id, hidden); err != nil {
		return err
	}
	s.kb = nil
	return nil
}

// ImportHistory lists imports newest first. The seed import counts, so a
// fresh store reports one entry.
func (s *catalogService) ImportHistory(ctx context.Context, limit int) ([]*domain.KBImport, error) {
	if _, err := s.KnowledgeBase(ctx); err != nil {
		return nil, err
	}
	return s.imports.List(ctx, limit)
}
