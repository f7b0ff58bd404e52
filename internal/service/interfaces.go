package service

import (
	"context"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/archetype"
	"github.com/alexanderramin/blueprint/internal/domain"
)

type PlanService interface {
	app.PlanUseCase
	app.EstimateUseCase
	app.PhaseUseCase
	app.GapUseCase
	app.MatchUseCase
}

type CatalogService interface {
	KnowledgeBaseSource
	app.ImportKnowledgeBaseUseCase
	ListArchetypes(ctx context.Context, category string) ([]domain.Archetype, error)
	ListFeatures(ctx context.Context, includeHidden bool) ([]domain.CatalogFeature, error)
	SetFeatureHidden(ctx context.Context, id string, hidden bool) error
	ImportHistory(ctx context.Context, limit int) ([]*domain.KBImport, error)
}

// KnowledgeBaseSource supplies the archetype catalog a plan runs against.
type KnowledgeBaseSource interface {
	KnowledgeBase(ctx context.Context) (*archetype.KnowledgeBase, error)
}

type staticKnowledgeBase struct {
	kb *archetype.KnowledgeBase
}

// StaticKnowledgeBase serves a fixed, already-built knowledge base.
func StaticKnowledgeBase(kb *archetype.KnowledgeBase) KnowledgeBaseSource {
	return staticKnowledgeBase{kb: kb}
}

func (s staticKnowledgeBase) KnowledgeBase(context.Context) (*archetype.KnowledgeBase, error) {
	return s.kb, nil
}
