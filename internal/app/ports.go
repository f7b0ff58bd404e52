package app

import (
	"context"

	"github.com/alexanderramin/blueprint/internal/domain"
)

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type EstimateUseCase interface {
	Estimate(ctx context.Context, req PlanRequest) (*domain.CostEstimate, error)
}

type PhaseUseCase interface {
	Phases(ctx context.Context, req PlanRequest) (*domain.MVPPhaseBreakdown, error)
}

type GapUseCase interface {
	Gaps(ctx context.Context, req PlanRequest) (*GapResponse, error)
}

type MatchUseCase interface {
	Match(ctx context.Context, req MatchRequest) ([]domain.MVPMatch, error)
}

type ImportKnowledgeBaseUseCase interface {
	ImportKnowledgeBase(ctx context.Context, path string) (*ImportResult, error)
}
