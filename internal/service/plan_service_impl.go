package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/archetype"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/alexanderramin/blueprint/internal/estimate"
	"github.com/alexanderramin/blueprint/internal/gap"
	"github.com/alexanderramin/blueprint/internal/phase"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type planService struct {
	catalog  KnowledgeBaseSource
	hours    *estimate.HourModel
	phases   *phase.Classifier
	gaps     *gap.Analyzer
	logger   *slog.Logger
	observer UseCaseObserver
}

var (
	_ app.PlanUseCase     = (*planService)(nil)
	_ app.EstimateUseCase = (*planService)(nil)
	_ app.GapUseCase      = (*planService)(nil)
)

// NewPlanService wires the estimation engine against a knowledge-base
// source. A nil logger discards the archetype-match signal.
func NewPlanService(catalog KnowledgeBaseSource, logger *slog.Logger, observers ...UseCaseObserver) PlanService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	hours := estimate.NewHourModel(estimate.DefaultTables())
	return &planService{
		catalog:  catalog,
		hours:    hours,
		phases:   phase.NewClassifier(hours),
		gaps:     gap.NewAnalyzer(),
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Plan runs the cost estimate, archetype match and phase classification in
// parallel, then grades the gaps against the estimate.
func (s *planService) Plan(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	requestID := uuid.New().String()
	fields := requestFields(requestID, req)
	defer func() { observe(ctx, s.observer, "plan", startedAt, fields, err) }()

	in, kb, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	matcher := archetype.NewMatcher(kb)

	var (
		est       domain.CostEstimate
		matches   []domain.MVPMatch
		breakdown domain.MVPPhaseBreakdown
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		est = s.estimator(matcher, requestID).GetCostEstimate(estimateRequest(in))
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		matches = matcher.Match(in.Description, in.Features, in.Categories)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		breakdown = s.phases.Classify(phaseRequest(in))
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	resp = &app.PlanResponse{
		RequestID: requestID,
		Features:  in.Features,
		Estimate:  est,
		Phases:    breakdown,
		Gaps:      s.gaps.Analyze(gapInput(in, est)),
		Matches:   matches,
	}
	if len(matches) > 0 && matches[0].Confidence > archetype.MatchThreshold {
		best := matches[0]
		resp.Archetype = &best
		fields["archetype_id"] = best.ID
	}
	fields["overall_severity"] = string(resp.Gaps.OverallSeverity)
	return resp, nil
}

func (s *planService) Estimate(ctx context.Context, req app.PlanRequest) (est *domain.CostEstimate, err error) {
	startedAt := time.Now().UTC()
	requestID := uuid.New().String()
	fields := requestFields(requestID, req)
	defer func() { observe(ctx, s.observer, "estimate", startedAt, fields, err) }()

	in, kb, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	result := s.estimator(archetype.NewMatcher(kb), requestID).GetCostEstimate(estimateRequest(in))
	fields["budget_min"] = result.BudgetMin
	return &result, nil
}

func (s *planService) Phases(ctx context.Context, req app.PlanRequest) (b *domain.MVPPhaseBreakdown, err error) {
	startedAt := time.Now().UTC()
	fields := requestFields(uuid.New().String(), req)
	defer func() { observe(ctx, s.observer, "phases", startedAt, fields, err) }()

	in, _, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	result := s.phases.Classify(phaseRequest(in))
	fields["mvp_count"] = len(result.MVPFeatures)
	return &result, nil
}

func (s *planService) Gaps(ctx context.Context, req app.PlanRequest) (resp *app.GapResponse, err error) {
	startedAt := time.Now().UTC()
	requestID := uuid.New().String()
	fields := requestFields(requestID, req)
	defer func() { observe(ctx, s.observer, "gaps", startedAt, fields, err) }()

	in, kb, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	est := s.estimator(archetype.NewMatcher(kb), requestID).GetCostEstimate(estimateRequest(in))
	analysis := s.gaps.Analyze(gapInput(in, est))
	fields["overall_severity"] = string(analysis.OverallSeverity)
	return &app.GapResponse{Estimate: est, Gaps: analysis}, nil
}

func (s *planService) Match(ctx context.Context, req app.MatchRequest) (matches []domain.MVPMatch, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"request_id":    uuid.New().String(),
		"feature_count": len(req.Features),
	}
	defer func() { observe(ctx, s.observer, "match", startedAt, fields, err) }()

	kb, err := s.catalog.KnowledgeBase(ctx)
	if err != nil {
		return nil, err
	}
	matches = archetype.NewMatcher(kb).Match(req.Description, kb.ResolveFeatures(req.Features), req.Categories)
	fields["match_count"] = len(matches)
	return matches, nil
}

// prepare validates the request and resolves catalog feature IDs to names.
func (s *planService) prepare(ctx context.Context, req app.PlanRequest) (validatedRequest, *archetype.KnowledgeBase, error) {
	in, err := validatePlanRequest(req)
	if err != nil {
		return validatedRequest{}, nil, err
	}
	kb, err := s.catalog.KnowledgeBase(ctx)
	if err != nil {
		return validatedRequest{}, nil, err
	}
	in.Features = kb.ResolveFeatures(req.Features)
	return in, kb, nil
}

func (s *planService) estimator(matcher *archetype.Matcher, requestID string) *estimate.Estimator {
	return estimate.NewEstimator(s.hours,
		estimate.WithMatcher(matcher),
		estimate.WithLogger(s.logger.With("request_id", requestID)),
	)
}

func estimateRequest(in validatedRequest) estimate.Request {
	return estimate.Request{
		Route:       in.route,
		Complexity:  in.complexity,
		Features:    in.Features,
		Description: in.Description,
		Timeline:    in.Timeline,
	}
}

func phaseRequest(in validatedRequest) phase.Request {
	return phase.Request{
		Features:    in.Features,
		Description: in.Description,
		ProductType: in.ProductType,
		Route:       in.route,
		Complexity:  in.complexity,
		HourlyRate:  in.HourlyRate,
	}
}

func gapInput(in validatedRequest, est domain.CostEstimate) gap.Input {
	return gap.Input{
		Estimate:     est,
		FeatureCount: estimate.FeatureCount(in.Features),
		Budget:       in.Budget,
		Timeline:     in.Timeline,
		TeamSize:     in.TeamSize,
	}
}

func requestFields(requestID string, req app.PlanRequest) map[string]any {
	return map[string]any{
		"request_id":    requestID,
		"route":         req.Route,
		"complexity":    req.Complexity,
		"feature_count": len(req.Features),
	}
}
