package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marketplaceRequest() app.PlanRequest {
	return app.PlanRequest{
		Route:       "custom",
		Complexity:  "medium",
		Features:    []string{"auth", "listings", "payments"},
		Description: "a marketplace where buyers and sellers trade vintage items",
		Budget:      "$10,000 - $20,000",
		Timeline:    "Standard (3-4 months)",
		TeamSize:    "Just me",
	}
}

func TestPlanService_Plan_ResolvesCatalogIDs(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)

	resp, err := svc.Plan(context.Background(), marketplaceRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"user authentication", "product listings", "payment processing"}, resp.Features)
	assert.NotEmpty(t, resp.RequestID)
	assert.Len(t, resp.Phases.AllFeatures(), 3)
	assert.Equal(t, domain.ProductMarketplace, resp.Phases.ProductType)
}

func TestPlanService_Plan_RecognizesArchetype(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)

	resp, err := svc.Plan(context.Background(), marketplaceRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.Archetype)
	assert.Equal(t, "two-sided-marketplace", resp.Archetype.ID)
	require.NotEmpty(t, resp.Matches)
	assert.Equal(t, resp.Matches[0], *resp.Archetype)
}

func TestPlanService_Plan_NoArchetypeBelowThreshold(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)
	req := marketplaceRequest()
	req.Description = "tool for tracking my houseplants"
	req.Features = []string{"settings"}

	resp, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Archetype)
}

func TestPlanService_Plan_MatchesIndividualUseCases(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)
	ctx := context.Background()
	req := marketplaceRequest()

	plan, err := svc.Plan(ctx, req)
	require.NoError(t, err)

	est, err := svc.Estimate(ctx, req)
	require.NoError(t, err)
	phases, err := svc.Phases(ctx, req)
	require.NoError(t, err)
	gaps, err := svc.Gaps(ctx, req)
	require.NoError(t, err)
	matches, err := svc.Match(ctx, app.MatchRequest{Description: req.Description, Features: req.Features})
	require.NoError(t, err)

	assert.Equal(t, *est, plan.Estimate)
	assert.Equal(t, *phases, plan.Phases)
	assert.Equal(t, gaps.Gaps, plan.Gaps)
	assert.Equal(t, gaps.Estimate, plan.Estimate)
	assert.Equal(t, matches, plan.Matches)
}

func TestPlanService_Plan_ConcurrentCallsAgree(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)
	ctx := context.Background()

	want, err := svc.Plan(ctx, marketplaceRequest())
	require.NoError(t, err)

	const workers = 8
	results := make([]*app.PlanResponse, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Plan(ctx, marketplaceRequest())
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Estimate, results[i].Estimate)
		assert.Equal(t, want.Phases, results[i].Phases)
		assert.Equal(t, want.Gaps, results[i].Gaps)
		assert.NotEqual(t, want.RequestID, results[i].RequestID)
	}
}

func TestPlanService_RejectsInvalidInput(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)

	tests := []struct {
		name   string
		mutate func(*app.PlanRequest)
		code   app.PlanErrorCode
	}{
		{"unknown route", func(r *app.PlanRequest) { r.Route = "low-code" }, app.ErrInvalidRoute},
		{"empty route", func(r *app.PlanRequest) { r.Route = "" }, app.ErrInvalidRoute},
		{"unknown complexity", func(r *app.PlanRequest) { r.Complexity = "extreme" }, app.ErrInvalidComplexity},
		{"negative rate", func(r *app.PlanRequest) { r.HourlyRate = -5 }, app.ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := marketplaceRequest()
			tt.mutate(&req)

			_, err := svc.Plan(context.Background(), req)
			var planErr *app.PlanError
			require.True(t, errors.As(err, &planErr), "want PlanError, got %v", err)
			assert.Equal(t, tt.code, planErr.Code)
		})
	}
}

func TestPlanService_AcceptsRouteSpellings(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)
	req := marketplaceRequest()
	req.Route = "No Code"
	req.Complexity = " LOW "

	est, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.RouteNoCode, est.Route)
	assert.Equal(t, domain.ComplexityLow, est.Complexity)
}

func TestPlanService_Plan_CancelledContext(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Plan(ctx, marketplaceRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanService_ObservesUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil, obs)
	ctx := context.Background()

	resp, err := svc.Plan(ctx, marketplaceRequest())
	require.NoError(t, err)

	ev := obs.last(t)
	assert.Equal(t, "plan", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, resp.RequestID, ev.Fields["request_id"])
	assert.Equal(t, "two-sided-marketplace", ev.Fields["archetype_id"])

	bad := marketplaceRequest()
	bad.Route = "?"
	_, err = svc.Estimate(ctx, bad)
	require.Error(t, err)

	ev = obs.last(t)
	assert.Equal(t, "estimate", ev.Name)
	assert.False(t, ev.Success)
	assert.Equal(t, err, ev.Err)
}

func TestPlanService_LogsArchetypeSignalWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), logger)

	resp, err := svc.Plan(context.Background(), marketplaceRequest())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "mvp_archetype_match")
	assert.Contains(t, buf.String(), "request_id="+resp.RequestID)
}

func TestPlanService_Match_CategoryFilter(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)

	matches, err := svc.Match(context.Background(), app.MatchRequest{
		Description: "subscription saas dashboard for teams with an online store and cart",
		Categories:  []string{"e-commerce"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, "e-commerce", m.Category)
	}
}

func TestPlanService_Gaps_ScopeCountsDistinctFeatures(t *testing.T) {
	svc := NewPlanService(StaticKnowledgeBase(seedKnowledgeBase(t)), nil)
	req := marketplaceRequest()
	req.Budget = "$1,000 - $2,000"

	hasScope := func(resp *app.GapResponse) bool {
		for _, r := range resp.Gaps.Recommendations {
			if r.Title == "Reduce MVP scope" {
				return true
			}
		}
		return false
	}

	req.Features = []string{"dashboard", "Dashboard ", "search", "search", " "}
	resp, err := svc.Gaps(context.Background(), req)
	require.NoError(t, err)
	require.True(t, resp.Gaps.Budget.IsInsufficient)
	assert.False(t, hasScope(resp), "duplicates and blanks do not count toward scope")

	req.Features = []string{"dashboard", "search", "messaging", "analytics"}
	resp, err = svc.Gaps(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, hasScope(resp))
}
