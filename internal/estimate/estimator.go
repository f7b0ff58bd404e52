package estimate

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// ArchetypeMatcher recognizes a known project archetype from free text.
type ArchetypeMatcher interface {
	BestMatch(description string, features []string) (domain.MVPMatch, bool)
}

// Request carries the inputs of a cost estimate. Route and Complexity must
// already be validated (domain.ParseRoute / domain.ParseComplexity).
type Request struct {
	Route       domain.Route
	Complexity  domain.Complexity
	Features    []string
	Description string
	Timeline    string
}

// Estimator assembles CostEstimates. It holds no mutable state and is safe
// for concurrent use.
type Estimator struct {
	hours   *HourModel
	matcher ArchetypeMatcher
	logger  *slog.Logger
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithMatcher enables the informational archetype match.
func WithMatcher(m ArchetypeMatcher) Option {
	return func(e *Estimator) { e.matcher = m }
}

// WithLogger sets the logger used for the archetype match signal.
func WithLogger(l *slog.Logger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEstimator creates an Estimator over the given hour model.
func NewEstimator(hours *HourModel, opts ...Option) *Estimator {
	e := &Estimator{
		hours:  hours,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HourModel returns the hour model backing the estimator.
func (e *Estimator) HourModel() *HourModel {
	return e.hours
}

// GetCostEstimate produces tier estimates and team options for the request.
// Team option and tier costs carry the timeline multiplier; a junior tier is
// only produced for low-complexity no-code projects.
func (e *Estimator) GetCostEstimate(req Request) domain.CostEstimate {
	tables := e.hours.Tables()

	hours := e.hours.ProjectHours(req.Features, req.Route, req.Complexity)
	mult := tables.TimelineMultiplier(req.Timeline)

	base := GenerateTeamOptions(tables, req.Route, req.Complexity, hours)
	options := make([]domain.TeamOption, len(base))
	for i, o := range base {
		options[i] = scaleOption(o, mult)
	}

	devs := tables.DevelopersFor(req.Complexity)
	tier := func(level domain.ExperienceLevel) domain.TierEstimate {
		return CalculateTier(tables, TierInput{
			Route:              req.Route,
			Hours:              hours,
			Level:              level,
			Developers:         devs,
			TimelineMultiplier: mult,
		})
	}

	tiers := domain.Tiers{
		Mid:    tier(domain.LevelMid),
		Senior: tier(domain.LevelSenior),
	}
	if req.Route == domain.RouteNoCode && req.Complexity == domain.ComplexityLow {
		junior := tier(domain.LevelJunior)
		tiers.Junior = &junior
	}

	e.logArchetype(req)

	return domain.CostEstimate{
		Route:              req.Route,
		Complexity:         req.Complexity,
		Hours:              hours,
		TimelineMultiplier: mult,
		BudgetRange:        tiers.Senior.BudgetRange,
		BudgetMin:          tiers.Senior.BudgetMin,
		BudgetMax:          tiers.Senior.BudgetMax,
		Timeline:           tiers.Senior.Timeline,
		TeamSize:           tiers.Senior.TeamSize,
		Tiers:              tiers,
		TeamOptions:        options,
	}
}

// logArchetype emits the best-effort archetype signal. It never affects the
// numbers returned by GetCostEstimate.
func (e *Estimator) logArchetype(req Request) {
	if e.matcher == nil || strings.TrimSpace(req.Description) == "" || len(req.Features) == 0 {
		return
	}
	m, ok := e.matcher.BestMatch(req.Description, req.Features)
	if !ok {
		return
	}
	e.logger.Info("mvp_archetype_match",
		"archetype_id", m.ID,
		"archetype", m.Name,
		"category", m.Category,
		"confidence", m.Confidence,
	)
}
