package gap

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexanderramin/blueprint/internal/domain"
)

const (
	priorityScope    = 1
	priorityPivot    = 2
	priorityTimeline = 3
	priorityTeamGrow = 4
	priorityTeamHint = 5
	priorityPhased   = 6

	scopeFeatureThreshold = 3
)

type recommendInput struct {
	route        domain.Route
	featureCount int
	budget       domain.BudgetGap
	timeline     domain.TimelineGap
	team         domain.TeamSizeGap
}

type recommender func(recommendInput) (domain.OptimizationRecommendation, bool)

var recommenders = []recommender{
	recommendScope,
	recommendPivot,
	recommendTimeline,
	recommendTeam,
	recommendPhased,
}

// recommend runs every generator independently and orders the results by
// their fixed priority.
func recommend(in recommendInput) []domain.OptimizationRecommendation {
	recs := []domain.OptimizationRecommendation{}
	for _, r := range recommenders {
		if rec, ok := r(in); ok {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	return recs
}

func recommendScope(in recommendInput) (domain.OptimizationRecommendation, bool) {
	if in.budget.Gap <= 0 || in.featureCount <= scopeFeatureThreshold {
		return domain.OptimizationRecommendation{}, false
	}
	keep := int(math.Ceil(float64(in.featureCount) / 2))
	return domain.OptimizationRecommendation{
		Title:       "Reduce MVP scope",
		Description: fmt.Sprintf("Launch with the %d features that matter most and move the other %d to Phase 2.", keep, in.featureCount-keep),
		Impact:      "Brings the first release closer to your budget",
		Savings:     fmt.Sprintf("Closes up to %s of the gap", domain.FormatUSD(in.budget.Gap)),
		Priority:    priorityScope,
		Category:    domain.CategoryScope,
	}, true
}

// pivots maps a route to the cheaper route suggested at a severe budget gap.
var pivots = map[domain.Route]struct {
	to      domain.Route
	title   string
	savings string
}{
	domain.RouteCustom: {domain.RouteHybrid, "Switch to a hybrid build", "About 45% lower build cost"},
	domain.RouteHybrid: {domain.RouteNoCode, "Switch to a no-code build", "About 45% lower build cost"},
}

func recommendPivot(in recommendInput) (domain.OptimizationRecommendation, bool) {
	if in.budget.Severity != domain.SeveritySevere {
		return domain.OptimizationRecommendation{}, false
	}
	p, ok := pivots[in.route]
	if !ok {
		return domain.OptimizationRecommendation{}, false
	}
	return domain.OptimizationRecommendation{
		Title:       p.title,
		Description: fmt.Sprintf("Your budget is far below a %s build. A %s approach reuses platform components instead of writing them.", in.route, p.to),
		Impact:      "Large cost reduction with some loss of flexibility",
		Savings:     p.savings,
		Priority:    priorityPivot,
		Category:    domain.CategoryBudget,
	}, true
}

func recommendTimeline(in recommendInput) (domain.OptimizationRecommendation, bool) {
	if !in.timeline.IsTooAggressive {
		return domain.OptimizationRecommendation{}, false
	}
	return domain.OptimizationRecommendation{
		Title:       "Extend the timeline",
		Description: fmt.Sprintf("Plan for %d weeks rather than %d.", in.timeline.RealisticWeeks, in.timeline.UserWeeks),
		Impact:      "Avoids rush pricing and rushed quality",
		Savings:     "Avoids the rush premium of up to 37.5%",
		Priority:    priorityTimeline,
		Category:    domain.CategoryTimeline,
	}, true
}

func recommendTeam(in recommendInput) (domain.OptimizationRecommendation, bool) {
	if !in.team.IsTooSmall {
		return domain.OptimizationRecommendation{}, false
	}
	if in.timeline.IsTooAggressive {
		return domain.OptimizationRecommendation{
			Title:       "Grow the team",
			Description: fmt.Sprintf("Staff %d developers so work runs in parallel and the timeline holds.", in.team.RealisticTeamSize),
			Impact:      "Shorter calendar time for the same scope",
			Savings:     "Time rather than money",
			Priority:    priorityTeamGrow,
			Category:    domain.CategoryTeam,
		}, true
	}
	return domain.OptimizationRecommendation{
		Title:       "Consider a larger team",
		Description: fmt.Sprintf("A team of %d is typical for this scope; with %s expect the build to run longer.", in.team.RealisticTeamSize, formatPeople(in.team.UserTeamSize)),
		Impact:      "Faster delivery if the timeline tightens",
		Savings:     "None; trades budget for speed",
		Priority:    priorityTeamHint,
		Category:    domain.CategoryTeam,
	}, true
}

func recommendPhased(in recommendInput) (domain.OptimizationRecommendation, bool) {
	if in.budget.Gap <= 0 && in.timeline.Gap <= 0 {
		return domain.OptimizationRecommendation{}, false
	}
	return domain.OptimizationRecommendation{
		Title:       "Build in phases",
		Description: "Ship the MVP first and fund Phase 2 from what early users teach you.",
		Impact:      "Spreads cost over time and lowers launch risk",
		Savings:     "Defers Phase 2 and Phase 3 spend",
		Priority:    priorityPhased,
		Category:    domain.CategoryScope,
	}, true
}

func formatPeople(n float64) string {
	if n == math.Trunc(n) {
		if n == 1 {
			return "1 person"
		}
		return fmt.Sprintf("%d people", int(n))
	}
	return fmt.Sprintf("%.1f people", n)
}
