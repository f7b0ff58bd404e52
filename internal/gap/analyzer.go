package gap

import (
	"math"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// Input carries the user's stated constraints and the estimate they are
// compared against.
type Input struct {
	Estimate     domain.CostEstimate
	FeatureCount int
	Budget       string
	Timeline     string
	TeamSize     string
}

// Analyzer grades budget, timeline and team-size gaps. The zero value is
// not usable; call NewAnalyzer.
type Analyzer struct {
	budget   Thresholds
	timeline Thresholds
	team     Thresholds
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		budget:   BudgetThresholds,
		timeline: TimelineThresholds,
		team:     TeamThresholds,
	}
}

// realistic picks the comparison figures from the recommended team option,
// falling back to the senior tier when the estimate has no options.
func realistic(est domain.CostEstimate) (cost, weeks, team int) {
	if opt, ok := est.RecommendedOption(); ok {
		return opt.TotalCost.Min, opt.TimelineWeeks.Min, opt.TeamSize()
	}
	return est.BudgetMin, est.Tiers.Senior.TimelineWeeks.Min, 1
}

// Analyze compares the input against its estimate. It never fails:
// unreadable strings fall back to the parser defaults, and an unreadable
// budget is treated as exactly realistic.
func (a *Analyzer) Analyze(in Input) domain.GapAnalysis {
	cost, weeks, team := realistic(in.Estimate)

	budget := a.budgetGap(in.Budget, cost)
	timeline := a.timelineGap(in.Timeline, weeks)
	teamSize := a.teamGap(in.TeamSize, team)

	return domain.GapAnalysis{
		Budget:          budget,
		Timeline:        timeline,
		TeamSize:        teamSize,
		OverallSeverity: worst(budget.Severity, timeline.Severity, teamSize.Severity),
		Recommendations: recommend(recommendInput{
			route:        in.Estimate.Route,
			featureCount: in.FeatureCount,
			budget:       budget,
			timeline:     timeline,
			team:         teamSize,
		}),
	}
}

func (a *Analyzer) budgetGap(s string, realisticCost int) domain.BudgetGap {
	userMin, userMax, ok := ParseBudget(s)
	if !ok {
		userMin, userMax = realisticCost, realisticCost
	}

	gap := max(realisticCost-userMax, 0)
	pct := Percentage(float64(gap), float64(userMax))
	return domain.BudgetGap{
		UserBudgetMin:   userMin,
		UserBudgetMax:   userMax,
		RealisticBudget: realisticCost,
		Gap:             gap,
		GapPercentage:   pct,
		IsInsufficient:  gap > 0,
		Severity:        a.budget.Grade(pct),
		Parsed:          ok,
	}
}

func (a *Analyzer) timelineGap(s string, realisticWeeks int) domain.TimelineGap {
	userWeeks := ParseTimeline(s)
	gap := max(realisticWeeks-userWeeks, 0)
	pct := Percentage(float64(gap), float64(userWeeks))
	return domain.TimelineGap{
		UserWeeks:       userWeeks,
		RealisticWeeks:  realisticWeeks,
		Gap:             gap,
		GapPercentage:   pct,
		IsTooAggressive: gap > 0,
		Severity:        a.timeline.Grade(pct),
	}
}

func (a *Analyzer) teamGap(s string, realisticTeam int) domain.TeamSizeGap {
	userTeam := ParseTeamSize(s)
	gap := math.Max(float64(realisticTeam)-userTeam, 0)
	pct := Percentage(gap, userTeam)
	return domain.TeamSizeGap{
		UserTeamSize:      userTeam,
		RealisticTeamSize: realisticTeam,
		Gap:               gap,
		GapPercentage:     pct,
		IsTooSmall:        gap > 0,
		Severity:          a.team.Grade(pct),
	}
}
