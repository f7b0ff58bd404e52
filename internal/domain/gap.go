package domain

type BudgetGap struct {
	UserBudgetMin   int         `json:"user_budget_min"`
	UserBudgetMax   int         `json:"user_budget_max"`
	RealisticBudget int         `json:"realistic_budget"`
	Gap             int         `json:"gap"`
	GapPercentage   float64     `json:"gap_percentage"`
	IsInsufficient  bool        `json:"is_insufficient"`
	Severity        GapSeverity `json:"severity"`
	// Parsed is false when the user's budget string was not understood and
	// the realistic figure was substituted.
	Parsed bool `json:"parsed"`
}

type TimelineGap struct {
	UserWeeks       int         `json:"user_weeks"`
	RealisticWeeks  int         `json:"realistic_weeks"`
	Gap             int         `json:"gap"`
	GapPercentage   float64     `json:"gap_percentage"`
	IsTooAggressive bool        `json:"is_too_aggressive"`
	Severity        GapSeverity `json:"severity"`
}

type TeamSizeGap struct {
	UserTeamSize      float64     `json:"user_team_size"`
	RealisticTeamSize int         `json:"realistic_team_size"`
	Gap               float64     `json:"gap"`
	GapPercentage     float64     `json:"gap_percentage"`
	IsTooSmall        bool        `json:"is_too_small"`
	Severity          GapSeverity `json:"severity"`
}

// OptimizationRecommendation is display data; lower Priority is shown first.
type OptimizationRecommendation struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Impact      string                 `json:"impact"`
	Savings     string                 `json:"savings"`
	Priority    int                    `json:"priority"`
	Category    RecommendationCategory `json:"category"`
}

type GapAnalysis struct {
	Budget          BudgetGap                    `json:"budget"`
	Timeline        TimelineGap                  `json:"timeline"`
	TeamSize        TeamSizeGap                  `json:"team_size"`
	OverallSeverity GapSeverity                  `json:"overall_severity"`
	Recommendations []OptimizationRecommendation `json:"recommendations"`
}

// HasGap reports whether any of the three gaps is worse than realistic.
func (g *GapAnalysis) HasGap() bool {
	return g.Budget.IsInsufficient || g.Timeline.IsTooAggressive || g.TeamSize.IsTooSmall
}
