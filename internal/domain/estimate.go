package domain

// HourRange is an inclusive effort range in whole hours. Min <= Max holds by
// construction wherever a HourRange is produced.
type HourRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Mean returns the midpoint of the range.
func (h HourRange) Mean() float64 {
	return float64(h.Min+h.Max) / 2
}

// MoneyRange is a USD amount range in whole dollars.
type MoneyRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// WeekRange is a calendar duration range in whole weeks.
type WeekRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type TeamMember struct {
	Level ExperienceLevel `json:"level"`
	Count int             `json:"count"`
	Role  string          `json:"role"`
}

type TeamOption struct {
	Name          string       `json:"name"`
	Members       []TeamMember `json:"members"`
	TotalCost     MoneyRange   `json:"total_cost"`
	TimelineWeeks WeekRange    `json:"timeline_weeks"`
	Description   string       `json:"description"`
	Tradeoff      string       `json:"tradeoff"`
}

// TeamSize returns the number of people on the team.
func (o TeamOption) TeamSize() int {
	n := 0
	for _, m := range o.Members {
		n += m.Count
	}
	return n
}

type TierEstimate struct {
	Level         ExperienceLevel `json:"level"`
	BudgetRange   string          `json:"budget_range"`
	BudgetMin     int             `json:"budget_min"`
	BudgetMax     int             `json:"budget_max"`
	Timeline      string          `json:"timeline"`
	TimelineWeeks WeekRange       `json:"timeline_weeks"`
	TeamSize      string          `json:"team_size"`
	Benefits      []string        `json:"benefits"`
	Tradeoffs     []string        `json:"tradeoffs"`
}

// Tiers holds one estimate per experience level. Junior is nil unless the
// project is a low-complexity no-code build.
type Tiers struct {
	Junior *TierEstimate `json:"junior,omitempty"`
	Mid    TierEstimate  `json:"mid"`
	Senior TierEstimate  `json:"senior"`
}

// CostEstimate is the canonical output of the estimation step. The top-level
// budget, timeline and team size fields mirror the senior tier.
type CostEstimate struct {
	Route              Route        `json:"route"`
	Complexity         Complexity   `json:"complexity"`
	Hours              HourRange    `json:"hours"`
	TimelineMultiplier float64      `json:"timeline_multiplier"`
	BudgetRange        string       `json:"budget_range"`
	BudgetMin          int          `json:"budget_min"`
	BudgetMax          int          `json:"budget_max"`
	Timeline           string       `json:"timeline"`
	TeamSize           string       `json:"team_size"`
	Tiers              Tiers        `json:"tiers"`
	TeamOptions        []TeamOption `json:"team_options"`
}

// RecommendedOption returns the team option presented as "recommended":
// index 1 when there are at least two options, otherwise index 0.
// The second return value is false when there are no options at all.
func (e *CostEstimate) RecommendedOption() (TeamOption, bool) {
	switch {
	case len(e.TeamOptions) >= 2:
		return e.TeamOptions[1], true
	case len(e.TeamOptions) == 1:
		return e.TeamOptions[0], true
	default:
		return TeamOption{}, false
	}
}
