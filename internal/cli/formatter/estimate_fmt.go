package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

const recommendedMarker = "★"

// FormatEstimate renders a cost estimate: the effort summary, one row per
// experience tier and the ranked team options with the recommended one
// marked.
func FormatEstimate(est domain.CostEstimate) string {
	var b strings.Builder

	b.WriteString(Header("Cost Estimate"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s    %s %s    %s %s\n",
		Dim("Route:"), Bold(string(est.Route)),
		Dim("Complexity:"), Bold(string(est.Complexity)),
		Dim("Effort:"), Bold(FormatHours(est.Hours)))
	if est.TimelineMultiplier != 1 {
		fmt.Fprintf(&b, "%s x%.3g\n", Dim("Timeline pricing:"), est.TimelineMultiplier)
	}
	fmt.Fprintf(&b, "%s %s  %s\n\n", Dim("Budget:"), StyleGreen.Render(est.BudgetRange), Dim("("+est.Timeline+", "+est.TeamSize+")"))

	rows := make([][]string, 0, 3)
	tier := func(name string, t domain.TierEstimate) {
		rows = append(rows, []string{name, t.BudgetRange, t.Timeline, t.TeamSize})
	}
	if est.Tiers.Junior != nil {
		tier("Junior", *est.Tiers.Junior)
	}
	tier("Mid-level", est.Tiers.Mid)
	tier("Senior", est.Tiers.Senior)
	b.WriteString(RenderTableAligned([]string{"TIER", "BUDGET", "TIMELINE", "TEAM"}, rows, map[int]bool{1: true}))

	if len(est.TeamOptions) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(Header("Team Options"))
	b.WriteString("\n\n")

	rec, _ := est.RecommendedOption()
	rows = rows[:0]
	for _, o := range est.TeamOptions {
		mark := " "
		if o.Name == rec.Name {
			mark = StyleYellow.Render(recommendedMarker)
		}
		rows = append(rows, []string{mark, o.Name, o.TotalCost.String(), o.TimelineWeeks.String(), FormatTeamSize(float64(o.TeamSize()))})
	}
	b.WriteString(RenderTableAligned([]string{"", "OPTION", "COST", "TIMELINE", "TEAM"}, rows, map[int]bool{2: true}))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render(recommendedMarker), Bold(rec.Name))
	if rec.Description != "" {
		fmt.Fprintf(&b, "  %s\n", rec.Description)
	}
	if rec.Tradeoff != "" {
		fmt.Fprintf(&b, "  %s\n", Dim(rec.Tradeoff))
	}
	return b.String()
}
