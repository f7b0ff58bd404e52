package formatter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// FormatGaps renders the gap analysis: the stated constraints against the
// realistic figures, then the recommendations in priority order.
func FormatGaps(g domain.GapAnalysis) string {
	var b strings.Builder

	b.WriteString(Header("Reality Check"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n\n", Dim("Overall:"), SeverityIndicator(g.OverallSeverity))

	budget := "not stated"
	if g.Budget.Parsed {
		budget = domain.MoneyRange{Min: g.Budget.UserBudgetMin, Max: g.Budget.UserBudgetMax}.String()
	}
	rows := [][]string{
		{
			"Budget", budget, domain.FormatUSD(g.Budget.RealisticBudget),
			signedGap(g.Budget.GapPercentage), SeverityIndicator(g.Budget.Severity),
		},
		{
			"Timeline", weeks(g.Timeline.UserWeeks), weeks(g.Timeline.RealisticWeeks),
			signedGap(g.Timeline.GapPercentage), SeverityIndicator(g.Timeline.Severity),
		},
		{
			"Team", FormatTeamSize(g.TeamSize.UserTeamSize), FormatTeamSize(float64(g.TeamSize.RealisticTeamSize)),
			signedGap(g.TeamSize.GapPercentage), SeverityIndicator(g.TeamSize.Severity),
		},
	}
	b.WriteString(RenderTable([]string{"", "YOURS", "REALISTIC", "GAP", "SEVERITY"}, rows))

	if len(g.Recommendations) == 0 {
		if !g.HasGap() {
			b.WriteString("\n" + StyleGreen.Render("Your constraints look realistic for this scope.") + "\n")
		}
		return b.String()
	}

	recs := slices.Clone(g.Recommendations)
	slices.SortStableFunc(recs, func(x, y domain.OptimizationRecommendation) int {
		return cmp.Compare(x.Priority, y.Priority)
	})

	b.WriteString("\n")
	b.WriteString(Header("Recommendations"))
	b.WriteString("\n\n")
	for i, r := range recs {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, Bold(r.Title), Dim("["+string(r.Category)+"]"))
		fmt.Fprintf(&b, "   %s\n", r.Description)
		var meta []string
		if r.Impact != "" {
			meta = append(meta, "impact: "+r.Impact)
		}
		if r.Savings != "" {
			meta = append(meta, "saves: "+r.Savings)
		}
		if len(meta) > 0 {
			fmt.Fprintf(&b, "   %s\n", StyleBlue.Render(strings.Join(meta, " · ")))
		}
	}
	return b.String()
}

func signedGap(pct float64) string {
	if pct <= 0 {
		return Dim("-")
	}
	return "+" + FormatPercent(pct)
}

func weeks(n int) string {
	return domain.WeekRange{Min: n, Max: n}.String()
}
