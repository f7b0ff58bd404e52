package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/blueprint/internal/app"
)

// FormatPlan renders a full planning run: a summary box followed by the
// estimate, roadmap, reality check and similar projects sections.
func FormatPlan(resp app.PlanResponse) string {
	var summary strings.Builder
	fmt.Fprintf(&summary, "%s %s\n", Dim("Budget:"), StyleGreen.Render(resp.Estimate.BudgetRange))
	fmt.Fprintf(&summary, "%s %s\n", Dim("Timeline:"), resp.Estimate.Timeline)
	fmt.Fprintf(&summary, "%s %s\n", Dim("MVP:"), strings.Join(featureNames(resp), ", "))
	fmt.Fprintf(&summary, "%s %s\n", Dim("Constraints:"), SeverityIndicator(resp.Gaps.OverallSeverity))
	if resp.Archetype != nil {
		fmt.Fprintf(&summary, "%s %s %s\n", Dim("Looks like:"), Bold(resp.Archetype.Name),
			Dim(FormatPercent(resp.Archetype.Confidence*100)+" confidence"))
	}

	sections := []string{
		RenderBox("Project Blueprint", summary.String()),
		FormatEstimate(resp.Estimate),
		FormatPhases(resp.Phases),
		FormatGaps(resp.Gaps),
		FormatMatches(resp.Matches),
	}
	return strings.Join(sections, "\n\n") + "\n" + Dim("request "+resp.RequestID) + "\n"
}

func featureNames(resp app.PlanResponse) []string {
	names := make([]string, 0, len(resp.Phases.MVPFeatures))
	for _, f := range resp.Phases.MVPFeatures {
		names = append(names, f.Name)
	}
	if len(names) == 0 {
		return []string{"-"}
	}
	return names
}
