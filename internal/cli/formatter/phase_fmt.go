package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// FormatPhases renders a phase breakdown as a tree: one root per phase with
// its cost, and the phase's features underneath. Locked features carry a
// lock marker; suggested enhancements a plus.
func FormatPhases(b domain.MVPPhaseBreakdown) string {
	var out strings.Builder

	out.WriteString(Header("Phased Roadmap"))
	out.WriteString("\n\n")
	if b.ProductType != "" {
		fmt.Fprintf(&out, "%s %s\n\n", Dim("Product type:"), Bold(string(b.ProductType)))
	}

	phases := []struct {
		phase    domain.Phase
		features []domain.Feature
		cost     domain.PhaseCost
	}{
		{domain.PhaseMVP, b.MVPFeatures, b.MVPCost},
		{domain.Phase2, b.Phase2Features, b.Phase2Cost},
		{domain.Phase3, b.Phase3Features, b.Phase3Cost},
	}

	var items []TreeItem
	for _, p := range phases {
		items = append(items, TreeItem{
			Title:  StyleHeader.Render(PhaseLabel(p.phase)),
			Detail: fmt.Sprintf("%s · %dh", domain.FormatUSD(p.cost.Cost), p.cost.Hours),
		})
		if len(p.features) == 0 {
			items = append(items, TreeItem{Title: Dim("(nothing scheduled)"), Level: 1, IsLast: true})
			continue
		}
		for i, f := range p.features {
			items = append(items, TreeItem{
				Title:  f.Name,
				Level:  1,
				IsLast: i == len(p.features)-1,
				Marker: featureMarker(f),
				Detail: FormatHours(f.EstimatedHours),
			})
		}
	}
	out.WriteString(RenderTree(items))

	fmt.Fprintf(&out, "\n%s %s\n", Dim("Total:"), Bold(domain.FormatUSD(b.TotalCost())))
	if b.Recommendation != "" {
		out.WriteString("\n" + b.Recommendation + "\n")
	}
	return out.String()
}

func featureMarker(f domain.Feature) string {
	switch {
	case f.Locked:
		return StyleYellow.Render("● ")
	case f.Suggested:
		return StyleGreen.Render("+ ")
	default:
		return ""
	}
}
