package formatter

import (
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// FormatMatches renders ranked archetype matches with a confidence bar and
// the archetype's catalogued baselines.
func FormatMatches(matches []domain.MVPMatch) string {
	var b strings.Builder

	b.WriteString(Header("Similar Projects"))
	b.WriteString("\n\n")
	if len(matches) == 0 {
		b.WriteString(Dim("No matching archetypes.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			m.Name,
			m.Category,
			RenderProgress(m.Confidence, 10),
			m.MidTier.Cost.String(),
			m.Senior.Cost.String(),
		})
	}
	b.WriteString(RenderTable([]string{"ARCHETYPE", "CATEGORY", "CONFIDENCE", "MID-LEVEL", "SENIOR"}, rows))
	return b.String()
}
