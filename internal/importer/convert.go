package importer

import (
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// Convert transforms a validated KnowledgeBaseFile into domain records.
// Call ValidateKnowledgeBase first; Convert assumes the file is valid.
func Convert(file *KnowledgeBaseFile) ([]domain.Archetype, []domain.CatalogFeature) {
	archetypes := make([]domain.Archetype, 0, len(file.Archetypes))
	for _, a := range file.Archetypes {
		keywords := make([]string, 0, len(a.Keywords))
		for _, kw := range a.Keywords {
			keywords = append(keywords, strings.ToLower(strings.TrimSpace(kw)))
		}
		archetypes = append(archetypes, domain.Archetype{
			ID:       a.ID,
			Name:     strings.TrimSpace(a.Name),
			Category: strings.ToLower(strings.TrimSpace(a.Category)),
			Keywords: keywords,
			MidTier:  convertBaseline(a.Baselines.MidTier),
			Senior:   convertBaseline(a.Baselines.Senior),
		})
	}

	features := make([]domain.CatalogFeature, 0, len(file.Features))
	for _, f := range file.Features {
		features = append(features, domain.CatalogFeature{
			ID:    f.ID,
			Label: strings.TrimSpace(f.Label),
		})
	}

	return archetypes, features
}

func convertBaseline(b BaselineImport) domain.Baseline {
	return domain.Baseline{
		Cost:          domain.MoneyRange{Min: b.CostMin, Max: b.CostMax},
		TimelineWeeks: domain.WeekRange{Min: b.WeeksMin, Max: b.WeeksMax},
		TeamSize:      b.TeamSize,
	}
}
