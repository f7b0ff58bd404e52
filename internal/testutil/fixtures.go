package testutil

import (
	"github.com/alexanderramin/blueprint/internal/domain"
)

// Archetype options
type ArchetypeOption func(*domain.Archetype)

func WithCategory(c string) ArchetypeOption {
	return func(a *domain.Archetype) {
		a.Category = c
	}
}

func WithKeywords(kw ...string) ArchetypeOption {
	return func(a *domain.Archetype) {
		a.Keywords = kw
	}
}

func WithSeniorBaseline(costMin, costMax, weeksMin, weeksMax, team int) ArchetypeOption {
	return func(a *domain.Archetype) {
		a.Senior = domain.Baseline{
			Cost:          domain.MoneyRange{Min: costMin, Max: costMax},
			TimelineWeeks: domain.WeekRange{Min: weeksMin, Max: weeksMax},
			TeamSize:      team,
		}
	}
}

func NewTestArchetype(id, name string, opts ...ArchetypeOption) domain.Archetype {
	a := domain.Archetype{
		ID:       id,
		Name:     name,
		Category: "saas",
		Keywords: []string{"dashboard", "subscription"},
		MidTier: domain.Baseline{
			Cost:          domain.MoneyRange{Min: 20000, Max: 40000},
			TimelineWeeks: domain.WeekRange{Min: 10, Max: 16},
			TeamSize:      2,
		},
		Senior: domain.Baseline{
			Cost:          domain.MoneyRange{Min: 30000, Max: 55000},
			TimelineWeeks: domain.WeekRange{Min: 8, Max: 12},
			TeamSize:      2,
		},
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func NewTestFeatures(pairs ...string) []domain.CatalogFeature {
	features := make([]domain.CatalogFeature, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		features = append(features, domain.CatalogFeature{ID: pairs[i], Label: pairs[i+1]})
	}
	return features
}
