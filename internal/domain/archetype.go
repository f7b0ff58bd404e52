package domain

import "time"

// Baseline is a catalogued reference estimate for one staffing tier.
type Baseline struct {
	Cost          MoneyRange `json:"cost"`
	TimelineWeeks WeekRange  `json:"timeline_weeks"`
	TeamSize      int        `json:"team_size"`
}

// Archetype is a knowledge-base record describing a known project pattern.
type Archetype struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	MidTier  Baseline `json:"mid_tier"`
	Senior   Baseline `json:"senior"`
}

type MVPMatch struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	MidTier    Baseline `json:"mid_tier"`
	Senior     Baseline `json:"senior"`
	Keywords   []string `json:"keywords"`
}

// CatalogFeature maps a selectable feature ID to the display label the
// engine consumes as a feature name.
type CatalogFeature struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Hidden bool   `json:"hidden,omitempty"`
}

// KBImport records one replacement of the stored knowledge base.
type KBImport struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	ArchetypeCount int       `json:"archetype_count"`
	FeatureCount   int       `json:"feature_count"`
	ImportedAt     time.Time `json:"imported_at"`
}
