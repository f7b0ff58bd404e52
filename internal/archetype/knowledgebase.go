package archetype

import (
	"slices"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// KnowledgeBase is the read-only catalog of project archetypes and the
// selectable feature list. Build it once and share it; nothing mutates it
// after construction.
type KnowledgeBase struct {
	archetypes []domain.Archetype
	features   []domain.CatalogFeature
	labels     map[string]string
}

// NewKnowledgeBase copies the given records into a new KnowledgeBase.
// Archetypes are kept in ID order and features in the order supplied.
func NewKnowledgeBase(archetypes []domain.Archetype, features []domain.CatalogFeature) *KnowledgeBase {
	kb := &KnowledgeBase{
		archetypes: make([]domain.Archetype, len(archetypes)),
		features:   slices.Clone(features),
		labels:     make(map[string]string, len(features)),
	}
	for i, a := range archetypes {
		a.Keywords = slices.Clone(a.Keywords)
		kb.archetypes[i] = a
	}
	slices.SortFunc(kb.archetypes, func(a, b domain.Archetype) int {
		return strings.Compare(a.ID, b.ID)
	})
	for _, f := range features {
		kb.labels[f.ID] = f.Label
	}
	return kb
}

// Archetypes returns a copy of the archetype records.
func (kb *KnowledgeBase) Archetypes() []domain.Archetype {
	out := make([]domain.Archetype, len(kb.archetypes))
	for i, a := range kb.archetypes {
		a.Keywords = slices.Clone(a.Keywords)
		out[i] = a
	}
	return out
}

func (kb *KnowledgeBase) Features() []domain.CatalogFeature {
	return slices.Clone(kb.features)
}

// Archetype looks up a single record by ID.
func (kb *KnowledgeBase) Archetype(id string) (domain.Archetype, bool) {
	i, ok := slices.BinarySearchFunc(kb.archetypes, id, func(a domain.Archetype, id string) int {
		return strings.Compare(a.ID, id)
	})
	if !ok {
		return domain.Archetype{}, false
	}
	a := kb.archetypes[i]
	a.Keywords = slices.Clone(a.Keywords)
	return a, true
}

// Categories lists the distinct archetype categories, sorted.
func (kb *KnowledgeBase) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range kb.archetypes {
		if !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	slices.Sort(out)
	return out
}

// ResolveFeatures turns selection IDs into the display labels the engine
// consumes as feature names. IDs missing from the catalog pass through
// unchanged so free-text features keep working.
func (kb *KnowledgeBase) ResolveFeatures(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if label, ok := kb.labels[strings.TrimSpace(id)]; ok {
			out = append(out, label)
			continue
		}
		out = append(out, id)
	}
	return out
}
