package archetype

import (
	"cmp"
	"slices"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
)

const (
	// MatchThreshold is the confidence above which the top match is treated
	// as a recognized archetype.
	MatchThreshold = 0.3

	minConfidence = 0.1
	maxMatches    = 3

	nameWeight     = 0.4
	keywordWeight  = 0.1
	categoryWeight = 0.2
)

// Matcher scores free-text project descriptions against the knowledge base.
type Matcher struct {
	kb *KnowledgeBase
}

func NewMatcher(kb *KnowledgeBase) *Matcher {
	return &Matcher{kb: kb}
}

// Match returns up to three archetypes with confidence above 0.1, highest
// first. When categories is non-empty only archetypes in those categories
// are scored.
func (m *Matcher) Match(description string, features []string, categories []string) []domain.MVPMatch {
	text := searchText(description, features)
	if text == "" {
		return nil
	}

	allowed := make(map[string]bool, len(categories))
	for _, c := range categories {
		allowed[strings.ToLower(strings.TrimSpace(c))] = true
	}

	var matches []domain.MVPMatch
	for _, a := range m.kb.archetypes {
		if len(allowed) > 0 && !allowed[strings.ToLower(a.Category)] {
			continue
		}
		c := Confidence(text, a)
		if c <= minConfidence {
			continue
		}
		matches = append(matches, domain.MVPMatch{
			ID:         a.ID,
			Name:       a.Name,
			Category:   a.Category,
			Confidence: c,
			MidTier:    a.MidTier,
			Senior:     a.Senior,
			Keywords:   slices.Clone(a.Keywords),
		})
	}

	slices.SortStableFunc(matches, func(a, b domain.MVPMatch) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// BestMatch returns the top match when its confidence clears MatchThreshold.
func (m *Matcher) BestMatch(description string, features []string) (domain.MVPMatch, bool) {
	matches := m.Match(description, features, nil)
	if len(matches) == 0 || matches[0].Confidence <= MatchThreshold {
		return domain.MVPMatch{}, false
	}
	return matches[0], true
}

// Confidence scores one archetype against an already lowercased search text,
// clamped to [0, 1].
func Confidence(text string, a domain.Archetype) float64 {
	score := nameWeight*Similarity(text, a.Name) +
		keywordWeight*float64(keywordHits(text, a.Keywords)) +
		categoryWeight*Similarity(text, a.Category)
	return min(max(score, 0), 1)
}

func searchText(description string, features []string) string {
	return strings.ToLower(strings.TrimSpace(description + " " + strings.Join(features, " ")))
}
