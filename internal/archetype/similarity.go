package archetype

import "strings"

// Similarity scores the word overlap of two texts: the number of word pairs
// that are equal or contain one another, divided by the larger word count.
// Comparison is case-insensitive. Either text being empty scores 0.
func Similarity(a, b string) float64 {
	wa := strings.Fields(strings.ToLower(a))
	wb := strings.Fields(strings.ToLower(b))
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}

	pairs := 0
	for _, x := range wa {
		for _, y := range wb {
			if x == y || strings.Contains(x, y) || strings.Contains(y, x) {
				pairs++
			}
		}
	}
	return float64(pairs) / float64(max(len(wa), len(wb)))
}

// keywordHits counts keywords literally contained in text.
func keywordHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}
