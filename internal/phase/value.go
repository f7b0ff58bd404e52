package phase

const defaultValueScore = 5

var valueScores = []struct {
	keywords []string
	score    int
}{
	{authKeywords, 10},
	{paymentKeywords, 9},
	{searchKeywords, 8},
	{messagingKeywords, 8},
	{realtimeKeywords, 8},
	{listingKeywords, 8},
	{bookingKeywords, 8},
	{cartKeywords, 8},
	{aiKeywords, 6},
	{dashboardKeywords, 6},
	{profileKeywords, 6},
	{notificationKeywords, 5},
	{reviewKeywords, 5},
	{analyticsKeywords, 5},
	{adminKeywords, 4},
	{mobileKeywords, 4},
	{uploadKeywords, 4},
	{settingsKeywords, 3},
	{integrationKeywords, 3},
	{socialKeywords, 2},
	{i18nKeywords, 2},
	{tenantKeywords, 2},
	{whiteLabelKeywords, 2},
}

// ValueScore is the fixed business-value heuristic for a feature: the
// highest score among the keyword families it matches.
func ValueScore(feature string) int {
	return valueScore(newText(feature))
}

func valueScore(f text) int {
	best := 0
	for _, v := range valueScores {
		if v.score > best && f.has(v.keywords...) {
			best = v.score
		}
	}
	if best == 0 {
		return defaultValueScore
	}
	return best
}
