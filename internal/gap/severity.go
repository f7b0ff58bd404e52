package gap

import "github.com/alexanderramin/blueprint/internal/domain"

// noUserValuePercentage stands in for the percentage when the user's value is
// zero and a gap exists.
const noUserValuePercentage = 1000

// Thresholds grade a gap percentage. A percentage must be strictly greater
// than a threshold to reach that severity.
type Thresholds struct {
	Severe   float64
	Moderate float64
	Minor    float64
}

var (
	BudgetThresholds   = Thresholds{Severe: 200, Moderate: 100, Minor: 25}
	TimelineThresholds = Thresholds{Severe: 100, Moderate: 50, Minor: 20}
	TeamThresholds     = Thresholds{Severe: 150, Moderate: 75, Minor: 25}
)

func (t Thresholds) Grade(pct float64) domain.GapSeverity {
	switch {
	case pct > t.Severe:
		return domain.SeveritySevere
	case pct > t.Moderate:
		return domain.SeverityModerate
	case pct > t.Minor:
		return domain.SeverityMinor
	default:
		return domain.SeverityNone
	}
}

// Percentage is gap / user x 100, never negative.
func Percentage(gap, user float64) float64 {
	if gap <= 0 {
		return 0
	}
	if user <= 0 {
		return noUserValuePercentage
	}
	return gap / user * 100
}

func worst(severities ...domain.GapSeverity) domain.GapSeverity {
	out := domain.SeverityNone
	for _, s := range severities {
		if s.Rank() > out.Rank() {
			out = s
		}
	}
	return out
}
