package estimate

import (
	"fmt"
	"math"

	"github.com/alexanderramin/blueprint/internal/domain"
)

var tierBenefits = map[domain.ExperienceLevel][]string{
	domain.LevelJunior: {
		"Lowest hourly rate",
		"Good fit for simple, well-defined no-code builds",
	},
	domain.LevelMid: {
		"Balanced rate and delivery speed",
		"Comfortable with common patterns and integrations",
		"Needs only light architectural oversight",
	},
	domain.LevelSenior: {
		"Fastest delivery with the fewest rewrites",
		"Sound architecture decisions from day one",
		"Can handle ambiguous requirements independently",
	},
}

var tierTradeoffs = map[domain.ExperienceLevel][]string{
	domain.LevelJunior: {
		"Roughly 40% slower than a senior developer",
		"Needs review and mentoring",
		"Higher risk of rework on anything non-trivial",
	},
	domain.LevelMid: {
		"Roughly 15% slower than a senior developer",
		"May need guidance on architecture and scaling",
	},
	domain.LevelSenior: {
		"Highest hourly rate",
		"Harder to hire on short notice",
	},
}

// TierInput describes a single-level staffing projection.
type TierInput struct {
	Route              domain.Route
	Hours              domain.HourRange
	Level              domain.ExperienceLevel
	Developers         int
	TimelineMultiplier float64
}

// CalculateTier projects cost and timeline when every developer works at
// the given level. Less experienced developers need proportionally more
// hours; cost is those hours at the route/level rate, scaled by the
// timeline multiplier. The developer count only affects the timeline.
func CalculateTier(tables *Tables, in TierInput) domain.TierEstimate {
	devs := in.Developers
	if devs < 1 {
		devs = 1
	}
	mult := in.TimelineMultiplier
	if mult <= 0 {
		mult = 1.0
	}

	speed := tables.LevelSpeed(in.Level)
	adjMin := float64(in.Hours.Min) * speed
	adjMax := float64(in.Hours.Max) * speed

	rate := tables.Rate(in.Route, in.Level)
	budgetMin := int(math.Round(adjMin * rate * mult))
	budgetMax := int(math.Round(adjMax * rate * mult))

	weeks := domain.WeekRange{
		Min: weeksFor(adjMin, devs),
		Max: weeksFor(adjMax, devs),
	}

	return domain.TierEstimate{
		Level:         in.Level,
		BudgetRange:   domain.MoneyRange{Min: budgetMin, Max: budgetMax}.String(),
		BudgetMin:     budgetMin,
		BudgetMax:     budgetMax,
		Timeline:      weeks.String(),
		TimelineWeeks: weeks,
		TeamSize:      teamSizeLabel(in.Level, devs),
		Benefits:      append([]string(nil), tierBenefits[in.Level]...),
		Tradeoffs:     append([]string(nil), tierTradeoffs[in.Level]...),
	}
}

// weeksFor converts hours split across devs into whole calendar weeks.
func weeksFor(hours float64, devs int) int {
	w := int(math.Ceil(hours / float64(HoursPerWeek*devs)))
	if w < 1 {
		return 1
	}
	return w
}

func teamSizeLabel(level domain.ExperienceLevel, devs int) string {
	if devs == 1 {
		return fmt.Sprintf("1 %s developer", levelLabel(level))
	}
	return fmt.Sprintf("%d %s developers", devs, levelLabel(level))
}

func levelLabel(level domain.ExperienceLevel) string {
	if level == domain.LevelMid {
		return "mid-level"
	}
	return string(level)
}
