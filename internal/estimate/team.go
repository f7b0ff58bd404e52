package estimate

import (
	"math"
	"sort"

	"github.com/alexanderramin/blueprint/internal/domain"
)

type teamTemplate struct {
	name        string
	members     []domain.TeamMember
	description string
	tradeoff    string
	// noCodeOnly options are offered only on the no-code route.
	noCodeOnly bool
}

func lead(level domain.ExperienceLevel) domain.TeamMember {
	return domain.TeamMember{Level: level, Count: 1, Role: "Lead developer"}
}

func dev(level domain.ExperienceLevel, count int) domain.TeamMember {
	return domain.TeamMember{Level: level, Count: count, Role: "Developer"}
}

var teamTemplates = map[domain.Complexity][]teamTemplate{
	domain.ComplexityLow: {
		{
			name:        "Senior Solo Developer",
			members:     []domain.TeamMember{lead(domain.LevelSenior)},
			description: "One experienced developer owns the whole build end to end.",
			tradeoff:    "Highest rate, but the fastest and most predictable delivery.",
		},
		{
			name:        "Mid-Level Solo Developer",
			members:     []domain.TeamMember{lead(domain.LevelMid)},
			description: "One mid-level developer builds the project with occasional review.",
			tradeoff:    "Lower rate, roughly 15% slower; may need help on architecture.",
		},
		{
			name:        "Junior Solo Developer",
			members:     []domain.TeamMember{lead(domain.LevelJunior)},
			description: "One junior developer assembles the product on a no-code platform.",
			tradeoff:    "Lowest cost, roughly 40% slower; only realistic for simple no-code builds.",
			noCodeOnly:  true,
		},
	},
	domain.ComplexityMedium: {
		{
			name:        "Senior Pair",
			members:     []domain.TeamMember{lead(domain.LevelSenior), dev(domain.LevelSenior, 1)},
			description: "Two senior developers split the work in parallel.",
			tradeoff:    "Most expensive, but the fastest and most reliable option.",
		},
		{
			name:        "Senior + Mid-Level",
			members:     []domain.TeamMember{lead(domain.LevelSenior), dev(domain.LevelMid, 1)},
			description: "A senior lead sets direction while a mid-level developer builds alongside.",
			tradeoff:    "Balanced cost and speed; the mid-level half of the work runs slightly longer.",
		},
		{
			name:        "Senior + Junior",
			members:     []domain.TeamMember{lead(domain.LevelSenior), dev(domain.LevelJunior, 1)},
			description: "A senior lead pairs with a junior developer who takes well-scoped tasks.",
			tradeoff:    "Lowest cost; the junior's slower pace sets the finish date and needs mentoring.",
		},
	},
	domain.ComplexityHigh: {
		{
			name:        "Senior Team",
			members:     []domain.TeamMember{lead(domain.LevelSenior), dev(domain.LevelSenior, 2)},
			description: "Three senior developers work the project in parallel.",
			tradeoff:    "Highest cost; the quickest route through a complex build.",
		},
		{
			name:        "Senior-Led Team",
			members:     []domain.TeamMember{lead(domain.LevelSenior), dev(domain.LevelSenior, 1), dev(domain.LevelMid, 1)},
			description: "Two senior developers and one mid-level developer.",
			tradeoff:    "Good balance of cost and speed with senior coverage on critical paths.",
		},
		{
			name:        "Mixed-Experience Team",
			members:     []domain.TeamMember{lead(domain.LevelSenior), dev(domain.LevelMid, 1), dev(domain.LevelJunior, 1)},
			description: "One senior, one mid-level and one junior developer.",
			tradeoff:    "Lowest cost; the junior share of the work stretches the timeline.",
		},
	},
}

// TeamCost prices a team under parallel-work semantics. Total hours are
// fixed and divided evenly between people; each member type then works its
// share times its level's speed multiplier. The team finishes when its
// slowest member type finishes, so the returned worked hours are the max
// across member types, not the sum.
func TeamCost(tables *Tables, route domain.Route, totalHours float64, members []domain.TeamMember) (cost float64, workedHours float64) {
	size := 0
	for _, m := range members {
		size += m.Count
	}
	if size == 0 {
		return 0, 0
	}

	perDev := totalHours / float64(size)
	for _, m := range members {
		worked := perDev * tables.LevelSpeed(m.Level)
		cost += worked * tables.Rate(route, m.Level) * float64(m.Count)
		if worked > workedHours {
			workedHours = worked
		}
	}
	return cost, workedHours
}

// GenerateTeamOptions lists the staffing options for a route and complexity,
// priced at the baseline timeline and ordered by descending cost.
func GenerateTeamOptions(tables *Tables, route domain.Route, complexity domain.Complexity, hours domain.HourRange) []domain.TeamOption {
	templates, ok := teamTemplates[complexity]
	if !ok {
		templates = teamTemplates[domain.ComplexityMedium]
	}

	options := make([]domain.TeamOption, 0, len(templates))
	for _, tmpl := range templates {
		if tmpl.noCodeOnly && route != domain.RouteNoCode {
			continue
		}
		costMin, workedMin := TeamCost(tables, route, float64(hours.Min), tmpl.members)
		costMax, workedMax := TeamCost(tables, route, float64(hours.Max), tmpl.members)

		options = append(options, domain.TeamOption{
			Name:    tmpl.name,
			Members: append([]domain.TeamMember(nil), tmpl.members...),
			TotalCost: domain.MoneyRange{
				Min: int(math.Round(costMin)),
				Max: int(math.Round(costMax)),
			},
			TimelineWeeks: domain.WeekRange{
				Min: weeksFor(workedMin, 1),
				Max: weeksFor(workedMax, 1),
			},
			Description: tmpl.description,
			Tradeoff:    tmpl.tradeoff,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalCost.Max > options[j].TotalCost.Max
	})
	return options
}

// scaleOption applies a timeline pricing multiplier to an option's cost.
func scaleOption(o domain.TeamOption, mult float64) domain.TeamOption {
	o.TotalCost = domain.MoneyRange{
		Min: int(math.Round(float64(o.TotalCost.Min) * mult)),
		Max: int(math.Round(float64(o.TotalCost.Max) * mult)),
	}
	return o
}
