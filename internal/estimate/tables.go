// Package estimate turns a project's route, complexity and feature list into
// hour ranges, per-tier cost projections and priced team compositions.
package estimate

import (
	"strings"
	"sync"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// HoursPerWeek is the working week used for every timeline conversion.
const HoursPerWeek = 40

// Overhead holds the non-feature engineering time added to feature effort.
type Overhead struct {
	SetupHours      float64
	DeploymentHours float64

	// Fractions of average development time.
	TestingPct      float64
	BugFixPct       float64
	CoordinationPct float64

	// Widening applied to the overhead on the low and high bound.
	LowFactor  float64
	HighFactor float64
}

type rateKey struct {
	route domain.Route
	level domain.ExperienceLevel
}

// Tables is the immutable rate and multiplier configuration shared by every
// component. Build it once (DefaultTables) and pass the pointer around; no
// method mutates it.
type Tables struct {
	featureHours        map[string]domain.HourRange
	unknownFeature      domain.HourRange
	routeSpeed          map[domain.Route]float64
	complexityMult      map[domain.Complexity]float64
	defaultBrackets     map[domain.Complexity]domain.HourRange
	levelSpeed          map[domain.ExperienceLevel]float64
	rates               map[rateKey]float64
	timelineMultipliers map[string]float64
	developersPerTier   map[domain.Complexity]int
	overhead            Overhead
}

var defaultTables = sync.OnceValue(newDefaultTables)

// DefaultTables returns the process-wide default tables.
func DefaultTables() *Tables {
	return defaultTables()
}

func newDefaultTables() *Tables {
	return &Tables{
		featureHours: map[string]domain.HourRange{
			"user authentication":      {Min: 16, Max: 32},
			"authentication":           {Min: 16, Max: 32},
			"login":                    {Min: 12, Max: 24},
			"social login":             {Min: 8, Max: 16},
			"user profiles":            {Min: 12, Max: 24},
			"user profile":             {Min: 12, Max: 24},
			"payment processing":       {Min: 40, Max: 80},
			"payments":                 {Min: 40, Max: 80},
			"subscription billing":     {Min: 32, Max: 64},
			"shopping cart":            {Min: 24, Max: 48},
			"checkout":                 {Min: 24, Max: 48},
			"product catalog":          {Min: 24, Max: 48},
			"product listings":         {Min: 24, Max: 48},
			"listings":                 {Min: 24, Max: 48},
			"search":                   {Min: 20, Max: 40},
			"search functionality":     {Min: 20, Max: 40},
			"search and filters":       {Min: 24, Max: 48},
			"messaging":                {Min: 32, Max: 64},
			"real-time chat":           {Min: 40, Max: 80},
			"chat":                     {Min: 40, Max: 80},
			"notifications":            {Min: 12, Max: 24},
			"push notifications":       {Min: 16, Max: 32},
			"email notifications":      {Min: 8, Max: 16},
			"dashboard":                {Min: 24, Max: 48},
			"admin panel":              {Min: 32, Max: 64},
			"admin dashboard":          {Min: 32, Max: 64},
			"analytics":                {Min: 24, Max: 48},
			"reporting":                {Min: 20, Max: 40},
			"file upload":              {Min: 12, Max: 24},
			"file uploads":             {Min: 12, Max: 24},
			"booking system":           {Min: 40, Max: 80},
			"calendar":                 {Min: 20, Max: 40},
			"reviews and ratings":      {Min: 16, Max: 32},
			"reviews":                  {Min: 16, Max: 32},
			"maps integration":         {Min: 16, Max: 32},
			"api integration":          {Min: 24, Max: 48},
			"third-party integrations": {Min: 24, Max: 48},
			"social features":          {Min: 32, Max: 64},
			"mobile app":               {Min: 80, Max: 160},
			"ai recommendations":       {Min: 60, Max: 120},
			"ai features":              {Min: 60, Max: 120},
			"multi-language support":   {Min: 20, Max: 40},
			"multi-tenant":             {Min: 60, Max: 120},
			"white-label":              {Min: 40, Max: 80},
			"settings":                 {Min: 8, Max: 16},
			"content management":       {Min: 24, Max: 48},
			"blog":                     {Min: 12, Max: 24},
		},
		unknownFeature: domain.HourRange{Min: 20, Max: 40},
		routeSpeed: map[domain.Route]float64{
			domain.RouteNoCode: 0.5,
			domain.RouteHybrid: 0.75,
			domain.RouteCustom: 1.0,
		},
		complexityMult: map[domain.Complexity]float64{
			domain.ComplexityLow:    0.8,
			domain.ComplexityMedium: 1.0,
			domain.ComplexityHigh:   1.3,
		},
		defaultBrackets: map[domain.Complexity]domain.HourRange{
			domain.ComplexityLow:    {Min: 80, Max: 160},
			domain.ComplexityMedium: {Min: 160, Max: 320},
			domain.ComplexityHigh:   {Min: 320, Max: 600},
		},
		levelSpeed: map[domain.ExperienceLevel]float64{
			domain.LevelJunior: 1.4,
			domain.LevelMid:    1.15,
			domain.LevelSenior: 1.0,
		},
		rates: map[rateKey]float64{
			{domain.RouteNoCode, domain.LevelJunior}: 35,
			{domain.RouteNoCode, domain.LevelMid}:    55,
			{domain.RouteNoCode, domain.LevelSenior}: 75,
			{domain.RouteHybrid, domain.LevelJunior}: 45,
			{domain.RouteHybrid, domain.LevelMid}:    70,
			{domain.RouteHybrid, domain.LevelSenior}: 95,
			{domain.RouteCustom, domain.LevelJunior}: 55,
			{domain.RouteCustom, domain.LevelMid}:    90,
			{domain.RouteCustom, domain.LevelSenior}: 130,
		},
		timelineMultipliers: map[string]float64{
			"asap":                  1.375,
			"asap (1-2 months)":     1.375,
			"standard":              1.0,
			"standard (3-4 months)": 1.0,
			"flexible":              0.85,
			"flexible (5+ months)":  0.85,
			"long-term":             0.8,
			"long term":             0.8,
			"long-term (6+ months)": 0.8,
		},
		developersPerTier: map[domain.Complexity]int{
			domain.ComplexityLow:    1,
			domain.ComplexityMedium: 2,
			domain.ComplexityHigh:   3,
		},
		overhead: Overhead{
			SetupHours:      16,
			DeploymentHours: 8,
			TestingPct:      0.20,
			BugFixPct:       0.10,
			CoordinationPct: 0.10,
			LowFactor:       0.8,
			HighFactor:      1.2,
		},
	}
}

// FeatureRange returns the base hour range for a normalized feature key.
// Unknown keys yield the default range and false.
func (t *Tables) FeatureRange(key string) (domain.HourRange, bool) {
	if r, ok := t.featureHours[key]; ok {
		return r, true
	}
	return t.unknownFeature, false
}

// RouteSpeed returns the route's effort multiplier (custom = 1.0 baseline).
func (t *Tables) RouteSpeed(r domain.Route) float64 {
	if v, ok := t.routeSpeed[r]; ok {
		return v
	}
	return 1.0
}

// ComplexityMultiplier returns the effort multiplier for the complexity tier.
func (t *Tables) ComplexityMultiplier(c domain.Complexity) float64 {
	if v, ok := t.complexityMult[c]; ok {
		return v
	}
	return 1.0
}

// DefaultBracket returns the hour bracket used when no features are supplied.
func (t *Tables) DefaultBracket(c domain.Complexity) domain.HourRange {
	if v, ok := t.defaultBrackets[c]; ok {
		return v
	}
	return t.defaultBrackets[domain.ComplexityMedium]
}

// LevelSpeed returns the hours multiplier for an experience level; less
// experienced developers need more hours for the same work.
func (t *Tables) LevelSpeed(l domain.ExperienceLevel) float64 {
	if v, ok := t.levelSpeed[l]; ok {
		return v
	}
	return 1.0
}

// Rate returns the hourly USD rate for a level on a route.
func (t *Tables) Rate(r domain.Route, l domain.ExperienceLevel) float64 {
	return t.rates[rateKey{r, l}]
}

// DevelopersFor returns the developer count assumed by tier estimates.
func (t *Tables) DevelopersFor(c domain.Complexity) int {
	if n, ok := t.developersPerTier[c]; ok {
		return n
	}
	return 1
}

// Overhead returns the overhead configuration.
func (t *Tables) Overhead() Overhead {
	return t.overhead
}

// TimelineMultiplier maps a timeline label ("ASAP (1-2 months)", "Flexible", ...)
// to a cost multiplier. Unknown labels cost the baseline 1.0.
func (t *Tables) TimelineMultiplier(label string) float64 {
	if v, ok := t.timelineMultipliers[NormalizeLabel(label)]; ok {
		return v
	}
	return 1.0
}

var dashReplacer = strings.NewReplacer("–", "-", "—", "-")

// NormalizeLabel lowercases, converts en/em dashes to hyphens and collapses
// whitespace. Feature names and timeline labels are both keyed this way.
func NormalizeLabel(s string) string {
	s = dashReplacer.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
