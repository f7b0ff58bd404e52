package domain

import (
	"fmt"
	"strings"
)

type Route string

const (
	RouteNoCode Route = "no-code"
	RouteHybrid Route = "hybrid"
	RouteCustom Route = "custom"
)

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

type ExperienceLevel string

const (
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

type Phase string

const (
	PhaseMVP Phase = "mvp"
	Phase2   Phase = "phase2"
	Phase3   Phase = "phase3"
)

type GapSeverity string

const (
	SeverityNone     GapSeverity = "none"
	SeverityMinor    GapSeverity = "minor"
	SeverityModerate GapSeverity = "moderate"
	SeveritySevere   GapSeverity = "severe"
)

// Rank orders severities so the worst of several gaps can be picked.
func (s GapSeverity) Rank() int {
	switch s {
	case SeveritySevere:
		return 3
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 1
	default:
		return 0
	}
}

type RecommendationCategory string

const (
	CategoryBudget   RecommendationCategory = "budget"
	CategoryTimeline RecommendationCategory = "timeline"
	CategoryTeam     RecommendationCategory = "team"
	CategoryScope    RecommendationCategory = "scope"
)

type ProductType string

const (
	ProductMarketplace ProductType = "marketplace"
	ProductECommerce   ProductType = "e-commerce"
	ProductSaaS        ProductType = "saas"
	ProductMobile      ProductType = "mobile"
	ProductGeneral     ProductType = "general"
)

// ValidRoutes is the canonical set of accepted route strings.
var ValidRoutes = map[string]bool{
	"no-code": true, "hybrid": true, "custom": true,
}

// ValidComplexities is the canonical set of accepted complexity strings.
var ValidComplexities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ValidExperienceLevels is the canonical set of accepted experience level strings.
var ValidExperienceLevels = map[string]bool{
	"junior": true, "mid": true, "senior": true,
}

// ParseRoute validates a route at the boundary. "nocode" and "no code" are
// accepted as spellings of no-code.
func ParseRoute(s string) (Route, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "nocode", "no code", "no_code":
		v = string(RouteNoCode)
	}
	if !ValidRoutes[v] {
		return "", fmt.Errorf("invalid route %q (expected no-code, hybrid or custom)", s)
	}
	return Route(v), nil
}

// ParseComplexity validates a complexity tier at the boundary.
func ParseComplexity(s string) (Complexity, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !ValidComplexities[v] {
		return "", fmt.Errorf("invalid complexity %q (expected low, medium or high)", s)
	}
	return Complexity(v), nil
}

// ParseExperienceLevel validates an experience level at the boundary.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !ValidExperienceLevels[v] {
		return "", fmt.Errorf("invalid experience level %q (expected junior, mid or senior)", s)
	}
	return ExperienceLevel(v), nil
}
