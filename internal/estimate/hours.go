package estimate

import (
	"math"

	"github.com/alexanderramin/blueprint/internal/domain"
)

// HourModel converts feature lists into hour ranges. It is the single source
// of per-feature hours for both whole-project estimates and phase planning.
type HourModel struct {
	tables *Tables
}

// NewHourModel creates an HourModel over the given tables.
func NewHourModel(tables *Tables) *HourModel {
	return &HourModel{tables: tables}
}

// Tables exposes the tables backing the model.
func (m *HourModel) Tables() *Tables {
	return m.tables
}

// ProjectHours estimates total effort for a project. With no usable feature
// names it falls back to the complexity bracket scaled by the route only.
//
// Order of application: per-feature sum, route speed, overhead (widened
// 0.8x on the low bound and 1.2x on the high bound), complexity multiplier.
func (m *HourModel) ProjectHours(features []string, route domain.Route, complexity domain.Complexity) domain.HourRange {
	keys := uniqueFeatureKeys(features)
	if len(keys) == 0 {
		return m.DefaultHours(route, complexity)
	}

	var sumMin, sumMax float64
	for _, k := range keys {
		r, _ := m.tables.FeatureRange(k)
		sumMin += float64(r.Min)
		sumMax += float64(r.Max)
	}

	speed := m.tables.RouteSpeed(route)
	devMin := sumMin * speed
	devMax := sumMax * speed

	oh := m.tables.Overhead()
	avgDev := (devMin + devMax) / 2
	overhead := oh.SetupHours + oh.DeploymentHours +
		avgDev*(oh.TestingPct+oh.BugFixPct+oh.CoordinationPct)

	low := devMin + overhead*oh.LowFactor
	high := devMax + overhead*oh.HighFactor

	cm := m.tables.ComplexityMultiplier(complexity)
	return domain.HourRange{
		Min: int(math.Round(low * cm)),
		Max: int(math.Round(high * cm)),
	}
}

// DefaultHours returns the complexity bracket scaled by the route multiplier.
func (m *HourModel) DefaultHours(route domain.Route, complexity domain.Complexity) domain.HourRange {
	b := m.tables.DefaultBracket(complexity)
	speed := m.tables.RouteSpeed(route)
	return domain.HourRange{
		Min: int(math.Round(float64(b.Min) * speed)),
		Max: int(math.Round(float64(b.Max) * speed)),
	}
}

// FeatureHours estimates a single feature: table range times the route and
// complexity multipliers. Project overhead is not included.
func (m *HourModel) FeatureHours(name string, route domain.Route, complexity domain.Complexity) domain.HourRange {
	r, _ := m.tables.FeatureRange(NormalizeLabel(name))
	f := m.tables.RouteSpeed(route) * m.tables.ComplexityMultiplier(complexity)
	lo := int(math.Round(float64(r.Min) * f))
	hi := int(math.Round(float64(r.Max) * f))
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return domain.HourRange{Min: lo, Max: hi}
}

// FeatureComplexity buckets a feature by its unscaled table effort.
func (m *HourModel) FeatureComplexity(name string) domain.Complexity {
	r, _ := m.tables.FeatureRange(NormalizeLabel(name))
	switch mean := r.Mean(); {
	case mean <= 24:
		return domain.ComplexityLow
	case mean <= 60:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityHigh
	}
}

// FeatureCount is the number of distinct non-blank feature names, the same
// set ProjectHours prices.
func FeatureCount(features []string) int {
	return len(uniqueFeatureKeys(features))
}

// uniqueFeatureKeys normalizes names and drops blanks and duplicates,
// preserving first-seen order.
func uniqueFeatureKeys(features []string) []string {
	seen := make(map[string]bool, len(features))
	keys := make([]string, 0, len(features))
	for _, f := range features {
		k := NormalizeLabel(f)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}
