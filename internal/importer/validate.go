package importer

import (
	"fmt"
	"regexp"
	"strings"
)

var validID = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateKnowledgeBase checks an import file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateKnowledgeBase(file *KnowledgeBaseFile) []error {
	var errs []error

	if len(file.Archetypes) == 0 && len(file.Features) == 0 {
		return []error{fmt.Errorf("knowledge base is empty: need at least one archetype or feature")}
	}

	errs = append(errs, validateArchetypes(file.Archetypes)...)
	errs = append(errs, validateFeatures(file.Features)...)

	return errs
}

func validateArchetypes(archetypes []ArchetypeImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, a := range archetypes {
		prefix := fmt.Sprintf("archetypes[%d]", i)

		switch {
		case a.ID == "":
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		case !validID.MatchString(a.ID):
			errs = append(errs, fmt.Errorf("%s.id %q must be lowercase words joined by hyphens", prefix, a.ID))
		case seen[a.ID]:
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, a.ID))
		}
		seen[a.ID] = true

		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if strings.TrimSpace(a.Category) == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		}
		for j, kw := range a.Keywords {
			if strings.TrimSpace(kw) == "" {
				errs = append(errs, fmt.Errorf("%s.keywords[%d] is blank", prefix, j))
			}
		}

		errs = append(errs, validateBaseline(prefix+".baseline_estimates.mid_tier", a.Baselines.MidTier)...)
		errs = append(errs, validateBaseline(prefix+".baseline_estimates.senior", a.Baselines.Senior)...)
	}

	return errs
}

func validateBaseline(prefix string, b BaselineImport) []error {
	var errs []error

	if b.CostMin < 0 || b.CostMax < 0 {
		errs = append(errs, fmt.Errorf("%s: costs must not be negative", prefix))
	} else if b.CostMin > b.CostMax {
		errs = append(errs, fmt.Errorf("%s: cost_min (%d) must be <= cost_max (%d)", prefix, b.CostMin, b.CostMax))
	}
	if b.WeeksMin < 0 || b.WeeksMax < 0 {
		errs = append(errs, fmt.Errorf("%s: weeks must not be negative", prefix))
	} else if b.WeeksMin > b.WeeksMax {
		errs = append(errs, fmt.Errorf("%s: weeks_min (%d) must be <= weeks_max (%d)", prefix, b.WeeksMin, b.WeeksMax))
	}
	if b.TeamSize < 0 {
		errs = append(errs, fmt.Errorf("%s.team_size must not be negative", prefix))
	}

	return errs
}

func validateFeatures(features []FeatureImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, f := range features {
		prefix := fmt.Sprintf("features[%d]", i)

		switch {
		case f.ID == "":
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		case !validID.MatchString(f.ID):
			errs = append(errs, fmt.Errorf("%s.id %q must be lowercase words joined by hyphens", prefix, f.ID))
		case seen[f.ID]:
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, f.ID))
		}
		seen[f.ID] = true

		if strings.TrimSpace(f.Label) == "" {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
	}

	return errs
}
