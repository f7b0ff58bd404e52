package cli

import (
	"strings"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value that validates on Set, so bad enum input is
// rejected while flags are parsed rather than deep in a use case.
type enumValue[T ~string] struct {
	target *T
	parse  func(string) (T, error)
	typ    string
}

func newEnumValue[T ~string](target *T, def T, typ string, parse func(string) (T, error)) *enumValue[T] {
	*target = def
	return &enumValue[T]{target: target, parse: parse, typ: typ}
}

func (e *enumValue[T]) String() string { return string(*e.target) }
func (e *enumValue[T]) Type() string   { return e.typ }

func (e *enumValue[T]) Set(s string) error {
	v, err := e.parse(s)
	if err != nil {
		return err
	}
	*e.target = v
	return nil
}

// planInputs are the flags shared by estimate, phases, gaps and plan.
type planInputs struct {
	route       domain.Route
	complexity  domain.Complexity
	features    []string
	description string
	productType string
	budget      string
	timeline    string
	teamSize    string
	hourlyRate  int
	categories  []string
}

func (in *planInputs) bind(fs *pflag.FlagSet) {
	fs.Var(newEnumValue(&in.route, domain.RouteCustom, "route", domain.ParseRoute),
		"route", "Build route: no-code, hybrid or custom")
	fs.Var(newEnumValue(&in.complexity, domain.ComplexityMedium, "complexity", domain.ParseComplexity),
		"complexity", "Complexity tier: low, medium or high")
	fs.StringSliceVarP(&in.features, "feature", "f", nil, "Feature ID or name (repeatable or comma-separated)")
	fs.StringVarP(&in.description, "description", "d", "", "Short description of the product")
	fs.StringVar(&in.productType, "product-type", "", "Product type (marketplace, e-commerce, saas, mobile); inferred when empty")
	fs.StringVar(&in.budget, "budget", "", `Stated budget, e.g. "$10,000 - $20,000" or "Under $5k"`)
	fs.StringVar(&in.timeline, "timeline", "", `Desired timeline, e.g. "ASAP (1-2 months)" or "Standard (3-4 months)"`)
	fs.StringVar(&in.teamSize, "team-size", "", `Available team, e.g. "Just me" or "2-3"`)
	fs.IntVar(&in.hourlyRate, "hourly-rate", 0, "Hourly rate for phase costing (default from route)")
	fs.StringSliceVar(&in.categories, "category", nil, "Restrict archetype matches to these categories")
}

func (in *planInputs) request() app.PlanRequest {
	return app.PlanRequest{
		Route:       string(in.route),
		Complexity:  string(in.complexity),
		Features:    trimAll(in.features),
		Description: in.description,
		ProductType: in.productType,
		Budget:      in.budget,
		Timeline:    in.timeline,
		TeamSize:    in.teamSize,
		HourlyRate:  in.hourlyRate,
		Categories:  trimAll(in.categories),
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
