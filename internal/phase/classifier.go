// Package phase splits a feature list into MVP, Phase 2 and Phase 3.
//
// Classification runs as a fixed sequence of passes over a private working
// copy: classify, cap, floor, suggest, rank, cost. Callers only ever see the
// finished breakdown.
package phase

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/alexanderramin/blueprint/internal/estimate"
)

const (
	// MVPEffortCap is the largest share of total effort the MVP may take
	// before unlocked features are demoted.
	MVPEffortCap = 0.55

	// Phase2EffortShare is the share of non-MVP effort assigned to Phase 2.
	Phase2EffortShare = 0.60

	// CostOverhead is applied on top of raw feature hours when costing a phase.
	CostOverhead = 1.5
)

const (
	minCapMVP      = 3
	minMVP         = 2
	preferredMVP   = 3
	leanMVPMax     = 3
	balancedMVPMax = 5
)

// Request carries the inputs of a phase breakdown.
type Request struct {
	Features    []string
	Description string
	// ProductType is optional; it is inferred from Description when empty.
	ProductType string
	Route       domain.Route
	Complexity  domain.Complexity
	// HourlyRate overrides the route's mid-level rate when positive.
	HourlyRate int
}

// Classifier produces MVPPhaseBreakdowns. It holds no mutable state and is
// safe for concurrent use.
type Classifier struct {
	hours *estimate.HourModel
	rules []Rule
}

func NewClassifier(hours *estimate.HourModel) *Classifier {
	return &Classifier{hours: hours, rules: DefaultRules()}
}

type item struct {
	feature domain.Feature
	order   int
	mean    float64
	value   int
}

func (it *item) ratio() float64 {
	if it.mean <= 0 {
		return float64(it.value)
	}
	return float64(it.value) / it.mean
}

// workset is the private partition the passes operate on.
type workset struct {
	items []*item
}

func (w *workset) in(p domain.Phase) []*item {
	var out []*item
	for _, it := range w.items {
		if it.feature.Phase == p {
			out = append(out, it)
		}
	}
	return out
}

func (w *workset) hours(p domain.Phase) float64 {
	var sum float64
	for _, it := range w.in(p) {
		sum += it.mean
	}
	return sum
}

func (w *workset) total() float64 {
	var sum float64
	for _, it := range w.items {
		sum += it.mean
	}
	return sum
}

// Classify partitions the request's features. Every distinct input feature
// ends up in exactly one phase.
func (c *Classifier) Classify(req Request) domain.MVPPhaseBreakdown {
	productType := NormalizeProductType(req.ProductType, req.Description)
	names := uniqueNames(req.Features)

	if len(names) == 0 {
		return domain.MVPPhaseBreakdown{
			ProductType:    productType,
			MVPFeatures:    []domain.Feature{},
			Phase2Features: []domain.Feature{},
			Phase3Features: []domain.Feature{},
			Recommendation: "Add features to get a phased plan.",
		}
	}

	ctx := newRuleContext(Context{
		ProductType:  productType,
		Description:  req.Description,
		Complexity:   req.Complexity,
		FeatureCount: len(names),
	})

	w := c.classify(ctx, names, req)
	capMVP(w)
	floorMVP(w)
	c.suggest(w, productType, req)
	rankLaterPhases(w)

	return c.breakdown(w, productType, req)
}

func (c *Classifier) newItem(name string, order int, req Request) *item {
	hours := c.hours.FeatureHours(name, req.Route, req.Complexity)
	return &item{
		feature: domain.Feature{
			Name:           name,
			Complexity:     c.hours.FeatureComplexity(name),
			EstimatedHours: hours,
		},
		order: order,
		mean:  hours.Mean(),
		value: ValueScore(name),
	}
}

func (c *Classifier) classify(ctx ruleContext, names []string, req Request) *workset {
	w := &workset{items: make([]*item, 0, len(names))}
	for i, name := range names {
		it := c.newItem(name, i, req)
		d, _ := decide(c.rules, ctx, newText(name))
		it.feature.Phase = d.Phase
		it.feature.Reasoning = d.Reasoning
		it.feature.Locked = d.Locked
		w.items = append(w.items, it)
	}
	return w
}

// capMVP demotes the unlocked MVP feature with the lowest value for its
// effort, one at a time, while the MVP is over the effort cap and has more
// than three features.
func capMVP(w *workset) {
	total := w.total()
	for {
		mvp := w.in(domain.PhaseMVP)
		if len(mvp) <= minCapMVP || w.hours(domain.PhaseMVP) <= MVPEffortCap*total {
			return
		}

		var victim *item
		for _, it := range mvp {
			if it.feature.Locked {
				continue
			}
			if victim == nil || it.ratio() < victim.ratio() ||
				(it.ratio() == victim.ratio() && it.order > victim.order) {
				victim = it
			}
		}
		if victim == nil {
			return
		}
		victim.feature.Phase = domain.Phase2
		victim.feature.Reasoning = fmt.Sprintf("Moved to Phase 2 to keep the MVP under %d%% of total effort.", int(MVPEffortCap*100))
	}
}

// floorMVP promotes the cheapest later-phase features until the MVP has at
// least two features, and a third when that keeps the MVP under the cap.
func floorMVP(w *workset) {
	target := min(minMVP, len(w.items))
	if len(w.in(domain.PhaseMVP)) >= target {
		return
	}

	candidates := append(byHours(w.in(domain.Phase2)), byHours(w.in(domain.Phase3))...)
	promote := func(it *item) {
		it.feature.Phase = domain.PhaseMVP
		it.feature.Reasoning = "Promoted so the MVP has enough to launch with."
	}

	for len(w.in(domain.PhaseMVP)) < target && len(candidates) > 0 {
		promote(candidates[0])
		candidates = candidates[1:]
	}

	if len(w.in(domain.PhaseMVP)) < preferredMVP && len(candidates) > 0 {
		next := candidates[0]
		if w.hours(domain.PhaseMVP)+next.mean <= MVPEffortCap*w.total() {
			promote(next)
		}
	}
}

func byHours(items []*item) []*item {
	slices.SortStableFunc(items, func(a, b *item) int {
		if c := cmp.Compare(a.mean, b.mean); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})
	return items
}

// suggest fills Phase 2 with enhancements for the product type when every
// feature landed in the MVP.
func (c *Classifier) suggest(w *workset, pt domain.ProductType, req Request) {
	if len(w.in(domain.Phase2))+len(w.in(domain.Phase3)) > 0 {
		return
	}

	present := make(map[string]bool, len(w.items))
	for _, it := range w.items {
		present[estimate.NormalizeLabel(it.feature.Name)] = true
	}

	order := len(w.items)
	for _, name := range suggestionsFor(pt) {
		if present[name] {
			continue
		}
		it := c.newItem(name, order, req)
		order++
		it.feature.Phase = domain.Phase2
		it.feature.Reasoning = "Suggested enhancement once the MVP is live."
		it.feature.Suggested = true
		w.items = append(w.items, it)
	}
}

// rankLaterPhases reassigns the user's non-MVP features by value for effort:
// Phase 2 takes the best until it holds 60% of their effort, the rest go to
// Phase 3.
func rankLaterPhases(w *workset) {
	var ranked []*item
	for _, it := range w.items {
		if it.feature.Phase != domain.PhaseMVP && !it.feature.Suggested {
			ranked = append(ranked, it)
		}
	}
	if len(ranked) == 0 {
		return
	}

	slices.SortStableFunc(ranked, func(a, b *item) int {
		if c := cmp.Compare(b.ratio(), a.ratio()); c != 0 {
			return c
		}
		return strings.Compare(a.feature.Name, b.feature.Name)
	})

	var total float64
	for _, it := range ranked {
		total += it.mean
	}

	var cumulative float64
	for _, it := range ranked {
		target := domain.Phase3
		if cumulative < Phase2EffortShare*total {
			target = domain.Phase2
			cumulative += it.mean
		}
		moveTo(it, target)
	}

	if len(w.in(domain.Phase2)) == 0 {
		moveTo(ranked[0], domain.Phase2)
	}
}

func moveTo(it *item, p domain.Phase) {
	if it.feature.Phase == p {
		return
	}
	it.feature.Phase = p
	switch p {
	case domain.Phase2:
		it.feature.Reasoning = "High value for its effort; scheduled for Phase 2."
	case domain.Phase3:
		it.feature.Reasoning = "Lower value for its effort; scheduled for Phase 3."
	}
}

func (c *Classifier) breakdown(w *workset, pt domain.ProductType, req Request) domain.MVPPhaseBreakdown {
	rate := float64(req.HourlyRate)
	if rate <= 0 {
		rate = c.hours.Tables().Rate(req.Route, domain.LevelMid)
	}

	slices.SortStableFunc(w.items, func(a, b *item) int { return cmp.Compare(a.order, b.order) })

	collect := func(p domain.Phase) ([]domain.Feature, domain.PhaseCost) {
		features := []domain.Feature{}
		var hours float64
		for _, it := range w.in(p) {
			features = append(features, it.feature)
			hours += it.mean
		}
		return features, domain.PhaseCost{
			Hours: int(math.Round(hours)),
			Cost:  int(math.Round(hours * rate * CostOverhead)),
		}
	}

	b := domain.MVPPhaseBreakdown{ProductType: pt}
	b.MVPFeatures, b.MVPCost = collect(domain.PhaseMVP)
	b.Phase2Features, b.Phase2Cost = collect(domain.Phase2)
	b.Phase3Features, b.Phase3Cost = collect(domain.Phase3)
	b.Recommendation = recommendation(len(b.MVPFeatures))
	return b
}

func recommendation(mvpCount int) string {
	switch {
	case mvpCount <= leanMVPMax:
		return fmt.Sprintf("Lean MVP with %d core features. Launch quickly, learn from real users, then shape Phase 2 from their feedback.", mvpCount)
	case mvpCount <= balancedMVPMax:
		return fmt.Sprintf("Balanced MVP with %d features. If the launch date is tight, move one or two of them to Phase 2.", mvpCount)
	default:
		return fmt.Sprintf("Large MVP with %d features. Look hard for features that can wait so users see the product sooner.", mvpCount)
	}
}

// uniqueNames trims names and drops blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func uniqueNames(features []string) []string {
	seen := make(map[string]bool, len(features))
	out := make([]string, 0, len(features))
	for _, f := range features {
		name := strings.TrimSpace(f)
		key := estimate.NormalizeLabel(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}
