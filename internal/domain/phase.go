package domain

type Feature struct {
	Name           string     `json:"name"`
	Phase          Phase      `json:"phase"`
	Reasoning      string     `json:"reasoning"`
	Complexity     Complexity `json:"complexity"`
	EstimatedHours HourRange  `json:"estimated_hours"`
	// Locked features are never demoted out of the MVP by rebalancing.
	Locked bool `json:"locked,omitempty"`
	// Suggested marks enhancements synthesized when the backlog was empty.
	Suggested bool `json:"suggested,omitempty"`
}

type PhaseCost struct {
	Hours int `json:"hours"`
	Cost  int `json:"cost"`
}

type MVPPhaseBreakdown struct {
	ProductType    ProductType `json:"product_type"`
	MVPFeatures    []Feature   `json:"mvp_features"`
	Phase2Features []Feature   `json:"phase2_features"`
	Phase3Features []Feature   `json:"phase3_features"`
	MVPCost        PhaseCost   `json:"mvp_cost"`
	Phase2Cost     PhaseCost   `json:"phase2_cost"`
	Phase3Cost     PhaseCost   `json:"phase3_cost"`
	Recommendation string      `json:"recommendation"`
}

// AllFeatures returns the features of every phase in MVP, Phase 2, Phase 3 order.
func (b *MVPPhaseBreakdown) AllFeatures() []Feature {
	all := make([]Feature, 0, len(b.MVPFeatures)+len(b.Phase2Features)+len(b.Phase3Features))
	all = append(all, b.MVPFeatures...)
	all = append(all, b.Phase2Features...)
	all = append(all, b.Phase3Features...)
	return all
}

// TotalCost sums the cost of all three phases.
func (b *MVPPhaseBreakdown) TotalCost() int {
	return b.MVPCost.Cost + b.Phase2Cost.Cost + b.Phase3Cost.Cost
}
