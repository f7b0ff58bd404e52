package app

import "github.com/alexanderramin/blueprint/internal/domain"

// PlanRequest carries every input of a planning run. Route and Complexity
// are raw strings; they are validated at the use-case boundary. Features
// may be catalog IDs or free-text names.
type PlanRequest struct {
	Route       string
	Complexity  string
	Features    []string
	Description string
	ProductType string
	Budget      string
	Timeline    string
	TeamSize    string
	// HourlyRate overrides the phase costing rate when positive.
	HourlyRate int
	// Categories restricts archetype matches; empty allows all.
	Categories []string
}

type PlanResponse struct {
	RequestID string                   `json:"request_id"`
	Features  []string                 `json:"features"`
	Estimate  domain.CostEstimate      `json:"estimate"`
	Phases    domain.MVPPhaseBreakdown `json:"phases"`
	Gaps      domain.GapAnalysis       `json:"gaps"`
	Matches   []domain.MVPMatch        `json:"matches"`
	// Archetype is the top match when it clears the recognition threshold.
	Archetype *domain.MVPMatch `json:"archetype,omitempty"`
}

type GapResponse struct {
	Estimate domain.CostEstimate `json:"estimate"`
	Gaps     domain.GapAnalysis  `json:"gaps"`
}

type MatchRequest struct {
	Description string
	Features    []string
	Categories  []string
}

type ImportResult struct {
	Import         *domain.KBImport
	ArchetypeCount int
	FeatureCount   int
}

type PlanErrorCode string

const (
	ErrInvalidRoute      PlanErrorCode = "INVALID_ROUTE"
	ErrInvalidComplexity PlanErrorCode = "INVALID_COMPLEXITY"
	ErrInvalidRate       PlanErrorCode = "INVALID_HOURLY_RATE"
)

// PlanError reports input rejected at the boundary. The engine itself never
// fails once inputs are valid.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
