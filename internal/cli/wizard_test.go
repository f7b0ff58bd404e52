package cli

import (
	"testing"

	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/alexanderramin/blueprint/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanWizard_DefaultsFromFlags(t *testing.T) {
	in := &planInputs{route: domain.RouteHybrid, complexity: domain.ComplexityHigh, budget: "$5k"}
	w := newPlanWizard(in, []domain.CatalogFeature{{ID: "auth", Label: "user authentication"}})

	assert.Equal(t, "hybrid", w.route)
	assert.Equal(t, "high", w.complexity)
	assert.Equal(t, "$5k", w.budget)
	assert.Equal(t, "Standard (3-4 months)", w.timeline)
	assert.Equal(t, "Just me", w.teamSize)
}

func TestPlanWizard_EscCancels(t *testing.T) {
	w := newPlanWizard(&planInputs{route: domain.RouteCustom, complexity: domain.ComplexityLow}, nil)

	model, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, model.(*planWizard).cancelled)
}

func TestPlanWizard_DrivenCtrlCCancels(t *testing.T) {
	w := newPlanWizard(&planInputs{route: domain.RouteCustom, complexity: domain.ComplexityMedium},
		[]domain.CatalogFeature{{ID: "auth", Label: "user authentication"}})
	d := teatest.New(t, w, teatest.WithSize(100, 40))

	assert.Contains(t, d.View(), "What are you building?")
	assert.Contains(t, d.View(), "Build route")

	d.Press(tea.KeyCtrlC)
	assert.True(t, d.Quitting)
	assert.True(t, w.cancelled)
	assert.Empty(t, d.View())
}

func TestPlanWizard_ApplyCopiesAnswers(t *testing.T) {
	in := &planInputs{route: domain.RouteCustom, complexity: domain.ComplexityLow}
	w := newPlanWizard(in, nil)

	w.route = "no-code"
	w.complexity = "medium"
	w.description = "  a booking app for yoga studios "
	w.features = []string{"auth", "booking"}
	w.budget = " $8,000 "
	w.timeline = "ASAP (1-2 months)"
	w.teamSize = "2-3 people"
	w.apply()

	req := in.request()
	assert.Equal(t, "no-code", req.Route)
	assert.Equal(t, "medium", req.Complexity)
	assert.Equal(t, "a booking app for yoga studios", req.Description)
	assert.Equal(t, []string{"auth", "booking"}, req.Features)
	assert.Equal(t, "$8,000", req.Budget)
	assert.Equal(t, "ASAP (1-2 months)", req.Timeline)
	assert.Equal(t, "2-3 people", req.TeamSize)
}

func TestEnumValue(t *testing.T) {
	var r domain.Route
	v := newEnumValue(&r, domain.RouteCustom, "route", domain.ParseRoute)
	assert.Equal(t, "custom", v.String())
	assert.Equal(t, "route", v.Type())

	require.NoError(t, v.Set("No Code"))
	assert.Equal(t, domain.RouteNoCode, r)

	assert.Error(t, v.Set("rocket"))
	assert.Equal(t, domain.RouteNoCode, r)
}
