package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/alexanderramin/blueprint/internal/repository"
	"github.com/alexanderramin/blueprint/internal/service"
	"github.com/alexanderramin/blueprint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	catalog := service.NewCatalogService(
		repository.NewSQLiteArchetypeRepo(database),
		repository.NewSQLiteFeatureCatalogRepo(database),
		repository.NewSQLiteKBImportRepo(database),
		testutil.NewTestUoW(database),
	)
	return &App{
		Planner:       service.NewPlanService(catalog, nil),
		Catalog:       catalog,
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

var marketplaceArgs = []string{
	"--route", "custom", "--complexity", "medium",
	"-f", "auth,listings", "-f", "payments",
	"-d", "a marketplace where buyers and sellers trade vintage items",
}

// --- Engine commands ---

func TestEstimateCmd_Text(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append([]string{"estimate"}, marketplaceArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "COST ESTIMATE")
	assert.Contains(t, out, "TEAM OPTIONS")
	assert.Contains(t, out, "Senior + Mid-Level")
}

func TestEstimateCmd_JSONAcceptsRouteSpelling(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate", "--json", "--route", "nocode", "--complexity", "LOW", "-f", "auth")
	require.NoError(t, err)

	var est domain.CostEstimate
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Equal(t, domain.RouteNoCode, est.Route)
	assert.Equal(t, domain.ComplexityLow, est.Complexity)
	assert.NotNil(t, est.Tiers.Junior)
	assert.Positive(t, est.BudgetMin)
}

func TestEstimateCmd_RejectsUnknownEnums(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--route", "spaceship")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid route")

	_, err = executeCmd(t, testApp(t), "estimate", "--complexity", "extreme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid complexity")
}

func TestPhasesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append([]string{"phases"}, marketplaceArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "PHASED ROADMAP")
	assert.Contains(t, out, "MVP")
	assert.Contains(t, out, "user authentication")
}

func TestGapsCmd_FlagsTinyBudget(t *testing.T) {
	args := append([]string{"gaps"}, marketplaceArgs...)
	args = append(args, "--budget", "Under $1,000", "--timeline", "Standard (3-4 months)", "--team-size", "Just me")

	out, err := executeCmd(t, testApp(t), args...)
	require.NoError(t, err)
	assert.Contains(t, out, "SEVERE")
	assert.Contains(t, out, "RECOMMENDATIONS")
}

func TestMatchCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "match", "-d", "a marketplace where buyers and sellers trade vintage items")
	require.NoError(t, err)
	assert.Contains(t, out, "Two-Sided Marketplace")

	out, err = executeCmd(t, testApp(t), "match", "-d", "a marketplace for vintage items", "--category", "ai")
	require.NoError(t, err)
	assert.NotContains(t, out, "Two-Sided Marketplace")
}

func TestPlanCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append([]string{"plan", "--json"}, marketplaceArgs...)...)
	require.NoError(t, err)

	var resp app.PlanResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, []string{"user authentication", "product listings", "payment processing"}, resp.Features)
	require.NotNil(t, resp.Archetype)
	assert.Equal(t, "two-sided-marketplace", resp.Archetype.ID)
}

func TestPlanCmd_Text(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append([]string{"plan"}, marketplaceArgs...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "PROJECT BLUEPRINT")
	assert.Contains(t, out, "REALITY CHECK")
	assert.Contains(t, out, "SIMILAR PROJECTS")
}

func TestPlanCmd_NegativeRateIsPlanError(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "--hourly-rate=-5")

	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.ErrInvalidRate, planErr.Code)
}

func TestPlanCmd_InteractiveNeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

// --- Knowledge base commands ---

const petSittingKB = `
archetypes:
  - id: pet-sitting
    name: Pet Sitting Marketplace
    category: marketplace
    keywords: [pets, sitters, walkers]
    baseline_estimates:
      mid_tier: {cost_min: 20000, cost_max: 35000, weeks_min: 8, weeks_max: 12, team_size: 2}
      senior: {cost_min: 28000, cost_max: 48000, weeks_min: 6, weeks_max: 10, team_size: 2}
features:
  - {id: auth, label: user authentication}
  - {id: walks, label: walk tracking}
`

func TestKBCmd_ListAndCategoryFilter(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "kb", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "two-sided-marketplace")
	assert.Contains(t, out, "ai-assistant")

	out, err = executeCmd(t, a, "kb", "list", "--category", "e-commerce")
	require.NoError(t, err)
	assert.Contains(t, out, "online-store")
	assert.NotContains(t, out, "ai-assistant")
}

func TestKBCmd_ImportReplacesCatalog(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petSittingKB), 0644))

	out, err := executeCmd(t, a, "kb", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 archetypes and 2 features")

	out, err = executeCmd(t, a, "kb", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pet Sitting Marketplace")
	assert.NotContains(t, out, "Two-Sided Marketplace")

	out, err = executeCmd(t, a, "kb", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "seed")
	assert.Contains(t, out, "kb.yaml")
}

func TestKBCmd_ImportRejectsInvalidFile(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("archetypes: []\nfeatures: []\n"), 0644))

	_, err := executeCmd(t, a, "kb", "import", path)
	require.Error(t, err)

	out, err := executeCmd(t, a, "kb", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "two-sided-marketplace")
}

func TestKBCmd_HideAndUnhide(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "kb", "hide", "cms")
	require.NoError(t, err)
	assert.Contains(t, out, "Hid feature cms")

	out, err = executeCmd(t, a, "kb", "features")
	require.NoError(t, err)
	assert.NotContains(t, out, "content management")

	out, err = executeCmd(t, a, "kb", "features", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "content management")
	assert.Contains(t, out, "hidden")

	_, err = executeCmd(t, a, "kb", "unhide", "cms")
	require.NoError(t, err)
	out, err = executeCmd(t, a, "kb", "features")
	require.NoError(t, err)
	assert.Contains(t, out, "content management")

	_, err = executeCmd(t, a, "kb", "hide", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKBCmd_FeaturesJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "kb", "features", "--json")
	require.NoError(t, err)

	var features []domain.CatalogFeature
	require.NoError(t, json.Unmarshal([]byte(out), &features))
	assert.Len(t, features, 30)
	assert.Equal(t, "auth", features[0].ID)
}
