package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/blueprint/internal/app"
	"github.com/alexanderramin/blueprint/internal/db"
	"github.com/alexanderramin/blueprint/internal/repository"
	"github.com/alexanderramin/blueprint/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallKnowledgeBase = `
archetypes:
  - id: pet-sitting
    name: Pet Sitting Marketplace
    category: Marketplace
    keywords: [pets, sitters, Walkers]
    baseline_estimates:
      mid_tier: {cost_min: 20000, cost_max: 35000, weeks_min: 8, weeks_max: 12, team_size: 2}
      senior: {cost_min: 28000, cost_max: 48000, weeks_min: 6, weeks_max: 10, team_size: 2}
features:
  - {id: auth, label: user authentication}
  - {id: walks, label: walk tracking}
`

func writeKnowledgeBase(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newCatalogService(t *testing.T, uow db.UnitOfWork, database db.DBTX, observers ...UseCaseObserver) CatalogService {
	t.Helper()
	return NewCatalogService(
		repository.NewSQLiteArchetypeRepo(database),
		repository.NewSQLiteFeatureCatalogRepo(database),
		repository.NewSQLiteKBImportRepo(database),
		uow,
		observers...,
	)
}

func TestCatalogService_SeedsOnFirstUse(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, testutil.NewTestUoW(database), database)
	ctx := context.Background()

	kb, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	assert.Len(t, kb.Archetypes(), 11)
	assert.Len(t, kb.Features(), 30)

	history, err := svc.ImportHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, SeedSource, history[0].Source)
	assert.Equal(t, 11, history[0].ArchetypeCount)
}

func TestCatalogService_DoesNotReseed(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	_, err := newCatalogService(t, uow, database).KnowledgeBase(ctx)
	require.NoError(t, err)

	// A fresh service over the same store finds the earlier import.
	svc := newCatalogService(t, uow, database)
	_, err = svc.KnowledgeBase(ctx)
	require.NoError(t, err)

	history, err := svc.ImportHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCatalogService_ImportReplacesKnowledgeBase(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := newCatalogService(t, testutil.NewTestUoW(database), database, obs)
	ctx := context.Background()

	before, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	require.Len(t, before.Archetypes(), 11)

	path := writeKnowledgeBase(t, smallKnowledgeBase)
	result, err := svc.ImportKnowledgeBase(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ArchetypeCount)
	assert.Equal(t, 2, result.FeatureCount)
	assert.Equal(t, path, result.Import.Source)

	kb, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	archetypes := kb.Archetypes()
	require.Len(t, archetypes, 1)
	assert.Equal(t, "marketplace", archetypes[0].Category, "categories are normalized to lowercase")
	assert.Equal(t, []string{"pets", "sitters", "walkers"}, archetypes[0].Keywords)
	assert.Equal(t, []string{"walk tracking"}, kb.ResolveFeatures([]string{"walks"}))

	ev := obs.last(t)
	assert.Equal(t, "import-knowledge-base", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 1, ev.Fields["archetype_count"])
}

func TestCatalogService_ImportOnFreshStoreRecordsSeedFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, testutil.NewTestUoW(database), database)
	ctx := context.Background()

	path := writeKnowledgeBase(t, smallKnowledgeBase)
	_, err := svc.ImportKnowledgeBase(ctx, path)
	require.NoError(t, err)

	history, err := svc.ImportHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, path, history[0].Source)
	assert.Equal(t, SeedSource, history[1].Source)

	kb, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	assert.Len(t, kb.Archetypes(), 1, "the import replaces the seed")
}

func TestCatalogService_ImportRejectsInvalidFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, testutil.NewTestUoW(database), database)
	ctx := context.Background()

	_, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)

	path := writeKnowledgeBase(t, `
archetypes:
  - id: Bad ID
    name: ""
    category: saas
`)
	_, err = svc.ImportKnowledgeBase(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	kb, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	assert.Len(t, kb.Archetypes(), 11)
}

func TestCatalogService_ImportMissingFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, testutil.NewTestUoW(database), database)

	_, err := svc.ImportKnowledgeBase(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalogService_ImportRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	_, err := newCatalogService(t, testutil.NewTestUoW(database), database).KnowledgeBase(ctx)
	require.NoError(t, err)

	injected := errors.New("disk full")
	failing := &testutil.FailingUoW{DB: database, FailOn: 2, Match: "INSERT INTO feature_catalog", Err: injected}
	svc := newCatalogService(t, failing, database)

	_, err = svc.ImportKnowledgeBase(ctx, writeKnowledgeBase(t, smallKnowledgeBase))
	require.ErrorIs(t, err, injected)

	kb, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	assert.Len(t, kb.Archetypes(), 11)
	assert.Len(t, kb.Features(), 30)

	history, err := svc.ImportHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCatalogService_ListArchetypesByCategory(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, testutil.NewTestUoW(database), database)

	archetypes, err := svc.ListArchetypes(context.Background(), " Marketplace ")
	require.NoError(t, err)
	require.Len(t, archetypes, 2)
	for _, a := range archetypes {
		assert.Equal(t, "marketplace", a.Category)
	}
}

func TestCatalogService_HiddenFeatures(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := newCatalogService(t, testutil.NewTestUoW(database), database)
	ctx := context.Background()

	require.NoError(t, svc.SetFeatureHidden(ctx, "cms", true))

	visible, err := svc.ListFeatures(ctx, false)
	require.NoError(t, err)
	assert.Len(t, visible, 29)
	for _, f := range visible {
		assert.NotEqual(t, "cms", f.ID)
	}

	all, err := svc.ListFeatures(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 30)

	// Hidden entries still resolve so saved selections keep working.
	kb, err := svc.KnowledgeBase(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"content management"}, kb.ResolveFeatures([]string{"cms"}))

	err = svc.SetFeatureHidden(ctx, "no-such-feature", true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogService_PlanAgainstStoredKnowledgeBase(t *testing.T) {
	database := testutil.NewTestDB(t)
	catalog := newCatalogService(t, testutil.NewTestUoW(database), database)
	ctx := context.Background()

	_, err := catalog.ImportKnowledgeBase(ctx, writeKnowledgeBase(t, smallKnowledgeBase))
	require.NoError(t, err)

	plans := NewPlanService(catalog, nil)
	matches, err := plans.Match(ctx, app.MatchRequest{
		Description: "an app to book dog walkers and pet sitters",
		Features:    []string{"walks"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "pet-sitting", matches[0].ID)
}
