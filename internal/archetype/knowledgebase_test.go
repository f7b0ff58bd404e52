package archetype

import (
	"testing"

	"github.com/alexanderramin/blueprint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBase_CopiesInput(t *testing.T) {
	archetypes := []domain.Archetype{
		{ID: "b", Name: "B", Category: "saas", Keywords: []string{"x"}},
		{ID: "a", Name: "A", Category: "booking"},
	}
	kb := NewKnowledgeBase(archetypes, nil)
	archetypes[0].Keywords[0] = "changed"

	got := kb.Archetypes()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID, "records are kept in ID order")
	assert.Equal(t, []string{"x"}, got[1].Keywords)

	got[1].Keywords[0] = "changed again"
	b, ok := kb.Archetype("b")
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, b.Keywords)
}

func TestKnowledgeBase_Lookup(t *testing.T) {
	kb := seedKnowledgeBase(t)

	a, ok := kb.Archetype("online-store")
	require.True(t, ok)
	assert.Equal(t, "Online Store", a.Name)

	_, ok = kb.Archetype("missing")
	assert.False(t, ok)
}

func TestKnowledgeBase_Categories(t *testing.T) {
	kb := NewKnowledgeBase([]domain.Archetype{
		{ID: "a", Category: "saas"},
		{ID: "b", Category: "booking"},
		{ID: "c", Category: "saas"},
	}, nil)
	assert.Equal(t, []string{"booking", "saas"}, kb.Categories())
}

func TestKnowledgeBase_ResolveFeatures(t *testing.T) {
	kb := NewKnowledgeBase(nil, []domain.CatalogFeature{
		{ID: "auth", Label: "user authentication"},
		{ID: "payments", Label: "payment processing"},
	})

	got := kb.ResolveFeatures([]string{"auth", " payments ", "custom reporting"})
	assert.Equal(t, []string{"user authentication", "payment processing", "custom reporting"}, got)
}
