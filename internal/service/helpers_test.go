package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/blueprint/internal/archetype"
	"github.com/alexanderramin/blueprint/internal/importer"
	"github.com/stretchr/testify/require"
)

func seedKnowledgeBase(t *testing.T) *archetype.KnowledgeBase {
	t.Helper()
	file, err := importer.Seed()
	require.NoError(t, err)
	archetypes, features := importer.Convert(file)
	return archetype.NewKnowledgeBase(archetypes, features)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}
