package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/digiweb-agency/digiweb-backend/internal/metrics"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/catalog"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/filter"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *PortfolioService {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	repo := repository.NewSessionRepository(client, 0)
	return NewPortfolioService(catalog.Builtin(), repo, metrics.New())
}

func TestPortfolioService_Projects(t *testing.T) {
	svc := setupService(t)

	assert.Len(t, svc.Projects(filter.NewSelection()), 10)

	sel := filter.NewSelection()
	sel[domain.FacetCategory] = "Education & Training"
	sel[domain.FacetDesign] = "Minimalist"
	got := svc.Projects(sel)
	require.Len(t, got, 1)
	assert.Equal(t, "spoedcare", got[0].Slug)
}

func TestPortfolioService_Detail(t *testing.T) {
	svc := setupService(t)

	p, err := svc.Project("the-brothers-grill")
	require.NoError(t, err)
	assert.Equal(t, "The Brothers Grill", p.Name)

	_, err = svc.Project("missing")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	assert.Len(t, svc.Related("the-brothers-grill", 3), 3)
}

func TestPortfolioService_Sessions(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	view, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, view.ID)
	assert.Equal(t, 0, view.ActiveCount)

	view, err = svc.SetSessionFacet(ctx, view.ID, domain.FacetCategory, "Cleaning & Facility")
	require.NoError(t, err)
	assert.Equal(t, 1, view.ActiveCount)

	view, err = svc.SetSessionFacet(ctx, view.ID, domain.FacetBranding, "Logo Only")
	require.NoError(t, err)
	assert.Equal(t, 2, view.ActiveCount)

	_, projects, err := svc.SessionProjects(ctx, view.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "k-mensen", projects[0].Slug)

	t.Run("invalid value leaves stored state alone", func(t *testing.T) {
		_, err := svc.SetSessionFacet(ctx, view.ID, domain.FacetBranding, "Neon")
		assert.ErrorIs(t, err, domain.ErrInvalidFacetValue)

		got, err := svc.Session(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "Logo Only", got.Selection.Value(domain.FacetBranding))
	})

	t.Run("clear one facet", func(t *testing.T) {
		got, err := svc.ClearSessionFacet(ctx, view.ID, domain.FacetBranding)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ActiveCount)
	})

	t.Run("clear all", func(t *testing.T) {
		got, err := svc.ClearSession(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.ActiveCount)

		_, projects, err := svc.SessionProjects(ctx, view.ID)
		require.NoError(t, err)
		assert.Len(t, projects, 10)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.Session(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestPortfolioService_ConcurrentFacetWrites(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	const sessions = 20
	ids := make([]string, sessions)
	for i := range ids {
		view, err := svc.CreateSession(ctx)
		require.NoError(t, err)
		ids[i] = view.ID
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			_, err := svc.SetSessionFacet(ctx, id, domain.FacetDesign, "Bold")
			assert.NoError(t, err)
		}(id)
		go func(id string) {
			defer wg.Done()
			_, err := svc.SetSessionFacet(ctx, id, domain.FacetType, "Landing Page")
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		view, err := svc.Session(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Bold", view.Selection.Value(domain.FacetDesign), "session %s", id)
		assert.Equal(t, "Landing Page", view.Selection.Value(domain.FacetType), "session %s", id)
		assert.Equal(t, 2, view.ActiveCount)
	}
}

func TestPortfolioService_NoSessionStore(t *testing.T) {
	svc := NewPortfolioService(catalog.Builtin(), nil, nil)

	_, err := svc.CreateSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionsDisabled)
	_, err = svc.Session(context.Background(), "any")
	assert.ErrorIs(t, err, domain.ErrSessionsDisabled)
	_, err = svc.SetSessionFacet(context.Background(), "any", domain.FacetDesign, "Bold")
	assert.ErrorIs(t, err, domain.ErrSessionsDisabled)
	assert.Len(t, svc.Projects(filter.NewSelection()), 10)
}
