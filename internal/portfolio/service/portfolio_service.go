package service

import (
	"context"

	"github.com/digiweb-agency/digiweb-backend/internal/metrics"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/catalog"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/filter"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/resolver"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/selection"
)

// SessionStore persists filter sessions between requests.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, fn func(*domain.Session) error) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// PortfolioService is the read model behind the "our work" pages.
type PortfolioService struct {
	store    *catalog.MemoryStore
	resolver *resolver.Resolver
	sessions SessionStore
	metrics  *metrics.Metrics
}

// NewPortfolioService wires the service. sessions may be nil, in which case
// the session operations report domain.ErrSessionsDisabled.
func NewPortfolioService(store *catalog.MemoryStore, sessions SessionStore, m *metrics.Metrics) *PortfolioService {
	return &PortfolioService{
		store:    store,
		resolver: resolver.New(store),
		sessions: sessions,
		metrics:  m,
	}
}

// Store exposes the catalog for callers that validate against it.
func (s *PortfolioService) Store() *catalog.MemoryStore {
	return s.store
}

// Facets returns every facet domain.
func (s *PortfolioService) Facets() []domain.FacetDomain {
	return s.store.Domains()
}

// Projects filters the catalog by sel.
func (s *PortfolioService) Projects(sel filter.Selection) []domain.Project {
	out := filter.Apply(s.store.AllProjects(), sel)
	s.metrics.ObserveFilter(len(out))
	return out
}

func (s *PortfolioService) Project(slug string) (domain.Project, error) {
	return s.resolver.Resolve(slug)
}

func (s *PortfolioService) Related(slug string, limit int) []domain.Project {
	return s.resolver.RelatedTo(slug, limit)
}

// SessionView is a session together with derived values.
type SessionView struct {
	ID          string           `json:"id"`
	Selection   filter.Selection `json:"selection"`
	ActiveCount int              `json:"active_count"`
}

// CreateSession starts a session with nothing selected.
func (s *PortfolioService) CreateSession(ctx context.Context) (*SessionView, error) {
	if s.sessions == nil {
		return nil, domain.ErrSessionsDisabled
	}
	sess := &domain.Session{Selection: filter.NewSelection()}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return viewOf(sess.ID, selection.New(s.store)), nil
}

func (s *PortfolioService) Session(ctx context.Context, id string) (*SessionView, error) {
	_, st, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewOf(id, st), nil
}

// SetSessionFacet changes one facet of a stored session.
func (s *PortfolioService) SetSessionFacet(ctx context.Context, id string, f domain.Facet, value string) (*SessionView, error) {
	return s.mutate(ctx, id, func(st *selection.State) error {
		return st.SetFacet(f, value)
	})
}

func (s *PortfolioService) ClearSessionFacet(ctx context.Context, id string, f domain.Facet) (*SessionView, error) {
	return s.mutate(ctx, id, func(st *selection.State) error {
		st.ClearFacet(f)
		return nil
	})
}

func (s *PortfolioService) ClearSession(ctx context.Context, id string) (*SessionView, error) {
	return s.mutate(ctx, id, func(st *selection.State) error {
		st.ClearAll()
		return nil
	})
}

// EndSession discards a stored session.
func (s *PortfolioService) EndSession(ctx context.Context, id string) error {
	if s.sessions == nil {
		return domain.ErrSessionsDisabled
	}
	return s.sessions.Delete(ctx, id)
}

// SessionProjects filters the catalog with the session's current selection.
func (s *PortfolioService) SessionProjects(ctx context.Context, id string) (*SessionView, []domain.Project, error) {
	_, st, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return viewOf(id, st), s.Projects(st.Selection()), nil
}

// mutate runs fn against the stored selection inside the store's atomic
// update, so concurrent changes to different facets of one session all land.
func (s *PortfolioService) mutate(ctx context.Context, id string, fn func(*selection.State) error) (*SessionView, error) {
	if s.sessions == nil {
		return nil, domain.ErrSessionsDisabled
	}

	var st *selection.State
	_, err := s.sessions.Update(ctx, id, func(sess *domain.Session) error {
		restored, err := selection.Restore(s.store, filter.Selection(sess.Selection))
		if err != nil {
			return err
		}
		if err := fn(restored); err != nil {
			return err
		}
		sess.Selection = restored.Selection()
		st = restored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return viewOf(id, st), nil
}

func (s *PortfolioService) load(ctx context.Context, id string) (*domain.Session, *selection.State, error) {
	if s.sessions == nil {
		return nil, nil, domain.ErrSessionsDisabled
	}
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	st, err := selection.Restore(s.store, filter.Selection(sess.Selection))
	if err != nil {
		return nil, nil, err
	}
	return sess, st, nil
}

func viewOf(id string, st *selection.State) *SessionView {
	return &SessionView{ID: id, Selection: st.Selection(), ActiveCount: st.ActiveCount()}
}
