package resolver

import (
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/catalog"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
)

// DefaultRelatedLimit is how many related projects a detail page shows.
const DefaultRelatedLimit = 3

// Resolver maps slugs to projects for the detail view.
type Resolver struct {
	store catalog.Store
}

func New(store catalog.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the project with the given slug or domain.ErrProjectNotFound.
func (r *Resolver) Resolve(slug string) (domain.Project, error) {
	return r.store.FindBySlug(slug)
}

// RelatedTo returns up to limit projects in catalog order, skipping the one
// whose slug matches. An unknown slug skips nothing.
func (r *Resolver) RelatedTo(slug string, limit int) []domain.Project {
	if limit <= 0 {
		return []domain.Project{}
	}

	out := make([]domain.Project, 0, limit)
	for _, p := range r.store.AllProjects() {
		if p.Slug == slug {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
