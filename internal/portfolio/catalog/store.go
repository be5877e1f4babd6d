package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/samber/lo"
)

// Store is the read-only view of the portfolio catalog.
type Store interface {
	AllProjects() []domain.Project
	DomainFor(f domain.Facet) []string
	FindBySlug(slug string) (domain.Project, error)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// MemoryStore holds the catalog in process memory. It is safe for
// concurrent readers since nothing mutates it after New returns.
type MemoryStore struct {
	projects []domain.Project
	domains  map[domain.Facet][]string
	bySlug   map[string]int
}

// New validates the projects against the facet domains and builds a store.
func New(projects []domain.Project, domains map[domain.Facet][]string) (*MemoryStore, error) {
	if err := validateDomains(domains); err != nil {
		return nil, err
	}

	s := &MemoryStore{
		projects: make([]domain.Project, 0, len(projects)),
		domains:  make(map[domain.Facet][]string, len(domain.Facets)),
		bySlug:   make(map[string]int, len(projects)),
	}
	for _, f := range domain.Facets {
		s.domains[f] = append([]string(nil), domains[f]...)
	}

	ids := make(map[string]struct{}, len(projects))
	for i, p := range projects {
		if err := s.validateProject(i, p); err != nil {
			return nil, err
		}
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate project id %q", domain.ErrInvalidCatalog, p.ID)
		}
		if _, dup := s.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", domain.ErrInvalidCatalog, p.Slug)
		}
		ids[p.ID] = struct{}{}
		s.bySlug[p.Slug] = len(s.projects)

		p.Services = append([]string(nil), p.Services...)
		s.projects = append(s.projects, p)
	}

	return s, nil
}

func validateDomains(domains map[domain.Facet][]string) error {
	for _, f := range domain.Facets {
		values := domains[f]
		if len(values) == 0 || values[0] != domain.All {
			return fmt.Errorf("%w: domain for %s must start with %q", domain.ErrInvalidCatalog, f, domain.All)
		}
		if dups := lo.FindDuplicates(values); len(dups) > 0 {
			return fmt.Errorf("%w: domain for %s repeats %q", domain.ErrInvalidCatalog, f, dups[0])
		}
	}
	return nil
}

func (s *MemoryStore) validateProject(i int, p domain.Project) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: project #%d has no id", domain.ErrInvalidCatalog, i)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: project %q has no name", domain.ErrInvalidCatalog, p.ID)
	case !slugPattern.MatchString(p.Slug):
		return fmt.Errorf("%w: project %q has malformed slug %q", domain.ErrInvalidCatalog, p.ID, p.Slug)
	}

	for _, f := range domain.Facets {
		v := p.FacetValue(f)
		if v == domain.All || !lo.Contains(s.domains[f], v) {
			return fmt.Errorf("%w: project %q has %s %q outside its domain", domain.ErrInvalidCatalog, p.ID, f, v)
		}
	}
	return nil
}

// AllProjects returns the catalog in its original order.
func (s *MemoryStore) AllProjects() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// DomainFor returns the allowed values of a facet, sentinel first. Unknown
// facets have an empty domain.
func (s *MemoryStore) DomainFor(f domain.Facet) []string {
	return append([]string(nil), s.domains[f]...)
}

// Domains returns every facet domain in canonical facet order.
func (s *MemoryStore) Domains() []domain.FacetDomain {
	out := make([]domain.FacetDomain, 0, len(domain.Facets))
	for _, f := range domain.Facets {
		out = append(out, domain.FacetDomain{Facet: f, Values: s.DomainFor(f)})
	}
	return out
}

func (s *MemoryStore) FindBySlug(slug string) (domain.Project, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return s.projects[i], nil
}

// Len reports the number of projects.
func (s *MemoryStore) Len() int {
	return len(s.projects)
}
