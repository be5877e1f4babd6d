package filter

import "github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"

// Selection maps each facet to the chosen value. A facet that is missing or
// set to domain.All imposes no constraint.
type Selection map[domain.Facet]string

// NewSelection returns a selection with every facet set to domain.All.
func NewSelection() Selection {
	sel := make(Selection, len(domain.Facets))
	for _, f := range domain.Facets {
		sel[f] = domain.All
	}
	return sel
}

// Value returns the chosen value for a facet.
func (s Selection) Value(f domain.Facet) string {
	if v, ok := s[f]; ok && v != "" {
		return v
	}
	return domain.All
}

// ActiveCount is the number of facets constrained to a concrete value.
func (s Selection) ActiveCount() int {
	n := 0
	for _, f := range domain.Facets {
		if s.Value(f) != domain.All {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := NewSelection()
	for _, f := range domain.Facets {
		out[f] = s.Value(f)
	}
	return out
}

// Matches reports whether p satisfies every facet of the selection.
func (s Selection) Matches(p domain.Project) bool {
	for _, f := range domain.Facets {
		want := s.Value(f)
		if want != domain.All && p.FacetValue(f) != want {
			return false
		}
	}
	return true
}

// Apply returns the projects matching sel, in their original order. The
// result is never nil.
func Apply(projects []domain.Project, sel Selection) []domain.Project {
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if sel.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
