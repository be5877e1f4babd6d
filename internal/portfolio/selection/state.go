package selection

import (
	"sync"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/filter"
)

// State tracks one viewer's facet choices. Values are checked against the
// catalog's facet domains; an out-of-domain value is rejected and leaves the
// state untouched.
type State struct {
	mu      sync.RWMutex
	domains filter.DomainSource
	sel     filter.Selection
}

// New returns a state with every facet cleared.
func New(domains filter.DomainSource) *State {
	return &State{domains: domains, sel: filter.NewSelection()}
}

// Restore rebuilds a state from a stored selection, validating each value.
func Restore(domains filter.DomainSource, sel filter.Selection) (*State, error) {
	st := New(domains)
	for _, f := range domain.Facets {
		if err := st.SetFacet(f, sel.Value(f)); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// SetFacet replaces the choice for one facet.
func (s *State) SetFacet(f domain.Facet, value string) error {
	if err := filter.Validate(s.domains, f, value); err != nil {
		return err
	}

	s.mu.Lock()
	s.sel[f] = value
	s.mu.Unlock()
	return nil
}

// ClearFacet resets one facet to domain.All.
func (s *State) ClearFacet(f domain.Facet) {
	s.mu.Lock()
	s.sel[f] = domain.All
	s.mu.Unlock()
}

// ClearAll resets every facet.
func (s *State) ClearAll() {
	s.mu.Lock()
	s.sel = filter.NewSelection()
	s.mu.Unlock()
}

// ActiveCount is the number of facets set to a concrete value.
func (s *State) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.ActiveCount()
}

// Value returns the current choice for a facet.
func (s *State) Value(f domain.Facet) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.Value(f)
}

// Selection returns a snapshot safe to hand to filter.Apply.
func (s *State) Selection() filter.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sel.Clone()
}
