package filter

import (
	"fmt"
	"net/url"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"github.com/samber/lo"
)

// DomainSource supplies facet vocabularies for validation.
type DomainSource interface {
	DomainFor(f domain.Facet) []string
}

// Validate checks that value belongs to the facet's domain.
func Validate(src DomainSource, f domain.Facet, value string) error {
	if !lo.Contains(src.DomainFor(f), value) {
		return fmt.Errorf("%w: %q is not a %s", domain.ErrInvalidFacetValue, value, f.Label())
	}
	return nil
}

// FromQuery builds a selection from URL query parameters. Keys that do not
// name a facet are ignored and an empty value means no constraint. Aliases
// of one facet (category, Category) and repeated keys must agree; differing
// values are rejected with domain.ErrInvalidFacetValue.
func FromQuery(q url.Values, src DomainSource) (Selection, error) {
	byFacet := make(map[domain.Facet][]string, len(domain.Facets))
	for key, values := range q {
		f, err := domain.ParseFacet(key)
		if err != nil {
			continue
		}
		byFacet[f] = append(byFacet[f], lo.Compact(values)...)
	}

	sel := NewSelection()
	for _, f := range domain.Facets {
		values := lo.Uniq(byFacet[f])
		switch len(values) {
		case 0:
			continue
		case 1:
		default:
			return nil, fmt.Errorf("%w: conflicting values for %s", domain.ErrInvalidFacetValue, f.Label())
		}
		if err := Validate(src, f, values[0]); err != nil {
			return nil, err
		}
		sel[f] = values[0]
	}
	return sel, nil
}
