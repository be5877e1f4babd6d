package domain

import (
	"fmt"
	"strings"
)

// Facet names one of the five classification fields a project can be
// filtered by.
type Facet string

const (
	FacetCategory Facet = "category"
	FacetType     Facet = "type"
	FacetDesign   Facet = "design"
	FacetAddOn    Facet = "addOn"
	FacetBranding Facet = "branding"
)

// All is the sentinel facet value meaning "no constraint".
const All = "All"

// Facets lists every facet in canonical order.
var Facets = []Facet{FacetCategory, FacetType, FacetDesign, FacetAddOn, FacetBranding}

// Label is the human readable facet name shown on filter buttons.
func (f Facet) Label() string {
	switch f {
	case FacetCategory:
		return "Category"
	case FacetType:
		return "Type"
	case FacetDesign:
		return "Design"
	case FacetAddOn:
		return "Add-On"
	case FacetBranding:
		return "Branding"
	}
	return string(f)
}

// ParseFacet resolves a facet name. Matching ignores case and accepts the
// "add-on" and "add_on" spellings used by query strings.
func ParseFacet(name string) (Facet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)

	for _, f := range Facets {
		if strings.ToLower(string(f)) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFacet, name)
}
