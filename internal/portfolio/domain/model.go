package domain

// Project is a single portfolio entry. Projects are immutable once the
// catalog has been built.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Slug        string   `json:"slug" yaml:"slug"`
	Category    string   `json:"category" yaml:"category"`
	Type        string   `json:"type" yaml:"type"`
	Design      string   `json:"design" yaml:"design"`
	AddOn       string   `json:"addOn" yaml:"addOn"`
	Branding    string   `json:"branding" yaml:"branding"`
	Image       string   `json:"image" yaml:"image"`
	Description string   `json:"description" yaml:"description"`
	WebsiteURL  string   `json:"websiteUrl" yaml:"websiteUrl"`
	Services    []string `json:"services" yaml:"services"`
}

// FacetValue returns the project's value for the given facet.
func (p Project) FacetValue(f Facet) string {
	switch f {
	case FacetCategory:
		return p.Category
	case FacetType:
		return p.Type
	case FacetDesign:
		return p.Design
	case FacetAddOn:
		return p.AddOn
	case FacetBranding:
		return p.Branding
	}
	return ""
}

// FacetDomain is the ordered list of allowed values for one facet,
// the All sentinel first.
type FacetDomain struct {
	Facet  Facet    `json:"name"`
	Values []string `json:"values"`
}
