package catalog

import "github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"

// BuiltinDomains are the facet vocabularies shipped with the site.
var BuiltinDomains = map[domain.Facet][]string{
	domain.FacetCategory: {
		domain.All,
		"Business Services",
		"Education & Training",
		"Hospitality & Catering",
		"Health & Care",
		"Entertainment & Events",
		"Transport & Logistics",
		"Cleaning & Facility",
		"Garden & Landscape",
	},
	domain.FacetType: {
		domain.All,
		"Website Element Design",
		"Full Website Design",
		"Landing Page",
		"E-commerce",
	},
	domain.FacetDesign: {
		domain.All,
		"Modern",
		"Classic",
		"Minimalist",
		"Bold",
	},
	domain.FacetAddOn: {
		domain.All,
		"SEO Package",
		"Content Writing",
		"Photography",
		"Social Media",
	},
	domain.FacetBranding: {
		domain.All,
		"Full Branding",
		"Logo Only",
		"Brand Refresh",
		"No Branding",
	},
}

// BuiltinProjects is the agency's published portfolio.
var BuiltinProjects = []domain.Project{
	{
		ID:          "1",
		Name:        "SRT Transport",
		Slug:        "srt-transport",
		Category:    "Business Services",
		Type:        "Website Element Design",
		Design:      "Modern",
		AddOn:       "SEO Package",
		Branding:    "Full Branding",
		Image:       "/assets/portfolio/srt-transport.png",
		Description: "For SRT Transport we designed and developed a brand-new website that reflects their fast, personal, and affordable moving services. The result is a modern, user-friendly platform that helps customers quickly find the information they need and request a quote.",
		WebsiteURL:  "https://srttransport.nl",
		Services:    []string{"Web Development", "SEO", "Branding"},
	},
	{
		ID:          "2",
		Name:        "DRM Security",
		Slug:        "drm-security",
		Category:    "Business Services",
		Type:        "Website Element Design",
		Design:      "Bold",
		AddOn:       "Content Writing",
		Branding:    "Full Branding",
		Image:       "/assets/portfolio/drm-security.png",
		Description: "DRM Security needed a professional online presence that conveys trust and safety. We built a sleek, dark-themed website showcasing their security services in Rotterdam, complete with service pages, client testimonials, and easy contact options.",
		WebsiteURL:  "https://drmsecurity.nl",
		Services:    []string{"Web Development", "Graphic Design", "Content Writing"},
	},
	{
		ID:          "3",
		Name:        "Apura Cleaning",
		Slug:        "apura-cleaning",
		Category:    "Cleaning & Facility",
		Type:        "Website Element Design",
		Design:      "Modern",
		AddOn:       "SEO Package",
		Branding:    "Brand Refresh",
		Image:       "/assets/portfolio/apura-cleaning.png",
		Description: "Apura Cleaning provides professional cleaning services in Tilburg. We created a fresh, clean website that mirrors their commitment to spotless results. The site features service descriptions, an online quote form, and optimized local SEO.",
		WebsiteURL:  "https://apuracleaning.nl",
		Services:    []string{"Web Development", "SEO", "Graphic Design"},
	},
	{
		ID:          "4",
		Name:        "Eerst Helpen",
		Slug:        "eerst-helpen",
		Category:    "Education & Training",
		Type:        "Full Website Design",
		Design:      "Modern",
		AddOn:       "Content Writing",
		Branding:    "Logo Only",
		Image:       "/assets/portfolio/eerst-helpen.png",
		Description: "Eerst Helpen offers first aid training courses. We developed a comprehensive website with course listings, online registration, location information, and an intuitive booking system that makes signing up for classes seamless.",
		WebsiteURL:  "https://eersthelpen.nl",
		Services:    []string{"Web Development", "Graphic Design", "Content Writing"},
	},
	{
		ID:          "5",
		Name:        "Spoedcare",
		Slug:        "spoedcare",
		Category:    "Education & Training",
		Type:        "Full Website Design",
		Design:      "Minimalist",
		AddOn:       "Photography",
		Branding:    "Full Branding",
		Image:       "/assets/portfolio/spoedcare.png",
		Description: "Spoedcare provides safety training and certification programs. We built a professional, clean website focused on credibility and easy navigation. The design emphasizes their expertise while making course registration straightforward.",
		WebsiteURL:  "https://spoedcare.nl",
		Services:    []string{"Web Development", "Branding", "Photography"},
	},
	{
		ID:          "6",
		Name:        "The Brothers Grill",
		Slug:        "the-brothers-grill",
		Category:    "Hospitality & Catering",
		Type:        "Website Element Design",
		Design:      "Bold",
		AddOn:       "Photography",
		Branding:    "Full Branding",
		Image:       "/assets/portfolio/brothers-grill.png",
		Description: "The Brothers Grill is a catering and restaurant business with a passion for great food. We created a warm, inviting website featuring their menu, catering services, and online ordering capabilities with mouth-watering food photography.",
		WebsiteURL:  "https://thebrothersgrill.nl",
		Services:    []string{"Web Development", "Graphic Design", "Photography"},
	},
	{
		ID:          "7",
		Name:        "Ad Visser Tuinonderhoud",
		Slug:        "ad-visser-tuinonderhoud",
		Category:    "Garden & Landscape",
		Type:        "Landing Page",
		Design:      "Classic",
		AddOn:       "SEO Package",
		Branding:    "No Branding",
		Image:       "/assets/portfolio/ad-visser.png",
		Description: "Ad Visser Tuinonderhoud specializes in garden maintenance and landscaping. We designed a nature-inspired website showcasing their services, portfolio of completed gardens, and easy-to-use contact form for requesting quotes.",
		WebsiteURL:  "https://advissertuinonderhoud.nl",
		Services:    []string{"Web Development", "SEO"},
	},
	{
		ID:          "8",
		Name:        "My Unforgettable Party",
		Slug:        "my-unforgettable-party",
		Category:    "Entertainment & Events",
		Type:        "Full Website Design",
		Design:      "Bold",
		AddOn:       "Social Media",
		Branding:    "Full Branding",
		Image:       "/assets/portfolio/unforgettable-party.png",
		Description: "My Unforgettable Party creates magical celebrations for children and families. We developed a vibrant, colorful website that captures the joy of their events, featuring party packages, photo galleries, and an online booking system.",
		WebsiteURL:  "https://myunforgettableparty.nl",
		Services:    []string{"Web Development", "Graphic Design", "Social Media"},
	},
	{
		ID:          "9",
		Name:        "Limbourgia Touringcars",
		Slug:        "limbourgia-touringcars",
		Category:    "Transport & Logistics",
		Type:        "Website Element Design",
		Design:      "Classic",
		AddOn:       "Content Writing",
		Branding:    "Brand Refresh",
		Image:       "/assets/portfolio/limbourgia.png",
		Description: "Limbourgia Touringcars offers touring car and bus rental services. We built a professional website with booking functionality, fleet showcase, route information, and a clean design that inspires confidence in their transportation services.",
		WebsiteURL:  "https://limbourgiatouringcars.nl",
		Services:    []string{"Web Development", "Content Writing", "Graphic Design"},
	},
	{
		ID:          "10",
		Name:        "K Mensen",
		Slug:        "k-mensen",
		Category:    "Cleaning & Facility",
		Type:        "Full Website Design",
		Design:      "Minimalist",
		AddOn:       "SEO Package",
		Branding:    "Logo Only",
		Image:       "/assets/portfolio/k-mensen.png",
		Description: "K Mensen provides cleaning and facility services for businesses. We created a professional, corporate website highlighting their range of services, team expertise, and client success stories with a focus on trust and reliability.",
		WebsiteURL:  "https://kmensen.nl",
		Services:    []string{"Web Development", "SEO", "Branding"},
	},
}

// Builtin builds the store from the shipped catalog. The shipped data is
// known good, so a validation failure is a programming error.
func Builtin() *MemoryStore {
	s, err := New(BuiltinProjects, BuiltinDomains)
	if err != nil {
		panic(err)
	}
	return s
}
