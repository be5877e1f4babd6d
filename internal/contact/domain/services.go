package domain

// serviceLabels maps the contact form's service select values to the names
// shown in the email.
var serviceLabels = map[string]string{
	"web-development": "Web Development",
	"graphic-design":  "Graphic Design",
	"video-editing":   "Video Editing",
	"seo":             "SEO Optimization",
	"sem":             "SEM Marketing",
}

// ServiceLabel returns the display name for a service slug. Unknown values
// are returned unchanged.
func ServiceLabel(slug string) string {
	if label, ok := serviceLabels[slug]; ok {
		return label
	}
	return slug
}
