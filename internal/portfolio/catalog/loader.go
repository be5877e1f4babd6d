package catalog

import (
	"fmt"
	"os"

	"github.com/digiweb-agency/digiweb-backend/internal/portfolio/domain"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Domains  map[string][]string `yaml:"domains"`
	Projects []domain.Project    `yaml:"projects"`
}

// LoadFile reads a YAML catalog from disk. The file carries a "domains"
// mapping keyed by facet name and a "projects" list.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*MemoryStore, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}

	domains := make(map[domain.Facet][]string, len(cf.Domains))
	for name, values := range cf.Domains {
		f, err := domain.ParseFacet(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
		domains[f] = values
	}

	return New(cf.Projects, domains)
}
