package skills

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CatalogSkill is a single entry in the static skill catalog. Always marks
// skills that are evidenced regardless of what the repositories show.
type CatalogSkill struct {
	Name   string `yaml:"name"`
	Years  int    `yaml:"years"`
	Level  string `yaml:"level"`
	Always bool   `yaml:"always"`
}

// CatalogCategory groups catalog skills under a display name
type CatalogCategory struct {
	Name   string         `yaml:"name"`
	Skills []CatalogSkill `yaml:"skills"`
}

type catalogFile struct {
	Categories []CatalogCategory `yaml:"categories"`
}

// LoadCatalog parses the embedded skill catalog. The catalog is fixed at
// build time; detection only toggles evidenced flags, never the entries.
func LoadCatalog() ([]CatalogCategory, error) {
	var parsed catalogFile
	if err := yaml.Unmarshal(catalogYAML, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse skill catalog: %w", err)
	}
	if len(parsed.Categories) == 0 {
		return nil, fmt.Errorf("skill catalog is empty")
	}
	return parsed.Categories, nil
}
