package skills

import "github.com/okadachi/portfolio-api/internal/models"

// Categorizer merges the static catalog with detected technology sets
type Categorizer struct {
	catalog []CatalogCategory
}

// NewCategorizer creates a Categorizer backed by the embedded catalog
func NewCategorizer() (*Categorizer, error) {
	catalog, err := LoadCatalog()
	if err != nil {
		return nil, err
	}
	return &Categorizer{catalog: catalog}, nil
}

// Categorize returns the full catalog with evidenced flags derived from the
// detected set. Categories and skills appear in catalog order on every call;
// only the flags vary with the input.
func (c *Categorizer) Categorize(detected TechSet) []models.SkillCategory {
	result := make([]models.SkillCategory, 0, len(c.catalog))
	for _, category := range c.catalog {
		categorySkills := make([]models.Skill, 0, len(category.Skills))
		for _, entry := range category.Skills {
			categorySkills = append(categorySkills, models.Skill{
				Name:      entry.Name,
				Years:     entry.Years,
				Level:     entry.Level,
				Evidenced: entry.Always || detected.Has(entry.Name),
			})
		}
		result = append(result, models.SkillCategory{
			Name:   category.Name,
			Skills: categorySkills,
		})
	}
	return result
}
