// Package catalog loads the static skill catalog and mission-template
// configuration. Both are declarative JSON data validated on load; nothing
// in the extractor, scorer, or generator hard-codes skill or template
// content.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/velric/jd-mission-engine/internal/schemas"
	schemafiles "github.com/velric/jd-mission-engine/schemas"

	"github.com/velric/jd-mission-engine/internal/types"
)

//go:embed skill_catalog.json
var embeddedCatalog []byte

// Catalog is the immutable set of recognized skills. It is built once at
// startup and never mutated afterwards.
type Catalog struct {
	skills []types.Skill
	byID   map[string]types.Skill
}

// catalogFile is the on-disk shape of a skill catalog data file.
type catalogFile struct {
	Skills []types.Skill `json:"skills" validate:"required,min=1,dive"`
}

// Load builds the catalog from the embedded default data.
func Load() (*Catalog, error) {
	cat, err := parseCatalog(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded skill catalog is invalid: %w", err)
	}
	return cat, nil
}

// LoadFromFile builds the catalog from an external data file, validated the
// same way as the embedded default.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill catalog file %s: %w", path, err)
	}

	cat, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("skill catalog file %s is invalid: %w", path, err)
	}
	return cat, nil
}

func parseCatalog(data []byte) (*Catalog, error) {
	if err := schemas.ValidateBytes(schemafiles.SkillCatalog, data); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("catalog struct validation failed: %w", err)
	}

	byID := make(map[string]types.Skill, len(file.Skills))
	for _, skill := range file.Skills {
		if _, exists := byID[skill.ID]; exists {
			return nil, fmt.Errorf("duplicate skill id %q", skill.ID)
		}
		byID[skill.ID] = skill
	}

	return &Catalog{skills: file.Skills, byID: byID}, nil
}

// Skills returns the full catalog in its defined order. Callers must not
// mutate the returned slice.
func (c *Catalog) Skills() []types.Skill {
	return c.skills
}

// Lookup returns the skill with the given id, and whether it exists.
func (c *Catalog) Lookup(id string) (types.Skill, bool) {
	skill, ok := c.byID[id]
	return skill, ok
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.skills)
}
