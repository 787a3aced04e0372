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

//go:embed mission_templates.json
var embeddedTemplates []byte

// TemplateSet holds the per-category mission templates, the per-category
// stack label substituted into {{stack}}, and the generic domain phrases
// used when no role title is supplied.
type TemplateSet struct {
	domains   []string
	stacks    map[types.Category]string
	templates map[types.Category][]types.MissionTemplate
}

// templatesFile is the on-disk shape of a mission-templates data file.
type templatesFile struct {
	Domains   []string                                   `json:"domains" validate:"required,min=1,dive,required"`
	Stacks    map[types.Category]string                  `json:"stacks" validate:"required"`
	Templates map[types.Category][]types.MissionTemplate `json:"templates" validate:"required,dive,min=1,dive"`
}

// LoadTemplates builds the template set from the embedded default data.
func LoadTemplates() (*TemplateSet, error) {
	set, err := parseTemplates(embeddedTemplates)
	if err != nil {
		return nil, fmt.Errorf("embedded mission templates are invalid: %w", err)
	}
	return set, nil
}

// LoadTemplatesFromFile builds the template set from an external data file.
func LoadTemplatesFromFile(path string) (*TemplateSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission templates file %s: %w", path, err)
	}

	set, err := parseTemplates(data)
	if err != nil {
		return nil, fmt.Errorf("mission templates file %s is invalid: %w", path, err)
	}
	return set, nil
}

func parseTemplates(data []byte) (*TemplateSet, error) {
	if err := schemas.ValidateBytes(schemafiles.MissionTemplates, data); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var file templatesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse templates JSON: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("templates struct validation failed: %w", err)
	}

	// Every known category needs a stack label and at least one template.
	for _, cat := range types.Categories() {
		if file.Stacks[cat] == "" {
			return nil, fmt.Errorf("missing stack label for category %q", cat)
		}
		if len(file.Templates[cat]) == 0 {
			return nil, fmt.Errorf("no templates for category %q", cat)
		}
	}

	return &TemplateSet{
		domains:   file.Domains,
		stacks:    file.Stacks,
		templates: file.Templates,
	}, nil
}

// Domains returns the fixed fallback domain phrases.
func (t *TemplateSet) Domains() []string {
	return t.domains
}

// StackFor returns the stack label substituted into {{stack}} for the
// given category, or the empty string for an unknown category.
func (t *TemplateSet) StackFor(cat types.Category) string {
	return t.stacks[cat]
}

// TemplatesFor returns the template list for the given category. An unknown
// category yields nil; callers skip the candidate rather than failing.
func (t *TemplateSet) TemplatesFor(cat types.Category) []types.MissionTemplate {
	return t.templates[cat]
}
