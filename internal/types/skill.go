// Package types provides type definitions for structured data used throughout the mission engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies a catalog skill and selects which mission templates apply to it.
type Category string

// The five fixed skill categories.
const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryData     Category = "data"
	CategoryInfra    Category = "infra"
	CategorySoft     Category = "soft"
)

// Categories returns the fixed set of valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFrontend,
		CategoryBackend,
		CategoryData,
		CategoryInfra,
		CategorySoft,
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFrontend, CategoryBackend, CategoryData, CategoryInfra, CategorySoft:
		return true
	}
	return false
}

// Skill is an immutable catalog entry: one recognizable competency with the
// literal keyword phrases used to match it in job-description text.
// Keyword lists are curated to avoid substring collisions between skills;
// the matcher itself performs no stemming or fuzzy matching.
type Skill struct {
	ID       string   `json:"id" validate:"required"`
	Label    string   `json:"label" validate:"required"`
	Category Category `json:"category" validate:"required,oneof=frontend backend data infra soft"`
	Keywords []string `json:"keywords" validate:"required,min=1,dive,required"`
}

// DetectedSkill is the transient result of one extraction pass: a catalog
// skill found in the text together with its raw occurrence count.
// Count is always positive; zero-count skills are omitted entirely.
type DetectedSkill struct {
	SkillID string `json:"skill_id"`
	Count   int    `json:"count"`
}

// JobSkill is a detected skill expressed as a normalized importance weight
// in [0, 100]. Weights across one extraction sum to 100 up to floating-point
// rounding.
type JobSkill struct {
	SkillID string  `json:"skill_id"`
	Weight  float64 `json:"weight"`
}
