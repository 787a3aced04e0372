// Package missions ranks skill gaps against job-skill weights and fills
// category templates into concrete mission suggestions.
package missions

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/velric/jd-mission-engine/internal/catalog"
	"github.com/velric/jd-mission-engine/internal/types"
)

const (
	// minGap is the exclusive threshold below which a skill is never a
	// mission candidate (a skill rated 90 or higher has nothing to fix).
	minGap = 10

	// minRankWeight floors the importance weight in rank scoring so a
	// zero-weight skill cannot become permanently unselectable.
	minRankWeight = 1.0
)

// Placeholder tokens recognized in template bodies.
const (
	tokenDomain = "{{domain}}"
	tokenStack  = "{{stack}}"
)

// Picker selects an index in [0, n). It is injected so tests can supply a
// deterministic selector while production code keeps real randomness.
type Picker func(n int) int

// RandomPicker returns a Picker backed by the shared math/rand source.
func RandomPicker() Picker {
	return rand.Intn
}

// Generator produces gap-ranked, template-filled missions. It holds no
// state between calls beyond its configuration.
type Generator struct {
	catalog   *catalog.Catalog
	templates *catalog.TemplateSet
	pick      Picker
}

// NewGenerator builds a generator over the given catalog and template set.
// A nil picker falls back to RandomPicker.
func NewGenerator(cat *catalog.Catalog, templates *catalog.TemplateSet, pick Picker) *Generator {
	if pick == nil {
		pick = RandomPicker()
	}
	return &Generator{catalog: cat, templates: templates, pick: pick}
}

type rankedSkill struct {
	skillID string
	gap     int
	score   float64
}

// Generate ranks job skills by gap-weighted score, keeps those with a gap
// above the threshold, and fills one pseudo-randomly picked template per
// selected skill, capped at maxMissions. Missions come back in rank order,
// highest score first. Ratings absent from userSkills count as zero gap
// input, mirroring the scorer's raw-absence convention.
func (g *Generator) Generate(jobTitle string, jobSkills []types.JobSkill, userSkills types.UserSkillMap, maxMissions int) []types.Mission {
	if len(jobSkills) == 0 {
		return nil
	}

	domain := strings.TrimSpace(jobTitle)
	if domain == "" {
		domains := g.templates.Domains()
		domain = domains[g.pick(len(domains))]
	}

	ranked := make([]rankedSkill, 0, len(jobSkills))
	for _, js := range jobSkills {
		gap := 100 - userSkills.ValueOrZero(js.SkillID)
		if gap < 0 {
			gap = 0
		}
		if gap <= minGap {
			continue
		}

		weight := js.Weight
		if weight < minRankWeight {
			weight = minRankWeight
		}

		ranked = append(ranked, rankedSkill{
			skillID: js.SkillID,
			gap:     gap,
			score:   float64(gap) * weight,
		})
	}

	// Stable sort keeps the original relative order on ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if maxMissions < 0 {
		maxMissions = 0
	}
	if len(ranked) > maxMissions {
		ranked = ranked[:maxMissions]
	}

	result := make([]types.Mission, 0, len(ranked))
	for _, r := range ranked {
		skill, ok := g.catalog.Lookup(r.skillID)
		if !ok {
			// Extractor and catalog out of sync; skip rather than fail.
			continue
		}

		templates := g.templates.TemplatesFor(skill.Category)
		if len(templates) == 0 {
			// Configuration defect; omit the candidate, keep the batch.
			continue
		}

		tmpl := templates[g.pick(len(templates))]
		description := strings.ReplaceAll(tmpl.Body, tokenDomain, domain)
		description = strings.ReplaceAll(description, tokenStack, g.templates.StackFor(skill.Category))

		result = append(result, types.Mission{
			SkillID:     r.skillID,
			Title:       tmpl.Title,
			Description: description,
		})
	}

	return result
}
