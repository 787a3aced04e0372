// Package extraction scans free-form job-description text for catalog
// skills using literal, word-boundary keyword matching.
package extraction

import (
	"regexp"
	"strings"

	"github.com/velric/jd-mission-engine/internal/catalog"
	"github.com/velric/jd-mission-engine/internal/types"
)

// Extractor matches catalog keywords against text. Keyword patterns are
// compiled once at construction; Extract itself is pure and deterministic.
type Extractor struct {
	order    []string
	patterns map[string][]*regexp.Regexp
}

// New builds an extractor for the given catalog. Each keyword phrase
// becomes a whole-word pattern, so "go" never matches inside "going".
func New(cat *catalog.Catalog) *Extractor {
	skills := cat.Skills()
	e := &Extractor{
		order:    make([]string, 0, len(skills)),
		patterns: make(map[string][]*regexp.Regexp, len(skills)),
	}

	for _, skill := range skills {
		compiled := make([]*regexp.Regexp, 0, len(skill.Keywords))
		for _, kw := range skill.Keywords {
			compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(kw))+`\b`))
		}
		e.order = append(e.order, skill.ID)
		e.patterns[skill.ID] = compiled
	}

	return e
}

// Extract counts non-overlapping whole-word occurrences of every catalog
// keyword in text, case-insensitively, and sums them per skill. Skills with
// zero matches are omitted; results come back in catalog order. Empty or
// whitespace-only text yields an empty result, not an error.
func (e *Extractor) Extract(text string) []types.DetectedSkill {
	lower := strings.ToLower(text)

	var detected []types.DetectedSkill
	for _, id := range e.order {
		count := 0
		for _, re := range e.patterns[id] {
			count += len(re.FindAllStringIndex(lower, -1))
		}
		if count > 0 {
			detected = append(detected, types.DetectedSkill{SkillID: id, Count: count})
		}
	}

	return detected
}
