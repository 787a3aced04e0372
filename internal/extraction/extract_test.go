package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velric/jd-mission-engine/internal/catalog"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return New(cat)
}

func TestExtract_ConcreteScenario(t *testing.T) {
	e := newTestExtractor(t)

	text := "We need strong React and TypeScript skills, plus some Go experience. Go is core."
	detected := e.Extract(text)

	counts := make(map[string]int)
	for _, d := range detected {
		counts[d.SkillID] = d.Count
	}

	assert.Equal(t, 1, counts["react"])
	assert.Equal(t, 1, counts["typescript"])
	assert.Equal(t, 2, counts["go"], "whole-word Go should match twice, case-insensitively")
}

func TestExtract_WordBoundarySafety(t *testing.T) {
	e := newTestExtractor(t)

	tests := []struct {
		name   string
		text   string
		absent string
	}{
		{name: "go inside going", text: "We are going places.", absent: "go"},
		{name: "go inside golang-adjacent word", text: "The goose flew south.", absent: "go"},
		{name: "ts inside words", text: "Lots of thoughts and sorts.", absent: "typescript"},
		{name: "js inside words", text: "The subject of the jsx discussion.", absent: "javascript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range e.Extract(tt.text) {
				assert.NotEqual(t, tt.absent, d.SkillID, "keyword must not match inside a longer word")
			}
		})
	}
}

func TestExtract_JavascriptMatchesOnce(t *testing.T) {
	e := newTestExtractor(t)

	detected := e.Extract("Deep JavaScript expertise required.")
	require.Len(t, detected, 1)
	assert.Equal(t, "javascript", detected[0].SkillID)
	assert.Equal(t, 1, detected[0].Count)
}

func TestExtract_MultiWordPhrases(t *testing.T) {
	e := newTestExtractor(t)

	detected := e.Extract("Experience with Amazon Web Services and Google Cloud is a plus.")

	ids := make([]string, 0, len(detected))
	for _, d := range detected {
		ids = append(ids, d.SkillID)
	}
	assert.Contains(t, ids, "aws")
	assert.Contains(t, ids, "gcp")
}

func TestExtract_DottedKeywords(t *testing.T) {
	e := newTestExtractor(t)

	detected := e.Extract("You will build Next.js apps on Node.js.")

	counts := make(map[string]int)
	for _, d := range detected {
		counts[d.SkillID] = d.Count
	}
	assert.Equal(t, 1, counts["nextjs"])
	// "Node.js" matches both the "node" and "node.js" keywords of the same
	// skill; the counts sum.
	assert.Equal(t, 2, counts["node"])
}

func TestExtract_EmptyAndBlankText(t *testing.T) {
	e := newTestExtractor(t)

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   \n\t  "))
	assert.Empty(t, e.Extract("Nothing relevant here at all."))
}

func TestExtract_PositiveCountsAndUniqueIDs(t *testing.T) {
	e := newTestExtractor(t)

	text := strings.Repeat("react typescript go docker kubernetes sql postgres leadership ", 3)
	detected := e.Extract(text)
	require.NotEmpty(t, detected)

	seen := make(map[string]bool)
	for _, d := range detected {
		assert.Positive(t, d.Count, "count must always be positive for %s", d.SkillID)
		assert.False(t, seen[d.SkillID], "skill %s reported twice", d.SkillID)
		seen[d.SkillID] = true
	}
}

func TestExtract_CatalogOrder(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	e := New(cat)

	detected := e.Extract("leadership first in text, react last in text")

	// Output follows catalog order regardless of position in the text.
	require.Len(t, detected, 2)
	assert.Equal(t, "react", detected[0].SkillID)
	assert.Equal(t, "leadership", detected[1].SkillID)
}
