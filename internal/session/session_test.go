package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velric/jd-mission-engine/internal/catalog"
	"github.com/velric/jd-mission-engine/internal/scoring"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	templates, err := catalog.LoadTemplates()
	require.NoError(t, err)
	return New(cat, templates, Options{Picker: func(int) int { return 0 }})
}

const sampleJD = "We need strong React and TypeScript skills, plus some Go experience. Go is core."

func TestSession_FullFlow(t *testing.T) {
	s := newTestSession(t)
	s.SetTitle("Senior Backend Engineer")
	s.SetDescription(sampleJD)

	assert.False(t, s.Analyzed())
	s.Analyze()
	assert.True(t, s.Analyzed())

	require.Len(t, s.Detected(), 3)
	require.Len(t, s.JobSkills(), 3)

	// New skills get the neutral default rating.
	for _, js := range s.JobSkills() {
		v, ok := s.Rating(js.SkillID)
		require.True(t, ok)
		assert.Equal(t, scoring.DefaultProficiency, v)
	}

	// No score until the user asks for one.
	_, ok := s.Readiness()
	assert.False(t, ok)

	require.NoError(t, s.SetSkill("react", 100))
	require.NoError(t, s.SetSkill("typescript", 100))
	require.NoError(t, s.SetSkill("go", 0))

	s.Compute()
	score, ok := s.Readiness()
	require.True(t, ok)
	// Weights: react 25, typescript 25, go 50 → 25+25+0 = 50%.
	assert.Equal(t, 50, score)

	// react and typescript have no gap; go is the only mission candidate.
	missionBatch := s.Missions()
	require.Len(t, missionBatch, 1)
	assert.Equal(t, "go", missionBatch[0].SkillID)
	assert.NotEmpty(t, missionBatch[0].ID)
}

func TestSession_EmptyTextIsNoScoreNotZero(t *testing.T) {
	s := newTestSession(t)
	s.SetDescription("")
	s.Analyze()

	assert.True(t, s.Analyzed())
	assert.Empty(t, s.Detected())
	assert.Empty(t, s.JobSkills())

	s.Compute()
	_, ok := s.Readiness()
	assert.False(t, ok, "empty text must yield score-absent, not 0")
	assert.Empty(t, s.Missions())
}

func TestSession_RatingsSurviveReanalysis(t *testing.T) {
	s := newTestSession(t)
	s.SetDescription(sampleJD)
	s.Analyze()

	require.NoError(t, s.SetSkill("go", 85))

	s.SetDescription("Go role. More Go. Even more Go and some Python.")
	s.Analyze()

	v, ok := s.Rating("go")
	require.True(t, ok)
	assert.Equal(t, 85, v, "explicit rating must survive re-analysis")

	// The newly surfaced skill is seeded fresh.
	v, ok = s.Rating("python")
	require.True(t, ok)
	assert.Equal(t, scoring.DefaultProficiency, v)
}

func TestSession_ReanalysisResetsOutputs(t *testing.T) {
	s := newTestSession(t)
	s.SetDescription(sampleJD)
	s.Analyze()
	s.Compute()

	_, ok := s.Readiness()
	require.True(t, ok)
	require.NotEmpty(t, s.Missions())

	s.Analyze()
	_, ok = s.Readiness()
	assert.False(t, ok, "re-analysis must reset the score to absent")
	assert.Empty(t, s.Missions())
}

func TestSession_SetSkillRejectsUnknownID(t *testing.T) {
	s := newTestSession(t)
	err := s.SetSkill("cobol", 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown skill id")
}

func TestSession_SetSkillClamps(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetSkill("go", 400))
	v, _ := s.Rating("go")
	assert.Equal(t, 100, v)
}

func TestSession_MaxMissionsOption(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	templates, err := catalog.LoadTemplates()
	require.NoError(t, err)

	s := New(cat, templates, Options{MaxMissions: 1, Picker: func(int) int { return 0 }})
	s.SetDescription("react next.js typescript javascript node go python sql")
	s.Analyze()
	s.Compute()

	assert.Len(t, s.Missions(), 1)
}

func TestSession_MissionIDsAreBatchScoped(t *testing.T) {
	s := newTestSession(t)
	s.SetDescription(sampleJD)
	s.Analyze()
	s.Compute()
	first := s.Missions()
	require.NotEmpty(t, first)

	s.Compute()
	second := s.Missions()
	require.NotEmpty(t, second)

	assert.NotEqual(t, first[0].ID, second[0].ID, "each batch gets fresh ids")
}
