package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velric/jd-mission-engine/internal/types"
)

func TestNormalize_EqualCounts(t *testing.T) {
	detected := []types.DetectedSkill{
		{SkillID: "react", Count: 1},
		{SkillID: "go", Count: 1},
	}

	jobSkills := Normalize(detected)
	require.Len(t, jobSkills, 2)
	assert.InDelta(t, 50.0, jobSkills[0].Weight, 1e-9)
	assert.InDelta(t, 50.0, jobSkills[1].Weight, 1e-9)
}

func TestNormalize_WeightsSumToHundred(t *testing.T) {
	detected := []types.DetectedSkill{
		{SkillID: "react", Count: 3},
		{SkillID: "go", Count: 2},
		{SkillID: "sql", Count: 1},
		{SkillID: "docker", Count: 7},
	}

	jobSkills := Normalize(detected)
	sum := 0.0
	for _, js := range jobSkills {
		sum += js.Weight
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestNormalize_ProportionsInvariantUnderScaling(t *testing.T) {
	base := []types.DetectedSkill{
		{SkillID: "react", Count: 2},
		{SkillID: "go", Count: 5},
		{SkillID: "aws", Count: 3},
	}
	scaled := []types.DetectedSkill{
		{SkillID: "react", Count: 20},
		{SkillID: "go", Count: 50},
		{SkillID: "aws", Count: 30},
	}

	baseWeights := Normalize(base)
	scaledWeights := Normalize(scaled)
	require.Len(t, scaledWeights, len(baseWeights))
	for i := range baseWeights {
		assert.InDelta(t, baseWeights[i].Weight, scaledWeights[i].Weight, 1e-9)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Nil(t, Normalize(nil))
	assert.Nil(t, Normalize([]types.DetectedSkill{}))
}

func TestSeedDefaults_OnlyFillsMissingEntries(t *testing.T) {
	jobSkills := []types.JobSkill{
		{SkillID: "react", Weight: 50},
		{SkillID: "go", Weight: 50},
	}
	userSkills := types.NewUserSkillMap()
	userSkills.Set("react", 90)

	SeedDefaults(jobSkills, userSkills)

	assert.Equal(t, 90, userSkills.ValueOrZero("react"), "existing rating must survive seeding")
	assert.Equal(t, DefaultProficiency, userSkills.ValueOrZero("go"))
}

func TestScore_ConcreteScenario(t *testing.T) {
	jobSkills := []types.JobSkill{
		{SkillID: "react", Weight: 50},
		{SkillID: "go", Weight: 50},
	}
	userSkills := types.UserSkillMap{"react": 100, "go": 0}

	assert.Equal(t, 50, Score(jobSkills, userSkills))
}

func TestScore_Extremes(t *testing.T) {
	jobSkills := []types.JobSkill{
		{SkillID: "react", Weight: 70},
		{SkillID: "go", Weight: 30},
	}

	allFull := types.UserSkillMap{"react": 100, "go": 100}
	assert.Equal(t, 100, Score(jobSkills, allFull))

	allZero := types.UserSkillMap{"react": 0, "go": 0}
	assert.Equal(t, 0, Score(jobSkills, allZero))
}

func TestScore_AbsentRatingCountsAsZero(t *testing.T) {
	jobSkills := []types.JobSkill{
		{SkillID: "react", Weight: 50},
		{SkillID: "go", Weight: 50},
	}
	userSkills := types.UserSkillMap{"react": 100}

	// The default-50 seeding convention belongs to the session flow;
	// raw scoring treats absence as zero. This asymmetry is deliberate.
	assert.Equal(t, 50, Score(jobSkills, userSkills))
}

func TestScore_RoundsHalfAwayFromZero(t *testing.T) {
	// 1/3 full + 2/3 empty: 33.33...% rounds down to 33.
	jobSkills := []types.JobSkill{
		{SkillID: "react", Weight: 100.0 / 3},
		{SkillID: "go", Weight: 200.0 / 3},
	}
	userSkills := types.UserSkillMap{"react": 100, "go": 0}
	assert.Equal(t, 33, Score(jobSkills, userSkills))

	// 62.5% rounds up to 63.
	half := []types.JobSkill{
		{SkillID: "react", Weight: 50},
		{SkillID: "go", Weight: 50},
	}
	ratings := types.UserSkillMap{"react": 100, "go": 25}
	assert.Equal(t, 63, Score(half, ratings))
}

func TestScore_AlwaysInRange(t *testing.T) {
	jobSkills := []types.JobSkill{
		{SkillID: "a", Weight: 12.5},
		{SkillID: "b", Weight: 37.5},
		{SkillID: "c", Weight: 50},
	}
	cases := []types.UserSkillMap{
		{},
		{"a": 1},
		{"a": 99, "b": 1, "c": 50},
		{"a": 100, "b": 100, "c": 100},
	}
	for _, userSkills := range cases {
		got := Score(jobSkills, userSkills)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestScore_NoWeights(t *testing.T) {
	assert.Equal(t, 0, Score(nil, types.UserSkillMap{"go": 100}))
}
