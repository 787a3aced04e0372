// Package scoring turns detected-skill counts into normalized importance
// weights and combines them with self-rated proficiency into a single
// readiness percentage.
package scoring

import (
	"math"

	"github.com/velric/jd-mission-engine/internal/types"
)

// DefaultProficiency is seeded into the user map for every skill newly
// surfaced by an extraction, standing in for "unknown self-assessment".
const DefaultProficiency = 50

// Normalize converts raw occurrence counts into importance weights that sum
// to 100 up to floating-point rounding. Weights stay unrounded here.
func Normalize(detected []types.DetectedSkill) []types.JobSkill {
	if len(detected) == 0 {
		return nil
	}

	total := 0
	for _, d := range detected {
		total += d.Count
	}
	// Counts are positive by the extractor's contract; the substitution
	// only guards against a hand-built zero-count input.
	if total == 0 {
		total = 1
	}

	jobSkills := make([]types.JobSkill, 0, len(detected))
	for _, d := range detected {
		jobSkills = append(jobSkills, types.JobSkill{
			SkillID: d.SkillID,
			Weight:  float64(d.Count) / float64(total) * 100,
		})
	}

	return jobSkills
}

// SeedDefaults writes DefaultProficiency into userSkills for every job
// skill that has no entry yet. Existing ratings are left untouched, so
// slider values survive re-extraction.
func SeedDefaults(jobSkills []types.JobSkill, userSkills types.UserSkillMap) {
	for _, js := range jobSkills {
		userSkills.Seed(js.SkillID, DefaultProficiency)
	}
}

// Score computes the weighted average of proficiency-fraction against
// importance as an integer percentage. Ratings absent from userSkills count
// as 0 here, not the seeded default. Rounding is half-away-from-zero
// (math.Round).
//
// Callers must treat "no job skills" as score-absent, a state distinct from
// a score of 0; Score itself returns 0 when maxSum is 0.
func Score(jobSkills []types.JobSkill, userSkills types.UserSkillMap) int {
	weightedSum := 0.0
	maxSum := 0.0

	for _, js := range jobSkills {
		user := userSkills.ValueOrZero(js.SkillID)
		weightedSum += js.Weight * (float64(user) / 100)
		maxSum += js.Weight
	}

	if maxSum == 0 {
		return 0
	}

	return int(math.Round(weightedSum / maxSum * 100))
}
