package types

// UserSkillMap maps skill ids to self-rated proficiency values in [0, 100].
// The map is partial: skills never surfaced to the user have no entry.
// Lookups go through Value/ValueOrZero so the missing-key contract stays
// explicit at the API boundary instead of relying on Go's zero-value reads.
type UserSkillMap map[string]int

// NewUserSkillMap returns an empty, ready-to-use map.
func NewUserSkillMap() UserSkillMap {
	return make(UserSkillMap)
}

// Value returns the stored rating for id and whether an entry exists.
func (m UserSkillMap) Value(id string) (int, bool) {
	v, ok := m[id]
	return v, ok
}

// ValueOrZero returns the stored rating for id, or 0 when absent.
// Gap computation uses this raw absence-as-zero convention.
func (m UserSkillMap) ValueOrZero(id string) int {
	return m[id]
}

// Set stores a rating for id, clamped to [0, 100].
func (m UserSkillMap) Set(id string, value int) {
	m[id] = clampRating(value)
}

// Seed stores a rating for id only when no entry exists yet. Existing
// ratings are never overwritten, so user input survives re-extraction.
func (m UserSkillMap) Seed(id string, value int) {
	if _, ok := m[id]; !ok {
		m[id] = clampRating(value)
	}
}

func clampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
