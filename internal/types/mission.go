package types

// Mission is a generated suggestion: a templated exercise targeting one
// skill gap. Missions are fully replaced on each computation, never updated
// in place; their rank is their position in the generated batch.
type Mission struct {
	ID          string `json:"id"`
	SkillID     string `json:"skill_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MissionTemplate is one fill-in-the-blanks mission body. The Body text may
// contain {{domain}} and {{stack}} placeholder tokens.
type MissionTemplate struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}
