// Package session owns the state of one interactive analysis session and
// orchestrates the extract → normalize → score → generate pipeline in
// response to shell triggers. There is exactly one logical thread of
// control; no locking is needed.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/velric/jd-mission-engine/internal/catalog"
	"github.com/velric/jd-mission-engine/internal/config"
	"github.com/velric/jd-mission-engine/internal/extraction"
	"github.com/velric/jd-mission-engine/internal/logger"
	"github.com/velric/jd-mission-engine/internal/missions"
	"github.com/velric/jd-mission-engine/internal/scoring"
	"github.com/velric/jd-mission-engine/internal/types"
)

// Options configures a Session.
type Options struct {
	// MaxMissions caps each generation batch; 0 means the default.
	MaxMissions int
	// Picker overrides the generator's random selector. Nil keeps real
	// randomness; tests supply a deterministic one.
	Picker missions.Picker
	// Log receives structured operation logs. Nil discards them.
	Log logger.Logger
}

// Session holds the single user's inputs and the latest computed outputs.
// The UserSkillMap persists across re-analysis; everything derived from the
// job-description text is replaced wholesale on each Analyze.
type Session struct {
	catalog   *catalog.Catalog
	extractor *extraction.Extractor
	generator *missions.Generator
	log       logger.Logger

	maxMissions int

	title      string
	text       string
	detected   []types.DetectedSkill
	jobSkills  []types.JobSkill
	userSkills types.UserSkillMap
	missions   []types.Mission
	readiness  int
	hasScore   bool
	analyzed   bool
}

// New builds a session over the given catalog and template set.
func New(cat *catalog.Catalog, templates *catalog.TemplateSet, opts Options) *Session {
	maxMissions := opts.MaxMissions
	if maxMissions <= 0 {
		maxMissions = config.DefaultMaxMissions
	}
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	return &Session{
		catalog:     cat,
		extractor:   extraction.New(cat),
		generator:   missions.NewGenerator(cat, templates, opts.Picker),
		log:         log,
		maxMissions: maxMissions,
		userSkills:  types.NewUserSkillMap(),
	}
}

// SetTitle stores the optional role title used as the mission domain name.
func (s *Session) SetTitle(title string) {
	s.title = title
}

// Title returns the stored role title.
func (s *Session) Title() string {
	return s.title
}

// SetDescription stores the raw job-description text for the next Analyze.
func (s *Session) SetDescription(text string) {
	s.text = text
}

// Description returns the stored job-description text.
func (s *Session) Description() string {
	return s.text
}

// SetSkill records a self-rating for a catalog skill, clamped to [0, 100].
// Unknown skill ids are rejected so slider input can't drift from the
// catalog.
func (s *Session) SetSkill(id string, value int) error {
	if _, ok := s.catalog.Lookup(id); !ok {
		return fmt.Errorf("unknown skill id %q", id)
	}
	s.userSkills.Set(id, value)
	s.log.Debug("self-rating updated", map[string]interface{}{
		"skillId": id,
		"value":   s.userSkills.ValueOrZero(id),
	})
	return nil
}

// Rating returns the stored self-rating for a skill and whether one exists.
func (s *Session) Rating(id string) (int, bool) {
	return s.userSkills.Value(id)
}

// Analyze runs extraction and normalization over the stored text, seeds
// default self-ratings for newly surfaced skills, and resets the readiness
// and mission outputs. Existing self-ratings are preserved.
func (s *Session) Analyze() {
	s.detected = s.extractor.Extract(s.text)
	s.analyzed = true
	s.hasScore = false
	s.missions = nil

	if len(s.detected) == 0 {
		s.jobSkills = nil
		s.log.Info("analysis found no skills", map[string]interface{}{
			"textLen": len(s.text),
		})
		return
	}

	s.jobSkills = scoring.Normalize(s.detected)
	scoring.SeedDefaults(s.jobSkills, s.userSkills)

	s.log.Info("analysis complete", map[string]interface{}{
		"detected": len(s.detected),
		"textLen":  len(s.text),
	})
}

// Compute derives the readiness score and a fresh mission batch from the
// current job skills and self-ratings. With no job skills it is a no-op and
// the readiness state stays absent.
func (s *Session) Compute() {
	if len(s.jobSkills) == 0 {
		return
	}

	s.readiness = scoring.Score(s.jobSkills, s.userSkills)
	s.hasScore = true

	batchID := uuid.NewString()
	generated := s.generator.Generate(s.title, s.jobSkills, s.userSkills, s.maxMissions)
	for i := range generated {
		generated[i].ID = fmt.Sprintf("%s/m-%d", batchID, i)
	}
	s.missions = generated

	s.log.Info("readiness computed", map[string]interface{}{
		"score":    s.readiness,
		"missions": len(s.missions),
		"batchId":  batchID,
	})
}

// Detected returns the detected skills of the latest Analyze.
func (s *Session) Detected() []types.DetectedSkill {
	return s.detected
}

// JobSkills returns the normalized job skills of the latest Analyze.
func (s *Session) JobSkills() []types.JobSkill {
	return s.jobSkills
}

// UserSkills returns the live self-rating map owned by this session.
func (s *Session) UserSkills() types.UserSkillMap {
	return s.userSkills
}

// Readiness returns the latest score and whether one has been computed.
// A score of 0 with ok=true is distinct from "not yet computed".
func (s *Session) Readiness() (int, bool) {
	return s.readiness, s.hasScore
}

// Missions returns the latest generated mission batch, possibly empty.
func (s *Session) Missions() []types.Mission {
	return s.missions
}

// Analyzed reports whether Analyze has run at least once, so the shell can
// distinguish "no matches" from "not yet analyzed".
func (s *Session) Analyzed() bool {
	return s.analyzed
}
