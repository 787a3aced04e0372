package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/velric/jd-mission-engine/internal/ingestion"
	"github.com/velric/jd-mission-engine/internal/logger"
	"github.com/velric/jd-mission-engine/internal/observability"
	"github.com/velric/jd-mission-engine/internal/session"
	"github.com/velric/jd-mission-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute a readiness score and suggested missions",
	Long:  "Reads a job description and a self-ratings JSON file ({\"skillId\": 0-100}), computes the weighted readiness percentage, and prints up to the configured number of gap-ranked missions.",
	RunE:  runScore,
}

var (
	scoreJobFile     string
	scoreTitle       string
	scoreRatingsFile string
	scoreConfig      string
	scoreMaxMissions int
	scoreSeed        int64
	scoreJSON        bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description file, or '-' for stdin (required)")
	scoreCmd.Flags().StringVarP(&scoreTitle, "title", "t", "", "Optional role title used as the mission domain")
	scoreCmd.Flags().StringVarP(&scoreRatingsFile, "skills", "s", "", "Path to self-ratings JSON file")
	scoreCmd.Flags().StringVar(&scoreConfig, "config", "", "Path to config JSON file")
	scoreCmd.Flags().IntVar(&scoreMaxMissions, "max-missions", 0, "Mission cap for this run (overrides config)")
	scoreCmd.Flags().Int64Var(&scoreSeed, "seed", 0, "Seed for template selection; 0 keeps real randomness")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit JSON instead of formatted output")

	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

// scoreOutput is the JSON shape of a score run. Readiness is null when no
// skills were detected, a state distinct from a score of 0.
type scoreOutput struct {
	Title     string           `json:"title,omitempty"`
	Readiness *int             `json:"readiness"`
	JobSkills []types.JobSkill `json:"job_skills"`
	Missions  []types.Mission  `json:"missions"`
}

func runScore(_ *cobra.Command, _ []string) error {
	return scoreToWriter(os.Stdout, scoreJobFile, scoreTitle, scoreRatingsFile, scoreConfig, scoreMaxMissions, scoreSeed, scoreJSON)
}

func scoreToWriter(out io.Writer, jobFile, title, ratingsFile, configPath string, maxMissions int, seed int64, asJSON bool) error {
	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return err
	}
	if maxMissions > 0 {
		cfg.MaxMissions = maxMissions
	}

	cat, templates, err := loadData(cfg)
	if err != nil {
		return err
	}

	text, err := ingestion.ReadJobDescription(jobFile)
	if err != nil {
		return err
	}

	log := logger.NewNop()
	if cfg.Verbose {
		log = logger.New(cfg.LogLevel, cfg.LogFormat)
	}

	sess := session.New(cat, templates, session.Options{
		MaxMissions: cfg.MaxMissions,
		Picker:      pickerForSeed(seed),
		Log:         log,
	})
	sess.SetTitle(title)
	sess.SetDescription(text)
	sess.Analyze()

	if ratingsFile != "" {
		ratings, err := loadRatings(ratingsFile)
		if err != nil {
			return err
		}
		for id, v := range ratings {
			if err := sess.SetSkill(id, v); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping rating: %v\n", err)
			}
		}
	}

	sess.Compute()

	if asJSON {
		result := scoreOutput{
			Title:     title,
			JobSkills: sess.JobSkills(),
			Missions:  sess.Missions(),
		}
		if score, ok := sess.Readiness(); ok {
			result.Readiness = &score
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(out)
	printer.PrintDetectedSkills(cat, sess.Detected())
	printer.PrintJobSkills(cat, sess.JobSkills(), sess.UserSkills())
	score, ok := sess.Readiness()
	printer.PrintReadiness(score, ok)
	printer.PrintMissions(cat, sess.Missions())

	return nil
}
