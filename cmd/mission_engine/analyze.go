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

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract weighted skills from a job description",
	Long:  "Reads a job description from a text or HTML file (or stdin with '-'), matches it against the skill catalog, and prints the detected skills with their normalized importance weights.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile string
	analyzeTitle   string
	analyzeConfig  string
	analyzeJSON    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description file, or '-' for stdin (required)")
	analyzeCmd.Flags().StringVarP(&analyzeTitle, "title", "t", "", "Optional role title")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to config JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit JSON instead of formatted output")

	if err := analyzeCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the JSON shape of an analyze run.
type analyzeOutput struct {
	Title      string                `json:"title,omitempty"`
	Detected   []types.DetectedSkill `json:"detected"`
	JobSkills  []types.JobSkill      `json:"job_skills"`
	UserSkills types.UserSkillMap    `json:"user_skills"`
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	return analyzeToWriter(os.Stdout, analyzeJobFile, analyzeTitle, analyzeConfig, analyzeJSON)
}

func analyzeToWriter(out io.Writer, jobFile, title, configPath string, asJSON bool) error {
	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return err
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
		Log:         log,
	})
	sess.SetTitle(title)
	sess.SetDescription(text)
	sess.Analyze()

	if asJSON {
		result := analyzeOutput{
			Title:      title,
			Detected:   sess.Detected(),
			JobSkills:  sess.JobSkills(),
			UserSkills: sess.UserSkills(),
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(out)
	printer.PrintDetectedSkills(cat, sess.Detected())
	printer.PrintJobSkills(cat, sess.JobSkills(), sess.UserSkills())

	return nil
}
