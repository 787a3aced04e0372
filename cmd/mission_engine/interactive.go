package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velric/jd-mission-engine/internal/ingestion"
	"github.com/velric/jd-mission-engine/internal/logger"
	"github.com/velric/jd-mission-engine/internal/observability"
	"github.com/velric/jd-mission-engine/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive analysis session",
	Long:  "Starts a read-eval loop: paste a job description, analyze it, adjust per-skill self-ratings, and recompute the readiness score and missions as often as you like. Nothing is persisted between sessions.",
	RunE:  runSession,
}

var sessionConfig string

func init() {
	sessionCmd.Flags().StringVar(&sessionConfig, "config", "", "Path to config JSON file")
	rootCmd.AddCommand(sessionCmd)
}

func runSession(_ *cobra.Command, _ []string) error {
	return runInteractive(os.Stdin, os.Stdout, sessionConfig)
}

const sessionHelp = `Commands:
  title <text>        set the role title (used as the mission domain)
  jd                  paste a job description, end with a single "." line
  load <path>         load a job description from a text or HTML file
  analyze             detect skills and seed self-rating sliders
  set <skill> <0-100> record a self-rating
  skills              show current sliders
  compute             compute the readiness score and missions
  show                show the latest outputs
  help                show this help
  quit                leave the session`

func runInteractive(in io.Reader, out io.Writer, configPath string) error {
	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return err
	}

	cat, templates, err := loadData(cfg)
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
	printer := observability.NewPrinter(out)

	fmt.Fprintln(out, "JD → Mission Engine. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		command, rest := splitCommand(scanner.Text())
		switch command {
		case "":
			continue

		case "title":
			sess.SetTitle(rest)
			fmt.Fprintf(out, "Title set to %q\n", rest)

		case "jd":
			fmt.Fprintln(out, "Paste the job description, end with a single '.' line:")
			sess.SetDescription(readUntilDot(scanner))
			fmt.Fprintln(out, "Job description stored. Run 'analyze'.")

		case "load":
			if rest == "" {
				fmt.Fprintln(out, "Usage: load <path>")
				continue
			}
			text, err := ingestion.ReadJobDescription(rest)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			sess.SetDescription(text)
			fmt.Fprintf(out, "Loaded %d characters. Run 'analyze'.\n", len(text))

		case "analyze":
			sess.Analyze()
			printer.PrintDetectedSkills(cat, sess.Detected())
			printer.PrintJobSkills(cat, sess.JobSkills(), sess.UserSkills())

		case "set":
			id, value, err := parseSetArgs(rest)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			if err := sess.SetSkill(id, value); err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			stored, _ := sess.Rating(id)
			fmt.Fprintf(out, "%s set to %d\n", id, stored)

		case "skills":
			printer.PrintJobSkills(cat, sess.JobSkills(), sess.UserSkills())

		case "compute":
			if !sess.Analyzed() {
				fmt.Fprintln(out, "Run 'analyze' first.")
				continue
			}
			sess.Compute()
			score, ok := sess.Readiness()
			printer.PrintReadiness(score, ok)
			printer.PrintMissions(cat, sess.Missions())

		case "show":
			printer.PrintDetectedSkills(cat, sess.Detected())
			printer.PrintJobSkills(cat, sess.JobSkills(), sess.UserSkills())
			score, ok := sess.Readiness()
			printer.PrintReadiness(score, ok)
			printer.PrintMissions(cat, sess.Missions())

		case "help":
			fmt.Fprintln(out, sessionHelp)

		case "quit", "exit":
			return nil

		default:
			fmt.Fprintf(out, "Unknown command %q. Type 'help'.\n", command)
		}
	}

	return scanner.Err()
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	command, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(command), strings.TrimSpace(rest)
}

// readUntilDot collects lines until a line containing only "." (or EOF).
func readUntilDot(scanner *bufio.Scanner) string {
	var sb strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "." {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return ingestion.CleanText(sb.String())
}

func parseSetArgs(rest string) (string, int, error) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("usage: set <skill> <0-100>")
	}
	value, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("rating must be a number: %q", fields[1])
	}
	return fields[0], value, nil
}
