// Package observability provides formatted terminal output for the engine's
// computed results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/velric/jd-mission-engine/internal/catalog"
	"github.com/velric/jd-mission-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxChipsToShow caps the detected-skills chip row
	maxChipsToShow = 10
)

// Printer handles formatted output for the CLI.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDetectedSkills outputs a chip-style summary of detected skills with
// occurrence counts, truncated past maxChipsToShow entries.
func (p *Printer) PrintDetectedSkills(cat *catalog.Catalog, detected []types.DetectedSkill) {
	if len(detected) == 0 {
		p.printBox("DETECTED SKILLS", "None yet")
		return
	}

	var sb strings.Builder
	count := min(len(detected), maxChipsToShow)
	for i := 0; i < count; i++ {
		d := detected[i]
		label := d.SkillID
		if skill, ok := cat.Lookup(d.SkillID); ok {
			label = skill.Label
		}
		sb.WriteString(fmt.Sprintf("%s ×%d", label, d.Count))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(detected) > maxChipsToShow {
		sb.WriteString(fmt.Sprintf("\n+%d more", len(detected)-maxChipsToShow))
	}

	p.printBox("DETECTED SKILLS", sb.String())
}

// PrintJobSkills outputs the normalized weight and current self-rating for
// each job skill, one slider row per skill.
func (p *Printer) PrintJobSkills(cat *catalog.Catalog, jobSkills []types.JobSkill, userSkills types.UserSkillMap) {
	if len(jobSkills) == 0 {
		return
	}

	var sb strings.Builder
	for i, js := range jobSkills {
		label := js.SkillID
		if skill, ok := cat.Lookup(js.SkillID); ok {
			label = skill.Label
		}
		rating := "-"
		if v, ok := userSkills.Value(js.SkillID); ok {
			rating = fmt.Sprintf("%d", v)
		}
		sb.WriteString(fmt.Sprintf("%-20s weight %5.1f  self %s", label, js.Weight, rating))
		if i < len(jobSkills)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JOB SKILLS", sb.String())
}

// PrintReadiness outputs the readiness score, or the not-yet-computed state
// when ok is false.
func (p *Printer) PrintReadiness(score int, ok bool) {
	if !ok {
		p.printBox("READINESS", "Not yet computed")
		return
	}
	p.printBox("READINESS", fmt.Sprintf("%d%%", score))
}

// PrintMissions outputs the ranked mission list with titles and bodies.
func (p *Printer) PrintMissions(cat *catalog.Catalog, missionList []types.Mission) {
	if len(missionList) == 0 {
		p.printBox("MISSIONS", "No qualifying gaps")
		return
	}

	var sb strings.Builder
	for i, m := range missionList {
		label := m.SkillID
		if skill, ok := cat.Lookup(m.SkillID); ok {
			label = skill.Label
		}
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, m.Title, label))
		for _, line := range strings.Split(m.Description, "\n") {
			sb.WriteString(fmt.Sprintf("    %s\n", line))
		}
		if i < len(missionList)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MISSIONS", strings.TrimSuffix(sb.String(), "\n"))
}
