// Package ingestion reads job-description input from local files or stdin
// and normalizes it into plain text the extractor can scan.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRuns = regexp.MustCompile(`[ \t]+`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, collapses space runs inside lines,
// and reduces runs of blank lines, preserving the overall line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRuns.ReplaceAllString(line, " "))
	}

	result := strings.Join(lines, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// ReadJobDescription loads a job description from path. Files ending in
// .html or .htm are reduced to their main text first; anything else is
// treated as plain text. "-" reads from stdin.
func ReadJobDescription(path string) (string, error) {
	if path == "-" {
		return readFrom(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ExtractMainText(string(data))
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return CleanText(text), nil
	default:
		return CleanText(string(data)), nil
	}
}

func readFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read job description from stdin: %w", err)
	}
	return CleanText(string(data)), nil
}
