package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velric/jd-mission-engine/internal/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the recognized skills",
	Long:  "Prints every catalog skill grouped by category, with the keyword phrases the extractor matches on.",
	RunE:  runCatalog,
}

var catalogConfig string

func init() {
	catalogCmd.Flags().StringVar(&catalogConfig, "config", "", "Path to config JSON file")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	return catalogToWriter(os.Stdout, catalogConfig)
}

func catalogToWriter(out io.Writer, configPath string) error {
	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return err
	}

	cat, _, err := loadData(cfg)
	if err != nil {
		return err
	}

	for _, category := range types.Categories() {
		fmt.Fprintf(out, "%s:\n", category)
		for _, skill := range cat.Skills() {
			if skill.Category != category {
				continue
			}
			fmt.Fprintf(out, "  %-14s %-18s keywords: %s\n", skill.ID, skill.Label, strings.Join(skill.Keywords, ", "))
		}
	}

	return nil
}
