// Package main implements the mission_engine CLI: it turns a pasted job
// description into weighted skills, a readiness score, and templated
// missions addressing the largest gaps.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mission_engine",
	Short: "JD → Mission Engine",
	Long:  "Analyze a job description against the skill catalog, self-rate proficiency, and preview a readiness score plus suggested missions. Everything runs in-process; nothing is persisted.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
