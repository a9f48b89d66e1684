// Package main provides the entry point for the candidate-ranker CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candidate_ranker",
	Short: "Candidate scoring and ranking engine",
	Long:  "Candidate Ranker scores candidate profiles against structured job requirements across seven weighted signals and emits a ranked, percentiled list.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
