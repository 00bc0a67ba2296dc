// Package main provides the jobtrack command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Personal job application tracker",
	Long:  "jobtrack tracks job applications through the Applied/Interviewing/Offer/Rejected funnel, imports postings from URLs, analyzes resume fit, and syncs the full dataset between devices via portable codes and backup files.",
}

var (
	flagConfig  string
	flagDB      string
	flagVerbose bool
	flagYes     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Path to the SQLite database file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Assume yes for confirmation prompts")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
