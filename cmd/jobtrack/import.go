package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/extract"
	"github.com/kwalters/jobtrack/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a job posting from a URL",
	Long:  "Fetch a job posting and extract its details. When the page cannot be read directly (login walls, blocked fetches) a search-grounded lookup runs instead; its results are marked low confidence for review.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show extracted fields without saving")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	url := args[0]

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	svc, client, err := newExtractService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result := svc.MagicImport(ctx, url)
	data := result.Data

	fmt.Fprintf(os.Stdout, "Title:   %s\n", data.Title)
	fmt.Fprintf(os.Stdout, "Company: %s\n", data.Company)
	fmt.Fprintf(os.Stdout, "Salary:  %s\n", data.SalaryRange)
	fmt.Fprintf(os.Stdout, "Method:  %s (%s confidence)\n", result.Method, result.Confidence)
	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warning)
	}
	if importDryRun {
		return nil
	}
	if result.Method == extract.MethodNone {
		return fmt.Errorf("nothing usable was extracted; paste the description and use 'jobtrack add'")
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	title := data.Title
	if title == "" {
		title = "Unknown"
	}
	description := data.Description
	if description == "" {
		description = fmt.Sprintf("Imported from %s", url)
	}
	id, err := a.store.AddJob(ctx, store.AddInput{Title: title, Description: description, URL: url})
	if err != nil {
		return err
	}
	// The import already extracted these; skip the enrichment round trip.
	company, salary := data.Company, data.SalaryRange
	a.store.UpdateJob(id, store.JobUpdate{Company: &company, SalaryRange: &salary})

	fmt.Fprintf(os.Stdout, "Added %s\n", id)
	return nil
}
