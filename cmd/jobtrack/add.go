package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a new job application",
	Long:  "Add a job application with a pasted description. Company and salary are extracted from the description in the background; the record is created immediately.",
	RunE:  runAdd,
}

var (
	addTitle       string
	addDescription string
	addDescFile    string
	addURL         string
	addNoEnrich    bool
)

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Job title (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Job description text")
	addCmd.Flags().StringVar(&addDescFile, "description-file", "", "Path to a file with the job description")
	addCmd.Flags().StringVarP(&addURL, "url", "u", "", "Link to the job posting")
	addCmd.Flags().BoolVar(&addNoEnrich, "no-enrich", false, "Skip background company/salary extraction")

	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	if addDescription != "" && addDescFile != "" {
		return fmt.Errorf("cannot use --description with --description-file")
	}
	description := addDescription
	if addDescFile != "" {
		content, err := os.ReadFile(addDescFile)
		if err != nil {
			return fmt.Errorf("failed to read description file: %w", err)
		}
		description = string(content)
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var enricher store.Enricher
	if !addNoEnrich && cfg.APIKey != "" {
		svc, client, err := newExtractService(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		enricher = &enricherAdapter{svc: svc}
	}

	a, err := openApp(enricher)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.store.AddJob(ctx, store.AddInput{
		Title:       addTitle,
		Description: description,
		URL:         addURL,
	})
	if err != nil {
		return err
	}

	if enricher != nil {
		// Wait so the enriched fields land before the process exits.
		a.store.Wait()
	} else {
		// Without extraction the placeholder would never resolve.
		company, salary := store.SentinelCompany, store.SentinelSalary
		a.store.UpdateJob(id, store.JobUpdate{Company: &company, SalaryRange: &salary})
	}

	job, _ := a.store.Job(id)
	fmt.Fprintf(os.Stdout, "Added %s\n", id)
	fmt.Fprintf(os.Stdout, "  %s at %s (%s)\n", job.Title, job.Company, job.SalaryRange)
	return nil
}
