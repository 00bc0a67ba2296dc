package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kwalters/jobtrack/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [id]",
	Short: "Score your resume against a job description",
	Long:  "Analyze how well the stored resume matches an application's description, producing a 0-100 score with strengths and gaps. With --all, every active application is analyzed.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeAll      bool
	analyzeParallel int
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "Analyze every active application")
	analyzeCmd.Flags().IntVar(&analyzeParallel, "parallel", 3, "Concurrent analyses with --all")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	if analyzeAll == (len(args) == 1) {
		return fmt.Errorf("provide exactly one of an application id or --all")
	}

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

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	resume, ok := a.store.Resume()
	if !ok {
		return fmt.Errorf("no resume stored; run 'jobtrack resume <file>' first")
	}
	resumeText := resume.ExtractedText
	if resumeText == "" {
		resumeText = resume.Content
	}

	var jobs []types.JobApplication
	if analyzeAll {
		jobs = a.store.FilterActive("")
		if len(jobs) == 0 {
			fmt.Fprintln(os.Stdout, "No active applications to analyze.")
			return nil
		}
	} else {
		id, err := resolveJobID(a, args[0])
		if err != nil {
			return err
		}
		job, _ := a.store.Job(id)
		jobs = []types.JobApplication{job}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeParallel)
	results := make([]types.MatchAnalysis, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			analysis, err := svc.AnalyzeMatch(gctx, resumeText, job.Description)
			if err != nil {
				return fmt.Errorf("analysis of %s failed: %w", job.Title, err)
			}
			results[i] = analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, job := range jobs {
		a.store.SetAnalysis(job.ID, results[i])
		printAnalysis(job, results[i])
	}
	return nil
}

func printAnalysis(job types.JobApplication, analysis types.MatchAnalysis) {
	fmt.Fprintf(os.Stdout, "%s at %s: %d/100\n", job.Title, job.Company, analysis.Score)
	if len(analysis.Strengths) > 0 {
		fmt.Fprintf(os.Stdout, "  Strengths: %s\n", strings.Join(analysis.Strengths, "; "))
	}
	if len(analysis.Gaps) > 0 {
		fmt.Fprintf(os.Stdout, "  Gaps:      %s\n", strings.Join(analysis.Gaps, "; "))
	}
}
