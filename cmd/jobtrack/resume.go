package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/types"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Store your resume for match analysis",
	Long:  "Store the text of your resume. A single resume is kept; storing a new one replaces it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResume,
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}

func runResume(_ *cobra.Command, args []string) error {
	path := args[0]
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("PDF resumes are not supported; export it as plain text first")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	text := strings.TrimSpace(string(content))
	if text == "" {
		return fmt.Errorf("resume file is empty")
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	a.store.SetResume(types.ResumeData{
		Type:          types.ResumeText,
		Content:       text,
		ExtractedText: text,
	})
	fmt.Fprintf(os.Stdout, "Stored resume (%d characters)\n", len(text))
	return nil
}
