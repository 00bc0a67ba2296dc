package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <Applied|Interviewing|Offer|Rejected>",
	Short: "Move an application through the funnel",
	Long:  "Set an application's status. Any transition between statuses is allowed so mistakes can be corrected; nothing moves automatically.",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	if err := a.store.SetStatus(id, types.JobStatus(args[1])); err != nil {
		return err
	}

	job, _ := a.store.Job(id)
	fmt.Fprintf(os.Stdout, "%s at %s is now %s\n", job.Title, job.Company, job.Status)
	return nil
}
