package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked applications",
	Long:  "List active applications, or the archive with --archived. The archive holds archived records plus rejections.",
	RunE:  runList,
}

var (
	listArchived bool
	listSearch   string
)

func init() {
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "Show archived and rejected applications")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter by title or company substring")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	var jobs []types.JobApplication
	if listArchived {
		jobs = a.store.Archived()
	} else {
		jobs = a.store.FilterActive(listSearch)
	}
	if len(jobs) == 0 {
		fmt.Fprintln(os.Stdout, "No applications found.")
		return nil
	}

	writeJobTable(os.Stdout, jobs)
	return nil
}

func writeJobTable(out io.Writer, jobs []types.JobApplication) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tSALARY\tSTATUS\tINTERVIEWS\tADDED")
	for _, job := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			shortID(job.ID), job.Title, job.Company, job.SalaryRange,
			statusLabel(job), len(job.Interviews), job.DateAdded)
	}
	_ = w.Flush()
}

func statusLabel(job types.JobApplication) string {
	if job.IsArchived {
		return fmt.Sprintf("%s (archived)", job.Status)
	}
	return string(job.Status)
}

// shortID keeps table rows readable; every command still accepts the full
// id or any unique prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
