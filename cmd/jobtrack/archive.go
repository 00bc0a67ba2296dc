package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive an application",
	Long:  "Hide an application from active views without deleting it. Archived records keep their status, interviews, and place in the statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	a.store.ArchiveJob(id)

	job, _ := a.store.Job(id)
	fmt.Fprintf(os.Stdout, "Archived %s at %s\n", job.Title, job.Company)
	return nil
}
