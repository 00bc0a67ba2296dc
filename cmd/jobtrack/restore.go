package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore an archived application",
	Long:  "Return an archived application to the active funnel. Restored applications re-enter as Applied.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	a.store.RestoreJob(id)

	job, _ := a.store.Job(id)
	fmt.Fprintf(os.Stdout, "Restored %s at %s as %s\n", job.Title, job.Company, job.Status)
	return nil
}
