package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete an application",
	Long:  "Permanently remove an application and all of its interview history. This cannot be undone; prefer archive to hide a record while keeping it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := resolveJobID(a, args[0])
	if err != nil {
		return err
	}
	job, _ := a.store.Job(id)
	if err := a.store.DeleteJob(id); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Deleted %s at %s\n", job.Title, job.Company)
	return nil
}
