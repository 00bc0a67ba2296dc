package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all tracked data",
	Long:  "Erase every application, interview, and the stored resume, and remove the persisted state. This cannot be undone; export a backup first.",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.ResetAll(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "All data erased.")
	return nil
}
