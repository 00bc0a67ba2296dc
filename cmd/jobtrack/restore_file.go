package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwalters/jobtrack/internal/codec"
)

var restoreFileCmd = &cobra.Command{
	Use:   "restore-file <path>",
	Short: "Restore from a backup file",
	Long:  "Read a JSON backup file and replace the entire local dataset with it. This is a wholesale overwrite, not a merge, so it asks for confirmation.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestoreFile,
}

func init() {
	rootCmd.AddCommand(restoreFileCmd)
}

func runRestoreFile(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}
	snapshot, err := codec.ImportFile(data)
	if err != nil {
		return err
	}

	a, err := openApp(nil)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.ReplaceAll(snapshot); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Restored %d applications from %s\n", len(snapshot.Jobs), args[0])
	return nil
}
